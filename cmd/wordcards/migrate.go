package main

import (
	"fmt"
	"strings"

	"github.com/phrazzld/wordcards/internal/config"
	"github.com/phrazzld/wordcards/internal/platform/postgres"
	"github.com/spf13/cobra"
)

const defaultMigrationsDir = "internal/platform/postgres/migrations"

// migrateCommands are the goose commands exposed by "wordcards migrate".
var migrateCommands = []string{"up", "down", "status", "version", "reset", "redo"}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [" + strings.Join(migrateCommands, "|") + "]",
		Short:     "Apply or inspect database migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrateCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}

			if opts.config.Database.Backend != config.BackendPostgres {
				return fmt.Errorf("migrations require the %q backend, configured backend is %q",
					config.BackendPostgres, opts.config.Database.Backend)
			}

			db, err := setupAppDatabase(cmd.Context(), opts.config, opts.logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					opts.logger.Error("Failed to close database connection", "error", err)
				}
			}()

			return postgres.Migrate(cmd.Context(), db, opts.logger, command)
		},
	}

	cmd.AddCommand(newMigrateCreateCmd(opts))
	return cmd
}

func newMigrateCreateCmd(opts *rootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a new SQL migration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := postgres.CreateMigration(dir, args[0]); err != nil {
				return err
			}
			opts.logger.Info("Migration created", "dir", dir, "name", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", defaultMigrationsDir, "directory for new migration files")
	return cmd
}
