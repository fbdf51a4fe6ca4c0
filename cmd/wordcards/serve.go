package main

import (
	"fmt"

	"github.com/phrazzld/wordcards/internal/config"
	"github.com/phrazzld/wordcards/internal/platform/postgres"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := openApplication(ctx, opts.config, opts.logger)
			if err != nil {
				return err
			}
			defer app.cleanup()

			if migrate && opts.config.Database.Backend == config.BackendPostgres {
				if err := postgres.Migrate(ctx, app.db, opts.logger, "up"); err != nil {
					return fmt.Errorf("failed to apply migrations: %w", err)
				}
			}

			return app.startHTTPServer(ctx, app.setupRouter())
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}
