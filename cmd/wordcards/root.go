package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/wordcards/internal/config"
	"github.com/phrazzld/wordcards/internal/platform/logger"
	"github.com/spf13/cobra"
)

// rootOptions holds state shared by every subcommand once the persistent
// pre-run has loaded configuration and logging.
type rootOptions struct {
	configDir string
	logLevel  string

	config *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wordcards",
		Short: "Flashcard vocabulary trainer",
		Long: `wordcards keeps word/translation cards with optional images and quizzes you on them.
Run "wordcards serve" for the HTTP API or "wordcards train" for a terminal quiz.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Only the server logs to stdout; the other commands keep it for
			// their own output.
			logOut := cmd.ErrOrStderr()
			if cmd.Name() == "serve" {
				logOut = cmd.OutOrStdout()
			}
			return opts.load(logOut)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "",
		"directory containing config.yaml (overrides "+config.EnvPrefix+"_CONFIG_DIR)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"log level: debug, info, warn or error")

	cmd.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newImportCmd(opts),
		newExportCmd(opts),
		newTrainCmd(opts),
	)
	return cmd
}

func (o *rootOptions) load(logOut io.Writer) error {
	if o.configDir != "" {
		if err := os.Setenv(config.EnvPrefix+"_CONFIG_DIR", o.configDir); err != nil {
			return fmt.Errorf("failed to set config directory: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if o.logLevel != "" {
		cfg.Server.LogLevel = o.logLevel
	}

	log, err := logger.SetupWithWriter(cfg.Server, logOut)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	o.config = cfg
	o.logger = log
	return nil
}
