package main

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/phrazzld/wordcards/internal/deck"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import cards from a TOML, YAML or JSON deck",
		Long: `Import every card in a deck file. The format is chosen by extension
(.toml, .yaml, .yml, .json). No card is stored if any entry is invalid
when the configured backend supports transactions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deck.Load(afero.NewOsFs(), args[0])
			if err != nil {
				return err
			}

			app, err := openApplication(cmd.Context(), opts.config, opts.logger)
			if err != nil {
				return err
			}
			defer app.cleanup()

			n, err := app.cardService.ImportCards(cmd.Context(), d.Inputs())
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s from %s\n",
				colorize.GreenString("%d cards", n), args[0])
			return nil
		},
	}
}
