package main

import (
	"fmt"

	"github.com/phrazzld/wordcards/internal/deck"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		formatName string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all cards as a deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := exportFormat(formatName, output)
			if err != nil {
				return err
			}

			app, err := openApplication(cmd.Context(), opts.config, opts.logger)
			if err != nil {
				return err
			}
			defer app.cleanup()

			cards, err := app.cardService.ListCards(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list cards: %w", err)
			}
			d := deck.FromCards(cards)

			if output == "" {
				return deck.Encode(cmd.OutOrStdout(), format, d)
			}
			if err := deck.Save(afero.NewOsFs(), output, format, d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d cards to %s\n", len(d.Cards), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "",
		"deck format: toml, yaml or json (default from --output extension, else toml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to FILE instead of stdout")
	return cmd
}

// exportFormat resolves the explicit format flag, falling back to the
// output file extension and then TOML.
func exportFormat(name, output string) (deck.Format, error) {
	switch {
	case name != "":
		return deck.ParseFormat(name)
	case output != "":
		return deck.FormatFromPath(output)
	default:
		return deck.FormatTOML, nil
	}
}
