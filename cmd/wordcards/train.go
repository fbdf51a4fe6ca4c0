package main

import (
	"errors"
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/phrazzld/wordcards/internal/service"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	defaultRuleWidth = 40
	maxRuleWidth     = 80
)

func newTrainCmd(opts *rootOptions) *cobra.Command {
	var (
		reverse bool
		rounds  int
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Quiz yourself on random cards in the terminal",
		Long: `Show a random card and check the typed translation. Answers are compared
ignoring case and surrounding whitespace. Type ` + quitCommand + ` or press Ctrl-D to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds < 0 {
				return fmt.Errorf("--rounds must not be negative")
			}
			if noColor {
				colorize.NoColor = true
			}

			app, err := openApplication(cmd.Context(), opts.config, opts.logger)
			if err != nil {
				return err
			}
			defer app.cleanup()

			out := cmd.OutOrStdout()
			t := newTrainer(app.trainingService, cmd.InOrStdin(), out, reverse, ruleWidth())
			defer t.Close()
			stats, err := t.run(cmd.Context(), rounds)
			if errors.Is(err, service.ErrNoCards) {
				fmt.Fprintln(out, colorize.YellowString("No cards yet. Add some with \"wordcards import\" or the API."))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(out, colorize.CyanString("Score: ")+colorize.HiWhiteString("%s", stats))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "show the translation and ask for the word")
	cmd.Flags().IntVarP(&rounds, "rounds", "n", 0, "number of questions (0 asks until input ends)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

// ruleWidth sizes the separator between questions to the terminal.
func ruleWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultRuleWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultRuleWidth
	}
	return min(width, maxRuleWidth)
}
