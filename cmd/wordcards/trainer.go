package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/phrazzld/wordcards/internal/service"
)

// quitCommand ends a training session early.
const quitCommand = ":q"

// trainer runs the interactive quiz against a TrainingService.
type trainer struct {
	training service.TrainingService
	lines    <-chan string
	readErr  *error
	stop     chan struct{}
	out      io.Writer

	// reverse asks for the word given its translation.
	reverse bool
	width   int
}

type trainStats struct {
	Asked   int
	Correct int
}

func newTrainer(training service.TrainingService, in io.Reader, out io.Writer, reverse bool, width int) *trainer {
	t := &trainer{
		training: training,
		stop:     make(chan struct{}),
		out:      out,
		reverse:  reverse,
		width:    width,
	}
	t.lines, t.readErr = scanLines(in, t.stop)
	return t
}

// Close stops the input reader. A read already in progress on the
// underlying reader finishes first; the line it returns is dropped.
func (t *trainer) Close() {
	select {
	case <-t.stop:
	default:
		close(t.stop)
	}
}

// scanLines reads in on a separate goroutine so a pending read never blocks
// cancellation. The goroutine exits at end of input or when stop is closed.
// The error pointer is valid once the channel is closed.
func scanLines(in io.Reader, stop <-chan struct{}) (<-chan string, *error) {
	lines := make(chan string)
	var err error
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		err = scanner.Err()
	}()
	return lines, &err
}

// run asks up to rounds questions, or until input ends when rounds is zero.
// It returns service.ErrNoCards when the store has nothing to ask.
func (t *trainer) run(ctx context.Context, rounds int) (trainStats, error) {
	var stats trainStats

	for rounds <= 0 || stats.Asked < rounds {
		if err := ctx.Err(); err != nil {
			return stats, nil
		}

		card, err := t.training.Present(ctx)
		if err != nil {
			return stats, err
		}
		if card == nil {
			return stats, service.ErrNoCards
		}

		question, expected := card.Word, card.Translation
		label := "Word"
		if t.reverse {
			question, expected = card.Translation, card.Word
			label = "Translation"
		}

		fmt.Fprintln(t.out, colorize.HiBlackString(strings.Repeat("─", t.width)))
		fmt.Fprintln(t.out, colorize.CyanString(label+": ")+colorize.HiWhiteString("%s", question))
		if card.HasImage() {
			fmt.Fprintln(t.out, colorize.CyanString("Image: ")+card.Image)
		}
		fmt.Fprint(t.out, colorize.YellowString("> "))

		var answer string
		select {
		case <-ctx.Done():
			fmt.Fprintln(t.out)
			return stats, nil
		case line, ok := <-t.lines:
			if !ok {
				fmt.Fprintln(t.out)
				return stats, *t.readErr
			}
			answer = line
		}
		if strings.TrimSpace(answer) == quitCommand {
			return stats, nil
		}

		eval := t.training.Evaluate(answer, expected)
		stats.Asked++
		if eval.IsCorrect() {
			stats.Correct++
			fmt.Fprintln(t.out, colorize.GreenString("%s", eval.Message()))
		} else {
			fmt.Fprintln(t.out, colorize.RedString("%s", eval.Message()))
		}
	}
	return stats, nil
}

func (s trainStats) String() string {
	return fmt.Sprintf("%d/%d correct", s.Correct, s.Asked)
}
