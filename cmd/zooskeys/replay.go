package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/muurk/zooskeys/internal/config"
	"github.com/muurk/zooskeys/internal/keyboard"
	"github.com/muurk/zooskeys/internal/replay"
	"github.com/muurk/zooskeys/internal/ui"
)

// Output formats for replay and score
const (
	formatKeys    = "keys"
	formatSummary = "summary"
	formatBoth    = "both"
)

var (
	replayLayout string
	replayFormat string
)

// replayCmd applies a scripted feedback sequence to a keyboard
var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Replay a feedback script onto the keyboard",
	Long: `Apply a YAML script of guesses and feedback to a keyboard and print
the resulting key states.

Script format:

  layout: qwerty          # optional
  events:
    - guess: crane
      feedback: [absent, absent, correct, absent, present]
    - reset: true
    - guess: towel
      feedback: [green, orange, gray, gray, gray]

Unknown feedback tokens are ignored for their position.`,
	Example: `  # Show the keyboard after a script
  zooskeys replay round.yaml

  # Per-letter summary only
  zooskeys replay round.yaml --format summary`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return replayScript(cmd.OutOrStdout(), args[0], replayLayout, replayFormat, settings)
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayLayout, "layout", "", "Keyboard layout, overrides the script ("+layoutList()+")")
	replayCmd.Flags().StringVar(&replayFormat, "format", formatBoth, "Output format (keys, summary, both)")
	rootCmd.AddCommand(replayCmd)
}

func replayScript(w io.Writer, path, layoutFlag, format string, s *config.Settings) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if s == nil {
		s = config.NewSettings()
	}

	script, err := replay.Load(path)
	if err != nil {
		return err
	}

	name := layoutFlag
	if name == "" {
		name = script.Layout
	}
	layout, err := resolveLayout(name, s)
	if err != nil {
		return err
	}

	surface := ui.NewKeyboardSurface()
	kb := keyboard.Mount(surface, layout, nil).(*keyboard.Keyboard)
	stats := script.Run(kb)

	p := ui.NewPrinter(w)
	p.PrintHeader("REPLAY", "zooskeys replay "+path,
		ui.Param{Key: "Layout", Value: layout.Name},
		ui.Param{Key: "Guesses", Value: strconv.Itoa(stats.Guesses)},
		ui.Param{Key: "Resets", Value: strconv.Itoa(stats.Resets)},
	)
	printKeyboardState(p, surface, kb.Tracker(), format)
	return nil
}

func printKeyboardState(p *ui.Printer, surface *ui.KeyboardSurface, t *keyboard.Tracker, format string) {
	if format == formatKeys || format == formatBoth {
		p.Newline()
		p.PrintKeyboard(surface)
	}
	if format == formatSummary || format == formatBoth {
		p.Newline()
		lines := ui.SummaryLines(t)
		if len(lines) == 0 {
			p.Println("No feedback recorded.")
			return
		}
		p.PrintLines(lines...)
	}
}

func checkFormat(format string) error {
	switch format {
	case formatKeys, formatSummary, formatBoth:
		return nil
	}
	return fmt.Errorf("unknown format %q (use keys, summary or both)", format)
}
