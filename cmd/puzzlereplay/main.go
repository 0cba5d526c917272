// Command puzzlereplay drives the N-Queens and Tower of Hanoi replay
// engines headlessly: it generates the trace, replays it on a timer, and
// logs progress at every pause. It is the terminal stand-in for the
// graphical viewers, exercising exactly the same engine surface.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes reported to the shell.
const (
	exitSuccess    = 0
	exitBadInput   = 1
	exitDivergence = 2
)

var rootCmd = &cobra.Command{
	Use:           "puzzlereplay",
	Short:         "Replay precomputed N-Queens and Tower of Hanoi traces on a timer",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// logger writes structured progress to stderr, keeping stdout for board
// and peg layouts.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(exitBadInput)
	}
}
