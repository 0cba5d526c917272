package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hugoMGSung/puzzlereplay/queens"
	"github.com/hugoMGSung/puzzlereplay/replay"
)

var (
	queensSize   int
	queensSpeed  int
	queensJump   int
	queensConfig string
)

var queensCmd = &cobra.Command{
	Use:   "queens",
	Short: "Replay the N-Queens backtracking search, pausing at every solution",
	RunE:  runQueens,
}

func init() {
	queensCmd.Flags().IntVar(&queensSize, "size", 8, "board size N")
	queensCmd.Flags().IntVar(&queensSpeed, "speed", replay.MaxSpeed, "replay speed level (1..10)")
	queensCmd.Flags().IntVar(&queensJump, "jump", 0, "show solution K directly instead of replaying")
	queensCmd.Flags().StringVar(&queensConfig, "config", "", "optional YAML config file")
	rootCmd.AddCommand(queensCmd)
}

func runQueens(cmd *cobra.Command, _ []string) error {
	size, speed := queensSize, queensSpeed
	if queensConfig != "" {
		cfg, err := loadConfig(queensConfig)
		if err != nil {
			return err
		}
		size = overrideInt(cmd.Flags().Changed("size"), size, cfg.BoardSize)
		speed = overrideInt(cmd.Flags().Changed("speed"), speed, cfg.Speed)
	}

	// Direct solution display: reconstruct from the index, no trace replay.
	if queensJump > 0 {
		return jumpToSolution(size, queensJump)
	}

	board, err := queens.NewBoard(size)
	if err != nil {
		return err
	}
	var sols queens.SolutionIndex
	eng, err := replay.NewEngine(func() ([]queens.Step, error) {
		res, gerr := queens.Generate(size)
		if gerr != nil {
			return nil, gerr
		}
		sols = res.Solutions
		return res.Steps, nil
	}, board)
	if err != nil {
		return err
	}

	if err = eng.Start(); err != nil {
		return err
	}
	interval := replay.Interval(speed)
	logger.Info("replay started",
		"puzzle", "queens", "size", size,
		"steps", eng.Len(), "solutions", sols.Count(), "interval", interval)

	for {
		cursor, rerr := eng.Run(cmd.Context(), interval)
		if rerr != nil {
			if errors.Is(rerr, replay.ErrDivergence) {
				logger.Error("replay halted", "error", rerr, "step", cursor.Next, "of", cursor.Total)
				os.Exit(exitDivergence)
			}
			return rerr
		}
		switch cursor.Phase {
		case replay.Paused:
			logger.Info("solution found",
				"index", cursor.Pauses, "step", cursor.Next, "of", cursor.Total)
			printBoard(board)
			if err = eng.Resume(); err != nil {
				return err
			}
		case replay.Finished:
			logger.Info("replay finished", "steps", cursor.Total, "solutions", cursor.Pauses)
			return nil
		default:
			// Externally paused or reset; nothing left to drive headlessly.
			return nil
		}
	}
}

// jumpToSolution reconstructs and prints one stored solution, clamped into
// the valid range, without touching any replay state.
func jumpToSolution(size, index int) error {
	res, err := queens.Generate(size)
	if err != nil {
		return err
	}
	board, resolved, err := res.Solutions.Reconstruct(index)
	if err != nil {
		return err
	}
	logger.Info("showing solution", "index", resolved, "of", res.Solutions.Count())
	printBoard(board)

	return nil
}

// printBoard writes the column→row layout to stdout.
func printBoard(b *queens.Board) {
	for col, row := range b.Rows() {
		fmt.Printf("column %d: row %d\n", col, row)
	}
}
