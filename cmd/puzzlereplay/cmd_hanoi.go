package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hugoMGSung/puzzlereplay/hanoi"
	"github.com/hugoMGSung/puzzlereplay/replay"
)

var (
	hanoiDisks  int
	hanoiFrom   int
	hanoiTo     int
	hanoiSpeed  int
	hanoiConfig string
)

var hanoiCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Replay the Tower of Hanoi move sequence",
	RunE:  runHanoi,
}

func init() {
	hanoiCmd.Flags().IntVar(&hanoiDisks, "disks", 5, "number of disks")
	hanoiCmd.Flags().IntVar(&hanoiFrom, "from", 0, "source peg (0..2)")
	hanoiCmd.Flags().IntVar(&hanoiTo, "to", 2, "destination peg (0..2)")
	hanoiCmd.Flags().IntVar(&hanoiSpeed, "speed", replay.MaxSpeed, "replay speed level (1..10)")
	hanoiCmd.Flags().StringVar(&hanoiConfig, "config", "", "optional YAML config file")
	rootCmd.AddCommand(hanoiCmd)
}

func runHanoi(cmd *cobra.Command, _ []string) error {
	disks, from, to, speed := hanoiDisks, hanoiFrom, hanoiTo, hanoiSpeed
	if hanoiConfig != "" {
		cfg, err := loadConfig(hanoiConfig)
		if err != nil {
			return err
		}
		disks = overrideInt(cmd.Flags().Changed("disks"), disks, cfg.Disks)
		from = overrideInt(cmd.Flags().Changed("from"), from, cfg.From)
		to = overrideInt(cmd.Flags().Changed("to"), to, cfg.To)
		speed = overrideInt(cmd.Flags().Changed("speed"), speed, cfg.Speed)
	}

	pegs, err := hanoi.NewPegs(disks, from)
	if err != nil {
		return err
	}
	eng, err := replay.NewEngine(func() ([]hanoi.Move, error) {
		return hanoi.Generate(disks, from, to)
	}, pegs)
	if err != nil {
		return err
	}

	if err = eng.Start(); err != nil {
		return err
	}
	interval := replay.Interval(speed)
	logger.Info("replay started",
		"puzzle", "hanoi", "disks", disks,
		"from", from, "to", to, "moves", eng.Len(), "interval", interval)

	cursor, rerr := eng.Run(cmd.Context(), interval)
	if rerr != nil {
		if errors.Is(rerr, replay.ErrDivergence) {
			logger.Error("replay halted", "error", rerr, "move", cursor.Next, "of", cursor.Total)
			os.Exit(exitDivergence)
		}
		return rerr
	}
	if cursor.Phase != replay.Finished {
		// Externally paused or reset; nothing left to drive headlessly.
		return nil
	}

	if err = pegs.Verify(); err != nil {
		logger.Error("final state corrupt", "error", err)
		os.Exit(exitDivergence)
	}
	logger.Info("replay finished", "moves", cursor.Total)
	printPegs(pegs)

	return nil
}

// printPegs writes the three stacks, bottom to top, to stdout.
func printPegs(p *hanoi.Pegs) {
	for peg, stack := range p.Snapshot() {
		fmt.Printf("peg %d: %v\n", peg, stack)
	}
}
