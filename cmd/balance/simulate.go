package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/balance/config"
	"github.com/lixenwraith/balance/constants"
	"github.com/lixenwraith/balance/engine"
	"github.com/lixenwraith/balance/events"
	"github.com/lixenwraith/balance/scores"
)

type simulateOptions struct {
	frames int
	record bool
}

// roundResult is one finished autopilot round
type roundResult struct {
	Score  int
	Frames int64
	Loser  string
}

// simSummary reports a headless run
type simSummary struct {
	Frames int
	Rounds []roundResult
	Best   int
	Events map[events.EventType]int
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	opts := &simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the autopilot headless and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			if logFile := setupLogging(cfg.Debug); logFile != nil {
				defer logFile.Close()
			}

			sum := simulate(cfg, opts.frames)
			printSummary(cmd.OutOrStdout(), sum)

			if opts.record {
				store := scores.NewStore(cfg.Scores.Path, cfg.Scores.Keep)
				for _, r := range sum.Rounds {
					if _, err := store.Record(r.Score, r.Frames, time.Now()); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.frames, "frames", constants.DefaultSimulateFrames, "frames to simulate")
	cmd.Flags().BoolVar(&opts.record, "record", false, "store finished rounds in the score table")
	return cmd
}

// simulate plays rounds back to back under the autopilot until frames run out
func simulate(cfg *config.Config, frames int) simSummary {
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	queue := events.NewEventQueue()
	g := engine.NewGame(cfg.Tuning(), rand.New(rand.NewSource(seed)), queue)
	pilot := engine.NewAutopilot(constants.AutopilotLookahead)

	sum := simSummary{Frames: frames, Events: make(map[events.EventType]int)}
	g.Start()
	for i := 0; i < frames; i++ {
		pilot.Steer(g)
		g.Update()

		for _, ev := range queue.Consume() {
			sum.Events[ev.Type]++
			if ev.Type == events.EventGameOver {
				loser := "left"
				if ev.Side == 1 {
					loser = "right"
				}
				sum.Rounds = append(sum.Rounds, roundResult{Score: ev.Amount, Frames: ev.Frame, Loser: loser})
				sum.Best = max(sum.Best, ev.Amount)
			}
		}
		if g.GameOver() {
			g.Start()
		}
	}
	return sum
}

func printSummary(w io.Writer, s simSummary) {
	fmt.Fprintf(w, "frames: %d\nrounds finished: %d\nbest score: %d\n", s.Frames, len(s.Rounds), s.Best)
	for i, r := range s.Rounds {
		fmt.Fprintf(w, "  round %d: score %d after %d frames, %s car lost\n", i+1, r.Score, r.Frames, r.Loser)
	}
	fmt.Fprintf(w, "lane changes: %d  hits: %d  heals: %d\n",
		s.Events[events.EventLaneChange], s.Events[events.EventBlockHit], s.Events[events.EventHealerPicked])
}
