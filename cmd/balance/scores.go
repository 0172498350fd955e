package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/balance/scores"
)

func newScoresCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Print the score table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			tbl, err := scores.NewStore(cfg.Scores.Path, cfg.Scores.Keep).Load()
			if err != nil {
				return err
			}
			printScores(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
}

func printScores(w io.Writer, tbl scores.Table) {
	fmt.Fprintf(w, "best: %d\n", tbl.Best)
	if len(tbl.Rounds) == 0 {
		fmt.Fprintln(w, "no rounds recorded")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tSCORE\tFRAMES\tID")
	for _, r := range tbl.Rounds {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.Time.Local().Format("2006-01-02 15:04"), r.Score, r.Frames, r.ID)
	}
	tw.Flush()
}
