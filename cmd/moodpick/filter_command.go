package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"moodpick/internal/recommend"
)

func newFilterCommand(ctx *commandContext) *cobra.Command {
	var (
		moods   []string
		anyMood bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List episodes matching the selected moods, in catalog order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			episodes, err := ctx.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			requireAll := cfg.Recommend.RequireAll
			if anyMood {
				requireAll = false
			}
			candidates := recommend.Filter(episodes, moods, requireAll)

			if asJSON {
				return writeJSON(cmd, candidates)
			}

			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				fmt.Fprintln(out, "No episodes match your moods. Try removing a mood or allowing any match with --any.")
				return nil
			}

			rows := make([][]string, 0, len(candidates))
			for _, ep := range candidates {
				rows = append(rows, []string{
					strconv.Itoa(ep.ID),
					ep.Code(),
					ep.Title,
					fmt.Sprintf("%.1f", ep.Rating),
					strings.Join(ep.Moods, ", "),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Episode", "Title", "Rating", "Moods"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&moods, "mood", "m", nil, "Mood to match (repeatable; none lists the whole catalog)")
	cmd.Flags().BoolVar(&anyMood, "any", false, "Match any selected mood instead of all")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
