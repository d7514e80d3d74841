package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"moodpick/internal/recommend"
)

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var (
		moods     []string
		anyMood   bool
		lowCringe bool
		maxFlag   int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank episodes against the selected moods",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			selection := recommend.NormalizeSelection(moods)
			if len(selection) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Select at least one mood (-m) to get recommendations. Run 'moodpick moods' to see the vocabulary.")
				return nil
			}

			episodes, err := ctx.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			maxResults := maxFlag
			if maxResults <= 0 {
				maxResults = cfg.Recommend.MaxResults
			}
			requireAll := cfg.Recommend.RequireAll
			if anyMood {
				requireAll = false
			}
			opts := recommend.Options{
				Selection:  selection,
				LowCringe:  lowCringe || cfg.Recommend.LowCringe,
				MaxResults: maxResults,
				RequireAll: requireAll,
			}

			results := recommend.Recommend(episodes, opts)

			if asJSON {
				return writeJSON(cmd, results)
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No episodes match your moods. Try removing a mood or allowing any match with --any.")
				return nil
			}

			rows := make([][]string, 0, len(results))
			for i, c := range results {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					c.Code(),
					c.Title,
					fmt.Sprintf("%.1f", c.Rating),
					fmt.Sprintf("%.1f", c.Score),
					c.Reason,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Episode", "Title", "Rating", "Score", "Why"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&moods, "mood", "m", nil, "Mood to match (repeatable)")
	cmd.Flags().BoolVar(&anyMood, "any", false, "Match any selected mood instead of all")
	cmd.Flags().BoolVar(&lowCringe, "low-cringe", false, "Penalize cringe-heavy episodes")
	cmd.Flags().IntVarP(&maxFlag, "max", "n", 0, "Maximum results (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
