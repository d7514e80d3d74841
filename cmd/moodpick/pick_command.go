package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"moodpick/internal/recommend"
)

func newPickCommand(ctx *commandContext) *cobra.Command {
	var (
		moods   []string
		anyMood bool
		seed    int64
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose one matching episode at random",
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

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewSource(seed))
			}

			candidate, ok := recommend.Pick(episodes, moods, requireAll, rng)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No episodes match your moods. Try removing a mood or allowing any match with --any.")
				return nil
			}

			if asJSON {
				return writeJSON(cmd, candidate)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", candidate.Code(), candidate.Title)
			fmt.Fprintf(out, "Rating: %.1f  Why: %s\n", candidate.Rating, candidate.Reason)
			if candidate.About != "" {
				fmt.Fprintln(out, candidate.About)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&moods, "mood", "m", nil, "Mood to match (repeatable; none picks from the whole catalog)")
	cmd.Flags().BoolVar(&anyMood, "any", false, "Match any selected mood instead of all")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Fix the random seed (for reproducible picks)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}
