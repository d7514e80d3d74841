package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"moodpick/internal/logging"
	"moodpick/internal/mood"
)

// moodEmoji decorates vocabulary labels in terminal output.
var moodEmoji = map[string]string{
	"chaos":     "🌪️",
	"christmas": "🎄",
	"comfort":   "🤗",
	"cringe":    "😬",
	"romantic":  "💕",
	"wholesome": "🤍",
	"workplace": "🏢",
}

var labelCaser = cases.Title(language.English)

func moodDisplayLabel(label string) string {
	emoji, ok := moodEmoji[label]
	if !ok {
		emoji = "✨"
	}
	return emoji + " " + labelCaser.String(label)
}

func newMoodsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "moods",
		Short: "List the mood vocabulary and catalog coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := make(map[string]int)
			if episodes, err := ctx.loadCatalog(cmd.Context()); err == nil {
				for _, ep := range episodes {
					for _, label := range ep.Moods {
						counts[label]++
					}
				}
			} else if logger, logErr := ctx.logger(); logErr == nil {
				// The vocabulary listing still works without a built catalog.
				logger.Debug("episode counts unavailable", logging.Error(err))
			}

			if asJSON {
				type moodInfo struct {
					Label    string   `json:"label"`
					Keywords []string `json:"keywords"`
					Episodes int      `json:"episodes"`
				}
				infos := make([]moodInfo, 0, len(mood.Vocabulary()))
				for _, m := range mood.Vocabulary() {
					infos = append(infos, moodInfo{
						Label:    m.Label,
						Keywords: m.Keywords,
						Episodes: counts[m.Label],
					})
				}
				return writeJSON(cmd, infos)
			}

			rows := make([][]string, 0, len(mood.Vocabulary()))
			for _, m := range mood.Vocabulary() {
				rows = append(rows, []string{
					moodDisplayLabel(m.Label),
					strconv.Itoa(len(m.Keywords)),
					strconv.Itoa(counts[m.Label]),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Mood", "Keywords", "Episodes"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
