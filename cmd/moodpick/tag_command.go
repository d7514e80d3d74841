package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTagCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tag <text>",
		Short: "Classify a text into mood labels",
		Long: `Classify a single episode description into mood labels.

Keyword matches take absolute priority; the semantic fallback scores the text
against a batch of one, so its similarity values are not comparable to those
recorded during a catalog build.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tg, err := ctx.newTagger()
			if err != nil {
				return err
			}

			assignment := tg.TagOne(args[0])

			if asJSON {
				return writeJSON(cmd, assignment)
			}

			rows := make([][]string, 0, len(assignment.Moods))
			for _, label := range assignment.Moods {
				rows = append(rows, []string{
					moodDisplayLabel(label),
					assignment.Sources[label],
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Mood", "Source"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
