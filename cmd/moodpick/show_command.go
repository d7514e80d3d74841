package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"moodpick/internal/catalog"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display one episode in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("invalid episode id %q", args[0])
			}

			var ep *catalog.Episode
			err = ctx.withStore(func(store *catalog.Store) error {
				var getErr error
				ep, getErr = store.GetByID(cmd.Context(), id)
				return getErr
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, ep)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", ep.Code(), ep.Title)
			fmt.Fprintf(out, "Rating: %.1f (%d votes)\n", ep.Rating, ep.Votes)
			if ep.Date != "" {
				fmt.Fprintf(out, "Aired: %s\n", ep.Date)
			}
			if ep.Duration > 0 {
				fmt.Fprintf(out, "Duration: %d min\n", ep.Duration)
			}
			if ep.About != "" {
				fmt.Fprintln(out, ep.About)
			}
			for _, label := range ep.Moods {
				fmt.Fprintf(out, "  %s (%s)\n", moodDisplayLabel(label), ep.MoodSources[label])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}
