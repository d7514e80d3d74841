package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"moodpick/internal/catalog"
	"moodpick/internal/logging"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var jsonExport string

	cmd := &cobra.Command{
		Use:   "build <dataset.csv>",
		Short: "Build the mood-tagged catalog from a raw dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			tg, err := ctx.newTagger()
			if err != nil {
				return err
			}

			buildID := uuid.NewString()
			logger = logger.With(logging.String(logging.FieldRunID, buildID))

			records, err := catalog.ReadCSVFile(args[0])
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return fmt.Errorf("dataset %s contains no records", args[0])
			}

			builder := catalog.NewBuilder(tg, logger)
			episodes := builder.Build(records)

			// One writer at a time; a second concurrent build waits here
			// rather than interleaving.
			lock := flock.New(cfg.Paths.CatalogPath + ".lock")
			if err := lock.Lock(); err != nil {
				return fmt.Errorf("acquire catalog lock: %w", err)
			}
			defer func() { _ = lock.Unlock() }()

			err = ctx.withStore(func(store *catalog.Store) error {
				return store.ReplaceAll(cmd.Context(), episodes, buildID)
			})
			if err != nil {
				return err
			}

			if jsonExport != "" {
				if err := catalog.WriteJSON(jsonExport, episodes); err != nil {
					return err
				}
				logger.Info("catalog exported", logging.String("path", jsonExport))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Built %d episodes into %s\n", len(episodes), cfg.Paths.CatalogPath)
			fmt.Fprintln(out, renderMoodBreakdown(episodes))
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonExport, "json", "", "Also export the enriched catalog to this JSON file")
	return cmd
}

// renderMoodBreakdown summarizes label usage and provenance across the built
// catalog.
func renderMoodBreakdown(episodes []catalog.Episode) string {
	type stats struct {
		total    int
		keyword  int
		semantic int
		fallback int
	}
	byMood := make(map[string]*stats)
	for _, ep := range episodes {
		for _, label := range ep.Moods {
			st := byMood[label]
			if st == nil {
				st = &stats{}
				byMood[label] = st
			}
			st.total++
			source := ep.MoodSources[label]
			switch {
			case source == "keyword":
				st.keyword++
			case strings.HasPrefix(source, "semantic:"):
				st.semantic++
			default:
				st.fallback++
			}
		}
	}

	labels := make([]string, 0, len(byMood))
	for label := range byMood {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rows := make([][]string, 0, len(labels))
	for _, label := range labels {
		st := byMood[label]
		rows = append(rows, []string{
			moodDisplayLabel(label),
			strconv.Itoa(st.total),
			strconv.Itoa(st.keyword),
			strconv.Itoa(st.semantic),
			strconv.Itoa(st.fallback),
		})
	}

	return renderTable(
		[]string{"Mood", "Episodes", "Keyword", "Semantic", "Default"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
	)
}
