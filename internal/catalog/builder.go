package catalog

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"moodpick/internal/logging"
	"moodpick/internal/tagger"
)

// RawRecord is one unvalidated dataset row. All fields are strings; the
// builder parses them leniently and degrades to defaults instead of failing
// the batch.
type RawRecord struct {
	ID       string
	Season   string
	Title    string
	About    string
	Rating   string
	Votes    string
	Duration string
	Date     string
	Cringe   string
}

// Builder turns raw dataset rows into tagged episodes.
type Builder struct {
	tagger *tagger.Tagger
	logger *slog.Logger
}

// NewBuilder constructs a catalog builder around the given tagger.
func NewBuilder(tg *tagger.Tagger, logger *slog.Logger) *Builder {
	b := &Builder{tagger: tg}
	b.SetLogger(logger)
	return b
}

// SetLogger updates the builder's logging destination.
func (b *Builder) SetLogger(logger *slog.Logger) {
	b.logger = logging.NewComponentLogger(logger, "builder")
	if b.tagger != nil {
		b.tagger.SetLogger(logger)
	}
}

// dateLayouts are tried in order when parsing air dates. The source dataset
// writes day-first dates.
var dateLayouts = []string{
	"2-1-2006",
	"02-01-2006",
	"2/1/2006",
	"02/01/2006",
	"2006-01-02",
	"2 January 2006",
	"January 2, 2006",
}

// Build normalizes every record, ranks episodes within their seasons, and
// tags all about texts in one batch. One Episode is emitted per input record,
// in (season, air date, id) order.
func (b *Builder) Build(records []RawRecord) []Episode {
	episodes := make([]Episode, len(records))
	airDates := make([]time.Time, len(records))

	for i, rec := range records {
		episodes[i] = Episode{
			ID:       parseIntField(rec.ID, i),
			Season:   parseIntField(rec.Season, 0),
			Title:    defaultString(rec.Title, "Untitled"),
			About:    strings.TrimSpace(rec.About),
			Rating:   parseFloatField(rec.Rating),
			Votes:    parseIntField(rec.Votes, 0),
			Duration: parseIntField(rec.Duration, 0),
			Date:     strings.TrimSpace(rec.Date),
			Cringe:   parseFloatField(rec.Cringe),
		}
		airDates[i] = parseDate(rec.Date)
	}

	// Chronological order within seasons; unparseable dates sort earliest,
	// id breaks ties.
	order := make([]int, len(episodes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, c int) bool {
		ea, ec := episodes[order[a]], episodes[order[c]]
		if ea.Season != ec.Season {
			return ea.Season < ec.Season
		}
		da, dc := airDates[order[a]], airDates[order[c]]
		if !da.Equal(dc) {
			return da.Before(dc)
		}
		return ea.ID < ec.ID
	})

	seasonCounts := make(map[int]int)
	sorted := make([]Episode, 0, len(episodes))
	texts := make([]string, 0, len(episodes))
	for _, idx := range order {
		ep := episodes[idx]
		seasonCounts[ep.Season]++
		ep.Number = seasonCounts[ep.Season]
		sorted = append(sorted, ep)
		texts = append(texts, ep.About)
	}

	if b.tagger != nil {
		assignments := b.tagger.TagBatch(texts)
		for i := range sorted {
			sorted[i].Moods = assignments[i].Moods
			sorted[i].MoodSources = assignments[i].Sources
		}
	}

	b.logger.Info("catalog built",
		logging.Int("episodes", len(sorted)),
		logging.Int("seasons", len(seasonCounts)),
	)

	return sorted
}

// parseIntField parses a non-negative integer, degrading to fallback on any
// failure. Float-formatted values ("22.0") are truncated.
func parseIntField(value string, fallback int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 0 {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil && f >= 0 {
		return int(f)
	}
	return fallback
}

func parseFloatField(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// parseDate attempts each known layout and returns the zero time when none
// fits, which sorts unparseable dates earliest.
func parseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func defaultString(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
