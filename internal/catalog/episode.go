package catalog

import (
	"fmt"
	"strings"
)

// Episode is one immutable catalog record.
type Episode struct {
	// ID is the stable identifier taken from the source ordinal.
	ID int `json:"id"`
	// Season is the season number; 0 marks a record whose season failed to
	// parse and is passed through rather than rejected.
	Season int `json:"season"`
	// Number is the 1-based position within the season after chronological
	// ordering.
	Number int `json:"episode"`

	Title string `json:"title"`
	About string `json:"about"`

	Rating   float64 `json:"rating"`
	Votes    int     `json:"votes"`
	Duration int     `json:"duration,omitempty"`
	Date     string  `json:"date,omitempty"`

	// Cringe is an optional upstream enrichment consumed by the low-cringe
	// scoring penalty. Absent means 0.
	Cringe float64 `json:"cringe,omitempty"`

	// Moods holds the assigned labels as a sorted, deduplicated sequence.
	// Never empty for a built episode.
	Moods []string `json:"moods"`
	// MoodSources maps each label in Moods to its provenance marker.
	MoodSources map[string]string `json:"mood_sources"`
}

// Code renders the season/episode position as SxxEyy.
func (e Episode) Code() string {
	return fmt.Sprintf("S%02dE%02d", e.Season, e.Number)
}

// MoodSet returns the episode's moods as a normalized lookup set.
func (e Episode) MoodSet() map[string]struct{} {
	set := make(map[string]struct{}, len(e.Moods))
	for _, m := range e.Moods {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == "" {
			continue
		}
		set[m] = struct{}{}
	}
	return set
}

// HasMood reports whether the episode carries the given label.
func (e Episode) HasMood(label string) bool {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, m := range e.Moods {
		if strings.ToLower(strings.TrimSpace(m)) == label {
			return true
		}
	}
	return false
}
