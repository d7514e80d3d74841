package recommend

import (
	"sort"
	"strings"

	"moodpick/internal/catalog"
)

// Scoring weights: each matched mood outweighs any rating difference, and the
// optional cringe penalty is applied only when the caller asks for it.
const (
	matchWeight  = 10
	cringeWeight = 3
)

// GeneralPickReason is the display reason when a ranked result has no mood
// overlap to cite.
const GeneralPickReason = "General pick"

// Candidate is one scored recommendation. Transient; never persisted.
type Candidate struct {
	catalog.Episode

	// Matches is the sorted intersection of the selection and the episode's
	// moods.
	Matches []string
	Score   float64
	// Reason is the comma-joined matches, or a fallback literal.
	Reason string
}

// Options controls a Recommend call.
type Options struct {
	Selection  []string
	LowCringe  bool
	MaxResults int
	RequireAll bool
}

// NormalizeSelection trims, lowercases, deduplicates, and sorts the selected
// moods, dropping empty entries.
func NormalizeSelection(selected []string) []string {
	set := make(map[string]struct{}, len(selected))
	for _, m := range selected {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == "" {
			continue
		}
		set[m] = struct{}{}
	}
	normalized := make([]string, 0, len(set))
	for m := range set {
		normalized = append(normalized, m)
	}
	sort.Strings(normalized)
	return normalized
}

// Filter returns the episodes qualifying under the selection, in catalog
// order. An empty selection qualifies everything.
func Filter(episodes []catalog.Episode, selected []string, requireAll bool) []catalog.Episode {
	selection := NormalizeSelection(selected)
	if len(selection) == 0 {
		return episodes
	}

	candidates := make([]catalog.Episode, 0, len(episodes))
	for _, ep := range episodes {
		if qualifies(ep.MoodSet(), selection, requireAll) {
			candidates = append(candidates, ep)
		}
	}
	return candidates
}

// Recommend scores and ranks qualifying episodes. An empty selection returns
// nil: ranked output requires at least one mood. Results are sorted by score
// descending with ties left in catalog order, then truncated to MaxResults.
func Recommend(episodes []catalog.Episode, opts Options) []Candidate {
	selection := NormalizeSelection(opts.Selection)
	if len(selection) == 0 {
		return nil
	}

	var results []Candidate
	for _, ep := range episodes {
		moodSet := ep.MoodSet()
		if !qualifies(moodSet, selection, opts.RequireAll) {
			continue
		}

		matches := intersect(selection, moodSet)
		score := float64(matchWeight*len(matches)) + ep.Rating
		if opts.LowCringe {
			score -= cringeWeight * ep.Cringe
		}

		results = append(results, Candidate{
			Episode: ep,
			Matches: matches,
			Score:   score,
			Reason:  reason(matches, GeneralPickReason),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if opts.MaxResults <= 0 {
		return nil
	}
	if len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	return results
}

// qualifies applies the AND/OR match rule against a normalized selection.
func qualifies(moodSet map[string]struct{}, selection []string, requireAll bool) bool {
	if requireAll {
		for _, m := range selection {
			if _, ok := moodSet[m]; !ok {
				return false
			}
		}
		return true
	}
	for _, m := range selection {
		if _, ok := moodSet[m]; ok {
			return true
		}
	}
	return false
}

// intersect returns the selection entries present in the mood set. The
// selection is already sorted, so the result is too.
func intersect(selection []string, moodSet map[string]struct{}) []string {
	matches := make([]string, 0, len(selection))
	for _, m := range selection {
		if _, ok := moodSet[m]; ok {
			matches = append(matches, m)
		}
	}
	return matches
}

func reason(matches []string, fallback string) string {
	if len(matches) == 0 {
		return fallback
	}
	return strings.Join(matches, ", ")
}
