package tagger

import (
	"log/slog"
	"sort"
	"strings"

	"moodpick/internal/logging"
	"moodpick/internal/mood"
	"moodpick/internal/textutil"
)

// DefaultThreshold is the minimum cosine similarity for a semantic match.
const DefaultThreshold = 0.12

// Assignment is the classification result for one text.
type Assignment struct {
	// Moods holds the assigned labels, sorted and deduplicated. Never empty.
	Moods []string
	// Sources maps each assigned label to its provenance marker. Keys are
	// exactly Moods.
	Sources map[string]string
}

// Tagger classifies free text against the mood vocabulary.
type Tagger struct {
	vocab     []mood.Mood
	threshold float64
	logger    *slog.Logger
}

// New constructs a tagger over the given vocabulary. A threshold <= 0 falls
// back to DefaultThreshold.
func New(vocab []mood.Mood, threshold float64, logger *slog.Logger) *Tagger {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	t := &Tagger{vocab: vocab, threshold: threshold}
	t.SetLogger(logger)
	return t
}

// SetLogger updates the tagger's logging destination.
func (t *Tagger) SetLogger(logger *slog.Logger) {
	t.logger = logging.NewComponentLogger(logger, "tagger")
}

// TagOne classifies a single text. Semantic scores are relative to a batch of
// one, which is fine for ad-hoc queries but not comparable to catalog builds.
func (t *Tagger) TagOne(text string) Assignment {
	return t.TagBatch([]string{text})[0]
}

// TagBatch classifies every text in one pass. The semantic vector space is
// fit over all texts plus all mood profiles, then each text that produced no
// keyword hit is scored against every profile.
func (t *Tagger) TagBatch(texts []string) []Assignment {
	results := make([]Assignment, len(texts))
	pending := make([]int, 0, len(texts))

	for i, text := range texts {
		labels := t.keywordLabels(text)
		if len(labels) == 0 {
			pending = append(pending, i)
			continue
		}
		sources := make(map[string]string, len(labels))
		for _, label := range labels {
			sources[label] = mood.SourceKeyword
		}
		results[i] = Assignment{Moods: labels, Sources: sources}
	}

	if len(pending) > 0 {
		t.tagSemantic(texts, pending, results)
	}

	var keyword, semantic, fallback int
	for i := range results {
		if len(results[i].Moods) == 0 {
			results[i] = Assignment{
				Moods:   []string{mood.DefaultLabel},
				Sources: map[string]string{mood.DefaultLabel: mood.SourceDefault},
			}
			fallback++
			continue
		}
		if results[i].Sources[results[i].Moods[0]] == mood.SourceKeyword {
			keyword++
		} else {
			semantic++
		}
	}

	t.logger.Debug("batch classified",
		logging.Int("texts", len(texts)),
		logging.Int("keyword", keyword),
		logging.Int("semantic", semantic),
		logging.Int("default", fallback),
	)

	return results
}

// keywordLabels returns the sorted labels whose keyword substrings appear in
// the text. Containment is deliberately substring-level, not whole-word.
func (t *Tagger) keywordLabels(text string) []string {
	if text == "" {
		return nil
	}
	lowered := strings.ToLower(text)
	var labels []string
	for _, m := range t.vocab {
		for _, kw := range m.Keywords {
			if strings.Contains(lowered, kw) {
				labels = append(labels, m.Label)
				break
			}
		}
	}
	sort.Strings(labels)
	return labels
}

// tagSemantic fills in results for the pending indexes using TF-IDF cosine
// similarity against the mood profiles. Texts whose best score stays below
// the threshold are left unassigned for the default fallback.
func (t *Tagger) tagSemantic(texts []string, pending []int, results []Assignment) {
	textPrints := make([]*textutil.Fingerprint, len(texts))
	profilePrints := make([]*textutil.Fingerprint, len(t.vocab))

	corpus := textutil.NewCorpus()
	for i, text := range texts {
		textPrints[i] = textutil.NewFingerprint(text)
		corpus.Add(textPrints[i])
	}
	for i, m := range t.vocab {
		profilePrints[i] = textutil.NewFingerprint(m.Profile)
		corpus.Add(profilePrints[i])
	}

	idf := corpus.IDF()
	for i := range textPrints {
		textPrints[i] = textPrints[i].WithIDF(idf)
	}
	for i := range profilePrints {
		profilePrints[i] = profilePrints[i].WithIDF(idf)
	}

	for _, idx := range pending {
		best := -1
		bestScore := 0.0
		for j := range t.vocab {
			score := textutil.CosineSimilarity(textPrints[idx], profilePrints[j])
			if score > bestScore {
				best = j
				bestScore = score
			}
		}
		if best < 0 || bestScore < t.threshold {
			continue
		}
		label := t.vocab[best].Label
		results[idx] = Assignment{
			Moods:   []string{label},
			Sources: map[string]string{label: mood.SemanticSource(bestScore)},
		}
	}
}
