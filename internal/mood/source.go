package mood

import (
	"fmt"
	"strconv"
	"strings"
)

// Provenance markers recorded alongside each assigned label.
const (
	// SourceKeyword marks labels selected by keyword containment.
	SourceKeyword = "keyword"
	// SourceDefault marks the fallback label assigned when no stage fires.
	SourceDefault = "default"

	semanticPrefix = "semantic:"
)

// SemanticSource formats the provenance marker for a similarity-derived
// label, embedding the score to 3 decimals.
func SemanticSource(score float64) string {
	return fmt.Sprintf("%s%.3f", semanticPrefix, score)
}

// SemanticScore extracts the similarity score from a semantic provenance
// marker. The second return is false for keyword/default markers or malformed
// input.
func SemanticScore(source string) (float64, bool) {
	rest, ok := strings.CutPrefix(source, semanticPrefix)
	if !ok {
		return 0, false
	}
	score, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, false
	}
	return score, true
}
