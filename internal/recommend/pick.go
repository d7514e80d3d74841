package recommend

import (
	"math/rand"
	"time"

	"moodpick/internal/catalog"
)

// RandomPickReason is the display reason for a random pick with no mood
// overlap, which can only happen when no moods were selected.
const RandomPickReason = "Random pick"

// Pick chooses one episode uniformly at random from the filtered candidates.
// A nil rng gets a fresh time-seeded source, so repeated calls do not share
// hidden seed state. The boolean is false when no candidate qualifies.
func Pick(episodes []catalog.Episode, selected []string, requireAll bool, rng *rand.Rand) (Candidate, bool) {
	candidates := Filter(episodes, selected, requireAll)
	if len(candidates) == 0 {
		return Candidate{}, false
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	ep := candidates[rng.Intn(len(candidates))]

	matches := intersect(NormalizeSelection(selected), ep.MoodSet())
	return Candidate{
		Episode: ep,
		Matches: matches,
		Reason:  reason(matches, RandomPickReason),
	}, true
}
