package catalog

import (
	"testing"

	"moodpick/internal/mood"
	"moodpick/internal/tagger"
)

func newTestBuilder() *Builder {
	return NewBuilder(tagger.New(mood.Vocabulary(), tagger.DefaultThreshold, nil), nil)
}

func TestBuildRanksEpisodesWithinSeason(t *testing.T) {
	records := []RawRecord{
		{ID: "0", Season: "1", Title: "Pilot", About: "office meeting", Date: "24-03-2005"},
		{ID: "1", Season: "1", Title: "Diversity Day", About: "awkward seminar", Date: "29-03-2005"},
		{ID: "2", Season: "2", Title: "The Dundies", About: "awards party", Date: "20-09-2005"},
		{ID: "3", Season: "1", Title: "Health Care", About: "boss picks a plan", Date: "05-04-2005"},
	}

	episodes := newTestBuilder().Build(records)
	if len(episodes) != 4 {
		t.Fatalf("len = %d, want 4", len(episodes))
	}

	byID := make(map[int]Episode, len(episodes))
	for _, ep := range episodes {
		byID[ep.ID] = ep
	}

	tests := []struct {
		id     int
		season int
		number int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 1, 3},
		{2, 2, 1},
	}
	for _, tt := range tests {
		ep := byID[tt.id]
		if ep.Season != tt.season || ep.Number != tt.number {
			t.Errorf("episode %d = S%dE%d, want S%dE%d",
				tt.id, ep.Season, ep.Number, tt.season, tt.number)
		}
	}
}

func TestBuildDateOrderBeatsSourceOrder(t *testing.T) {
	// Same season, ids in reverse chronological order: the air date decides.
	records := []RawRecord{
		{ID: "0", Season: "3", Title: "Later", Date: "15-05-2007"},
		{ID: "1", Season: "3", Title: "Earlier", Date: "01-02-2007"},
	}

	episodes := newTestBuilder().Build(records)

	if episodes[0].Title != "Earlier" || episodes[0].Number != 1 {
		t.Errorf("first = %q (%d)", episodes[0].Title, episodes[0].Number)
	}
	if episodes[1].Title != "Later" || episodes[1].Number != 2 {
		t.Errorf("second = %q (%d)", episodes[1].Title, episodes[1].Number)
	}
}

func TestBuildUnparseableDateSortsEarliest(t *testing.T) {
	records := []RawRecord{
		{ID: "0", Season: "1", Title: "Dated", Date: "24-03-2005"},
		{ID: "1", Season: "1", Title: "Undated", Date: "sometime in spring"},
	}

	episodes := newTestBuilder().Build(records)

	if episodes[0].Title != "Undated" {
		t.Errorf("first = %q, want the undated episode", episodes[0].Title)
	}
}

func TestBuildDateTiesBreakByID(t *testing.T) {
	records := []RawRecord{
		{ID: "7", Season: "1", Title: "Second"},
		{ID: "3", Season: "1", Title: "First"},
	}

	episodes := newTestBuilder().Build(records)

	if episodes[0].ID != 3 || episodes[1].ID != 7 {
		t.Errorf("order = [%d, %d], want [3, 7]", episodes[0].ID, episodes[1].ID)
	}
}

func TestBuildDegradesMalformedFields(t *testing.T) {
	records := []RawRecord{
		{
			ID:       "12",
			Season:   "not a number",
			Title:    "  ",
			About:    "",
			Rating:   "great",
			Votes:    "-5",
			Duration: "n/a",
			Cringe:   "high",
		},
	}

	episodes := newTestBuilder().Build(records)
	ep := episodes[0]

	if ep.Season != 0 {
		t.Errorf("Season = %d, want 0", ep.Season)
	}
	if ep.Title != "Untitled" {
		t.Errorf("Title = %q, want Untitled", ep.Title)
	}
	if ep.Rating != 0 || ep.Votes != 0 || ep.Duration != 0 || ep.Cringe != 0 {
		t.Errorf("numeric defaults not applied: %+v", ep)
	}
}

func TestBuildFloatFormattedIntegers(t *testing.T) {
	records := []RawRecord{
		{ID: "4", Season: "2.0", Votes: "3706.0", Duration: "22.0"},
	}

	ep := newTestBuilder().Build(records)[0]
	if ep.Season != 2 || ep.Votes != 3706 || ep.Duration != 22 {
		t.Errorf("parsed = season %d votes %d duration %d", ep.Season, ep.Votes, ep.Duration)
	}
}

func TestBuildEveryEpisodeGetsMoods(t *testing.T) {
	records := []RawRecord{
		{ID: "0", Season: "1", About: "The office plans a Christmas party"},
		{ID: "1", Season: "1", About: ""},
		{ID: "2", Season: "1", About: "xylophone quartz vortex"},
	}

	episodes := newTestBuilder().Build(records)
	for _, ep := range episodes {
		if len(ep.Moods) == 0 {
			t.Errorf("episode %d has no moods", ep.ID)
		}
		if len(ep.MoodSources) != len(ep.Moods) {
			t.Errorf("episode %d: sources keys %v != moods %v", ep.ID, ep.MoodSources, ep.Moods)
		}
		for _, label := range ep.Moods {
			if _, ok := ep.MoodSources[label]; !ok {
				t.Errorf("episode %d: no source for %q", ep.ID, label)
			}
		}
	}
}

func TestEpisodeCode(t *testing.T) {
	ep := Episode{Season: 2, Number: 3}
	if got := ep.Code(); got != "S02E03" {
		t.Errorf("Code() = %q", got)
	}
}

func TestEpisodeHasMood(t *testing.T) {
	ep := Episode{Moods: []string{"comfort", "workplace"}}
	if !ep.HasMood("Comfort") {
		t.Error("HasMood should be case-insensitive")
	}
	if ep.HasMood("chaos") {
		t.Error("unexpected mood hit")
	}
}
