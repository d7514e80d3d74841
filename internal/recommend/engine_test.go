package recommend

import (
	"reflect"
	"testing"

	"moodpick/internal/catalog"
)

func testCatalog() []catalog.Episode {
	return []catalog.Episode{
		{ID: 0, Title: "X", Rating: 8.5, Moods: []string{"comfort", "workplace"}},
		{ID: 1, Title: "Y", Rating: 9.0, Moods: []string{"comfort"}},
		{ID: 2, Title: "Z", Rating: 7.0, Cringe: 1, Moods: []string{"cringe", "workplace"}},
	}
}

func TestNormalizeSelection(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"trims and lowercases", []string{" Comfort ", "WORKPLACE"}, []string{"comfort", "workplace"}},
		{"drops empties", []string{"", "  ", "chaos"}, []string{"chaos"}},
		{"dedupes", []string{"comfort", "Comfort", "comfort"}, []string{"comfort"}},
		{"sorts", []string{"workplace", "chaos", "comfort"}, []string{"chaos", "comfort", "workplace"}},
		{"empty input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSelection(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeSelection() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterEmptySelectionReturnsAll(t *testing.T) {
	episodes := testCatalog()
	got := Filter(episodes, nil, true)
	if !reflect.DeepEqual(got, episodes) {
		t.Errorf("Filter with empty selection should pass the catalog through")
	}
}

func TestFilterEmptyCatalog(t *testing.T) {
	got := Filter(nil, []string{"comfort"}, false)
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestFilterAndMode(t *testing.T) {
	got := Filter(testCatalog(), []string{"comfort", "workplace"}, true)
	if len(got) != 1 || got[0].ID != 0 {
		t.Errorf("AND filter = %v", got)
	}
}

func TestFilterOrMode(t *testing.T) {
	got := Filter(testCatalog(), []string{"comfort", "cringe"}, false)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Catalog order preserved.
	if got[0].ID != 0 || got[1].ID != 1 || got[2].ID != 2 {
		t.Errorf("order = %d, %d, %d", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestRecommendEmptySelection(t *testing.T) {
	got := Recommend(testCatalog(), Options{MaxResults: 8, RequireAll: true})
	if got != nil {
		t.Errorf("Recommend with empty selection = %v, want nil", got)
	}
}

func TestRecommendScoringAndOrder(t *testing.T) {
	// X: moods {comfort, workplace}, rating 8.5 -> 10 + 8.5 = 18.5
	// Y: moods {comfort}, rating 9.0 -> 10 + 9.0 = 19.0
	got := Recommend(testCatalog(), Options{
		Selection:  []string{"comfort"},
		MaxResults: 8,
		RequireAll: true,
	})

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Title != "Y" || got[0].Score != 19.0 {
		t.Errorf("first = %q (%v)", got[0].Title, got[0].Score)
	}
	if got[1].Title != "X" || got[1].Score != 18.5 {
		t.Errorf("second = %q (%v)", got[1].Title, got[1].Score)
	}
	if got[0].Reason != "comfort" {
		t.Errorf("reason = %q", got[0].Reason)
	}
}

func TestRecommendAndModeRequiresAllMoods(t *testing.T) {
	got := Recommend(testCatalog(), Options{
		Selection:  []string{"comfort", "workplace"},
		MaxResults: 8,
		RequireAll: true,
	})

	if len(got) != 1 || got[0].Title != "X" {
		t.Fatalf("results = %v", got)
	}
	if !reflect.DeepEqual(got[0].Matches, []string{"comfort", "workplace"}) {
		t.Errorf("Matches = %v", got[0].Matches)
	}
	if got[0].Reason != "comfort, workplace" {
		t.Errorf("Reason = %q", got[0].Reason)
	}
	// 2 matches * 10 + 8.5
	if got[0].Score != 28.5 {
		t.Errorf("Score = %v", got[0].Score)
	}
}

func TestRecommendLowCringePenalty(t *testing.T) {
	got := Recommend(testCatalog(), Options{
		Selection:  []string{"workplace"},
		LowCringe:  true,
		MaxResults: 8,
		RequireAll: true,
	})

	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	// X: 10 + 8.5 = 18.5; Z: 10 + 7.0 - 3*1 = 14.0
	if got[0].Title != "X" || got[0].Score != 18.5 {
		t.Errorf("first = %q (%v)", got[0].Title, got[0].Score)
	}
	if got[1].Title != "Z" || got[1].Score != 14.0 {
		t.Errorf("second = %q (%v)", got[1].Title, got[1].Score)
	}
}

func TestRecommendStableTieOrder(t *testing.T) {
	episodes := []catalog.Episode{
		{ID: 0, Title: "A", Rating: 8.0, Moods: []string{"comfort"}},
		{ID: 1, Title: "B", Rating: 8.0, Moods: []string{"comfort"}},
		{ID: 2, Title: "C", Rating: 8.0, Moods: []string{"comfort"}},
	}

	got := Recommend(episodes, Options{
		Selection:  []string{"comfort"},
		MaxResults: 8,
		RequireAll: true,
	})

	for i, want := range []string{"A", "B", "C"} {
		if got[i].Title != want {
			t.Errorf("position %d = %q, want %q", i, got[i].Title, want)
		}
	}
}

func TestRecommendTruncation(t *testing.T) {
	tests := []struct {
		name       string
		maxResults int
		wantLen    int
	}{
		{"truncates", 1, 1},
		{"no truncation needed", 10, 2},
		{"zero max", 0, 0},
		{"negative max", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(testCatalog(), Options{
				Selection:  []string{"comfort"},
				MaxResults: tt.maxResults,
				RequireAll: true,
			})
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestRecommendOrModeMatchesIntersection(t *testing.T) {
	got := Recommend(testCatalog(), Options{
		Selection:  []string{"comfort", "cringe"},
		MaxResults: 8,
		RequireAll: false,
	})

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, c := range got {
		if len(c.Matches) == 0 {
			t.Errorf("%q qualified with no matches", c.Title)
		}
		moodSet := c.MoodSet()
		for _, m := range c.Matches {
			if _, ok := moodSet[m]; !ok {
				t.Errorf("%q: match %q not in episode moods", c.Title, m)
			}
		}
	}
}

func TestRecommendSelectionNormalizedBeforeMatching(t *testing.T) {
	got := Recommend(testCatalog(), Options{
		Selection:  []string{"  COMFORT  ", "comfort"},
		MaxResults: 8,
		RequireAll: true,
	})
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}
