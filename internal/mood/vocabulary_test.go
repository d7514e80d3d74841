package mood

import "testing"

func TestVocabularyShape(t *testing.T) {
	vocab := Vocabulary()
	if len(vocab) == 0 {
		t.Fatal("vocabulary is empty")
	}

	seen := make(map[string]struct{}, len(vocab))
	for _, m := range vocab {
		if m.Label == "" {
			t.Error("mood with empty label")
		}
		if _, dup := seen[m.Label]; dup {
			t.Errorf("duplicate label %q", m.Label)
		}
		seen[m.Label] = struct{}{}
		if len(m.Keywords) == 0 {
			t.Errorf("mood %q has no keywords", m.Label)
		}
		if m.Profile == "" {
			t.Errorf("mood %q has no profile", m.Label)
		}
	}

	if _, ok := seen[DefaultLabel]; !ok {
		t.Errorf("default label %q not in vocabulary", DefaultLabel)
	}
}

func TestLookup(t *testing.T) {
	m, ok := Lookup("christmas")
	if !ok {
		t.Fatal("christmas not found")
	}
	if m.Label != "christmas" {
		t.Errorf("Label = %q", m.Label)
	}

	if _, ok := Lookup("noir"); ok {
		t.Error("unexpected hit for unknown label")
	}
}

func TestLabelsOrder(t *testing.T) {
	labels := Labels()
	vocab := Vocabulary()
	if len(labels) != len(vocab) {
		t.Fatalf("len(Labels()) = %d, want %d", len(labels), len(vocab))
	}
	for i, m := range vocab {
		if labels[i] != m.Label {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], m.Label)
		}
	}
}

func TestSemanticSourceRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		source string
		score  float64
		ok     bool
	}{
		{"semantic", SemanticSource(0.157), 0.157, true},
		{"keyword", SourceKeyword, 0, false},
		{"default", SourceDefault, 0, false},
		{"malformed", "semantic:abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := SemanticScore(tt.source)
			if ok != tt.ok || score != tt.score {
				t.Errorf("SemanticScore(%q) = (%v, %v), want (%v, %v)",
					tt.source, score, ok, tt.score, tt.ok)
			}
		})
	}
}

func TestSemanticSourceFormat(t *testing.T) {
	if got := SemanticSource(0.1234567); got != "semantic:0.123" {
		t.Errorf("SemanticSource = %q, want semantic:0.123", got)
	}
}
