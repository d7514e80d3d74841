package main

import (
	"encoding/json"
	"testing"

	"moodpick/internal/tagger"
)

func TestTagCommandKeywordMatches(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"tag", "The office plans a Christmas party", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("tag: %v", err)
	}

	var assignment tagger.Assignment
	if err := json.Unmarshal([]byte(out), &assignment); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := []string{"christmas", "comfort", "workplace"}
	if len(assignment.Moods) != len(want) {
		t.Fatalf("Moods = %v, want %v", assignment.Moods, want)
	}
	for i, label := range want {
		if assignment.Moods[i] != label {
			t.Errorf("Moods[%d] = %q, want %q", i, assignment.Moods[i], label)
		}
		if assignment.Sources[label] != "keyword" {
			t.Errorf("source[%s] = %q", label, assignment.Sources[label])
		}
	}
}

func TestTagCommandDefaultFallback(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"tag", "xylophone quartz vortex", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("tag: %v", err)
	}

	var assignment tagger.Assignment
	if err := json.Unmarshal([]byte(out), &assignment); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(assignment.Moods) != 1 || assignment.Moods[0] != "workplace" {
		t.Errorf("Moods = %v, want [workplace]", assignment.Moods)
	}
	if assignment.Sources["workplace"] != "default" {
		t.Errorf("source = %q", assignment.Sources["workplace"])
	}
}

func TestTagCommandTableOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"tag", "a fire breaks out"}, env.configPath)
	if err != nil {
		t.Fatalf("tag: %v", err)
	}
	requireContains(t, out, "Chaos")
	requireContains(t, out, "keyword")
}
