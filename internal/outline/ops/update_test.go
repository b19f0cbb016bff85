package ops

// Tests for the field update operation.

import (
	"reflect"
	"testing"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestUpdate_SetsOnlyProvidedFields(t *testing.T) {
	roots := moveFixture()
	words := 400
	tax := outline.TaxApply

	out, diags := Update(roots, UpdateParams{
		NodeID:             "top1",
		Title:              strPtr("Renamed Topic"),
		EstimatedWordCount: &words,
		TaxonomyLevel:      &tax,
	})

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	n := outline.Find(out, "top1")
	if n.Title != "Renamed Topic" {
		t.Errorf("title = %q, want %q", n.Title, "Renamed Topic")
	}
	if n.EstimatedWordCount != 400 {
		t.Errorf("word count = %d, want 400", n.EstimatedWordCount)
	}
	if n.TaxonomyLevel != outline.TaxApply {
		t.Errorf("taxonomy = %q, want apply", n.TaxonomyLevel)
	}
	// Untouched fields keep their values.
	if n.Type != outline.TypeTopic {
		t.Errorf("type should be untouched, got %q", n.Type)
	}
}

func TestUpdate_StandardIDsAreCopied(t *testing.T) {
	roots := moveFixture()
	ids := []string{"S1", "S2"}

	out, _ := Update(roots, UpdateParams{NodeID: "top1", StandardIDs: &ids})

	n := outline.Find(out, "top1")
	if !reflect.DeepEqual(n.StandardIDs, []string{"S1", "S2"}) {
		t.Fatalf("standards = %v, want [S1 S2]", n.StandardIDs)
	}
	// Mutating the caller's slice must not reach the node.
	ids[0] = "S9"
	if n.StandardIDs[0] != "S1" {
		t.Errorf("node standards aliased the caller's slice: %v", n.StandardIDs)
	}
}

func TestUpdate_MissingNodeWarns(t *testing.T) {
	roots := moveFixture()

	out, diags := Update(roots, UpdateParams{NodeID: "ghost", Title: strPtr("x")})

	if !hasDiagCode(diags, outline.CodeTargetNotFound) {
		t.Errorf("expected OPW001 for missing node, got %v", diags)
	}
	if got := outline.Count(out); got != 5 {
		t.Errorf("node count = %d, want 5 (unchanged)", got)
	}
}

func TestUpdate_DurationAndDifficulty(t *testing.T) {
	roots := moveFixture()
	diff := outline.DiffAdvanced

	out, diags := Update(roots, UpdateParams{
		NodeID:            "sub2",
		EstimatedDuration: intPtr(90),
		DifficultyLevel:   &diff,
	})

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	n := outline.Find(out, "sub2")
	if n.EstimatedDuration != 90 || n.DifficultyLevel != outline.DiffAdvanced {
		t.Errorf("got duration=%d difficulty=%q, want 90/advanced", n.EstimatedDuration, n.DifficultyLevel)
	}
}
