package analyze

// Tests for level histograms and advisories.

import (
	"testing"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

func leveledOutline() outline.Outline {
	node := func(id string, tax outline.TaxonomyLevel, diff outline.DifficultyLevel) *outline.Node {
		return &outline.Node{
			ID: id, Title: id, Type: outline.TypeSection,
			EstimatedWordCount: 100, EstimatedDuration: 10,
			TaxonomyLevel: tax, DifficultyLevel: diff,
		}
	}
	return outline.Outline{
		ID: "o1",
		RootNodes: []*outline.Node{
			node("a", outline.TaxRemember, outline.DiffIntroductory),
			node("b", outline.TaxRemember, outline.DiffBeginner),
			node("c", outline.TaxApply, outline.DiffBeginner),
			node("d", "", ""), // unset levels are excluded
		},
	}
}

func TestTaxonomyHistogram(t *testing.T) {
	h := TaxonomyHistogram(leveledOutline())

	if h.Total != 3 {
		t.Errorf("total = %d, want 3 (unset excluded)", h.Total)
	}
	if h.Counts[string(outline.TaxRemember)] != 2 {
		t.Errorf("remember count = %d, want 2", h.Counts[string(outline.TaxRemember)])
	}
	if got := h.Percentages[string(outline.TaxApply)]; got < 33.3 || got > 33.4 {
		t.Errorf("apply percentage = %v, want one third", got)
	}
}

func TestDifficultyHistogram(t *testing.T) {
	h := DifficultyHistogram(leveledOutline())

	if h.Total != 3 {
		t.Errorf("total = %d, want 3", h.Total)
	}
	if h.Counts[string(outline.DiffBeginner)] != 2 {
		t.Errorf("beginner count = %d, want 2", h.Counts[string(outline.DiffBeginner)])
	}
}

func TestLevelAdvisories(t *testing.T) {
	// 2 of 3 leveled nodes at remember (67% > 40%) and none at create.
	recs := LevelAdvisories(leveledOutline())
	if len(recs) != 2 {
		t.Fatalf("advisories = %v, want remember-heavy and create-light", recs)
	}
}

func TestLevelAdvisories_EmptyOutline(t *testing.T) {
	if recs := LevelAdvisories(outline.Outline{}); recs != nil {
		t.Errorf("empty outline advisories = %v, want nil", recs)
	}
}

func TestLevelAdvisories_WellDistributed(t *testing.T) {
	o := outline.Outline{
		ID: "o1",
		RootNodes: []*outline.Node{
			{ID: "a", Title: "A", TaxonomyLevel: outline.TaxUnderstand},
			{ID: "b", Title: "B", TaxonomyLevel: outline.TaxApply},
			{ID: "c", Title: "C", TaxonomyLevel: outline.TaxAnalyze},
			{ID: "d", Title: "D", TaxonomyLevel: outline.TaxCreate},
		},
	}
	if recs := LevelAdvisories(o); len(recs) != 0 {
		t.Errorf("well-distributed outline advisories = %v, want none", recs)
	}
}
