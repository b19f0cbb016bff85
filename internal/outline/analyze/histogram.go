package analyze

import (
	"fmt"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// LevelHistogram is a frequency count over a level scale, with derived
// percentage-of-total values. Nodes without the level set are excluded.
type LevelHistogram struct {
	Counts      map[string]int     `json:"counts"`
	Percentages map[string]float64 `json:"percentages"`
	Total       int                `json:"total"`
}

// TaxonomyHistogram counts taxonomy levels across all nodes.
func TaxonomyHistogram(o outline.Outline) LevelHistogram {
	return histogram(o, func(n *outline.Node) string {
		if n.TaxonomyLevel.Rank() < 0 {
			return ""
		}
		return string(n.TaxonomyLevel)
	})
}

// DifficultyHistogram counts difficulty levels across all nodes.
func DifficultyHistogram(o outline.Outline) LevelHistogram {
	return histogram(o, func(n *outline.Node) string {
		if n.DifficultyLevel.Rank() < 0 {
			return ""
		}
		return string(n.DifficultyLevel)
	})
}

func histogram(o outline.Outline, key func(*outline.Node) string) LevelHistogram {
	h := LevelHistogram{Counts: make(map[string]int), Percentages: make(map[string]float64)}
	outline.Walk(o.RootNodes, func(n *outline.Node, _ int, _ *outline.Node) bool {
		if k := key(n); k != "" {
			h.Counts[k]++
			h.Total++
		}
		return true
	})
	for k, c := range h.Counts {
		h.Percentages[k] = float64(c) / float64(h.Total) * 100
	}
	return h
}

// LevelAdvisories derives advisory messages from the taxonomy histogram:
// over-reliance on recall and under-use of creative work.
func LevelAdvisories(o outline.Outline) []string {
	h := TaxonomyHistogram(o)
	if h.Total == 0 {
		return nil
	}
	var recs []string
	if h.Percentages[string(outline.TaxRemember)] > 40 {
		recs = append(recs, fmt.Sprintf("%.0f%% of the outline sits at the remember level; add higher-order tasks", h.Percentages[string(outline.TaxRemember)]))
	}
	if h.Percentages[string(outline.TaxCreate)] < 10 {
		recs = append(recs, "less than 10% of the outline reaches the create level; add synthesis or design work")
	}
	return recs
}
