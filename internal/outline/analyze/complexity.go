package analyze

import (
	"fmt"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// ComplexityReport is a weighted 0-100 score over four structural aspects.
type ComplexityReport struct {
	OverallScore    float64            `json:"overallScore"`
	AspectScores    map[string]float64 `json:"aspectScores"`
	Recommendations []string           `json:"recommendations"`
}

// Aspect weights; they sum to 1.
const (
	weightDepth    = 0.25
	weightBreadth  = 0.25
	weightTaxonomy = 0.30
	weightDensity  = 0.20
)

// Complexity scores the outline on four normalized 0-100 sub-scores:
//
//   - depth: number of tree levels, linear up to 5 levels (>= 5 scores 100)
//   - breadth: average branching factor of non-leaf nodes, linear up to 4
//   - taxonomy: distinct taxonomy levels used, out of the 6 on the scale
//   - density: average word count per node, linear up to 500 words
//
// The overall score is the weighted combination 0.25/0.25/0.30/0.20.
func Complexity(o outline.Outline) ComplexityReport {
	report := ComplexityReport{AspectScores: make(map[string]float64)}

	levels := outline.MaxDepth(o.RootNodes) + 1 // -1 + 1 = 0 for an empty tree
	report.AspectScores["depth"] = capped(float64(levels) / 5)

	parents, childLinks := 0, 0
	nodes, words := 0, 0
	taxUsed := make(map[outline.TaxonomyLevel]bool)
	outline.Walk(o.RootNodes, func(n *outline.Node, _ int, _ *outline.Node) bool {
		nodes++
		words += n.EstimatedWordCount
		if len(n.Children) > 0 {
			parents++
			childLinks += len(n.Children)
		}
		if n.TaxonomyLevel.Rank() >= 0 {
			taxUsed[n.TaxonomyLevel] = true
		}
		return true
	})

	branching := 0.0
	if parents > 0 {
		branching = float64(childLinks) / float64(parents)
	}
	report.AspectScores["breadth"] = capped(branching / 4)
	report.AspectScores["taxonomy"] = capped(float64(len(taxUsed)) / float64(len(outline.TaxonomyScale)))
	density := 0.0
	if nodes > 0 {
		density = float64(words) / float64(nodes)
	}
	report.AspectScores["density"] = capped(density / 500)

	report.OverallScore = weightDepth*report.AspectScores["depth"] +
		weightBreadth*report.AspectScores["breadth"] +
		weightTaxonomy*report.AspectScores["taxonomy"] +
		weightDensity*report.AspectScores["density"]

	hints := []struct{ aspect, hint string }{
		{"depth", "the outline is shallow; break major sections into sub-structure"},
		{"breadth", "nodes have few children; widen sections with more topics"},
		{"taxonomy", "few cognitive levels are exercised; vary taxonomy levels across nodes"},
		{"density", "nodes are thin on content; raise word-count targets"},
	}
	for _, h := range hints {
		if report.AspectScores[h.aspect] < 40 {
			report.Recommendations = append(report.Recommendations, fmt.Sprintf("%s (%s score %.0f)", h.hint, h.aspect, report.AspectScores[h.aspect]))
		}
	}
	return report
}

// capped maps a 0-1 ratio to a 0-100 score, clamping at 100.
func capped(ratio float64) float64 {
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	return ratio * 100
}
