package analyze

import (
	"fmt"
	"math"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// DistributionEntry is one root node's share of the outline's word count.
type DistributionEntry struct {
	NodeID     outline.NodeID `json:"nodeId"`
	Title      string         `json:"title"`
	WordCount  int            `json:"wordCount"`
	Percentage float64        `json:"percentage"`
}

// BalanceReport is the result of a word-count distribution analysis.
type BalanceReport struct {
	IsBalanced      bool                `json:"isBalanced"`
	Distribution    []DistributionEntry `json:"distribution"`
	Recommendations []string            `json:"recommendations"`
}

// WordCountDistribution reports each root node's percentage of the total
// word count. The outline counts as balanced when the largest root share is
// at most three times the smallest; with one root or fewer it is vacuously
// balanced. Leaf outliers and content-heavy parents produce recommendations.
func WordCountDistribution(o outline.Outline) BalanceReport {
	report := BalanceReport{IsBalanced: true}

	total := 0
	for _, r := range o.RootNodes {
		total += subtreeWords(r)
	}
	for _, r := range o.RootNodes {
		w := subtreeWords(r)
		pct := 0.0
		if total > 0 {
			pct = float64(w) / float64(total) * 100
		}
		report.Distribution = append(report.Distribution, DistributionEntry{
			NodeID: r.ID, Title: r.Title, WordCount: w, Percentage: pct,
		})
	}

	if len(report.Distribution) > 1 {
		minPct, maxPct := report.Distribution[0].Percentage, report.Distribution[0].Percentage
		for _, e := range report.Distribution[1:] {
			minPct = math.Min(minPct, e.Percentage)
			maxPct = math.Max(maxPct, e.Percentage)
		}
		if maxPct > 3*minPct {
			report.IsBalanced = false
			report.Recommendations = append(report.Recommendations,
				"word counts are unevenly distributed across top-level sections; move content toward the lighter ones")
		}
	}

	report.Recommendations = append(report.Recommendations, leafOutliers(o)...)
	report.Recommendations = append(report.Recommendations, heavyParents(o)...)
	return report
}

// leafOutliers flags leaves whose word count exceeds twice the leaf mean.
func leafOutliers(o outline.Outline) []string {
	var leaves []*outline.Node
	outline.Walk(o.RootNodes, func(n *outline.Node, _ int, _ *outline.Node) bool {
		if len(n.Children) == 0 {
			leaves = append(leaves, n)
		}
		return true
	})
	if len(leaves) == 0 {
		return nil
	}
	sum := 0
	for _, l := range leaves {
		sum += l.EstimatedWordCount
	}
	mean := float64(sum) / float64(len(leaves))

	var recs []string
	for _, l := range leaves {
		if float64(l.EstimatedWordCount) > 2*mean {
			recs = append(recs, fmt.Sprintf("%q is more than twice the average leaf size (%d words); consider splitting it", l.Title, l.EstimatedWordCount))
		}
	}
	return recs
}

// heavyParents flags nodes with more than one child whose own word count
// exceeds half of the own-plus-children total.
func heavyParents(o outline.Outline) []string {
	var recs []string
	outline.Walk(o.RootNodes, func(n *outline.Node, _ int, _ *outline.Node) bool {
		if len(n.Children) > 1 {
			childSum := 0
			for _, c := range n.Children {
				childSum += c.EstimatedWordCount
			}
			if total := n.EstimatedWordCount + childSum; total > 0 &&
				float64(n.EstimatedWordCount) > 0.5*float64(total) {
				recs = append(recs, fmt.Sprintf("%q holds most of its branch's content itself; push detail down into its children", n.Title))
			}
		}
		return true
	})
	return recs
}

// subtreeWords sums the word counts of n and all its descendants.
func subtreeWords(n *outline.Node) int {
	sum := 0
	outline.Walk([]*outline.Node{n}, func(m *outline.Node, _ int, _ *outline.Node) bool {
		sum += m.EstimatedWordCount
		return true
	})
	return sum
}
