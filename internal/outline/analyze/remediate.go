package analyze

import (
	"math"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// Strategy selects how recommended word counts are computed.
type Strategy string

const (
	// StrategyBalance moves each node 70% of the way toward its sibling mean.
	StrategyBalance Strategy = "balance"
	// StrategyRelativeDepth targets the root mean scaled by a depth factor.
	StrategyRelativeDepth Strategy = "relative-depth"
	// StrategyTypeBased targets the outline mean scaled per node type.
	StrategyTypeBased Strategy = "type-based"
)

// Recommendation pairs a node with its recommended word count.
type Recommendation struct {
	NodeID      outline.NodeID `json:"nodeId"`
	Title       string         `json:"title"`
	Current     int            `json:"current"`
	Recommended int            `json:"recommended"`
}

// depthFactors scale the root-mean target by depth for the relative-depth
// strategy; depths beyond the table reuse the last factor.
var depthFactors = []float64{1.0, 0.7, 0.5, 0.35, 0.25}

// typeMultipliers scale the outline-mean target per node type for the
// type-based strategy.
var typeMultipliers = map[outline.NodeType]float64{
	outline.TypeSection:    1.4,
	outline.TypeSubsection: 1.1,
	outline.TypeTopic:      1.0,
	outline.TypeActivity:   1.2,
	outline.TypeAssessment: 0.8,
	outline.TypeResource:   0.5,
}

// RecommendWordCounts computes a recommended word count for every node
// under the chosen strategy. The outline is not modified.
func RecommendWordCounts(o outline.Outline, strategy Strategy) []Recommendation {
	var recs []Recommendation
	rootMean := meanWords(o.RootNodes)
	overallMean := outlineMeanWords(o)

	var walkSiblings func(nodes []*outline.Node, depth int)
	walkSiblings = func(nodes []*outline.Node, depth int) {
		siblingMean := meanWords(nodes)
		for _, n := range nodes {
			recs = append(recs, Recommendation{
				NodeID:      n.ID,
				Title:       n.Title,
				Current:     n.EstimatedWordCount,
				Recommended: recommended(n, depth, strategy, siblingMean, rootMean, overallMean),
			})
			walkSiblings(n.Children, depth+1)
		}
	}
	walkSiblings(o.RootNodes, 0)
	return recs
}

// ApplyWordCounts returns a copy of the outline with every node's word count
// set to its recommendation and its duration scaled proportionally to the
// word-count change.
func ApplyWordCounts(o outline.Outline, strategy Strategy) outline.Outline {
	fixed := outline.Clone(o)
	byID := make(map[outline.NodeID]int)
	for _, r := range RecommendWordCounts(fixed, strategy) {
		byID[r.NodeID] = r.Recommended
	}
	outline.Walk(fixed.RootNodes, func(n *outline.Node, _ int, _ *outline.Node) bool {
		rec, ok := byID[n.ID]
		if !ok || rec == n.EstimatedWordCount {
			return true
		}
		if n.EstimatedWordCount > 0 {
			ratio := float64(rec) / float64(n.EstimatedWordCount)
			n.EstimatedDuration = atLeastOne(int(math.Round(float64(n.EstimatedDuration) * ratio)))
		}
		n.EstimatedWordCount = atLeastOne(rec)
		return true
	})
	return fixed
}

func recommended(n *outline.Node, depth int, strategy Strategy, siblingMean, rootMean, overallMean float64) int {
	var v float64
	switch strategy {
	case StrategyRelativeDepth:
		f := depthFactors[min(depth, len(depthFactors)-1)]
		v = rootMean * f
	case StrategyTypeBased:
		m, ok := typeMultipliers[n.Type]
		if !ok {
			m = 1.0
		}
		v = overallMean * m
	default: // balance
		v = float64(n.EstimatedWordCount) + 0.7*(siblingMean-float64(n.EstimatedWordCount))
	}
	return atLeastOne(int(math.Round(v)))
}

// meanWords is the mean of the nodes' own word counts; zero for an empty slice.
func meanWords(nodes []*outline.Node) float64 {
	if len(nodes) == 0 {
		return 0
	}
	sum := 0
	for _, n := range nodes {
		sum += n.EstimatedWordCount
	}
	return float64(sum) / float64(len(nodes))
}

// outlineMeanWords is the mean word count across every node in the outline.
func outlineMeanWords(o outline.Outline) float64 {
	sum, count := 0, 0
	outline.Walk(o.RootNodes, func(n *outline.Node, _ int, _ *outline.Node) bool {
		sum += n.EstimatedWordCount
		count++
		return true
	})
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
