// Package analyze provides the read-only analysis functions over outline
// trees: standards-coverage gaps, word-count distribution, taxonomy and
// difficulty histograms, and an aggregate complexity score. Functions that
// remediate (auto-fix, rebalancing) always return an updated copy and leave
// their input untouched.
package analyze

import (
	"fmt"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// uncategorized is the bucket for catalog records without a category.
const uncategorized = "Uncategorized"

// GapReport is the result of a standards gap analysis.
type GapReport struct {
	UncoveredStandards []outline.Standard `json:"uncoveredStandards"`
	Recommendations    []string           `json:"recommendations"`
	CoveragePercentage float64            `json:"coveragePercentage"`
	CoverageByCategory map[string]float64 `json:"coverageByCategory"`
}

// StandardsGaps reports which catalog standards are not referenced anywhere
// in the outline tree. An empty catalog yields vacuous 100% coverage.
func StandardsGaps(o outline.Outline, catalog []outline.Standard) GapReport {
	covered := make(map[string]bool)
	outline.Walk(o.RootNodes, func(n *outline.Node, _ int, _ *outline.Node) bool {
		for _, id := range n.StandardIDs {
			covered[id] = true
		}
		return true
	})

	report := GapReport{
		CoveragePercentage: 100,
		CoverageByCategory: make(map[string]float64),
	}
	if len(catalog) == 0 {
		return report
	}

	coveredCount := 0
	catTotal := make(map[string]int)
	catCovered := make(map[string]int)
	for _, std := range catalog {
		cat := std.Category
		if cat == "" {
			cat = uncategorized
		}
		catTotal[cat]++
		if covered[std.ID] {
			coveredCount++
			catCovered[cat]++
		} else {
			report.UncoveredStandards = append(report.UncoveredStandards, std)
		}
	}
	report.CoveragePercentage = float64(coveredCount) / float64(len(catalog)) * 100
	for cat, total := range catTotal {
		report.CoverageByCategory[cat] = float64(catCovered[cat]) / float64(total) * 100
	}
	report.Recommendations = gapRecommendations(o, report)
	return report
}

// gapRecommendations derives advisory messages from coverage thresholds.
// With gaps present, categories under 50% get a targeted message; with full
// coverage, secondary heuristics look for over-concentration and lopsided
// category spread.
func gapRecommendations(o outline.Outline, report GapReport) []string {
	var recs []string
	for cat, pct := range report.CoverageByCategory {
		if pct < 50 {
			recs = append(recs, fmt.Sprintf("category %q is only %.0f%% covered; map its remaining standards to sections or topics", cat, pct))
		}
	}
	if len(report.UncoveredStandards) > 0 {
		recs = append(recs, fmt.Sprintf("%d standards are not yet addressed anywhere in the outline", len(report.UncoveredStandards)))
		return recs
	}

	// Full coverage: check assignment concentration.
	totalAssignments, busiest := 0, 0
	outline.Walk(o.RootNodes, func(n *outline.Node, _ int, _ *outline.Node) bool {
		totalAssignments += len(n.StandardIDs)
		if len(n.StandardIDs) > busiest {
			busiest = len(n.StandardIDs)
		}
		return true
	})
	if totalAssignments > 0 && float64(busiest) > 0.5*float64(totalAssignments) {
		recs = append(recs, "standards are concentrated on a single node; spread them across the outline")
	}

	// Check category spread.
	best, worst := -1.0, 200.0
	for _, pct := range report.CoverageByCategory {
		if pct > best {
			best = pct
		}
		if pct < worst {
			worst = pct
		}
	}
	if best >= 0 && best-worst > 30 {
		recs = append(recs, fmt.Sprintf("coverage varies by %.0f points across categories; bring weaker categories up", best-worst))
	}
	return recs
}

// AutoFixStandards distributes each uncovered standard round-robin across
// the outline's section, subsection, and topic nodes in traversal order,
// returning an updated copy. The input outline is not modified. With no
// eligible nodes the copy is returned unchanged.
func AutoFixStandards(o outline.Outline, catalog []outline.Standard) outline.Outline {
	fixed := outline.Clone(o)
	report := StandardsGaps(fixed, catalog)
	if len(report.UncoveredStandards) == 0 {
		return fixed
	}

	var hosts []*outline.Node
	outline.Walk(fixed.RootNodes, func(n *outline.Node, _ int, _ *outline.Node) bool {
		switch n.Type {
		case outline.TypeSection, outline.TypeSubsection, outline.TypeTopic:
			hosts = append(hosts, n)
		}
		return true
	})
	if len(hosts) == 0 {
		return fixed
	}
	for i, std := range report.UncoveredStandards {
		host := hosts[i%len(hosts)]
		host.StandardIDs = append(host.StandardIDs, std.ID)
	}
	return fixed
}
