// Package check implements the structural validator: a single depth-first
// pass over an outline that yields a flat list of advisory findings covering
// hierarchy legality, taxonomy progression, content balance, standards
// coverage hints, and relationship integrity. Findings never block anything
// here; consumers decide whether to refuse a save.
package check

import (
	"fmt"
	"sort"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// Validation rule codes. CHK002–CHK006 and CHK017 are errors; the rest are
// advisory warnings.
const (
	CodeEmptyOutline        = "CHK001"
	CodeDuplicateID         = "CHK002"
	CodeCycle               = "CHK003"
	CodeMissingTitle        = "CHK004"
	CodeNonPositiveEstimate = "CHK005"
	CodeHierarchy           = "CHK006"
	CodeTaxonomyRegression  = "CHK007"
	CodeTaxonomyGap         = "CHK008"
	CodeMissingStandards    = "CHK009"
	CodeTooManyStandards    = "CHK010"
	CodeHeavySection        = "CHK011"
	CodeThinActivity        = "CHK012"
	CodeLongLeaf            = "CHK013"
	CodeContentInParent     = "CHK014"
	CodeRootImbalance       = "CHK015"
	CodeDescendingPath      = "CHK016"
	CodeRelUnknownNode      = "CHK017"
	CodeRelSelfLoop         = "CHK018"
	CodeRelDuplicate        = "CHK019"
)

// lowOrderRank is the rank below which a node counts as "low order" for the
// taxonomy-gap rule (remember, understand).
const lowOrderRank = 2

// checker accumulates traversal state for one Validate pass.
type checker struct {
	diags []outline.Diagnostic
	seen  map[outline.NodeID]bool
}

// Validate walks the outline tree once and returns every detected finding,
// errors sorted before warnings. An empty result means "no detected
// problems", not a proof of correctness.
func Validate(o outline.Outline) []outline.Diagnostic {
	c := &checker{seen: make(map[outline.NodeID]bool)}

	if len(o.RootNodes) == 0 {
		c.warn(CodeEmptyOutline, "", "outline has no content; add at least one root section")
		return c.diags
	}

	onPath := make(map[outline.NodeID]bool)
	for _, r := range o.RootNodes {
		c.checkNode(r, 0, nil, onPath, nil)
	}
	c.checkRootBalance(o.RootNodes)
	c.checkRelationships(o)

	// Errors surface before warnings; insertion order is kept within each tier.
	sort.SliceStable(c.diags, func(i, j int) bool {
		return severityRank(c.diags[i].Severity) < severityRank(c.diags[j].Severity)
	})
	return c.diags
}

// Issues is the flat human-readable view of Validate, for display layers
// that only want strings.
func Issues(o outline.Outline) []string {
	return outline.Messages(Validate(o))
}

// checkNode applies the per-node rules and recurses. taxPath is the ordered
// sequence of taxonomy ranks along the current root-to-node path (unset
// levels are skipped).
func (c *checker) checkNode(n *outline.Node, depth int, parent *outline.Node, onPath map[outline.NodeID]bool, taxPath []int) {
	if n == nil {
		return
	}
	if onPath[n.ID] {
		c.err(CodeCycle, n.ID, fmt.Sprintf("node %q appears as its own ancestor: cycle detected", label(n)))
		return
	}
	if c.seen[n.ID] {
		c.err(CodeDuplicateID, n.ID, fmt.Sprintf("duplicate node id %q", n.ID))
	}
	c.seen[n.ID] = true

	if isBlank(n.Title) {
		c.err(CodeMissingTitle, n.ID, fmt.Sprintf("node %q has an empty title", n.ID))
	}
	if n.EstimatedWordCount <= 0 || n.EstimatedDuration <= 0 {
		c.err(CodeNonPositiveEstimate, n.ID,
			fmt.Sprintf("node %q has non-positive estimates (words=%d, minutes=%d)", label(n), n.EstimatedWordCount, n.EstimatedDuration))
	}

	c.checkHierarchy(n, depth, parent)
	c.checkTaxonomy(n, parent)
	c.checkStandards(n, depth)
	c.checkContent(n)

	if r := n.TaxonomyLevel.Rank(); r >= 0 {
		taxPath = append(taxPath, r)
	}
	if len(n.Children) == 0 && isStrictlyDescending(taxPath) {
		c.warn(CodeDescendingPath, n.ID,
			fmt.Sprintf("path ending at %q moves steadily toward lower-order thinking; consider building from lower to higher-order skills", label(n)))
	}

	onPath[n.ID] = true
	for _, child := range n.Children {
		c.checkNode(child, depth+1, n, onPath, taxPath)
	}
	delete(onPath, n.ID)
}

// checkHierarchy enforces type legality keyed to depth and immediate parent
// type. Resource nodes are unconstrained.
func (c *checker) checkHierarchy(n *outline.Node, depth int, parent *outline.Node) {
	bad := func(want string) {
		c.err(CodeHierarchy, n.ID,
			fmt.Sprintf("%s node %q is invalid under %s: %s", n.Type, label(n), parentLabel(parent), want))
	}
	switch n.Type {
	case outline.TypeSection:
		if depth != 0 {
			bad("sections are only valid at the top level")
		}
	case outline.TypeSubsection:
		if depth == 0 || parent == nil || parent.Type != outline.TypeSection {
			bad("subsections must sit directly under a section")
		}
	case outline.TypeTopic:
		if depth == 0 || parent == nil ||
			(parent.Type != outline.TypeSection && parent.Type != outline.TypeSubsection) {
			bad("topics must sit under a section or subsection")
		}
	case outline.TypeActivity:
		if depth == 0 || parent == nil ||
			(parent.Type != outline.TypeTopic && parent.Type != outline.TypeSubsection) {
			bad("activities must sit under a topic or subsection")
		}
	case outline.TypeAssessment:
		if depth == 0 || parent == nil ||
			(parent.Type != outline.TypeTopic && parent.Type != outline.TypeSubsection && parent.Type != outline.TypeSection) {
			bad("assessments must sit under a topic, subsection, or section")
		}
	}
}

// checkTaxonomy applies the regression and gap rules between a node and its
// immediate parent/children.
func (c *checker) checkTaxonomy(n *outline.Node, parent *outline.Node) {
	rank := n.TaxonomyLevel.Rank()
	if parent != nil && rank >= 0 {
		// A leaf regressing is tolerated (e.g. a remedial recap); a branch is not.
		if pr := parent.TaxonomyLevel.Rank(); pr >= 0 && rank < pr-1 && len(n.Children) > 0 {
			c.warn(CodeTaxonomyRegression, n.ID,
				fmt.Sprintf("node %q (%s) regresses more than one level below its parent (%s)", label(n), n.TaxonomyLevel, parent.TaxonomyLevel))
		}
	}
	if rank >= 0 && rank < lowOrderRank {
		for _, child := range n.Children {
			if cr := child.TaxonomyLevel.Rank(); cr > rank+2 {
				c.warn(CodeTaxonomyGap, n.ID,
					fmt.Sprintf("node %q (%s) jumps to %q (%s) without intermediate levels", label(n), n.TaxonomyLevel, label(child), child.TaxonomyLevel))
			}
		}
	}
}

// checkStandards flags thin and overloaded standards assignments.
func (c *checker) checkStandards(n *outline.Node, depth int) {
	structural := n.Type == outline.TypeSection || n.Type == outline.TypeSubsection || n.Type == outline.TypeTopic
	if structural && depth < 2 && len(n.StandardIDs) == 0 {
		c.warn(CodeMissingStandards, n.ID, fmt.Sprintf("%s node %q has no standards mapped", n.Type, label(n)))
	}
	if len(n.StandardIDs) > 5 {
		c.warn(CodeTooManyStandards, n.ID,
			fmt.Sprintf("node %q carries %d standards; consider redistributing across children", label(n), len(n.StandardIDs)))
	}
}

// checkContent applies the per-node word-count and duration heuristics.
func (c *checker) checkContent(n *outline.Node) {
	if n.Type == outline.TypeSection && n.EstimatedWordCount > 800 && len(n.Children) > 0 {
		c.warn(CodeHeavySection, n.ID,
			fmt.Sprintf("section %q holds %d words itself; sections should summarize, with bulk content in children", label(n), n.EstimatedWordCount))
	}
	if n.Type == outline.TypeActivity && n.EstimatedWordCount < 200 {
		c.warn(CodeThinActivity, n.ID,
			fmt.Sprintf("activity %q has only %d words; activities need detailed instructions", label(n), n.EstimatedWordCount))
	}
	if n.EstimatedDuration > 120 && len(n.Children) == 0 {
		c.warn(CodeLongLeaf, n.ID,
			fmt.Sprintf("node %q runs %d minutes with no sub-structure; consider decomposing it", label(n), n.EstimatedDuration))
	}
	if len(n.Children) > 0 {
		sum := 0
		for _, child := range n.Children {
			sum += child.EstimatedWordCount
		}
		if float64(sum) < 0.7*float64(n.EstimatedWordCount) {
			c.warn(CodeContentInParent, n.ID,
				fmt.Sprintf("children of %q total %d words against the parent's %d; content should live in children", label(n), sum, n.EstimatedWordCount))
		}
	}
}

// checkRootBalance emits a single aggregate finding when any root's word
// count falls outside [0.5x, 1.5x] of the root mean.
func (c *checker) checkRootBalance(roots []*outline.Node) {
	if len(roots) < 2 {
		return
	}
	total := 0
	for _, r := range roots {
		total += r.EstimatedWordCount
	}
	mean := float64(total) / float64(len(roots))
	for _, r := range roots {
		w := float64(r.EstimatedWordCount)
		if w < 0.5*mean || w > 1.5*mean {
			c.warn(CodeRootImbalance, "",
				fmt.Sprintf("top-level sections are unevenly sized (mean %d words); rebalance content across them", int(mean)))
			return
		}
	}
}

// checkRelationships verifies the overlay graph: both endpoints must exist,
// self-loops are flagged, and exact duplicate (from, to, type) triples are
// flagged once per repeat.
func (c *checker) checkRelationships(o outline.Outline) {
	if len(o.Relationships) == 0 {
		return
	}
	ids := make(map[outline.NodeID]bool)
	outline.Walk(o.RootNodes, func(n *outline.Node, _ int, _ *outline.Node) bool {
		ids[n.ID] = true
		return true
	})
	seen := make(map[outline.Relationship]bool)
	for _, rel := range o.Relationships {
		if !ids[rel.FromNodeID] {
			c.err(CodeRelUnknownNode, rel.FromNodeID,
				fmt.Sprintf("relationship references unknown node %q", rel.FromNodeID))
		}
		if !ids[rel.ToNodeID] {
			c.err(CodeRelUnknownNode, rel.ToNodeID,
				fmt.Sprintf("relationship references unknown node %q", rel.ToNodeID))
		}
		if rel.FromNodeID == rel.ToNodeID {
			c.warn(CodeRelSelfLoop, rel.FromNodeID,
				fmt.Sprintf("node %q has a %s relationship to itself", rel.FromNodeID, rel.Type))
		}
		if seen[rel] {
			c.warn(CodeRelDuplicate, rel.FromNodeID,
				fmt.Sprintf("duplicate %s relationship from %q to %q", rel.Type, rel.FromNodeID, rel.ToNodeID))
		}
		seen[rel] = true
	}
}

func (c *checker) err(code string, nodeID outline.NodeID, msg string) {
	c.diags = append(c.diags, outline.Diagnostic{
		Severity: outline.SeverityError, Code: code, Message: msg, NodeID: nodeID,
	})
}

func (c *checker) warn(code string, nodeID outline.NodeID, msg string) {
	c.diags = append(c.diags, outline.Diagnostic{
		Severity: outline.SeverityWarning, Code: code, Message: msg, NodeID: nodeID,
	})
}

// isStrictlyDescending reports whether ranks has 3+ entries each strictly
// lower than the one before.
func isStrictlyDescending(ranks []int) bool {
	if len(ranks) < 3 {
		return false
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i] >= ranks[i-1] {
			return false
		}
	}
	return true
}

func severityRank(s string) int {
	if s == outline.SeverityError {
		return 0
	}
	return 1
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

func label(n *outline.Node) string {
	if isBlank(n.Title) {
		return n.ID
	}
	return n.Title
}

func parentLabel(parent *outline.Node) string {
	if parent == nil {
		return "the outline root"
	}
	return fmt.Sprintf("%s %q", parent.Type, label(parent))
}
