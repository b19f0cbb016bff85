package ops

import (
	"fmt"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// Move detaches the subtree rooted at sourceID and re-attaches it as the
// last child of the node identified by targetID.
//
// Semantics:
//   - source == target: no-op, OPW003 warning.
//   - source absent: no-op, OPW001 warning.
//   - target is a descendant of source: rejected with OPE001, forest
//     unchanged. The validator independently detects any cycle that reaches
//     it through other paths.
//   - target absent from the tree: the detached subtree is appended as a new
//     root node (never silently dropped), OPW002 warning.
func Move(roots []*outline.Node, sourceID, targetID outline.NodeID) ([]*outline.Node, []outline.Diagnostic) {
	if sourceID == targetID {
		return roots, []outline.Diagnostic{{
			Severity: outline.SeverityWarning,
			Code:     outline.CodeSelfMove,
			Message:  fmt.Sprintf("cannot move node %q onto itself; outline unchanged", sourceID),
			NodeID:   sourceID,
		}}
	}

	source := outline.Find(roots, sourceID)
	if source == nil {
		return roots, notFound(sourceID)
	}
	if outline.IsDescendant(source, targetID) {
		return roots, []outline.Diagnostic{{
			Severity: outline.SeverityError,
			Code:     outline.CodeCycleRejected,
			Message:  fmt.Sprintf("destination %q is a descendant of source %q: cycle rejected", targetID, sourceID),
			NodeID:   sourceID,
		}}
	}

	remaining, detached := detach(roots, sourceID)
	if detached == nil {
		// Unreachable after the Find above; kept as a guard.
		return roots, notFound(sourceID)
	}

	target := outline.Find(remaining, targetID)
	if target == nil {
		return append(remaining, detached), []outline.Diagnostic{{
			Severity: outline.SeverityWarning,
			Code:     outline.CodeReattachedAsRoot,
			Message:  fmt.Sprintf("destination %q not found; node %q re-attached as a root node", targetID, sourceID),
			NodeID:   sourceID,
		}}
	}
	target.Children = append(target.Children, detached)
	return remaining, nil
}

// detach removes the node with id from the forest without descending into
// it, returning the remaining forest and the detached subtree (nil when the
// id was not present).
func detach(nodes []*outline.Node, id outline.NodeID) ([]*outline.Node, *outline.Node) {
	var detached *outline.Node
	out := make([]*outline.Node, 0, len(nodes))
	for _, n := range nodes {
		if detached == nil && n.ID == id {
			detached = n
			continue
		}
		if detached == nil {
			var d *outline.Node
			if n.Children, d = detach(n.Children, id); d != nil {
				detached = d
			}
		}
		out = append(out, n)
	}
	return out, detached
}
