package ops

import (
	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// Delete removes the node with the given id (and its entire subtree) from
// the forest, wherever it appears. When the id is absent the forest is
// returned unchanged with an OPW001 warning.
func Delete(roots []*outline.Node, id outline.NodeID) ([]*outline.Node, []outline.Diagnostic) {
	out, removed := filterOut(roots, id)
	if !removed {
		return roots, notFound(id)
	}
	return out, nil
}

// filterOut rebuilds the sibling slice without the node carrying id,
// recursing into every surviving subtree. The second return reports whether
// a node was actually removed.
func filterOut(nodes []*outline.Node, id outline.NodeID) ([]*outline.Node, bool) {
	removed := false
	out := make([]*outline.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.ID == id {
			removed = true
			continue
		}
		if kept, r := filterOut(n.Children, id); r {
			n.Children = kept
			removed = true
		}
		out = append(out, n)
	}
	return out, removed
}
