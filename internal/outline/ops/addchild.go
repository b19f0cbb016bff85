package ops

import (
	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// AddChild appends child to the children of the node identified by parentID.
// When the parent id is absent the forest is returned unchanged with an
// OPW001 warning.
func AddChild(roots []*outline.Node, parentID outline.NodeID, child *outline.Node) ([]*outline.Node, []outline.Diagnostic) {
	parent := outline.Find(roots, parentID)
	if parent == nil {
		return roots, notFound(parentID)
	}
	parent.Children = append(parent.Children, child)
	return roots, nil
}
