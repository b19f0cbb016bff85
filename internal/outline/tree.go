package outline

// Walk performs a depth-first traversal over roots, calling visit for every
// node with its depth (0 for roots) and parent (nil for roots). When visit
// returns false the walk does not descend into that node's children.
//
// Walk guards against accidental cycles: a node whose id already appears on
// the current ancestor path is not descended into. Malformed trees therefore
// terminate; detecting and reporting the cycle is the validator's job.
func Walk(roots []*Node, visit func(n *Node, depth int, parent *Node) bool) {
	onPath := make(map[NodeID]bool)
	var walk func(n *Node, depth int, parent *Node)
	walk = func(n *Node, depth int, parent *Node) {
		if n == nil || onPath[n.ID] {
			return
		}
		if !visit(n, depth, parent) {
			return
		}
		onPath[n.ID] = true
		for _, c := range n.Children {
			walk(c, depth+1, n)
		}
		delete(onPath, n.ID)
	}
	for _, r := range roots {
		walk(r, 0, nil)
	}
}

// Find returns the first node with the given id, or nil when absent.
func Find(roots []*Node, id NodeID) *Node {
	var found *Node
	Walk(roots, func(n *Node, _ int, _ *Node) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindParent returns the parent of the node with the given id, or nil when
// the node is a root or absent.
func FindParent(roots []*Node, id NodeID) *Node {
	var found *Node
	Walk(roots, func(n *Node, _ int, parent *Node) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = parent
			return false
		}
		return true
	})
	return found
}

// IsDescendant reports whether the node with id descID appears anywhere in
// the subtree rooted at ancestor (excluding ancestor itself).
func IsDescendant(ancestor *Node, descID NodeID) bool {
	if ancestor == nil {
		return false
	}
	return Find(ancestor.Children, descID) != nil
}

// Count returns the total number of nodes reachable from roots.
func Count(roots []*Node) int {
	n := 0
	Walk(roots, func(*Node, int, *Node) bool {
		n++
		return true
	})
	return n
}

// MaxDepth returns the depth of the deepest node (roots are depth 0).
// An empty forest has depth -1.
func MaxDepth(roots []*Node) int {
	deepest := -1
	Walk(roots, func(_ *Node, depth int, _ *Node) bool {
		if depth > deepest {
			deepest = depth
		}
		return true
	})
	return deepest
}

// CollectIDs returns the ids of all nodes in traversal order.
func CollectIDs(roots []*Node) []NodeID {
	var ids []NodeID
	Walk(roots, func(n *Node, _ int, _ *Node) bool {
		ids = append(ids, n.ID)
		return true
	})
	return ids
}

// CloneNode returns a deep copy of n, including all descendants. Slices are
// copied so the clone shares no mutable state with the original.
func CloneNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.StandardIDs = append([]string(nil), n.StandardIDs...)
	c.Prerequisites = append([]string(nil), n.Prerequisites...)
	c.AssessmentPoints = append([]string(nil), n.AssessmentPoints...)
	c.Notes = append([]string(nil), n.Notes...)
	c.Children = CloneNodes(n.Children)
	return &c
}

// CloneNodes deep-copies a node slice. A nil input yields nil.
func CloneNodes(nodes []*Node) []*Node {
	if nodes == nil {
		return nil
	}
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = CloneNode(n)
	}
	return out
}

// Clone returns a deep copy of the outline: the root forest, relationship
// overlay, references, and node-reference mapping are all copied.
func Clone(o Outline) Outline {
	c := o
	c.RootNodes = CloneNodes(o.RootNodes)
	c.Relationships = append([]Relationship(nil), o.Relationships...)
	c.References = append([]Reference(nil), o.References...)
	if o.NodeReferences != nil {
		c.NodeReferences = make(map[NodeID][]string, len(o.NodeReferences))
		for k, v := range o.NodeReferences {
			c.NodeReferences[k] = append([]string(nil), v...)
		}
	}
	return c
}
