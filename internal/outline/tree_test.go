package outline

// Tests for tree traversal and cloning.

import (
	"reflect"
	"testing"
)

// fixture builds a small three-level tree:
//
//	a
//	├── b
//	│   └── d
//	└── c
//	e
func fixture() []*Node {
	return []*Node{
		{ID: "a", Title: "A", Type: TypeSection, Children: []*Node{
			{ID: "b", Title: "B", Type: TypeSubsection, Children: []*Node{
				{ID: "d", Title: "D", Type: TypeTopic},
			}},
			{ID: "c", Title: "C", Type: TypeSubsection},
		}},
		{ID: "e", Title: "E", Type: TypeSection},
	}
}

func TestWalk_VisitsDepthFirstWithDepthAndParent(t *testing.T) {
	roots := fixture()

	type visit struct {
		id     NodeID
		depth  int
		parent NodeID
	}
	var got []visit
	Walk(roots, func(n *Node, depth int, parent *Node) bool {
		pid := NodeID("")
		if parent != nil {
			pid = parent.ID
		}
		got = append(got, visit{n.ID, depth, pid})
		return true
	})

	want := []visit{
		{"a", 0, ""},
		{"b", 1, "a"},
		{"d", 2, "b"},
		{"c", 1, "a"},
		{"e", 0, ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk order = %v, want %v", got, want)
	}
}

func TestWalk_FalseSkipsChildren(t *testing.T) {
	roots := fixture()

	var got []NodeID
	Walk(roots, func(n *Node, _ int, _ *Node) bool {
		got = append(got, n.ID)
		return n.ID != "b" // do not descend into b
	})

	want := []NodeID{"a", "b", "c", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk with pruning = %v, want %v", got, want)
	}
}

func TestWalk_TerminatesOnCyclicTree(t *testing.T) {
	// Manually wire a cycle: x -> y -> x.
	x := &Node{ID: "x", Title: "X"}
	y := &Node{ID: "y", Title: "Y"}
	x.Children = []*Node{y}
	y.Children = []*Node{x}

	visits := 0
	Walk([]*Node{x}, func(*Node, int, *Node) bool {
		visits++
		if visits > 10 {
			t.Fatal("Walk did not terminate on a cyclic tree")
		}
		return true
	})
	if visits != 2 {
		t.Errorf("visits = %d, want 2 (each node once)", visits)
	}
}

func TestFind(t *testing.T) {
	roots := fixture()

	if n := Find(roots, "d"); n == nil || n.Title != "D" {
		t.Errorf("Find(d) = %v, want node D", n)
	}
	if n := Find(roots, "missing"); n != nil {
		t.Errorf("Find(missing) = %v, want nil", n)
	}
}

func TestFindParent(t *testing.T) {
	roots := fixture()

	if p := FindParent(roots, "d"); p == nil || p.ID != "b" {
		t.Errorf("FindParent(d) = %v, want b", p)
	}
	if p := FindParent(roots, "a"); p != nil {
		t.Errorf("FindParent(root) = %v, want nil", p)
	}
	if p := FindParent(roots, "missing"); p != nil {
		t.Errorf("FindParent(missing) = %v, want nil", p)
	}
}

func TestIsDescendant(t *testing.T) {
	roots := fixture()
	a := Find(roots, "a")

	if !IsDescendant(a, "d") {
		t.Error("d should be a descendant of a")
	}
	if IsDescendant(a, "a") {
		t.Error("a node is not its own descendant")
	}
	if IsDescendant(a, "e") {
		t.Error("e is a sibling root, not a descendant of a")
	}
	if IsDescendant(nil, "d") {
		t.Error("nil ancestor has no descendants")
	}
}

func TestCountAndMaxDepth(t *testing.T) {
	roots := fixture()

	if got := Count(roots); got != 5 {
		t.Errorf("Count = %d, want 5", got)
	}
	if got := MaxDepth(roots); got != 2 {
		t.Errorf("MaxDepth = %d, want 2", got)
	}
	if got := Count(nil); got != 0 {
		t.Errorf("Count(nil) = %d, want 0", got)
	}
	if got := MaxDepth(nil); got != -1 {
		t.Errorf("MaxDepth(nil) = %d, want -1", got)
	}
}

func TestCollectIDs(t *testing.T) {
	got := CollectIDs(fixture())
	want := []NodeID{"a", "b", "d", "c", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectIDs = %v, want %v", got, want)
	}
}

func TestCloneNode_SharesNoMutableState(t *testing.T) {
	orig := &Node{
		ID: "n", Title: "N", Type: TypeTopic,
		StandardIDs: []string{"S1"},
		Notes:       []string{"note"},
		Children:    []*Node{{ID: "child", Title: "Child"}},
	}

	clone := CloneNode(orig)
	clone.Title = "changed"
	clone.StandardIDs[0] = "S2"
	clone.Children[0].Title = "changed child"

	if orig.Title != "N" {
		t.Errorf("original title mutated: %q", orig.Title)
	}
	if orig.StandardIDs[0] != "S1" {
		t.Errorf("original standards mutated: %v", orig.StandardIDs)
	}
	if orig.Children[0].Title != "Child" {
		t.Errorf("original child mutated: %q", orig.Children[0].Title)
	}
}

func TestClone_CopiesOverlayAndReferences(t *testing.T) {
	orig := Outline{
		ID:        "o1",
		Title:     "Original",
		RootNodes: fixture(),
		Relationships: []Relationship{
			{FromNodeID: "a", ToNodeID: "e", Type: RelPrerequisite},
		},
		References:     []Reference{{ID: "r1", Title: "Ref"}},
		NodeReferences: map[NodeID][]string{"a": {"r1"}},
	}

	clone := Clone(orig)
	clone.RootNodes[0].Title = "changed"
	clone.Relationships[0].Type = RelExtends
	clone.NodeReferences["a"][0] = "r2"

	if orig.RootNodes[0].Title != "A" {
		t.Errorf("original root mutated: %q", orig.RootNodes[0].Title)
	}
	if orig.Relationships[0].Type != RelPrerequisite {
		t.Errorf("original relationships mutated: %v", orig.Relationships)
	}
	if orig.NodeReferences["a"][0] != "r1" {
		t.Errorf("original node references mutated: %v", orig.NodeReferences)
	}
}

func TestTaxonomyLevelRank(t *testing.T) {
	tests := []struct {
		level TaxonomyLevel
		want  int
	}{
		{TaxRemember, 0},
		{TaxApply, 2},
		{TaxCreate, 5},
		{"", -1},
		{"bogus", -1},
	}
	for _, tt := range tests {
		if got := tt.level.Rank(); got != tt.want {
			t.Errorf("Rank(%q) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestDifficultyLevelRank(t *testing.T) {
	if got := DiffIntroductory.Rank(); got != 0 {
		t.Errorf("Rank(introductory) = %d, want 0", got)
	}
	if got := DiffExpert.Rank(); got != 4 {
		t.Errorf("Rank(expert) = %d, want 4", got)
	}
	if got := DifficultyLevel("x").Rank(); got != -1 {
		t.Errorf("Rank(unknown) = %d, want -1", got)
	}
}
