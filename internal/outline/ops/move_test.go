package ops

// Tests for the move operation.

import (
	"testing"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// moveFixture builds the forest:
//
//	s1
//	├── sub1
//	│   └── top1
//	└── sub2
//	s2
func moveFixture() []*outline.Node {
	return []*outline.Node{
		{ID: "s1", Title: "Section 1", Type: outline.TypeSection, Children: []*outline.Node{
			{ID: "sub1", Title: "Subsection 1", Type: outline.TypeSubsection, Children: []*outline.Node{
				{ID: "top1", Title: "Topic 1", Type: outline.TypeTopic},
			}},
			{ID: "sub2", Title: "Subsection 2", Type: outline.TypeSubsection},
		}},
		{ID: "s2", Title: "Section 2", Type: outline.TypeSection},
	}
}

func hasDiagCode(diags []outline.Diagnostic, code string) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestMove_SubtreeToNewParent(t *testing.T) {
	roots := moveFixture()

	out, diags := Move(roots, "sub1", "s2")

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	s2 := outline.Find(out, "s2")
	if len(s2.Children) != 1 || s2.Children[0].ID != "sub1" {
		t.Errorf("sub1 should be the child of s2, got %v", s2.Children)
	}
	// The whole subtree moves, including top1.
	if outline.Find(s2.Children, "top1") == nil {
		t.Error("top1 should move with its parent sub1")
	}
	s1 := outline.Find(out, "s1")
	if outline.Find(s1.Children, "sub1") != nil {
		t.Error("sub1 should be removed from under s1")
	}
	if got := outline.Count(out); got != 5 {
		t.Errorf("node count = %d, want 5 (no nodes lost)", got)
	}
}

func TestMove_SelfMoveIsNoOp(t *testing.T) {
	roots := moveFixture()
	before := outline.CollectIDs(roots)

	out, diags := Move(roots, "sub1", "sub1")

	if !hasDiagCode(diags, outline.CodeSelfMove) {
		t.Errorf("expected OPW003 self-move warning, got %v", diags)
	}
	if outline.HasError(diags) {
		t.Errorf("self-move should warn, not error: %v", diags)
	}
	after := outline.CollectIDs(out)
	if len(after) != len(before) {
		t.Errorf("forest changed on self-move: %v -> %v", before, after)
	}
}

func TestMove_MissingSourceWarns(t *testing.T) {
	roots := moveFixture()

	out, diags := Move(roots, "ghost", "s2")

	if !hasDiagCode(diags, outline.CodeTargetNotFound) {
		t.Errorf("expected OPW001 for missing source, got %v", diags)
	}
	if got := outline.Count(out); got != 5 {
		t.Errorf("node count = %d, want 5", got)
	}
}

func TestMove_IntoOwnDescendantRejected(t *testing.T) {
	roots := moveFixture()

	out, diags := Move(roots, "sub1", "top1")

	if !hasDiagCode(diags, outline.CodeCycleRejected) {
		t.Fatalf("expected OPE001 cycle rejection, got %v", diags)
	}
	if !outline.HasError(diags) {
		t.Error("cycle rejection must be error severity")
	}
	// Forest unchanged: top1 still under sub1, sub1 still under s1.
	s1 := outline.Find(out, "s1")
	if outline.Find(s1.Children, "top1") == nil {
		t.Error("rejected move must leave the forest unchanged")
	}
	if got := outline.Count(out); got != 5 {
		t.Errorf("node count = %d, want 5", got)
	}
}

func TestMove_MissingTargetReattachesAsRoot(t *testing.T) {
	roots := moveFixture()

	out, diags := Move(roots, "sub1", "ghost")

	if !hasDiagCode(diags, outline.CodeReattachedAsRoot) {
		t.Fatalf("expected OPW002 re-attached-as-root, got %v", diags)
	}
	if outline.HasError(diags) {
		t.Errorf("missing target should warn, not error: %v", diags)
	}
	last := out[len(out)-1]
	if last.ID != "sub1" {
		t.Errorf("detached subtree should be the last root, got %q", last.ID)
	}
	// Nothing silently dropped: the subtree (with top1) survives.
	if got := outline.Count(out); got != 5 {
		t.Errorf("node count = %d, want 5 (subtree preserved)", got)
	}
	if outline.Find([]*outline.Node{last}, "top1") == nil {
		t.Error("top1 should survive under the re-rooted sub1")
	}
}

func TestMove_RootToChildPosition(t *testing.T) {
	roots := moveFixture()

	out, diags := Move(roots, "s2", "sub2")

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(out) != 1 {
		t.Errorf("root count = %d, want 1 after demoting s2", len(out))
	}
	sub2 := outline.Find(out, "sub2")
	if len(sub2.Children) != 1 || sub2.Children[0].ID != "s2" {
		t.Errorf("s2 should be the child of sub2, got %v", sub2.Children)
	}
}
