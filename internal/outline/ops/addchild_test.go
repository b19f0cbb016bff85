package ops

// Tests for the add-child operation.

import (
	"testing"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

func TestAddChild_AppendsToParent(t *testing.T) {
	roots := moveFixture()
	child := &outline.Node{ID: "new1", Title: "New Topic", Type: outline.TypeTopic}

	out, diags := AddChild(roots, "sub2", child)

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	sub2 := outline.Find(out, "sub2")
	if len(sub2.Children) != 1 || sub2.Children[0].ID != "new1" {
		t.Errorf("new1 should be appended under sub2, got %v", sub2.Children)
	}
}

func TestAddChild_PreservesSiblingOrder(t *testing.T) {
	roots := moveFixture()

	out, _ := AddChild(roots, "sub1", &outline.Node{ID: "new1", Title: "New"})
	sub1 := outline.Find(out, "sub1")

	if len(sub1.Children) != 2 || sub1.Children[0].ID != "top1" || sub1.Children[1].ID != "new1" {
		t.Errorf("insertion order should be display order, got %v", outline.CollectIDs(sub1.Children))
	}
}

func TestAddChild_MissingParentWarns(t *testing.T) {
	roots := moveFixture()

	out, diags := AddChild(roots, "ghost", &outline.Node{ID: "new1"})

	if !hasDiagCode(diags, outline.CodeTargetNotFound) {
		t.Errorf("expected OPW001 for missing parent, got %v", diags)
	}
	if got := outline.Count(out); got != 5 {
		t.Errorf("node count = %d, want 5 (unchanged)", got)
	}
}
