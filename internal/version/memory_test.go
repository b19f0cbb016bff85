package version

// Tests for the in-memory version store and the store-level helpers.

import (
	"context"
	"errors"
	"testing"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

func sampleOutline() outline.Outline {
	return outline.Outline{
		ID: "o1", ProjectID: "p1", Title: "Fractions",
		RootNodes: []*outline.Node{
			{ID: "s1", Title: "Section 1", Type: outline.TypeSection,
				EstimatedWordCount: 400, EstimatedDuration: 40,
				Children: []*outline.Node{
					{ID: "sub1", Title: "Sub 1", Type: outline.TypeSubsection,
						EstimatedWordCount: 300, EstimatedDuration: 30},
				}},
		},
	}
}

func TestMemoryStore_SaveAssignsSequentialVersions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	o := sampleOutline()

	for i := 1; i <= 3; i++ {
		v, err := store.Save(ctx, o, "save")
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		if v.Version != i {
			t.Errorf("save %d assigned version %d", i, v.Version)
		}
		if v.CreatedAt == "" {
			t.Error("version must carry a timestamp")
		}
	}
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	o := sampleOutline()

	for _, msg := range []string{"first", "second", "third"} {
		if _, err := store.Save(ctx, o, msg); err != nil {
			t.Fatal(err)
		}
	}

	versions, err := store.List(ctx, o.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(versions) != 3 {
		t.Fatalf("len = %d, want 3", len(versions))
	}
	if versions[0].Message != "third" || versions[2].Message != "first" {
		t.Errorf("order = [%s %s %s], want newest first",
			versions[0].Message, versions[1].Message, versions[2].Message)
	}
}

func TestMemoryStore_SnapshotsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	o := sampleOutline()

	v, err := store.Save(ctx, o, "before edits")
	if err != nil {
		t.Fatal(err)
	}

	// Later edits to the live outline must not leak into history.
	o.RootNodes[0].Title = "Renamed"

	stored, err := store.Get(ctx, v.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Snapshot.RootNodes[0].Title != "Section 1" {
		t.Errorf("stored snapshot mutated: %q", stored.Snapshot.RootNodes[0].Title)
	}

	// And edits to a returned snapshot must not reach the store either.
	stored.Snapshot.RootNodes[0].Title = "Tampered"
	again, _ := store.Get(ctx, v.ID)
	if again.Snapshot.RootNodes[0].Title != "Section 1" {
		t.Errorf("store leaked a mutable snapshot: %q", again.Snapshot.RootNodes[0].Title)
	}
}

func TestMemoryStore_GetUnknownID(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background(), "nope")
	if !errors.Is(err, ErrVersionNotFound) {
		t.Errorf("err = %v, want ErrVersionNotFound", err)
	}
}

func TestMemoryStore_Compare(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	o := sampleOutline()
	a, err := store.Save(ctx, o, "baseline")
	if err != nil {
		t.Fatal(err)
	}

	// One node modified, one added.
	o.RootNodes[0].Title = "Edited Section"
	o.RootNodes = append(o.RootNodes, &outline.Node{
		ID: "s2", Title: "Section 2", Type: outline.TypeSection,
		EstimatedWordCount: 200, EstimatedDuration: 20,
	})
	b, err := store.Save(ctx, o, "edited")
	if err != nil {
		t.Fatal(err)
	}

	diff, err := store.Compare(ctx, a.ID, b.ID)
	if err != nil {
		t.Fatal(err)
	}
	if diff.Added != 1 || diff.Removed != 0 || diff.Modified != 1 {
		t.Errorf("diff = %+v, want added=1 removed=0 modified=1", diff)
	}
}

func TestRestore_ReturnsEditableCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	o := sampleOutline()

	v, err := store.Save(ctx, o, "v1")
	if err != nil {
		t.Fatal(err)
	}

	restored := Restore(v)
	restored.RootNodes[0].Title = "Edited after restore"

	again, _ := store.Get(ctx, v.ID)
	if again.Snapshot.RootNodes[0].Title != "Section 1" {
		t.Error("editing a restored outline must not touch stored history")
	}
}

func TestRestore_ThenSaveContinuesSequence(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	o := sampleOutline()

	v1, _ := store.Save(ctx, o, "v1")
	o.Version = v1.Version
	v2, _ := store.Save(ctx, o, "v2")
	o.Version = v2.Version
	if _, err := store.Save(ctx, o, "v3"); err != nil {
		t.Fatal(err)
	}

	// Restore v1 and save: the sequence continues at 4, it does not reset.
	restored := Restore(v1)
	v4, err := store.Save(ctx, restored, "restored from v1")
	if err != nil {
		t.Fatal(err)
	}
	if v4.Version != 4 {
		t.Errorf("post-restore version = %d, want 4", v4.Version)
	}
}

func TestBranch_NewIdentityAndZeroVersion(t *testing.T) {
	o := sampleOutline()
	o.Version = 7

	b := Branch(o, "draft rework")

	if b.ID == o.ID || b.ID == "" {
		t.Errorf("branch id = %q, want a fresh id", b.ID)
	}
	if b.ProjectID == o.ProjectID {
		t.Error("branch should get its own project id")
	}
	if b.Version != 0 {
		t.Errorf("branch version = %d, want 0", b.Version)
	}
	if b.Title != "Fractions (draft rework)" {
		t.Errorf("branch title = %q", b.Title)
	}

	// Content is a deep copy of the source.
	b.RootNodes[0].Title = "Changed"
	if o.RootNodes[0].Title != "Section 1" {
		t.Error("branching must not alias the source tree")
	}
}

func TestNextVersion(t *testing.T) {
	tests := []struct {
		storedMax  int
		docVersion int
		want       int
	}{
		{0, 0, 1},
		{3, 0, 4},
		{3, 5, 6}, // document ahead of store (e.g. imported)
		{5, 2, 6},
	}
	for _, tt := range tests {
		o := outline.Outline{Version: tt.docVersion}
		if got := nextVersion(tt.storedMax, o); got != tt.want {
			t.Errorf("nextVersion(%d, doc %d) = %d, want %d",
				tt.storedMax, tt.docVersion, got, tt.want)
		}
	}
}
