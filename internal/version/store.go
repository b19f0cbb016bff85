// Package version implements the append-only outline version store:
// snapshots keyed by outline id with save, list, restore, branch, and
// coarse compare operations. Two Store implementations are provided, an
// in-memory store for tests and embedding, and a SQLite-backed store for
// the CLI.
package version

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// Store is the persistence contract for outline versions. Versions are
// append-only: implementations expose no way to edit or remove a record.
type Store interface {
	// Save appends a new version of o with the next version number for its
	// outline id and returns the stored record.
	Save(ctx context.Context, o outline.Outline, message string) (outline.Version, error)
	// List returns all versions for the outline id, most recent first.
	List(ctx context.Context, outlineID string) ([]outline.Version, error)
	// Get returns the version record with the given version id.
	Get(ctx context.Context, versionID string) (outline.Version, error)
	// Compare returns a coarse node-count diff between two snapshots.
	Compare(ctx context.Context, versionIDA, versionIDB string) (Diff, error)
}

// Diff is a coarse node-count comparison between two snapshots; it is not a
// structural patch.
type Diff struct {
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
}

// ErrVersionNotFound is returned by Get and Compare for unknown version ids.
var ErrVersionNotFound = errors.New("version not found")

// Restore returns a fresh editable deep copy of the version's snapshot.
// It does not create a new version; callers are expected to save again
// after restoring, which continues the outline's version sequence.
func Restore(v outline.Version) outline.Outline {
	return outline.Clone(v.Snapshot)
}

// Branch creates an independent copy of the outline under a new identity,
// tagged with the branch name. The copy starts its own version history.
func Branch(o outline.Outline, name string) outline.Outline {
	b := outline.Clone(o)
	b.ID = uuid.Must(uuid.NewV7()).String()
	b.ProjectID = uuid.Must(uuid.NewV7()).String()
	b.Version = 0
	if name != "" {
		b.Title = fmt.Sprintf("%s (%s)", o.Title, name)
	}
	return b
}

// compareSnapshots computes the Diff between two outline snapshots by node
// id: ids only in b are added, ids only in a are removed, and ids in both
// with differing display or estimate fields are modified.
func compareSnapshots(a, b outline.Outline) Diff {
	index := func(o outline.Outline) map[outline.NodeID]*outline.Node {
		m := make(map[outline.NodeID]*outline.Node)
		outline.Walk(o.RootNodes, func(n *outline.Node, _ int, _ *outline.Node) bool {
			m[n.ID] = n
			return true
		})
		return m
	}
	ma, mb := index(a), index(b)

	var d Diff
	for id, nb := range mb {
		na, ok := ma[id]
		if !ok {
			d.Added++
			continue
		}
		if na.Title != nb.Title || na.Type != nb.Type || na.Description != nb.Description ||
			na.EstimatedWordCount != nb.EstimatedWordCount || na.EstimatedDuration != nb.EstimatedDuration {
			d.Modified++
		}
	}
	for id := range ma {
		if _, ok := mb[id]; !ok {
			d.Removed++
		}
	}
	return d
}

// nowUTC returns the current UTC time formatted as RFC3339 with second-level
// precision and a "Z" suffix, e.g. "2006-01-02T15:04:05Z".
func nowUTC(clock func() time.Time) string {
	return clock().UTC().Truncate(time.Second).Format(time.RFC3339)
}

// nextVersion picks the version number for a new save: one past the highest
// of the stored maximum and the outline's own counter, so restored outlines
// continue their sequence instead of resetting it.
func nextVersion(storedMax int, o outline.Outline) int {
	if o.Version > storedMax {
		storedMax = o.Version
	}
	return storedMax + 1
}
