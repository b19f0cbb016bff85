package version

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// MemoryStore is an in-memory Store. Snapshots are deep-copied on the way
// in and out, so callers can keep mutating their outlines without touching
// stored history.
type MemoryStore struct {
	mu        sync.Mutex
	byOutline map[string][]outline.Version
	byID      map[string]outline.Version
	clock     func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byOutline: make(map[string][]outline.Version),
		byID:      make(map[string]outline.Version),
		clock:     time.Now,
	}
}

// Save appends a new version record for o's outline id.
func (s *MemoryStore) Save(_ context.Context, o outline.Outline, message string) (outline.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	storedMax := 0
	for _, v := range s.byOutline[o.ID] {
		if v.Version > storedMax {
			storedMax = v.Version
		}
	}
	snapshot := outline.Clone(o)
	snapshot.Version = nextVersion(storedMax, o)

	v := outline.Version{
		ID:        uuid.Must(uuid.NewV7()).String(),
		OutlineID: o.ID,
		Version:   snapshot.Version,
		Message:   message,
		CreatedAt: nowUTC(s.clock),
		Snapshot:  snapshot,
	}
	s.byOutline[o.ID] = append(s.byOutline[o.ID], v)
	s.byID[v.ID] = v
	return copyVersion(v), nil
}

// List returns the outline's versions most recent first.
func (s *MemoryStore) List(_ context.Context, outlineID string) ([]outline.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.byOutline[outlineID]
	out := make([]outline.Version, len(stored))
	for i, v := range stored {
		out[len(stored)-1-i] = copyVersion(v)
	}
	return out, nil
}

// Get returns the version with the given id.
func (s *MemoryStore) Get(_ context.Context, versionID string) (outline.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byID[versionID]
	if !ok {
		return outline.Version{}, fmt.Errorf("get version %q: %w", versionID, ErrVersionNotFound)
	}
	return copyVersion(v), nil
}

// Compare returns the coarse node-count diff between two stored snapshots.
func (s *MemoryStore) Compare(ctx context.Context, versionIDA, versionIDB string) (Diff, error) {
	a, err := s.Get(ctx, versionIDA)
	if err != nil {
		return Diff{}, err
	}
	b, err := s.Get(ctx, versionIDB)
	if err != nil {
		return Diff{}, err
	}
	return compareSnapshots(a.Snapshot, b.Snapshot), nil
}

func copyVersion(v outline.Version) outline.Version {
	v.Snapshot = outline.Clone(v.Snapshot)
	return v
}
