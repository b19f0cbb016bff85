package cmd

// In-memory OutlineIO used by the command tests.

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// memOutlineIO keeps outline documents in a map keyed by path.
type memOutlineIO struct {
	docs   map[string]outline.Outline
	writes int
}

func newMemOutlineIO() *memOutlineIO {
	return &memOutlineIO{docs: make(map[string]outline.Outline)}
}

func (m *memOutlineIO) ReadOutline(_ context.Context, path string) (outline.Outline, error) {
	o, ok := m.docs[path]
	if !ok {
		return outline.Outline{}, fmt.Errorf("reading outline: %s not found", path)
	}
	return outline.Clone(o), nil
}

func (m *memOutlineIO) WriteOutlineAtomic(_ context.Context, path string, o outline.Outline) error {
	m.docs[path] = outline.Clone(o)
	m.writes++
	return nil
}

// runCmd executes a command with the given args, returning stdout, stderr,
// and the command error.
func runCmd(cmd *cobra.Command, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// seedOutline stores a small well-formed document under path.
func seedOutline(io *memOutlineIO, path string) {
	io.docs[path] = outline.Outline{
		ID: "o1", ProjectID: "p1", Title: "Unit",
		RootNodes: []*outline.Node{
			{ID: "s1", Title: "Section 1", Type: outline.TypeSection,
				EstimatedWordCount: 400, EstimatedDuration: 40,
				StandardIDs: []string{"S1"},
				Children: []*outline.Node{
					{ID: "sub1", Title: "Sub 1", Type: outline.TypeSubsection,
						EstimatedWordCount: 350, EstimatedDuration: 30,
						StandardIDs: []string{"S1"}},
				}},
			{ID: "s2", Title: "Section 2", Type: outline.TypeSection,
				EstimatedWordCount: 450, EstimatedDuration: 45,
				StandardIDs: []string{"S2"}},
		},
	}
}
