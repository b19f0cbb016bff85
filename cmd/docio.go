package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// OutlineIO handles reading and writing outline documents. It is injected
// into each command so tests can run against in-memory documents.
type OutlineIO interface {
	ReadOutline(ctx context.Context, path string) (outline.Outline, error)
	WriteOutlineAtomic(ctx context.Context, path string, o outline.Outline) error
}

// fileOutlineIO implements OutlineIO over YAML documents on disk.
type fileOutlineIO struct{}

func newFileOutlineIO() *fileOutlineIO {
	return &fileOutlineIO{}
}

// ReadOutline parses the YAML outline document at path.
func (w *fileOutlineIO) ReadOutline(_ context.Context, path string) (outline.Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return outline.Outline{}, fmt.Errorf("reading outline: %w", err)
	}
	var o outline.Outline
	if err := yaml.Unmarshal(data, &o); err != nil {
		return outline.Outline{}, fmt.Errorf("parsing outline %q: %w", path, err)
	}
	return o, nil
}

// WriteOutlineAtomic serializes o as YAML and writes it to path atomically
// via a temp file rename.
func (w *fileOutlineIO) WriteOutlineAtomic(_ context.Context, path string, o outline.Outline) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("encoding outline: %w", err)
	}
	return writeFileAtomicImpl(path, ".outline", data)
}

// writeFileAtomicImpl performs an atomic write via OS temp file rename.
func writeFileAtomicImpl(path, prefix string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, prefix+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
