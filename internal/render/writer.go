package render

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// ManifestFileName is stored at the output root.
const ManifestFileName = "manifest.json"

// WriteResult tells whether a file was rewritten.
type WriteResult int

const (
	Written WriteResult = iota
	Unchanged
)

func (r WriteResult) String() string {
	if r == Unchanged {
		return "unchanged"
	}
	return "written"
}

// Writer writes generated files under a root directory and skips files whose
// content digest matches the manifest. Safe for concurrent use.
type Writer struct {
	root string

	mu       sync.Mutex
	manifest map[string]string // relative path → hex BLAKE2b-256
	dirty    bool
}

// NewWriter opens the output root, loading an existing manifest if present.
func NewWriter(root string) (*Writer, error) {
	w := &Writer{root: root, manifest: make(map[string]string)}

	data, err := os.ReadFile(filepath.Join(root, ManifestFileName))
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &w.manifest); err != nil {
			// A corrupt manifest only costs a full rewrite.
			slog.Warn("ignoring unreadable manifest", "root", root, "err", err)
			w.manifest = make(map[string]string)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	return w, nil
}

// Root returns the output root.
func (w *Writer) Root() string { return w.root }

// Digest returns the hex BLAKE2b-256 of content.
func Digest(content []byte) string {
	sum := blake2b.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Write stores content at root/rel unless the same content is already there.
func (w *Writer) Write(rel string, content []byte) (WriteResult, error) {
	rel = filepath.ToSlash(filepath.Clean(rel))
	path := filepath.Join(w.root, filepath.FromSlash(rel))
	digest := Digest(content)

	w.mu.Lock()
	known := w.manifest[rel]
	w.mu.Unlock()

	if known == digest {
		if _, err := os.Stat(path); err == nil {
			return Unchanged, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Written, fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return Written, fmt.Errorf("writing %s: %w", rel, err)
	}

	w.mu.Lock()
	w.manifest[rel] = digest
	w.dirty = true
	w.mu.Unlock()

	return Written, nil
}

// Entries returns the manifest paths in sorted order.
func (w *Writer) Entries() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	paths := make([]string, 0, len(w.manifest))
	for p := range w.manifest {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Flush persists the manifest if anything was written.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.dirty {
		return nil
	}
	data, err := json.MarshalIndent(w.manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return fmt.Errorf("creating output root: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.root, ManifestFileName), data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	w.dirty = false
	return nil
}
