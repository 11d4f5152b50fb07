package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PoolsDir and PowersetsDir are the module subdirectories under the output root.
const (
	PoolsDir     = "pools"
	PowersetsDir = "powersets"
)

// ListModules returns the module stems ("fighting") under root/<sub>/*.js, sorted.
func ListModules(root, sub string) ([]string, error) {
	dir := filepath.Join(root, sub)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("modules directory: %w", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.js"))
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}

	stems := make([]string, 0, len(matches))
	for _, m := range matches {
		stems = append(stems, strings.TrimSuffix(filepath.Base(m), ".js"))
	}
	sort.Strings(stems)
	return stems, nil
}

// ScriptTags renders the <script> block for every pool module under root,
// registry loader first. webPrefix is the path the page loads data from
// ("js/data").
func ScriptTags(root, webPrefix string) (string, int, error) {
	pools, err := ListModules(root, PoolsDir)
	if err != nil {
		return "", 0, err
	}

	var b strings.Builder
	b.WriteString("<!-- Power Pools Registry -->\n")
	fmt.Fprintf(&b, "<script src=\"%s/%s\"></script>\n", webPrefix, kinds[KindPool].loader)
	b.WriteString("\n<!-- Individual Pool Files -->\n")
	for _, p := range pools {
		fmt.Fprintf(&b, "<script src=\"%s/%s/%s.js\"></script>\n", webPrefix, PoolsDir, p)
	}
	return b.String(), len(pools), nil
}
