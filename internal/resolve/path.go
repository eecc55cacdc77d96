// Package resolve turns include payloads into canonical absolute paths and
// tracks which paths a parse run has already visited.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const homePrefix = "~/"

// ExpandHome resolves a leading "~/" against the supplied home directory.
// A doubled prefix ("~/~/...") is the escape for a literal path starting
// with "~/": the outer prefix is stripped and no expansion happens. An
// empty home with a path that needs one is an error.
func ExpandHome(path, home string) (string, error) {
	rest, ok := strings.CutPrefix(path, homePrefix)
	if !ok {
		return path, nil
	}
	if strings.HasPrefix(rest, homePrefix) {
		return rest, nil
	}
	if home == "" {
		return "", fmt.Errorf("could not find user home")
	}
	return filepath.Join(home, rest), nil
}

// Path resolves an include payload: home expansion, then resolution
// against the including file's directory, then canonicalization against
// the real filesystem (symlinks resolved, "." and ".." collapsed). The
// returned path is absolute and canonical.
//
// Error messages quote the pre-canonicalization path; the canonical form
// is useless to a reader when resolution is what failed.
func Path(raw, dir, home string) (string, error) {
	expanded, err := ExpandHome(raw, home)
	if err != nil {
		return "", err
	}

	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(dir, expanded)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("could not canonicalize path %s, %w", expanded, err)
	}

	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("could not find %s", expanded)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("could not canonicalize path %s, %w", expanded, err)
	}
	return canonical, nil
}
