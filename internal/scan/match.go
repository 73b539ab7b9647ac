package scan

import (
	"errors"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrEmptyPath is returned when a path argument is empty. An empty path is
// a contract violation, unlike a path outside the root, which is simply a
// non-match.
var ErrEmptyPath = errors.New("scan: empty path")

// NormalizePath produces a canonical comparison key for a path: platform
// separators collapsed to "/", case folded to lowercase, trailing
// separators stripped. It is idempotent.
func NormalizePath(p string) (string, error) {
	if p == "" {
		return "", ErrEmptyPath
	}
	n := strings.ToLower(strings.ReplaceAll(p, "\\", "/"))
	for len(n) > 1 && strings.HasSuffix(n, "/") {
		n = strings.TrimSuffix(n, "/")
	}
	return n, nil
}

// Matches reports whether the path matches any of the glob patterns,
// evaluated relative to root. A pattern matches if it globs the final path
// segment, globs the root-relative path, matches the relative path
// structurally (with ** spanning directories), or is a directory-style
// pattern (trailing separator) naming one of the relative path's segments.
// Comparison is case-insensitive. An empty pattern list never matches; a
// path outside root never matches.
func Matches(p string, patterns []string, root string) (bool, error) {
	if p == "" {
		return false, ErrEmptyPath
	}
	if len(patterns) == 0 {
		return false, nil
	}

	rel, err := filepath.Rel(root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false, nil
	}
	relNorm, err := NormalizePath(rel)
	if err != nil {
		return false, nil
	}
	filename := path.Base(relNorm)
	segments := strings.Split(relNorm, "/")

	for _, raw := range patterns {
		pat := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), "\\", "/"))
		if pat == "" {
			continue
		}

		if dir, ok := strings.CutSuffix(pat, "/"); ok {
			for _, seg := range segments {
				if seg == dir {
					return true, nil
				}
			}
			continue
		}

		if ok, _ := path.Match(pat, filename); ok {
			return true, nil
		}
		if ok, _ := path.Match(pat, relNorm); ok {
			return true, nil
		}
		if ok, _ := doublestar.Match(pat, relNorm); ok {
			return true, nil
		}
	}
	return false, nil
}
