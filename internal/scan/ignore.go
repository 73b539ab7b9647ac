package scan

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// ignoreFileName is the per-directory ignore file honored during discovery.
const ignoreFileName = ".gitignore"

// IgnoreScopes maps the directory containing an ignore file to the patterns
// declared in it. A scope applies to every path beneath its directory.
type IgnoreScopes map[string][]string

// LoadIgnoreScopes discovers every ignore file nested anywhere under root
// and returns one scope per containing directory. Directories on the fixed
// skip list are not descended into, matching discovery itself. Unreadable
// ignore files are skipped with a warning.
func LoadIgnoreScopes(root string) IgnoreScopes {
	scopes := make(IgnoreScopes)

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("Cannot access path while loading ignore files", "path", p, "error", err)
			return nil
		}
		if d.IsDir() {
			if p != root && isSkippedDirName(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != ignoreFileName {
			return nil
		}

		patterns, err := readIgnoreFile(p)
		if err != nil {
			log.Warn("Cannot read ignore file", "path", p, "error", err)
			return nil
		}
		if len(patterns) > 0 {
			scopes[filepath.Dir(p)] = patterns
		}
		return nil
	})
	if err != nil {
		log.Warn("Ignore file discovery incomplete", "root", root, "error", err)
	}

	return scopes
}

// readIgnoreFile reads one pattern per non-empty, non-comment line.
func readIgnoreFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, s.Err()
}

// IsIgnored reports whether path matches a pattern in any scope whose
// directory is an ancestor of path. Scopes only ever exclude; there is no
// negation support.
func (scopes IgnoreScopes) IsIgnored(path string) bool {
	for dir, patterns := range scopes {
		rel, err := filepath.Rel(dir, path)
		if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		if ok, err := Matches(path, patterns, dir); err == nil && ok {
			return true
		}
	}
	return false
}
