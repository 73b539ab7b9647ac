package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// skipDirNames are conventional non-source directories pruned from every
// traversal regardless of patterns: version-control metadata, dependency
// caches, virtual environments, and build output.
var skipDirNames = map[string]bool{
	".git":          true,
	"__pycache__":   true,
	"node_modules":  true,
	".venv":         true,
	"venv":          true,
	".env":          true,
	"env":           true,
	"build":         true,
	"dist":          true,
	".pytest_cache": true,
	".egg-info":     true,
}

func isSkippedDirName(name string) bool {
	return skipDirNames[name] || strings.HasSuffix(name, packagingMetaSuffix)
}

// Scanner discovers the text files under a root that survive ignore rules
// and include/exclude patterns.
type Scanner struct {
	opts  Options
	stats ScanStats
}

// fileFilter is one stage of the candidate pipeline. keep reports whether
// the file survives the stage.
type fileFilter struct {
	name string
	keep func(path string) bool
}

// fileFilters returns the ordered filter pipeline for one discovery pass.
// Precedence: binary classification, then ignore rules, then exclude
// patterns, then include patterns. Absent include patterns keep
// everything.
func (s *Scanner) fileFilters(root string, scopes IgnoreScopes) []fileFilter {
	filters := []fileFilter{
		{"binary", func(p string) bool { return IsTextFile(p, s.opts.MaxFileSize) }},
	}
	if scopes != nil {
		filters = append(filters, fileFilter{"ignored", func(p string) bool {
			return !scopes.IsIgnored(p)
		}})
	}
	if len(s.opts.ExcludePatterns) > 0 {
		filters = append(filters, fileFilter{"excluded", func(p string) bool {
			ok, _ := Matches(p, s.opts.ExcludePatterns, root)
			return !ok
		}})
	}
	if len(s.opts.IncludePatterns) > 0 {
		filters = append(filters, fileFilter{"not included", func(p string) bool {
			ok, _ := Matches(p, s.opts.IncludePatterns, root)
			return ok
		}})
	}
	return filters
}

// NewScanner creates a scanner. Zero-valued options get defaults.
func NewScanner(opts Options) *Scanner {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	return &Scanner{opts: opts}
}

// Stats returns counters from the most recent Discover call.
func (s *Scanner) Stats() ScanStats {
	return s.stats
}

// Discover walks the tree rooted at root and returns the sorted list of
// absolute file paths that survive every filter stage. Filter precedence
// per file: binary classification, ignore rules, exclude patterns, include
// patterns (absent include patterns pass everything). I/O errors on
// individual subtrees are logged and skipped; discovery always returns the
// files it could examine.
func (s *Scanner) Discover(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("root path does not exist: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path is not a directory: %s", absRoot)
	}

	s.stats = ScanStats{}

	var scopes IgnoreScopes
	if s.opts.UseIgnoreRules {
		scopes = LoadIgnoreScopes(absRoot)
	}
	filters := s.fileFilters(absRoot, scopes)

	var files []string
	walkErr := filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("Cannot access path during discovery", "path", p, "error", err)
			return nil
		}

		relPath, relErr := filepath.Rel(absRoot, p)
		if relErr != nil {
			relPath = p
		}

		if d.IsDir() {
			if p != absRoot && s.shouldSkipDir(d.Name(), relPath) {
				s.stats.DirsSkipped++
				return filepath.SkipDir
			}
			return nil
		}

		// Ignore files configure filtering; they are not content.
		if d.Name() == ignoreFileName {
			return nil
		}

		for _, f := range filters {
			if !f.keep(p) {
				log.Debug("File rejected", "path", relPath, "stage", f.name)
				s.stats.FilesSkipped++
				return nil
			}
		}

		s.stats.FilesFound++
		files = append(files, p)
		return nil
	})
	if walkErr != nil {
		log.Warn("Discovery incomplete", "root", absRoot, "error", walkErr)
	}

	sort.Strings(files)
	return files, nil
}

// shouldSkipDir prunes skip-list names, packaging-metadata names, and any
// directory whose relative path already contains such a segment.
func (s *Scanner) shouldSkipDir(name, relPath string) bool {
	if isSkippedDirName(name) {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(relPath), "/") {
		if isSkippedDirName(part) {
			return true
		}
	}
	return false
}
