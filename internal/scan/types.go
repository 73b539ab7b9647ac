// Package scan implements file discovery and filtering for packaging
// repository contents: tree traversal, pattern matching, ignore rules,
// text/binary classification, and content reading.
package scan

// TruncateType describes how a file's content was cut, if at all.
type TruncateType string

const (
	TruncateNone    TruncateType = ""
	TruncateSize    TruncateType = "size"
	TruncatePreview TruncateType = "preview"
)

// FileRecord is the result of reading one discovered file.
type FileRecord struct {
	RelativePath string       `json:"relative_path" yaml:"relative_path"`
	AbsolutePath string       `json:"absolute_path" yaml:"absolute_path"`
	Content      string       `json:"content" yaml:"content"`
	Truncated    TruncateType `json:"truncated_type,omitempty" yaml:"truncated_type,omitempty"`
	Lines        int          `json:"lines" yaml:"lines"`
}

// Options configures a Scanner.
type Options struct {
	// MaxFileSize is the content read limit in bytes. Files larger than
	// ten times this limit are rejected outright as non-text.
	MaxFileSize int64

	// IncludePatterns, when non-nil, restricts discovery to matching files.
	// A nil slice means no constraint.
	IncludePatterns []string

	// ExcludePatterns removes matching files from discovery.
	ExcludePatterns []string

	// UseIgnoreRules honors .gitignore files found anywhere under the root.
	UseIgnoreRules bool
}

// DefaultMaxFileSize is the content read limit when none is configured.
const DefaultMaxFileSize int64 = 16 * 1024

// DefaultOptions returns scanner options with defaults applied.
func DefaultOptions() Options {
	return Options{
		MaxFileSize:    DefaultMaxFileSize,
		UseIgnoreRules: true,
	}
}

// ScanStats contains counters from a discovery pass.
type ScanStats struct {
	FilesFound   int // Files that survived every filter
	FilesSkipped int // Files rejected by a filter stage
	DirsSkipped  int // Directories pruned from traversal
}
