// Package format renders packaged repository documents as Markdown, JSON,
// or YAML. It consumes the file records and tree assembled by the packing
// layer and knows nothing about discovery.
package format

import (
	"fmt"

	"github.com/user/repopack/internal/gitinfo"
	"github.com/user/repopack/internal/scan"
)

// Format is an output document format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatMarkdown, FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid output format %q, must be one of: markdown, json, yaml", s)
}

// Summary holds the per-root statistics reported in the document.
type Summary struct {
	TotalFiles int `json:"total_files" yaml:"total_files"`
	TotalLines int `json:"total_lines" yaml:"total_lines"`
}

// RepoInfo is one packaged root: its location, provenance, rendered tree,
// file records, and statistics.
type RepoInfo struct {
	AbsolutePath string            `json:"absolute_path" yaml:"absolute_path"`
	Git          *gitinfo.Info     `json:"git_info,omitempty" yaml:"git_info,omitempty"`
	Structure    string            `json:"structure" yaml:"structure"`
	Files        []scan.FileRecord `json:"files" yaml:"files"`
	Summary      Summary           `json:"summary" yaml:"summary"`
}

// RenderOptions adjusts the rendered document.
type RenderOptions struct {
	// ShowTokens appends a token estimate.
	ShowTokens bool
	// Recent annotates file headings with modification age and retitles
	// the contents section.
	Recent bool
}

// Render produces the final document in the requested format.
func Render(info RepoInfo, f Format, opts RenderOptions) (string, error) {
	switch f {
	case FormatJSON:
		return renderJSON(info, opts)
	case FormatYAML:
		return renderYAML(info, opts)
	case FormatMarkdown:
		return renderMarkdown(info, opts), nil
	}
	return "", fmt.Errorf("invalid output format %q", f)
}
