// Package pack orchestrates one packaging run: discovery, content
// reading, record assembly, and git provenance for each requested root.
package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/user/repopack/internal/format"
	"github.com/user/repopack/internal/gitinfo"
	"github.com/user/repopack/internal/scan"
)

// Options are the tunables for one packaging run.
type Options struct {
	MaxFileSize       int64
	IncludePatterns   []string
	ExcludePatterns   []string
	UseIgnoreRules    bool
	Recent            bool
	RecencyWindowDays int
	LineNumbers       bool
	PreviewLines      int // 0 disables preview truncation
}

// ProcessPaths packages every requested root. A root that fails is logged
// and skipped; the run continues with the remaining roots. Remote git
// URLs are cloned into a temporary directory and removed afterwards.
func ProcessPaths(paths []string, opts Options) []format.RepoInfo {
	var results []format.RepoInfo
	for _, p := range paths {
		target := p
		var tempClone string

		if gitinfo.IsRemoteURL(p) {
			dir, err := gitinfo.Clone(p)
			if err != nil {
				log.Error("Failed to fetch remote repository", "url", p, "error", err)
				continue
			}
			target = dir
			tempClone = dir
		}

		info, err := ProcessPath(target, opts)
		if tempClone != "" {
			_ = os.RemoveAll(tempClone)
		}
		if err != nil {
			log.Error("Failed to process path", "path", p, "error", err)
			continue
		}
		results = append(results, info)
	}
	return results
}

// ProcessPath packages a single root, which may be a directory or a file.
func ProcessPath(path string, opts Options) (format.RepoInfo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return format.RepoInfo{}, fmt.Errorf("failed to resolve path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return format.RepoInfo{}, fmt.Errorf("cannot access path: %w", err)
	}

	if info.IsDir() {
		return processDirectory(abs, opts)
	}
	return processSingleFile(abs, opts), nil
}

func processDirectory(root string, opts Options) (format.RepoInfo, error) {
	scanner := scan.NewScanner(scan.Options{
		MaxFileSize:     opts.MaxFileSize,
		IncludePatterns: opts.IncludePatterns,
		ExcludePatterns: opts.ExcludePatterns,
		UseIgnoreRules:  opts.UseIgnoreRules,
	})
	files, err := scanner.Discover(root)
	if err != nil {
		return format.RepoInfo{}, err
	}

	if opts.Recent {
		days := opts.RecencyWindowDays
		if days <= 0 {
			days = scan.DefaultRecencyWindowDays
		}
		files = scan.FilterRecent(files, days)
	}

	records := make([]scan.FileRecord, 0, len(files))
	totalLines := 0
	for _, f := range files {
		rel, relErr := filepath.Rel(root, f)
		if relErr != nil {
			rel = f
		}
		rec := buildRecord(f, filepath.ToSlash(rel), opts)
		records = append(records, rec)
		totalLines += rec.Lines
	}

	return format.RepoInfo{
		AbsolutePath: root,
		Git:          gitinfo.Collect(root),
		Structure:    format.Tree(files, root),
		Files:        records,
		Summary:      format.Summary{TotalFiles: len(records), TotalLines: totalLines},
	}, nil
}

// processSingleFile packages a file root: one record, the bare filename
// as structure, and git provenance looked up from the parent directory.
func processSingleFile(path string, opts Options) format.RepoInfo {
	rec := buildRecord(path, filepath.Base(path), opts)

	return format.RepoInfo{
		AbsolutePath: filepath.Dir(path),
		Git:          gitinfo.Collect(filepath.Dir(path)),
		Structure:    filepath.Base(path),
		Files:        []scan.FileRecord{rec},
		Summary:      format.Summary{TotalFiles: 1, TotalLines: rec.Lines},
	}
}

// buildRecord reads one file and assembles its record. The line count is
// taken before any preview cut; a configured preview limit takes
// precedence over the size-truncation marker.
func buildRecord(path, rel string, opts Options) scan.FileRecord {
	content, truncated := scan.ReadFileContent(path, opts.MaxFileSize)

	if opts.LineNumbers && content != "" {
		content = numberLines(content)
	}

	lines := scan.CountLines(content)

	marker := scan.TruncateNone
	if opts.PreviewLines > 0 {
		content, _ = scan.ApplyPreview(content, opts.PreviewLines)
		marker = scan.TruncatePreview
	} else if truncated {
		marker = scan.TruncateSize
	}

	return scan.FileRecord{
		RelativePath: rel,
		AbsolutePath: path,
		Content:      content,
		Truncated:    marker,
		Lines:        lines,
	}
}

// numberLines prefixes every content line with its 1-based line number.
func numberLines(content string) string {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = fmt.Sprintf("%d: %s", i+1, line)
	}
	return strings.Join(lines, "\n")
}

// Combine merges the documents of multiple roots into one: files are
// concatenated and summaries summed. Git provenance and structure do not
// carry over to a combined document.
func Combine(infos []format.RepoInfo) format.RepoInfo {
	if len(infos) == 1 {
		return infos[0]
	}

	combined := format.RepoInfo{AbsolutePath: "Multiple paths processed"}
	for _, info := range infos {
		combined.Files = append(combined.Files, info.Files...)
		combined.Summary.TotalFiles += info.Summary.TotalFiles
		combined.Summary.TotalLines += info.Summary.TotalLines
	}
	return combined
}
