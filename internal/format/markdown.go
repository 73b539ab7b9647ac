package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/user/repopack/internal/scan"
)

// languageTags maps file extensions to fenced-code-block language tags.
var languageTags = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".jsx":  "jsx",
	".ts":   "typescript",
	".tsx":  "tsx",
	".go":   "go",
	".java": "java",
	".cpp":  "cpp",
	".c":    "c",
	".h":    "c",
	".css":  "css",
	".html": "html",
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".toml": "toml",
	".md":   "markdown",
	".sh":   "bash",
	".sql":  "sql",
}

// sizeTruncationMarker is appended inside a file's code fence when its
// content was cut at the byte limit.
const sizeTruncationMarker = "[... File truncated due to size limit ...]"

func renderMarkdown(info RepoInfo, opts RenderOptions) string {
	var out []string

	out = append(out, "# Repository Context\n")

	out = append(out, "## File System Location\n")
	out = append(out, info.AbsolutePath+"\n")

	out = append(out, "## Git Info\n")
	if info.Git != nil && info.Git.Err == "" {
		out = append(out, fmt.Sprintf("- Commit: %s", info.Git.Commit))
		out = append(out, fmt.Sprintf("- Branch: %s", info.Git.Branch))
		out = append(out, fmt.Sprintf("- Author: %s", info.Git.Author))
		out = append(out, fmt.Sprintf("- Date: %s\n", info.Git.Date))
	} else {
		out = append(out, "- Not a git repository\n")
	}

	out = append(out, "## Structure\n```")
	if info.Structure != "" {
		out = append(out, info.Structure)
	} else {
		out = append(out, "No files found")
	}
	out = append(out, "```\n")

	if len(info.Files) > 0 {
		if opts.Recent {
			out = append(out, fmt.Sprintf("## Recent Changes (Last %d Days)\n", scan.DefaultRecencyWindowDays))
		} else {
			out = append(out, "## File Contents\n")
		}

		for _, f := range info.Files {
			out = append(out, fileHeading(f, opts.Recent))

			lang := languageTags[strings.ToLower(filepath.Ext(f.RelativePath))]
			out = append(out, "```"+lang)
			out = append(out, f.Content)
			if f.Truncated == scan.TruncateSize {
				out = append(out, "\n"+sizeTruncationMarker)
			}
			out = append(out, "```\n")
		}
	}

	out = append(out, "## Summary")
	out = append(out, fmt.Sprintf("- Total files: %d", info.Summary.TotalFiles))
	out = append(out, fmt.Sprintf("- Total lines: %d", info.Summary.TotalLines))

	if opts.ShowTokens {
		rendered := strings.Join(out, "\n")
		out = append(out, fmt.Sprintf("- Estimated tokens: %d", NewEstimator().Count(rendered)))
	}

	return strings.Join(out, "\n")
}

// fileHeading annotates the per-file heading with modification age when
// rendering a recency-filtered document.
func fileHeading(f scan.FileRecord, recent bool) string {
	if recent {
		if info, err := os.Stat(f.AbsolutePath); err == nil {
			daysAgo := int(time.Since(info.ModTime()).Hours() / 24)
			return fmt.Sprintf("### File: %s (modified %d days ago)", f.RelativePath, daysAgo)
		}
	}
	return fmt.Sprintf("### File: %s", f.RelativePath)
}
