package pack

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/repopack/internal/format"
	"github.com/user/repopack/internal/scan"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestProcessPathDirectory tests packaging a directory root.
func TestProcessPathDirectory(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	writeFile(t, filepath.Join(root, "README.md"), "# Title\n\nBody\n")
	writeFile(t, filepath.Join(sub, "main.py"), "print('hi')\n")

	info, err := ProcessPath(root, Options{UseIgnoreRules: true})
	require.NoError(t, err)

	assert.Equal(t, root, info.AbsolutePath)
	require.NotNil(t, info.Git)
	assert.Equal(t, "Not a git repository", info.Git.Err)

	require.Len(t, info.Files, 2)
	assert.Equal(t, "README.md", info.Files[0].RelativePath)
	assert.Equal(t, "src/main.py", info.Files[1].RelativePath)
	assert.Equal(t, scan.TruncateNone, info.Files[0].Truncated)

	assert.Equal(t, 2, info.Summary.TotalFiles)
	assert.Equal(t, info.Files[0].Lines+info.Files[1].Lines, info.Summary.TotalLines)

	assert.Contains(t, info.Structure, "README.md")
	assert.Contains(t, info.Structure, "src")
}

// TestProcessPathFile tests packaging a single-file root.
func TestProcessPathFile(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "notes.txt")
	writeFile(t, p, "one\ntwo\n")

	info, err := ProcessPath(p, Options{})
	require.NoError(t, err)

	assert.Equal(t, root, info.AbsolutePath)
	assert.Equal(t, "notes.txt", info.Structure)
	require.Len(t, info.Files, 1)
	assert.Equal(t, "notes.txt", info.Files[0].RelativePath)
	assert.Equal(t, 1, info.Summary.TotalFiles)
}

// TestProcessPathMissing tests that a nonexistent root errors.
func TestProcessPathMissing(t *testing.T) {
	_, err := ProcessPath(filepath.Join(t.TempDir(), "gone"), Options{})
	assert.Error(t, err)
}

// TestBuildRecord tests record assembly rules.
func TestBuildRecord(t *testing.T) {
	dir := t.TempDir()

	t.Run("line numbers", func(t *testing.T) {
		p := filepath.Join(dir, "numbered.txt")
		writeFile(t, p, "alpha\nbeta\n")

		rec := buildRecord(p, "numbered.txt", Options{LineNumbers: true})
		assert.Equal(t, "1: alpha\n2: beta", rec.Content)
	})

	t.Run("preview marker wins over size marker", func(t *testing.T) {
		p := filepath.Join(dir, "both.txt")
		writeFile(t, p, strings.Repeat("line\n", 100))

		// Size limit forces truncation, but the configured preview takes
		// precedence on the record.
		rec := buildRecord(p, "both.txt", Options{MaxFileSize: 50, PreviewLines: 2})
		assert.Equal(t, scan.TruncatePreview, rec.Truncated)
		assert.Contains(t, rec.Content, "lines elided")
	})

	t.Run("size marker without preview", func(t *testing.T) {
		p := filepath.Join(dir, "big.txt")
		writeFile(t, p, strings.Repeat("a", 100))

		rec := buildRecord(p, "big.txt", Options{MaxFileSize: 50})
		assert.Equal(t, scan.TruncateSize, rec.Truncated)
		assert.Len(t, rec.Content, 50)
	})

	t.Run("line count taken before preview cut", func(t *testing.T) {
		p := filepath.Join(dir, "five.txt")
		writeFile(t, p, "1\n2\n3\n4\n5\n")

		rec := buildRecord(p, "five.txt", Options{PreviewLines: 2})
		assert.Equal(t, 6, rec.Lines) // five lines plus the trailing newline segment
	})
}

// TestCombine tests multi-root merging arithmetic.
func TestCombine(t *testing.T) {
	a := format.RepoInfo{
		AbsolutePath: "/a",
		Files:        []scan.FileRecord{{RelativePath: "x.go", Lines: 3}},
		Summary:      format.Summary{TotalFiles: 1, TotalLines: 3},
	}
	b := format.RepoInfo{
		AbsolutePath: "/b",
		Files:        []scan.FileRecord{{RelativePath: "y.go", Lines: 4}, {RelativePath: "z.go", Lines: 5}},
		Summary:      format.Summary{TotalFiles: 2, TotalLines: 9},
	}

	t.Run("single result passes through", func(t *testing.T) {
		got := Combine([]format.RepoInfo{a})
		assert.Equal(t, a, got)
	})

	t.Run("multiple results merged", func(t *testing.T) {
		got := Combine([]format.RepoInfo{a, b})
		assert.Equal(t, "Multiple paths processed", got.AbsolutePath)
		assert.Nil(t, got.Git)
		assert.Empty(t, got.Structure)
		assert.Len(t, got.Files, 3)
		assert.Equal(t, 3, got.Summary.TotalFiles)
		assert.Equal(t, 12, got.Summary.TotalLines)
	})
}
