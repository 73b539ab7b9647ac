package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizePath tests path canonicalization.
func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"forward slashes kept", "src/main.py", "src/main.py"},
		{"backslashes collapsed", `src\main.py`, "src/main.py"},
		{"case folded", "SRC/Main.PY", "src/main.py"},
		{"trailing separator stripped", "src/pkg/", "src/pkg"},
		{"multiple trailing separators stripped", "src/pkg///", "src/pkg"},
		{"root kept", "/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("empty path is a contract violation", func(t *testing.T) {
		_, err := NormalizePath("")
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{`Src\Pkg\`, "a/b/c", "MIXED/case/Path/"}
		for _, in := range inputs {
			once, err := NormalizePath(in)
			require.NoError(t, err)
			twice, err := NormalizePath(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		}
	})
}

// TestMatches tests the three-way pattern match policy.
func TestMatches(t *testing.T) {
	root := filepath.Join("/", "repo")

	tests := []struct {
		name     string
		path     string
		patterns []string
		expected bool
	}{
		{"filename glob", filepath.Join(root, "src", "main.py"), []string{"*.py"}, true},
		{"filename glob case-insensitive", filepath.Join(root, "src", "Main.PY"), []string{"*.py"}, true},
		{"relative path glob", filepath.Join(root, "src", "main.py"), []string{"src/*.py"}, true},
		{"structural doublestar", filepath.Join(root, "a", "b", "c", "x.ts"), []string{"a/**/*.ts"}, true},
		{"directory-style pattern", filepath.Join(root, "docs", "api", "index.md"), []string{"docs/"}, true},
		{"directory-style non-match", filepath.Join(root, "src", "index.md"), []string{"docs/"}, false},
		{"no pattern matches", filepath.Join(root, "src", "main.py"), []string{"*.js", "*.go"}, false},
		{"empty pattern list never matches", filepath.Join(root, "src", "main.py"), nil, false},
		{"path outside root is a non-match", filepath.Join("/", "elsewhere", "main.py"), []string{"*.py"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Matches(tt.path, tt.patterns, root)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("empty path is a contract violation", func(t *testing.T) {
		_, err := Matches("", []string{"*.py"}, root)
		assert.ErrorIs(t, err, ErrEmptyPath)
	})
}

// TestIgnoreScopes tests nested ignore file loading and scope ancestry.
func TestIgnoreScopes(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	deep := filepath.Join(sub, "deep")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	writeFile(t, filepath.Join(root, ".gitignore"), "# comment\n\n*.log\n")
	writeFile(t, filepath.Join(sub, ".gitignore"), "secret.txt\n")

	scopes := LoadIgnoreScopes(root)
	require.Len(t, scopes, 2)
	assert.Equal(t, []string{"*.log"}, scopes[root])
	assert.Equal(t, []string{"secret.txt"}, scopes[sub])

	t.Run("outer scope applies to nested files", func(t *testing.T) {
		assert.True(t, scopes.IsIgnored(filepath.Join(deep, "app.log")))
	})

	t.Run("inner scope applies beneath its directory", func(t *testing.T) {
		assert.True(t, scopes.IsIgnored(filepath.Join(sub, "secret.txt")))
		assert.True(t, scopes.IsIgnored(filepath.Join(deep, "secret.txt")))
	})

	t.Run("inner scope does not apply above its directory", func(t *testing.T) {
		assert.False(t, scopes.IsIgnored(filepath.Join(root, "secret.txt")))
	})

	t.Run("path outside all scopes is never ignored", func(t *testing.T) {
		assert.False(t, scopes.IsIgnored(filepath.Join(t.TempDir(), "app.log")))
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
