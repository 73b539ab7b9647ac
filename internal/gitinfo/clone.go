package gitinfo

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// IsRemoteURL reports whether the argument names a remote repository
// rather than a local path. Only unambiguous forms are recognized: the
// .git suffix and the SSH shorthand.
func IsRemoteURL(s string) bool {
	return strings.HasSuffix(s, ".git") || strings.HasPrefix(s, "git@")
}

// Clone fetches the default branch of a remote repository into a fresh
// temporary directory and returns its path. The caller removes the
// directory when done.
func Clone(url string) (string, error) {
	tempDir, err := os.MkdirTemp("", "repopack-git-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	log.Info("Cloning repository", "url", url, "dir", tempDir)

	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Depth:         1,
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to clone repository %q: %w", url, err)
	}

	return tempDir, nil
}
