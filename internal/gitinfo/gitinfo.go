// Package gitinfo retrieves git provenance for repository roots and
// fetches remote repositories for packaging.
package gitinfo

import (
	"fmt"
	"os/exec"
	"strings"
)

// Info is the provenance block embedded in the packaged document. Err is
// set when the directory is not a repository or a git invocation failed;
// the other fields are empty in that case.
type Info struct {
	Commit string `json:"commit,omitempty" yaml:"commit,omitempty"`
	Branch string `json:"branch,omitempty" yaml:"branch,omitempty"`
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
	Date   string `json:"date,omitempty" yaml:"date,omitempty"`
	Err    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// gitOutput runs one git command with dir as its working directory. The
// invoking process never changes its own working directory, so repeated
// calls across multiple roots cannot leak state.
func gitOutput(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// IsRepository reports whether dir is inside a git work tree.
func IsRepository(dir string) bool {
	_, err := gitOutput(dir, "rev-parse", "--git-dir")
	return err == nil
}

// Collect gathers commit, branch, author, and date for dir. Failures are
// recorded in the result, never returned as errors: a missing repository
// or broken git installation still produces a well-formed document.
func Collect(dir string) *Info {
	if !IsRepository(dir) {
		return &Info{Err: "Not a git repository"}
	}

	commit, err := gitOutput(dir, "rev-parse", "HEAD")
	if err != nil {
		return &Info{Err: fmt.Sprintf("Git command failed: %v", err)}
	}
	branch, err := gitOutput(dir, "branch", "--show-current")
	if err != nil {
		return &Info{Err: fmt.Sprintf("Git command failed: %v", err)}
	}
	logLine, err := gitOutput(dir, "log", "-1", "--format=%an <%ae>%n%cd")
	if err != nil {
		return &Info{Err: fmt.Sprintf("Git command failed: %v", err)}
	}

	author, date := "Unknown", "Unknown"
	if parts := strings.SplitN(logLine, "\n", 2); len(parts) == 2 {
		author, date = parts[0], parts[1]
	} else if len(parts) == 1 && parts[0] != "" {
		author = parts[0]
	}

	return &Info{
		Commit: commit,
		Branch: branch,
		Author: author,
		Date:   date,
	}
}
