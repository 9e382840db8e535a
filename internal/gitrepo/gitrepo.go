// Package gitrepo wraps the git command line as a repository state adapter.
// Every operation degrades to an empty result when git is missing, the path
// is not a repository, or the command fails: callers treat "no files" and
// "tool unavailable" identically.
package gitrepo

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// View is the capability the scanning core depends on. A concrete
// implementation shells out to git; tests substitute an in-memory fake.
type View interface {
	IsRepository(root string) bool
	Tracked(root string) []string
	Staged(root string) []string
	Untracked(root string) []string
	PathTracked(root, rel string) bool
	PathIgnored(root, rel string) bool
}

// CLI runs the git binary as a subprocess scoped to the target root.
type CLI struct{}

// runLines executes git with the given args and returns trimmed, non-blank
// output lines. Any failure (binary missing, not a repository, non-zero exit)
// yields nil.
func runLines(root string, args ...string) []string {
	cmd := exec.Command("git", append([]string{"-C", root}, args...)...)
	// never inherit interactive stdio; git must not prompt mid-scan
	cmd.Stdin = nil
	out, err := cmd.Output()
	if err != nil {
		return nil
	}
	var lines []string
	for _, l := range strings.Split(string(out), "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// runOK executes git and reports only whether it exited zero.
func runOK(root string, args ...string) bool {
	cmd := exec.Command("git", append([]string{"-C", root}, args...)...)
	cmd.Stdin = nil
	return cmd.Run() == nil
}

// IsRepository probes whether root is inside a git work tree. A .git directory
// is accepted without spawning a process.
func (CLI) IsRepository(root string) bool {
	if st, err := os.Stat(filepath.Join(root, ".git")); err == nil && st.IsDir() {
		return true
	}
	out := runLines(root, "rev-parse", "--is-inside-work-tree")
	return len(out) == 1 && out[0] == "true"
}

// Tracked returns every path in the index, relative to root.
func (CLI) Tracked(root string) []string {
	return runLines(root, "ls-files")
}

// Staged returns paths with changes in the index awaiting commit.
func (CLI) Staged(root string) []string {
	return runLines(root, "diff", "--name-only", "--cached")
}

// Untracked returns paths on disk that are neither tracked nor ignored.
func (CLI) Untracked(root string) []string {
	return runLines(root, "ls-files", "--others", "--exclude-standard")
}

// PathTracked reports whether a single path is present in the index.
func (CLI) PathTracked(root, rel string) bool {
	return runOK(root, "ls-files", "--error-unmatch", rel)
}

// PathIgnored reports whether a single path is covered by an ignore rule.
func (CLI) PathIgnored(root, rel string) bool {
	return runOK(root, "check-ignore", "-q", rel)
}
