// Package ignore implements the exclusion set: built-in defaults, user
// supplied patterns, and entries loaded from the repo-local ignore file.
//
// Matching is plain substring containment against the normalized path, not
// glob or regex. That is deliberately simple and preserved for compatibility;
// it means a pattern like "bin" also excludes a directory named "bin-tools".
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the repo-local ignore file consulted before file selection.
const FileName = ".security-guardian-ignore"

// Defaults returns the built-in exclusion patterns covering VCS metadata,
// package caches and build output directories.
func Defaults() []string {
	return []string{
		".git", ".svn", ".hg", "__pycache__",
		".venv", "venv", "env", "node_modules",
		"dist", "build", ".egg-info", "target", "bin", "obj",
	}
}

// Matcher holds normalized exclusion patterns.
type Matcher struct {
	patterns []string
}

// New builds a matcher from the given patterns. Each pattern is normalized
// the same way matched paths are, and blanks are dropped.
func New(patterns []string) Matcher {
	var out []string
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, filepath.Clean(p))
	}
	return Matcher{patterns: out}
}

// Match reports whether any exclusion pattern is a substring of the
// normalized path.
func (m Matcher) Match(path string) bool {
	p := filepath.Clean(path)
	for _, pat := range m.patterns {
		if strings.Contains(p, pat) {
			return true
		}
	}
	return false
}

// Patterns returns the normalized pattern list.
func (m Matcher) Patterns() []string { return m.patterns }

// LoadFile reads one exclusion pattern per line from path. Blank lines and
// lines starting with '#' are skipped. A missing or unreadable file yields
// no patterns and no error: the ignore file is optional.
func LoadFile(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
