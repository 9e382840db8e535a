package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/hariharan346/security-guardian/internal/gitrepo"
	"github.com/hariharan346/security-guardian/internal/ignore"
	"github.com/hariharan346/security-guardian/internal/types"
)

// Select turns a scan mode plus root path into a deduplicated, sorted list of
// absolute file paths. Sorting keeps traversal order deterministic across
// runs regardless of which repository view produced the set.
func Select(root string, mode types.ScanMode, repo gitrepo.View, excl ignore.Matcher) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	// A single file target bypasses mode and exclusion logic entirely.
	if st, err := os.Stat(abs); err == nil && !st.IsDir() {
		return []string{abs}, nil
	}

	// Tracked and staged views are meaningless outside a repository; fall
	// back to full enumeration.
	if (mode == types.ModeDefault || mode == types.ModeStaged) && !repo.IsRepository(abs) {
		mode = types.ModeAllFiles
	}

	if mode == types.ModeAllFiles {
		return walkAll(abs, excl), nil
	}

	var rels []string
	switch mode {
	case types.ModeStaged:
		rels = repo.Staged(abs)
	case types.ModeUntracked:
		rels = append(repo.Tracked(abs), repo.Untracked(abs)...)
	default:
		rels = repo.Tracked(abs)
	}

	seen := make(map[string]bool, len(rels))
	var out []string
	for _, rel := range rels {
		full := filepath.Join(abs, rel)
		if seen[full] {
			continue
		}
		seen[full] = true
		// staged-then-deleted paths are silently dropped
		if _, err := os.Stat(full); err != nil {
			continue
		}
		if excl.Match(full) {
			continue
		}
		out = append(out, full)
	}
	sort.Strings(out)
	return out, nil
}

// walkAll enumerates every file under root, pruning excluded subtrees rather
// than filtering their contents after the fact. Unreadable entries are
// skipped, never fatal.
func walkAll(root string, excl ignore.Matcher) []string {
	var out []string
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != root && excl.Match(p) {
				return filepath.SkipDir
			}
			return nil
		}
		if excl.Match(p) {
			return nil
		}
		out = append(out, p)
		return nil
	})
	return out
}
