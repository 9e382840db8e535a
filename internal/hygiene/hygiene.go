// Package hygiene checks the tracking/ignore status of the well-known .env
// file. It inspects repository state, not file contents, and feeds the block
// decision independently of the content scan.
package hygiene

import (
	"os"
	"path/filepath"

	"github.com/hariharan346/security-guardian/internal/gitrepo"
)

const (
	envFile       = ".env"
	gitignoreFile = ".gitignore"
)

// Verdict is derived fresh each invocation from filesystem and git state.
type Verdict struct {
	Block    bool
	Messages []string
}

// Check applies the five hygiene rules for root:
//
//  1. no .env on disk: silent pass
//  2. .env tracked by the index: block, short-circuit
//  3. .env present, no .gitignore: warn
//  4. .env present, .gitignore exists but does not cover it: warn
//  5. .env present and covered by an ignore rule: silent pass
//
// Git probe failures are treated as "condition false" and fall through to the
// next rule; hygiene never crashes the scan.
func Check(root string, repo gitrepo.View) Verdict {
	if _, err := os.Stat(filepath.Join(root, envFile)); err != nil {
		return Verdict{}
	}

	if repo.PathTracked(root, envFile) {
		return Verdict{
			Block:    true,
			Messages: []string{"[BLOCK] .env file is TRACKED by git! (Real Leak Risk)"},
		}
	}

	if _, err := os.Stat(filepath.Join(root, gitignoreFile)); err != nil {
		return Verdict{
			Messages: []string{"[WARN] .env exists but .gitignore is MISSING."},
		}
	}

	if !repo.PathIgnored(root, envFile) {
		return Verdict{
			Messages: []string{"[WARN] .env exists but is NOT listed in .gitignore."},
		}
	}
	return Verdict{}
}
