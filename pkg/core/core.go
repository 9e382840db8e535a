package core

import (
	"github.com/hariharan346/security-guardian/internal/engine"
	"github.com/hariharan346/security-guardian/internal/gitrepo"
	"github.com/hariharan346/security-guardian/internal/hygiene"
	"github.com/hariharan346/security-guardian/internal/types"
)

// Re-export selected internal types as a stable public API surface. These are
// type aliases so external consumers can depend on a stable path.
type (
	Config   = engine.Config
	Result   = engine.Result
	Finding  = types.Finding
	Severity = types.Severity
	Action   = types.Action
	ScanMode = types.ScanMode
)

const (
	ModeDefault   = types.ModeDefault
	ModeStaged    = types.ModeStaged
	ModeUntracked = types.ModeUntracked
	ModeAllFiles  = types.ModeAllFiles
)

// Scan is the stable entrypoint for other programs.
func Scan(cfg Config) ([]Finding, error) {
	return engine.Scan(cfg)
}

// ScanWithStats returns findings plus counters and the blocking decision.
func ScanWithStats(cfg Config) (Result, error) {
	return engine.ScanWithStats(cfg)
}

// HygieneCheck runs the .env tracking/ignore rules for root and reports
// whether they alone demand a block.
func HygieneCheck(root string) (bool, []string) {
	v := hygiene.Check(root, gitrepo.CLI{})
	return v.Block, v.Messages
}
