package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity is the risk level assigned to a finding. The numeric order is
// meaningful: escalation compares severities, so LOW < MEDIUM < HIGH < CRITICAL.
type Severity int

const (
	SevLow Severity = iota
	SevMedium
	SevHigh
	SevCritical
)

var severityNames = map[Severity]string{
	SevLow:      "LOW",
	SevMedium:   "MEDIUM",
	SevHigh:     "HIGH",
	SevCritical: "CRITICAL",
}

// Severities lists every known severity in ascending order. The policy table
// must map each of these or fail at load.
func Severities() []Severity {
	return []Severity{SevLow, SevMedium, SevHigh, SevCritical}
}

func (s Severity) String() string {
	if n, ok := severityNames[s]; ok {
		return n
	}
	return fmt.Sprintf("SEVERITY(%d)", int(s))
}

// ParseSeverity accepts the canonical names case-insensitively.
func ParseSeverity(s string) (Severity, error) {
	for sev, name := range severityNames {
		if strings.EqualFold(s, name) {
			return sev, nil
		}
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	sev, err := ParseSeverity(raw)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// Action is the operational consequence the policy assigns to a severity.
type Action string

const (
	ActionIgnore Action = "IGNORE"
	ActionWarn   Action = "WARN"
	ActionBlock  Action = "BLOCK"
)

// ParseAction accepts action names case-insensitively.
func ParseAction(s string) (Action, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "IGNORE":
		return ActionIgnore, nil
	case "WARN":
		return ActionWarn, nil
	case "BLOCK":
		return ActionBlock, nil
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// ScanMode selects which repository view feeds file selection.
type ScanMode string

const (
	ModeDefault   ScanMode = "default"   // tracked files only
	ModeStaged    ScanMode = "staged"    // index vs HEAD
	ModeUntracked ScanMode = "untracked" // tracked + untracked (non-ignored)
	ModeAllFiles  ScanMode = "all-files" // full recursive enumeration
)

// Finding describes a single detected secret: where it was found, which
// signature (or the entropy fallback) matched, and the policy outcome.
// Findings are immutable once created; ordering is file traversal order.
type Finding struct {
	Path       string   `json:"file"`
	Line       int      `json:"line"`
	Type       string   `json:"type"`
	Severity   Severity `json:"severity"`
	Action     Action   `json:"action"`
	Snippet    string   `json:"content"`
	Validation string   `json:"validation,omitempty"`
}
