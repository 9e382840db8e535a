// Package audit keeps an append-only JSONL log of scan invocations so teams
// can review when scans ran and what they decided.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hariharan346/security-guardian/internal/types"
)

// ScanRecord summarizes one scan invocation.
type ScanRecord struct {
	Timestamp      time.Time      `json:"timestamp"`
	ScanID         string         `json:"scan_id"`
	Root           string         `json:"root"`
	Mode           types.ScanMode `json:"mode"`
	Blocking       bool           `json:"blocking"`
	TotalFindings  int            `json:"total_findings"`
	FilesScanned   int            `json:"files_scanned"`
	Duration       string         `json:"duration"`
	SeverityCounts map[string]int `json:"severity_counts,omitempty"`
}

// Summarize builds a record from scan output.
func Summarize(root string, mode types.ScanMode, blocking bool, filesScanned int, dur time.Duration, findings []types.Finding) ScanRecord {
	counts := map[string]int{}
	for _, f := range findings {
		counts[f.Severity.String()]++
	}
	return ScanRecord{
		Timestamp:      time.Now(),
		Root:           root,
		Mode:           mode,
		Blocking:       blocking,
		TotalFindings:  len(findings),
		FilesScanned:   filesScanned,
		Duration:       dur.String(),
		SeverityCounts: counts,
	}
}

// Log is an append-only JSONL file, kept under .git when possible so it never
// gets committed.
type Log struct {
	path string
}

func New(root string) *Log {
	gitDir := filepath.Join(root, ".git")
	path := filepath.Join(root, ".guardian-audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		path = filepath.Join(gitDir, "guardian-audit.jsonl")
	}
	return &Log{path: path}
}

// Append writes one record. The log carries finding metadata, so permissions
// are restricted to the owner.
func (l *Log) Append(record ScanRecord) error {
	if record.ScanID == "" {
		record.ScanID = fmt.Sprintf("scan_%d", time.Now().Unix())
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// History returns prior records, newest first. Unparseable lines are skipped.
func (l *Log) History() ([]ScanRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		var r ScanRecord
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			continue
		}
		records = append(records, r)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}
