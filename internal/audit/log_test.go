package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hariharan346/security-guardian/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndHistory(t *testing.T) {
	root := t.TempDir()
	log := New(root)

	require.NoError(t, log.Append(ScanRecord{Root: root, Mode: types.ModeStaged, Blocking: true, TotalFindings: 2}))
	require.NoError(t, log.Append(ScanRecord{Root: root, Mode: types.ModeDefault, TotalFindings: 0}))

	records, err := log.History()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, types.ModeDefault, records[0].Mode, "newest first")
	assert.Equal(t, types.ModeStaged, records[1].Mode)
	assert.True(t, records[1].Blocking)
	assert.NotEmpty(t, records[0].ScanID, "an ID is assigned when the caller leaves it blank")
}

func TestHistorySkipsCorruptLines(t *testing.T) {
	root := t.TempDir()
	log := New(root)
	require.NoError(t, log.Append(ScanRecord{Root: root, TotalFindings: 1}))

	f, err := os.OpenFile(filepath.Join(root, ".guardian-audit.jsonl"), os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString("{not json\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, log.Append(ScanRecord{Root: root, TotalFindings: 3}))

	records, err := log.History()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 3, records[0].TotalFindings)
	assert.Equal(t, 1, records[1].TotalFindings)
}

func TestHistoryMissingLog(t *testing.T) {
	_, err := New(t.TempDir()).History()
	assert.Error(t, err)
}

func TestLogLivesUnderGitDirWhenPresent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))

	require.NoError(t, New(root).Append(ScanRecord{Root: root}))
	_, err := os.Stat(filepath.Join(root, ".git", "guardian-audit.jsonl"))
	assert.NoError(t, err)
}

func TestSummarize(t *testing.T) {
	findings := []types.Finding{
		{Severity: types.SevCritical},
		{Severity: types.SevCritical},
		{Severity: types.SevMedium},
	}
	r := Summarize("/repo", types.ModeStaged, true, 10, 1234*time.Millisecond, findings)
	assert.Equal(t, "/repo", r.Root)
	assert.Equal(t, types.ModeStaged, r.Mode)
	assert.True(t, r.Blocking)
	assert.Equal(t, 3, r.TotalFindings)
	assert.Equal(t, 10, r.FilesScanned)
	assert.Equal(t, map[string]int{"CRITICAL": 2, "MEDIUM": 1}, r.SeverityCounts)
	assert.WithinDuration(t, time.Now(), r.Timestamp, time.Minute)
}
