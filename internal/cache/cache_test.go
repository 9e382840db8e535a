package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hariharan346/security-guardian/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	assert.Equal(t, "0000000000000000", Hash(nil))
	assert.Len(t, Hash([]byte("content")), 16)
	assert.Equal(t, Hash([]byte("content")), Hash([]byte("content")))
	assert.NotEqual(t, Hash([]byte("content")), Hash([]byte("content!")))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	db := DB{Entries: map[string]Entry{
		"/abs/path/a.txt": {
			Hash: Hash([]byte("a")),
			Findings: []types.Finding{
				{Path: "/abs/path/a.txt", Line: 2, Type: "AWS Access Key", Severity: types.SevCritical, Snippet: "AKIA..."},
			},
		},
		"/abs/path/clean.txt": {Hash: Hash([]byte("b"))},
	}}
	require.NoError(t, Save(root, db))

	got, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, db.Entries, got.Entries)
}

func TestSavePrefersGitDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))

	require.NoError(t, Save(root, DB{Entries: map[string]Entry{"x": {Hash: "abc"}}}))
	_, err := os.Stat(filepath.Join(root, ".git", "guardian-cache.json"))
	assert.NoError(t, err, "cache must live under .git when available so it is never committed")
	_, err = os.Stat(filepath.Join(root, ".guardian-cache.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadMissingOrCorrupt(t *testing.T) {
	root := t.TempDir()
	db, err := Load(root)
	assert.Error(t, err)
	assert.NotNil(t, db.Entries, "callers always get a usable map")

	require.NoError(t, os.WriteFile(filepath.Join(root, ".guardian-cache.json"), []byte("{broken"), 0o644))
	db, err = Load(root)
	assert.Error(t, err)
	assert.NotNil(t, db.Entries)
}
