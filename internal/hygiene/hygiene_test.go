package hygiene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	tracked map[string]bool
	ignored map[string]bool
}

func (fakeRepo) IsRepository(string) bool         { return true }
func (fakeRepo) Tracked(string) []string          { return nil }
func (fakeRepo) Staged(string) []string           { return nil }
func (fakeRepo) Untracked(string) []string        { return nil }
func (f fakeRepo) PathTracked(_, rel string) bool { return f.tracked[rel] }
func (f fakeRepo) PathIgnored(_, rel string) bool { return f.ignored[rel] }

func touch(t *testing.T, root, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
}

func TestCheckNoDotenvIsSilentPass(t *testing.T) {
	v := Check(t.TempDir(), fakeRepo{})
	assert.False(t, v.Block)
	assert.Empty(t, v.Messages)
}

func TestCheckTrackedDotenvBlocks(t *testing.T) {
	root := t.TempDir()
	touch(t, root, ".env", "SECRET=1")
	// short-circuit: no .gitignore either, but the tracked rule wins
	v := Check(root, fakeRepo{tracked: map[string]bool{".env": true}})
	assert.True(t, v.Block)
	require.Len(t, v.Messages, 1)
	assert.Equal(t, "[BLOCK] .env file is TRACKED by git! (Real Leak Risk)", v.Messages[0])
}

func TestCheckMissingGitignoreWarns(t *testing.T) {
	root := t.TempDir()
	touch(t, root, ".env", "SECRET=1")
	v := Check(root, fakeRepo{})
	assert.False(t, v.Block)
	require.Len(t, v.Messages, 1)
	assert.Equal(t, "[WARN] .env exists but .gitignore is MISSING.", v.Messages[0])
}

func TestCheckUnignoredDotenvWarns(t *testing.T) {
	root := t.TempDir()
	touch(t, root, ".env", "SECRET=1")
	touch(t, root, ".gitignore", "*.log\n")
	v := Check(root, fakeRepo{})
	assert.False(t, v.Block)
	require.Len(t, v.Messages, 1)
	assert.Equal(t, "[WARN] .env exists but is NOT listed in .gitignore.", v.Messages[0])
}

func TestCheckIgnoredDotenvPasses(t *testing.T) {
	root := t.TempDir()
	touch(t, root, ".env", "SECRET=1")
	touch(t, root, ".gitignore", ".env\n")
	v := Check(root, fakeRepo{ignored: map[string]bool{".env": true}})
	assert.False(t, v.Block)
	assert.Empty(t, v.Messages)
}
