package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hariharan346/security-guardian/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadFile(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "guardian.yml", `
exclude:
  - vendor
  - testdata
include: "**/*.py"
threads: 8
validate: true
patterns:
  - name: Internal Service Token
    regex: 'IST-[0-9a-f]{32}'
    severity: high
context_keywords:
  - staging
actions:
  medium: block
`)
	cfg, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor", "testdata"}, cfg.Exclude)
	require.NotNil(t, cfg.Include)
	assert.Equal(t, "**/*.py", *cfg.Include)
	require.NotNil(t, cfg.Threads)
	assert.Equal(t, 8, *cfg.Threads)
	require.NotNil(t, cfg.Validate)
	assert.True(t, *cfg.Validate)
	assert.Nil(t, cfg.NoColor, "unset fields stay nil")
	require.Len(t, cfg.Patterns, 1)
	assert.Equal(t, "Internal Service Token", cfg.Patterns[0].Name)
	assert.Equal(t, map[string]string{"medium": "block"}, cfg.Actions)
}

func TestLoadLocalSearchOrder(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "guardian.yml", "threads: 2\n")
	writeConfig(t, dir, ".guardian.yml", "threads: 9\n")

	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Threads)
	assert.Equal(t, 9, *cfg.Threads, "the dotfile variant wins")
}

func TestLoadLocalMissing(t *testing.T) {
	_, err := LoadLocal(t.TempDir())
	assert.Error(t, err)
}

func TestBuildPolicyDefaults(t *testing.T) {
	var fc FileConfig
	eng, err := fc.BuildPolicy()
	require.NoError(t, err)
	assert.Equal(t, types.ActionBlock, eng.Action(types.SevCritical))
}

func TestBuildPolicyAppliesSections(t *testing.T) {
	fc := FileConfig{
		Patterns:        []PatternConfig{{Name: "Internal Token", Regex: `IST-[0-9a-f]{32}`, Severity: "HIGH"}},
		ContextKeywords: []string{"staging"},
		Actions:         map[string]string{"medium": "block"},
	}
	eng, err := fc.BuildPolicy()
	require.NoError(t, err)

	last := eng.Patterns()[len(eng.Patterns())-1]
	assert.Equal(t, "Internal Token", last.Name)
	assert.Equal(t, types.SevHigh, last.Severity)
	assert.Contains(t, eng.ContextKeywords(), "staging")
	assert.Equal(t, types.ActionBlock, eng.Action(types.SevMedium))
}

func TestBuildPolicyRejectsDefects(t *testing.T) {
	bad := []FileConfig{
		{Patterns: []PatternConfig{{Name: "x", Regex: "([", Severity: "high"}}},
		{Patterns: []PatternConfig{{Name: "x", Regex: ".", Severity: "severe"}}},
		{Actions: map[string]string{"medium": "explode"}},
		{Actions: map[string]string{"mediumish": "warn"}},
	}
	for i, fc := range bad {
		_, err := fc.BuildPolicy()
		assert.Error(t, err, "case %d must fail before the scan starts", i)
	}
}
