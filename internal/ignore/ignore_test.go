package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchIsSubstringContainment(t *testing.T) {
	m := New(Defaults())
	assert.True(t, m.Match("/repo/node_modules/pkg/index.js"))
	assert.True(t, m.Match("/repo/.git/config"))
	assert.True(t, m.Match("project/__pycache__/mod.pyc"))
	assert.False(t, m.Match("/repo/src/app.py"))

	// containment is the contract: a directory merely containing a default
	// pattern as a substring is excluded too
	assert.True(t, m.Match("/repo/bin-tools/run.sh"))
	assert.True(t, m.Match("/repo/distribution/notes.md"))
}

func TestMatchNormalizesBothSides(t *testing.T) {
	m := New([]string{"secrets/"})
	assert.True(t, m.Match("/repo/secrets/key.txt"))
	assert.True(t, m.Match("/repo/./secrets/key.txt"))
}

func TestNewDropsBlankPatterns(t *testing.T) {
	m := New([]string{"", "  ", "keep"})
	assert.Equal(t, []string{"keep"}, m.Patterns())
	assert.False(t, m.Match("/anything/else"))
}

func TestEmptyMatcherMatchesNothing(t *testing.T) {
	var m Matcher
	assert.False(t, m.Match("/repo/node_modules/x"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := "# comment line\n\nvendor\n  generated  \n#another\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got := LoadFile(path)
	assert.Equal(t, []string{"vendor", "generated"}, got)
}

func TestLoadFileMissingIsSilent(t *testing.T) {
	assert.Nil(t, LoadFile(filepath.Join(t.TempDir(), "nope")))
}
