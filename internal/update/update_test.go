package update

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "1.2.3", normalize("v1.2.3"))
	assert.Equal(t, "1.2.3", normalize("  1.2.3 "))
	assert.Equal(t, "", normalize(""))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 1, compare("1.2.3", "1.2.2"))
	assert.Equal(t, -1, compare("1.2.3", "1.10.0"))
	assert.Equal(t, 0, compare("1.2.3", "1.2.3"))
	assert.Equal(t, 1, compare("1.2.3.1", "1.2.3"))
	assert.Equal(t, 0, compare("1.2.0", "1.2"))
}

func TestAtoiSafe(t *testing.T) {
	assert.Equal(t, 12, atoiSafe("12"))
	assert.Equal(t, 12, atoiSafe("12-rc1"))
	assert.Equal(t, 0, atoiSafe("rc1"))
}

func TestCheckSkipsInCI(t *testing.T) {
	t.Setenv("CI", "true")
	latest, newer, err := Check("0.1.0", false)
	assert.NoError(t, err)
	assert.False(t, newer)
	assert.Empty(t, latest)
}
