package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedExtension(t *testing.T) {
	assert.True(t, allowedExtension("main.go"))
	assert.True(t, allowedExtension("settings.YAML"), "extension match is case-insensitive")
	assert.True(t, allowedExtension("/some/dir/notes.md"))
	assert.False(t, allowedExtension("archive.zip"))
	assert.False(t, allowedExtension("Makefile"), "no extension means not allowed")
	assert.False(t, allowedExtension("photo.png"))
}

func TestLooksBinary(t *testing.T) {
	assert.False(t, looksBinary([]byte("plain text\nwith lines\n")))
	assert.False(t, looksBinary(nil))
	assert.True(t, looksBinary([]byte{'a', 0x00, 'b'}))

	// a NUL past the sniff window does not mark the file binary
	data := append(bytes.Repeat([]byte{'x'}, binarySniffLen), 0x00)
	assert.False(t, looksBinary(data))

	// a NUL at the window edge does
	data2 := append(bytes.Repeat([]byte{'x'}, binarySniffLen-1), 0x00)
	assert.True(t, looksBinary(data2))
}
