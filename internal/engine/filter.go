package engine

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Extensions considered safe to open when the caller has not forced all-files
// scanning. This is a closed list: adding a format is a code change here, not
// runtime configuration.
var safeExtensions = map[string]bool{
	// code
	".py": true, ".js": true, ".ts": true, ".jsx": true, ".tsx": true,
	".java": true, ".go": true, ".rb": true, ".php": true, ".c": true,
	".cpp": true, ".cs": true, ".swift": true, ".rs": true, ".kt": true,
	".scala": true, ".pl": true, ".sh": true, ".bash": true, ".zsh": true,
	".bat": true, ".cmd": true, ".ps1": true,
	// config and data
	".json": true, ".yaml": true, ".yml": true, ".toml": true, ".ini": true,
	".xml": true, ".properties": true, ".conf": true, ".config": true,
	".env": true, ".tf": true, ".hcl": true,
	// web
	".html": true, ".htm": true, ".css": true, ".scss": true, ".less": true,
	".vue": true, ".svelte": true,
	// docs often carry secrets in examples
	".md": true, ".rst": true, ".txt": true,
}

// allowedExtension reports whether the file's extension is on the allow-list.
// Matching is case-insensitive.
func allowedExtension(path string) bool {
	return safeExtensions[strings.ToLower(filepath.Ext(path))]
}

const binarySniffLen = 1024

// looksBinary reports whether the first 1KB of content contains a NUL byte.
func looksBinary(data []byte) bool {
	n := len(data)
	if n > binarySniffLen {
		n = binarySniffLen
	}
	return bytes.IndexByte(data[:n], 0) >= 0
}
