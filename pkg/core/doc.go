// Package core is the stable public API for embedding the scanner in other
// programs. Internal packages may be reorganized; this surface will not.
package core
