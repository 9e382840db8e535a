// Package validate is the external credential validator collaborator. It maps
// a (secret type, content snippet) pair to an opaque status string. The status
// is attached to output for operators but never influences the block decision.
//
// This implementation is offline: it checks structural plausibility (prefix,
// length, alphabet) instead of calling a provider.
package validate

import (
	"encoding/base64"
	"regexp"
	"strings"
)

const (
	StatusNotApplicable = "N/A"
	StatusFormatValid   = "FORMAT VALID (unverified)"
	StatusFormatInvalid = "FORMAT INVALID"
)

var (
	reAWSAccess = regexp.MustCompile(`AKIA[0-9A-Z]{16}`)
	reGitHub    = regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{36}`)
	reJWT       = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`)
)

// Validate returns a status string for the given secret type and snippet.
// Unknown types report N/A.
func Validate(secretType, snippet string) string {
	switch {
	case strings.HasPrefix(secretType, "AWS Access Key"):
		return status(looksLikeAWSAccessKey(reAWSAccess.FindString(snippet)))
	case strings.HasPrefix(secretType, "GitHub Token"):
		return status(looksLikeGitHubToken(reGitHub.FindString(snippet)))
	case strings.HasPrefix(secretType, "JWT"):
		return status(isJWTStructure(reJWT.FindString(snippet)))
	default:
		return StatusNotApplicable
	}
}

func status(ok bool) string {
	if ok {
		return StatusFormatValid
	}
	return StatusFormatInvalid
}

func lengthBetween(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max
}

func isAlphabet(s, allowed string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(allowed, rune(s[i])) {
			return false
		}
	}
	return true
}

func looksLikeAWSAccessKey(s string) bool {
	if !strings.HasPrefix(s, "AKIA") || len(s) != 20 {
		return false
	}
	const upperAlnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	return isAlphabet(s[4:], upperAlnum)
}

func looksLikeGitHubToken(s string) bool {
	if len(s) != 4+36 {
		return false
	}
	switch s[:4] {
	case "ghp_", "gho_", "ghu_", "ghs_", "ghr_":
	default:
		return false
	}
	const base62 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	return isAlphabet(s[4:], base62)
}

// isJWTStructure verifies three dot-separated segments whose header and
// payload decode as base64url without padding. The signature is not decoded.
func isJWTStructure(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return false
	}
	if !lengthBetween(parts[0], 4, 4096) || !lengthBetween(parts[1], 2, 65536) {
		return false
	}
	if _, err := base64.RawURLEncoding.DecodeString(parts[0]); err != nil {
		return false
	}
	if _, err := base64.RawURLEncoding.DecodeString(parts[1]); err != nil {
		return false
	}
	return true
}
