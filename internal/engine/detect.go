package engine

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/hariharan346/security-guardian/internal/policy"
	"github.com/hariharan346/security-guardian/internal/types"
)

// Entropy fallback constants. Fixed by design; see the quoted-token regex for
// the 16-character minimum.
const entropyThreshold = 4.5

// quoted runs of token-ish characters, the only candidates for entropy
// analysis
var reQuotedToken = regexp.MustCompile(`['"]([A-Za-z0-9/+]{16,})['"]`)

// scanLine runs every registered signature against one line. Each matching
// signature yields its own finding. The entropy fallback fires only when no
// signature matched anywhere on the line, so a recognized secret is never
// double-reported as a high-entropy string.
func scanLine(reg *policy.Engine, path string, lineNo int, line string) []types.Finding {
	var out []types.Finding
	matched := false
	for _, p := range reg.Patterns() {
		re := p.Regexp()
		if re == nil || !re.MatchString(line) {
			continue
		}
		matched = true
		sev := p.Severity
		name := p.Name
		// context-aware escalation: only MEDIUM findings are promoted, and
		// only once, on the first keyword hit
		if sev == types.SevMedium {
			lower := strings.ToLower(line)
			for _, kw := range reg.ContextKeywords() {
				if strings.Contains(lower, strings.ToLower(kw)) {
					sev = types.SevHigh
					name += fmt.Sprintf(" (Context: %s)", kw)
					break
				}
			}
		}
		out = append(out, types.Finding{
			Path:     path,
			Line:     lineNo,
			Type:     name,
			Severity: sev,
			Snippet:  strings.TrimSpace(line),
		})
	}
	if !matched {
		out = append(out, scanEntropy(path, lineNo, line)...)
	}
	return out
}

// scanEntropy flags quoted token-shaped substrings whose Shannon entropy is
// strictly above the threshold.
func scanEntropy(path string, lineNo int, line string) []types.Finding {
	var out []types.Finding
	for _, m := range reQuotedToken.FindAllStringSubmatch(line, -1) {
		h := shannonEntropy(m[1])
		if h > entropyThreshold {
			out = append(out, types.Finding{
				Path:     path,
				Line:     lineNo,
				Type:     fmt.Sprintf("High Entropy String (%.2f)", h),
				Severity: types.SevMedium,
				Snippet:  strings.TrimSpace(line),
			})
		}
	}
	return out
}

// shannonEntropy computes base-2 entropy over the character distribution.
func shannonEntropy(s string) float64 {
	if s == "" {
		return 0
	}
	count := map[rune]int{}
	for _, r := range s {
		count[r]++
	}
	h := 0.0
	n := float64(len([]rune(s)))
	for _, c := range count {
		p := float64(c) / n
		h += -p * math.Log2(p)
	}
	return h
}
