// Package policy holds the detection signatures and the severity-to-action
// table. Both are loaded once per invocation and read-only during a scan.
package policy

import (
	"fmt"
	"regexp"

	"github.com/hariharan346/security-guardian/internal/types"
)

// Pattern is a named detection signature. The regex is compiled once at
// registry construction and cached alongside the source form.
type Pattern struct {
	Name     string
	Expr     string
	Severity types.Severity

	re *regexp.Regexp
}

// Regexp returns the compiled form of the pattern.
func (p Pattern) Regexp() *regexp.Regexp { return p.re }

// Engine is the pattern registry plus the severity->action policy table.
type Engine struct {
	patterns []Pattern
	keywords []string
	actions  map[types.Severity]types.Action
}

// Built-in signatures. Generic value-assignment patterns stay at MEDIUM so the
// context keywords decide whether they escalate; provider-specific key shapes
// are HIGH or CRITICAL outright.
var defaultPatterns = []Pattern{
	{Name: "AWS Access Key", Expr: `AKIA[0-9A-Z]{16}`, Severity: types.SevCritical},
	{Name: "AWS Secret Key", Expr: `(?i)(aws_secret_access_key|aws_secret_key|secretkey)["'\s:=]+[A-Za-z0-9/+=]{40}`, Severity: types.SevCritical},
	{Name: "GitHub Token", Expr: `gh[pousr]_[A-Za-z0-9]{36}`, Severity: types.SevCritical},
	{Name: "Stripe Secret Key", Expr: `sk_live_[0-9a-zA-Z]{24,}`, Severity: types.SevCritical},
	{Name: "SendGrid API Key", Expr: `SG\.[A-Za-z0-9_-]{22}\.[A-Za-z0-9_-]{43}`, Severity: types.SevCritical},
	{Name: "Private Key Block", Expr: `-----BEGIN (RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY( BLOCK)?-----`, Severity: types.SevCritical},
	{Name: "Slack Token", Expr: `xox[baprs]-[A-Za-z0-9-]{10,}`, Severity: types.SevHigh},
	{Name: "Slack Webhook", Expr: `https://hooks\.slack\.com/services/T[A-Za-z0-9_]+/B[A-Za-z0-9_]+/[A-Za-z0-9_]+`, Severity: types.SevHigh},
	{Name: "Google API Key", Expr: `AIza[0-9A-Za-z\-_]{35}`, Severity: types.SevHigh},
	{Name: "Twilio API Key", Expr: `SK[0-9a-fA-F]{32}`, Severity: types.SevHigh},
	{Name: "Credentials In URL", Expr: `(?i)[a-z][a-z0-9+.-]*://[^/\s:@]+:[^/\s:@]+@[^\s]+`, Severity: types.SevHigh},
	{Name: "JWT", Expr: `eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{5,}`, Severity: types.SevMedium},
	{Name: "Generic Password", Expr: `(?i)password\s*[:=]\s*["'][^"']{4,}["']`, Severity: types.SevMedium},
	{Name: "Generic API Key", Expr: `(?i)api[_-]?key\s*[:=]\s*["'][^"']{8,}["']`, Severity: types.SevMedium},
	{Name: "Generic Secret", Expr: `(?i)secret\s*[:=]\s*["'][^"']{8,}["']`, Severity: types.SevMedium},
}

// Keywords that escalate a MEDIUM finding to HIGH when present anywhere on the
// line (case-insensitive). Deliberately excludes "password": a bare weak
// password assignment stays a warning.
var defaultKeywords = []string{
	"prod", "production", "live", "secret", "private", "credential", "token", "internal",
}

var defaultActions = map[types.Severity]types.Action{
	types.SevLow:      types.ActionIgnore,
	types.SevMedium:   types.ActionWarn,
	types.SevHigh:     types.ActionBlock,
	types.SevCritical: types.ActionBlock,
}

// Default returns the built-in registry and action table.
func Default() *Engine {
	e := &Engine{
		keywords: append([]string(nil), defaultKeywords...),
		actions:  make(map[types.Severity]types.Action, len(defaultActions)),
	}
	for sev, act := range defaultActions {
		e.actions[sev] = act
	}
	for _, p := range defaultPatterns {
		// built-ins are covered by tests; a compile failure here would be a
		// programming error, surfaced by Validate below
		_ = e.AddPattern(p.Name, p.Expr, p.Severity)
	}
	return e
}

// AddPattern compiles and registers an additional signature. A regex that does
// not compile is rejected and the registry is left unchanged.
func (e *Engine) AddPattern(name, expr string, sev types.Severity) error {
	re, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("pattern %q: %w", name, err)
	}
	e.patterns = append(e.patterns, Pattern{Name: name, Expr: expr, Severity: sev, re: re})
	return nil
}

// AddContextKeywords appends escalation keywords to the registry.
func (e *Engine) AddContextKeywords(kws ...string) {
	for _, kw := range kws {
		if kw != "" {
			e.keywords = append(e.keywords, kw)
		}
	}
}

// OverrideAction replaces the action mapped to a severity.
func (e *Engine) OverrideAction(sev types.Severity, a types.Action) {
	if e.actions == nil {
		e.actions = map[types.Severity]types.Action{}
	}
	e.actions[sev] = a
}

// Validate checks the policy table for completeness. An unmapped severity is
// a configuration defect and must abort the scan before any file is opened.
func (e *Engine) Validate() error {
	if len(e.patterns) == 0 {
		return fmt.Errorf("policy: no detection patterns registered")
	}
	for _, sev := range types.Severities() {
		if _, ok := e.actions[sev]; !ok {
			return fmt.Errorf("policy: severity %s has no action mapped", sev)
		}
	}
	return nil
}

// Patterns returns the registered signatures in registration order.
func (e *Engine) Patterns() []Pattern { return e.patterns }

// ContextKeywords returns the escalation keyword list.
func (e *Engine) ContextKeywords() []string { return e.keywords }

// Action returns the action mapped to a severity. Callers must have run
// Validate; lookups after a successful Validate cannot miss.
func (e *Engine) Action(sev types.Severity) types.Action {
	return e.actions[sev]
}
