// Package report renders scan output for the CLI: plain text, bordered table,
// JSON envelope and SARIF. Renderers never change findings, they only format.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/hariharan346/security-guardian/internal/types"
	"github.com/olekukonko/tablewriter"
)

type PrintOptions struct {
	NoColor      bool
	Mode         types.ScanMode
	Duration     time.Duration
	FilesScanned int
}

// PrintHygiene writes the hygiene messages block when there is anything to say.
func PrintHygiene(w io.Writer, messages []string) {
	if len(messages) == 0 {
		return
	}
	fmt.Fprintln(w, "[HYGIENE CHECK]")
	for _, m := range messages {
		fmt.Fprintln(w, m)
	}
	fmt.Fprintln(w, "----------------------------------------")
}

// PrintText writes findings one block per finding, pre-commit style.
func PrintText(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintf(w, "[OK] No secrets found (%s mode).\n", modeOrDefault(opts.Mode))
		printFooter(w, findings, opts)
		return
	}
	fmt.Fprintln(w, "[ALERT] SCAN COMPLETE: Issues Found")
	for _, f := range findings {
		icon := "[!]"
		if f.Action == types.ActionBlock {
			icon = "[X]"
		}
		sev := f.Severity.String()
		if !opts.NoColor {
			sev = colorSeverity(f.Severity)
		}
		fmt.Fprintf(w, "%s [%s] %s -> %s\n", icon, sev, f.Type, f.Action)
		fmt.Fprintf(w, "   File: %s:%d\n", f.Path, f.Line)
		fmt.Fprintf(w, "   Snippet: %s\n", f.Snippet)
		if f.Validation != "" {
			fmt.Fprintf(w, "   Cloud Check: %s\n", f.Validation)
		}
		fmt.Fprintln(w, "----------------------------------------")
	}
	printFooter(w, findings, opts)
}

// PrintTable writes findings as a bordered table.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintf(w, "[OK] No secrets found (%s mode).\n", modeOrDefault(opts.Mode))
		printFooter(w, findings, opts)
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Severity", "Type", "Action", "Location", "Snippet"})
	table.SetAutoWrapText(false)
	for _, f := range findings {
		table.Append([]string{
			f.Severity.String(),
			f.Type,
			string(f.Action),
			fmt.Sprintf("%s:%d", f.Path, f.Line),
			truncate(f.Snippet, 60),
		})
	}
	table.Render()
	printFooter(w, findings, opts)
}

func printFooter(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if opts.Duration <= 0 && opts.FilesScanned <= 0 {
		return
	}
	var blocks, warns int
	for _, f := range findings {
		switch f.Action {
		case types.ActionBlock:
			blocks++
		case types.ActionWarn:
			warns++
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d (block: %d, warn: %d)\n", len(findings), blocks, warns)
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}

func modeOrDefault(m types.ScanMode) types.ScanMode {
	if m == "" {
		return types.ModeDefault
	}
	return m
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func colorSeverity(s types.Severity) string {
	switch s {
	case types.SevCritical:
		return "\x1b[35mCRITICAL\x1b[0m" // magenta
	case types.SevHigh:
		return "\x1b[31mHIGH\x1b[0m" // red
	case types.SevMedium:
		return "\x1b[33mMEDIUM\x1b[0m" // yellow
	default:
		return "\x1b[36mLOW\x1b[0m" // cyan
	}
}
