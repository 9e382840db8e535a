package types

import "testing"

func TestSeverityOrder(t *testing.T) {
	if !(SevLow < SevMedium && SevMedium < SevHigh && SevHigh < SevCritical) {
		t.Fatalf("severity order broken: %d %d %d %d", SevLow, SevMedium, SevHigh, SevCritical)
	}
}

func TestParseSeverity(t *testing.T) {
	cases := map[string]Severity{
		"LOW":      SevLow,
		"medium":   SevMedium,
		"High":     SevHigh,
		"CRITICAL": SevCritical,
	}
	for in, want := range cases {
		got, err := ParseSeverity(in)
		if err != nil {
			t.Fatalf("ParseSeverity(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseSeverity(%q)=%v want %v", in, got, want)
		}
	}
	if _, err := ParseSeverity("bogus"); err == nil {
		t.Fatalf("expected error for unknown severity")
	}
}

func TestParseAction(t *testing.T) {
	for in, want := range map[string]Action{"ignore": ActionIgnore, "WARN": ActionWarn, " block ": ActionBlock} {
		got, err := ParseAction(in)
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseAction(%q)=%v want %v", in, got, want)
		}
	}
	if _, err := ParseAction("nuke"); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}
