// Package guardian provides the command-line interface for the
// security-guardian scanner. It configures subcommands (scan, install-hook,
// patterns, history, update), parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/hariharan346/security-guardian/cmd/guardian"
//	func main() { guardian.Execute() }
package guardian
