package guardian

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagSARIF         bool
	flagTable         bool
	flagThreads       int
	flagNoColor       bool
	flagNoCache       bool
	flagVerbose       bool
	flagNoUpdateCheck bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the security-guardian CLI.
var rootCmd = &cobra.Command{
	Use:           "security-guardian",
	Short:         "Detect leaked secrets before they reach your repository",
	Long:          "Security Guardian scans tracked, staged or untracked files for credential-shaped content and blocks commits that would leak secrets.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output findings as a bordered table")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable the incremental result cache")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "verbose progress output")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
}
