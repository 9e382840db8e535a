package guardian

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hariharan346/security-guardian/internal/audit"
	"github.com/spf13/cobra"
)

func init() {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [path]",
		Short: "Show recent scan invocations from the audit log",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			abs, _ := filepath.Abs(root)
			records, err := audit.New(abs).History()
			if err != nil {
				fmt.Fprintln(os.Stderr, "no scan history for", abs)
				return nil
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}
			for _, r := range records {
				verdict := "pass"
				if r.Blocking {
					verdict = "BLOCK"
				}
				fmt.Printf("%s  %-9s mode=%-9s findings=%-3d files=%-4d %s\n",
					r.Timestamp.Format("2006-01-02 15:04:05"), verdict, r.Mode, r.TotalFindings, r.FilesScanned, r.Duration)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum records to show")
	rootCmd.AddCommand(cmd)
}
