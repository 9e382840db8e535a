package guardian

import (
	"os"

	"github.com/hariharan346/security-guardian/internal/policy"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the registered detection signatures",
		Run: func(_ *cobra.Command, _ []string) {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Name", "Severity", "Regex"})
			table.SetAutoWrapText(false)
			for _, p := range policy.Default().Patterns() {
				table.Append([]string{p.Name, p.Severity.String(), p.Expr})
			}
			table.Render()
		},
	}
	rootCmd.AddCommand(cmd)
}
