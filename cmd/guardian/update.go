package guardian

import (
	"fmt"
	"os"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/hariharan346/security-guardian/internal/update"
	selfupdate "github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update security-guardian to the latest release",
		RunE:  runUpdate,
	}
	rootCmd.AddCommand(cmd)
}

func runUpdate(_ *cobra.Command, _ []string) error {
	latest, newer, err := update.Check(version, false)
	if err == nil && !newer {
		fmt.Fprintln(os.Stderr, "already up to date")
		return nil
	}
	if latest != "" {
		fmt.Fprintf(os.Stderr, "updating to v%s...\n", latest)
	}

	ver, err := semver.ParseTolerant(version)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	if _, err := selfupdate.UpdateSelf(semver3.MustParse(ver.String()), "hariharan346/security-guardian"); err != nil {
		return fmt.Errorf("self-update failed: %w", err)
	}
	fmt.Fprintln(os.Stderr, "updated; re-run your command")
	return nil
}
