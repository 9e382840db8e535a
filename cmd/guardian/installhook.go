package guardian

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const hookScript = `#!/bin/sh
echo "Running Security Guardian..."
# Scan current directory in staged mode
security-guardian scan . --staged
if [ $? -ne 0 ]; then
    echo "Security check failed. Commit blocked."
    exit 1
fi
echo "Security check passed."
exit 0
`

func init() {
	cmd := &cobra.Command{
		Use:   "install-hook",
		Short: "Install a git pre-commit hook that scans staged files",
		RunE:  runInstallHook,
	}
	rootCmd.AddCommand(cmd)
}

func runInstallHook(_ *cobra.Command, _ []string) error {
	gitDir := ".git"
	if st, err := os.Stat(gitDir); err != nil || !st.IsDir() {
		return fmt.Errorf(".git directory not found; are you in a git repository?")
	}

	hookPath := filepath.Join(gitDir, "hooks", "pre-commit")
	if _, err := os.Stat(hookPath); err == nil {
		fmt.Fprintf(os.Stderr, "[INFO] Overwriting existing pre-commit hook at %s\n", hookPath)
	}
	if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(hookPath, []byte(hookScript), 0o755); err != nil {
		return fmt.Errorf("installing hook: %w", err)
	}

	fmt.Println("[SUCCESS] Pre-commit hook installed.")
	fmt.Println("   Location:", hookPath)
	fmt.Println("   Behavior: runs 'security-guardian scan . --staged' before every commit.")
	return nil
}
