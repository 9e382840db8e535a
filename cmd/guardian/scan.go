package guardian

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hariharan346/security-guardian/internal/audit"
	"github.com/hariharan346/security-guardian/internal/config"
	"github.com/hariharan346/security-guardian/internal/engine"
	"github.com/hariharan346/security-guardian/internal/gitrepo"
	"github.com/hariharan346/security-guardian/internal/hygiene"
	"github.com/hariharan346/security-guardian/internal/report"
	"github.com/hariharan346/security-guardian/internal/types"
	"github.com/hariharan346/security-guardian/internal/update"
	"github.com/spf13/cobra"
)

var (
	flagStaged    bool
	flagAllFiles  bool
	flagUntracked bool
	flagExclude   []string
	flagInclude   string
	flagValidate  bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan files or directories for secrets",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagStaged, "staged", false, "scan ONLY staged files (git pre-commit mode)")
	cmd.Flags().BoolVar(&flagAllFiles, "all-files", false, "scan ALL files, ignoring git views and the extension allow-list")
	cmd.Flags().BoolVar(&flagUntracked, "include-untracked", false, "include untracked files (git ignore rules honored)")
	cmd.Flags().StringSliceVar(&flagExclude, "exclude", nil, "substring patterns to exclude from the scan")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().BoolVar(&flagValidate, "validate", false, "attach validator status to each finding")
}

// Mode priority: staged > all-files > untracked > default.
func resolveMode(staged, allFiles, untracked bool) types.ScanMode {
	switch {
	case staged:
		return types.ModeStaged
	case allFiles:
		return types.ModeAllFiles
	case untracked:
		return types.ModeUntracked
	default:
		return types.ModeDefault
	}
}

func runScan(_ *cobra.Command, paths []string) error {
	first, _ := filepath.Abs(paths[0])

	// config precedence: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(first); err == nil {
		lcfg = c
	}
	merged := mergeConfigs(lcfg, gcfg)

	// a broken policy table must abort before any file is opened
	reg, err := merged.BuildPolicy()
	if err != nil {
		return err
	}

	mode := resolveMode(flagStaged, flagAllFiles, flagUntracked)
	repo := gitrepo.CLI{}

	if !flagJSON && !flagSARIF && !flagNoUpdateCheck {
		if latest, newer, _ := update.Check(version, false); newer && latest != "" {
			fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'security-guardian update' to upgrade\n", latest)
		}
	}

	// hygiene runs once per invocation, independent of file selection
	verdict := hygiene.Check(first, repo)
	blocking := verdict.Block

	exclude := append([]string(nil), merged.Exclude...)
	exclude = append(exclude, flagExclude...)

	var findings []types.Finding
	filesScanned := 0
	started := time.Now()
	for _, p := range paths {
		if flagVerbose {
			fmt.Fprintf(os.Stderr, "[INFO] Scanning %s (mode: %s)\n", p, mode)
		}
		res, err := engine.ScanWithStats(engine.Config{
			Root:            p,
			Mode:            mode,
			ExcludePatterns: exclude,
			IncludeGlobs:    pickString(flagInclude, merged.Include),
			AllFiles:        mode == types.ModeAllFiles,
			Validate:        flagValidate || boolOr(merged.Validate),
			Threads:         pickInt(flagThreads, merged.Threads),
			NoCache:         flagNoCache || boolOr(merged.NoCache),
			Repo:            repo,
			Registry:        reg,
		})
		if err != nil {
			return fmt.Errorf("scan error: %w", err)
		}
		findings = append(findings, res.Findings...)
		filesScanned += res.FilesScanned
		blocking = blocking || res.Blocking
	}

	// best-effort audit trail; never fails the scan
	_ = audit.New(first).Append(audit.Summarize(first, mode, blocking, filesScanned, time.Since(started), findings))

	opts := report.PrintOptions{
		NoColor:      flagNoColor || boolOr(merged.NoColor),
		Mode:         mode,
		Duration:     time.Since(started),
		FilesScanned: filesScanned,
	}

	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, findings, version); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		env := report.Envelope{Blocking: blocking, Hygiene: verdict.Messages, Issues: findings}
		if err := report.WriteJSON(os.Stdout, env); err != nil {
			return err
		}
	case flagTable:
		report.PrintHygiene(os.Stdout, verdict.Messages)
		report.PrintTable(os.Stdout, findings, opts)
	default:
		report.PrintHygiene(os.Stdout, verdict.Messages)
		report.PrintText(os.Stdout, findings, opts)
	}

	if blocking {
		os.Exit(1)
	}
	return nil
}

// mergeConfigs overlays the local config on top of the global one.
func mergeConfigs(local, global config.FileConfig) config.FileConfig {
	out := global
	if len(local.Exclude) > 0 {
		out.Exclude = append(out.Exclude, local.Exclude...)
	}
	if local.Include != nil {
		out.Include = local.Include
	}
	if local.Threads != nil {
		out.Threads = local.Threads
	}
	if local.NoColor != nil {
		out.NoColor = local.NoColor
	}
	if local.Validate != nil {
		out.Validate = local.Validate
	}
	if local.NoCache != nil {
		out.NoCache = local.NoCache
	}
	if len(local.Patterns) > 0 {
		out.Patterns = append(out.Patterns, local.Patterns...)
	}
	if len(local.ContextKeywords) > 0 {
		out.ContextKeywords = append(out.ContextKeywords, local.ContextKeywords...)
	}
	if len(local.Actions) > 0 {
		if out.Actions == nil {
			out.Actions = map[string]string{}
		}
		for k, v := range local.Actions {
			out.Actions[k] = v
		}
	}
	return out
}

func pickString(cli string, cfg *string) string {
	if cli != "" {
		return cli
	}
	if cfg != nil {
		return *cfg
	}
	return ""
}

func pickInt(cli int, cfg *int) int {
	if cli != 0 {
		return cli
	}
	if cfg != nil {
		return *cfg
	}
	return 0
}

func boolOr(b *bool) bool {
	return b != nil && *b
}
