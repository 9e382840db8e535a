package engine

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/hariharan346/security-guardian/internal/cache"
	"github.com/hariharan346/security-guardian/internal/gitrepo"
	"github.com/hariharan346/security-guardian/internal/ignore"
	"github.com/hariharan346/security-guardian/internal/policy"
	"github.com/hariharan346/security-guardian/internal/types"
	"github.com/hariharan346/security-guardian/internal/validate"
)

// Config controls a single scan invocation.
type Config struct {
	Root            string
	Mode            types.ScanMode
	ExcludePatterns []string // appended to the built-in defaults and the ignore file
	IncludeGlobs    string   // optional comma-separated positive filter
	AllFiles        bool     // disable the extension allow-list
	Validate        bool     // attach validator status to each finding
	Threads         int      // worker count (0 = GOMAXPROCS)
	NoCache         bool
	Progress        func()

	// Repo and Registry default to the git CLI adapter and the built-in
	// policy; tests substitute fakes.
	Repo     gitrepo.View
	Registry *policy.Engine
}

// Result is the aggregated outcome of one scan.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	Duration     time.Duration
	Blocking     bool
}

// Scan runs a scan and returns only the findings.
func Scan(cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats selects files for cfg.Mode, filters them, runs line detection
// with a bounded worker pool, and maps each finding to its policy action.
// Findings are emitted in (path, line, discovery) order regardless of worker
// scheduling. The only fatal error class is an invalid policy table.
func ScanWithStats(cfg Config) (Result, error) {
	var result Result
	started := time.Now()

	reg := cfg.Registry
	if reg == nil {
		reg = policy.Default()
	}
	// an unmapped severity is a broken installation; abort before any I/O
	if err := reg.Validate(); err != nil {
		return result, err
	}

	repo := cfg.Repo
	if repo == nil {
		repo = gitrepo.CLI{}
	}
	mode := cfg.Mode
	if mode == "" {
		mode = types.ModeDefault
	}

	abs, err := filepath.Abs(cfg.Root)
	if err != nil {
		return result, err
	}

	patterns := append(ignore.Defaults(), cfg.ExcludePatterns...)
	patterns = append(patterns, ignore.LoadFile(filepath.Join(abs, ignore.FileName))...)
	// never scan our own artifacts; they quote snippets of prior findings
	patterns = append(patterns, ".guardian-cache.json", ".guardian-audit.jsonl", ignore.FileName)
	excl := ignore.New(patterns)

	files, err := Select(abs, mode, repo, excl)
	if err != nil {
		return result, err
	}
	if cfg.IncludeGlobs != "" {
		files = filterIncludes(abs, files, cfg.IncludeGlobs)
	}

	var db cache.DB
	if !cfg.NoCache {
		db, _ = cache.Load(abs)
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads > len(files) && len(files) > 0 {
		threads = len(files)
	}

	// One slot per file keeps aggregation deterministic: workers write only
	// their own index, and the final order is the sorted file order.
	slots := make([][]types.Finding, len(files))
	scanned := make([]bool, len(files))
	updates := make([]*cache.Entry, len(files))

	var mu sync.Mutex // guards Progress, which callers may not make reentrant
	idxCh := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idxCh {
				slots[i], scanned[i], updates[i] = scanFile(cfg, reg, db, files[i])
				if cfg.Progress != nil {
					mu.Lock()
					cfg.Progress()
					mu.Unlock()
				}
			}
		}()
	}
	for i := range files {
		idxCh <- i
	}
	close(idxCh)
	wg.Wait()

	var out []types.Finding
	for i := range slots {
		if scanned[i] {
			result.FilesScanned++
		}
		for _, f := range slots[i] {
			f.Action = reg.Action(f.Severity)
			if cfg.Validate {
				f.Validation = validate.Validate(f.Type, f.Snippet)
			}
			if f.Action == types.ActionBlock {
				result.Blocking = true
			}
			out = append(out, f)
		}
	}

	if !cfg.NoCache {
		if db.Entries == nil {
			db.Entries = map[string]cache.Entry{}
		}
		dirty := false
		for i, e := range updates {
			if e != nil {
				db.Entries[files[i]] = *e
				dirty = true
			}
		}
		if dirty {
			_ = cache.Save(abs, db)
		}
	}

	result.Findings = out
	result.Duration = time.Since(started)
	return result, nil
}

// scanFile applies the content gates and runs line detection over one file.
// It returns the raw findings (no action/validation yet), whether the file
// was actually scanned, and a cache entry to persist when the content was
// re-detected. Unreadable or binary files are skipped silently.
func scanFile(cfg Config, reg *policy.Engine, db cache.DB, path string) ([]types.Finding, bool, *cache.Entry) {
	if !cfg.AllFiles && !allowedExtension(path) {
		return nil, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// permission denied and friends: skip, never abort the scan
		return nil, false, nil
	}
	if looksBinary(data) {
		return nil, false, nil
	}

	h := cache.Hash(data)
	if !cfg.NoCache {
		if e, ok := db.Entries[path]; ok && e.Hash == h {
			return e.Findings, true, nil
		}
	}

	var found []types.Finding
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if !utf8.ValidString(line) {
			// permissive text mode: replace malformed sequences rather than
			// abandoning the file
			line = strings.ToValidUTF8(line, string(utf8.RuneError))
		}
		found = append(found, scanLine(reg, path, lineNo, line)...)
	}
	// a scanner error (e.g. pathological line length) ends detection for this
	// file only; findings gathered so far still count

	return found, true, &cache.Entry{Hash: h, Findings: found}
}

// filterIncludes applies the optional positive glob filter against paths
// relative to root, using forward-slash semantics. Basename matches are
// accepted so "*.go" behaves intuitively.
func filterIncludes(root string, files []string, globs string) []string {
	var pats []string
	for _, g := range strings.Split(globs, ",") {
		g = strings.TrimSpace(g)
		if g != "" {
			pats = append(pats, g)
		}
	}
	if len(pats) == 0 {
		return files
	}
	var out []string
	for _, p := range files {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			rel = p
		}
		rel = strings.ReplaceAll(rel, "\\", "/")
		for _, g := range pats {
			if ok, _ := doublestar.Match(g, rel); ok {
				out = append(out, p)
				break
			}
			if ok, _ := doublestar.Match(g, filepath.Base(rel)); ok {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
