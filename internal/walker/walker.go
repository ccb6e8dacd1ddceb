package walker

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bethropolis/promptpack/internal/ignore"
)

// errLimitReached unwinds the recursion once the file cap is hit. It is a
// successful early stop and never surfaces to callers.
var errLimitReached = errors.New("walker: file limit reached")

// walkState carries the per-run pieces through the recursion.
type walkState struct {
	opts     WalkOptions
	counters *Counters
	walkFn   WalkFunc
	skipped  []SkippedItem
}

// ProcessPath handles one root path: a file is checked against the rules
// and emitted directly, a directory is walked. A bare file still honors
// its directory's .gitignore when rule accumulation is active. Counters
// are shared across roots so limits span the whole run; nil gets a
// private counter.
func ProcessPath(path string, rules *ignore.RuleSet, counters *Counters, walkFn WalkFunc, opts ...Option) ([]SkippedItem, error) {
	st := newWalkState(counters, walkFn, opts)
	info, err := st.opts.FS.Stat(path)
	if err != nil {
		return st.skipped, fmt.Errorf("walker: cannot access %q: %w", path, err)
	}
	if info.IsDir() {
		err = st.walkDir(path, rules)
	} else {
		if rules.NeedsGitignoreFiles() {
			if data, err := st.opts.FS.ReadFile(filepath.Join(filepath.Dir(path), ".gitignore")); err == nil {
				rules = rules.WithGitignoreLines(ignore.ParseGitignore(bytes.NewReader(data)))
			}
		}
		if rules.Excluded(path, false) {
			st.track(path, ReasonIgnoredRule, false)
		} else {
			err = st.emitFile(path)
		}
	}
	if errors.Is(err, errLimitReached) {
		err = nil
	}
	return st.skipped, err
}

// Walk traverses the directory tree rooted at root in deterministic
// order: at each level the surviving files, sorted by name, are emitted
// before any subdirectory is entered.
func Walk(root string, rules *ignore.RuleSet, counters *Counters, walkFn WalkFunc, opts ...Option) ([]SkippedItem, error) {
	st := newWalkState(counters, walkFn, opts)
	err := st.walkDir(root, rules)
	if errors.Is(err, errLimitReached) {
		err = nil
	}
	return st.skipped, err
}

func newWalkState(counters *Counters, walkFn WalkFunc, opts []Option) *walkState {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if counters == nil {
		counters = &Counters{}
	}
	return &walkState{opts: o, counters: counters, walkFn: walkFn}
}

func (st *walkState) walkDir(dir string, rules *ignore.RuleSet) error {
	entries, err := st.opts.FS.ReadDir(dir)
	if err != nil {
		st.opts.Logger.Warn("Skipping directory %q: %v", dir, err)
		st.track(dir, ReasonReadError, true)
		return nil
	}

	if rules.NeedsGitignoreFiles() {
		if data, err := st.opts.FS.ReadFile(filepath.Join(dir, ".gitignore")); err == nil {
			rules = rules.WithGitignoreLines(ignore.ParseGitignore(bytes.NewReader(data)))
		}
	}

	var files, dirs []string
	for _, entry := range entries {
		name := entry.Name()
		if !st.opts.IncludeHidden && strings.HasPrefix(name, ".") {
			st.track(filepath.Join(dir, name), ReasonHidden, entry.IsDir())
			continue
		}
		if entry.IsDir() {
			dirs = append(dirs, name)
		} else {
			files = append(files, name)
		}
	}

	files = st.applyRules(dir, files, rules, false)
	dirs = st.applyRules(dir, dirs, rules, true)
	files = st.applyExtensions(dir, files)

	sort.Strings(files)
	for _, name := range files {
		if err := st.emitFile(filepath.Join(dir, name)); err != nil {
			return err
		}
	}

	for _, name := range dirs {
		if st.limitReached() {
			return errLimitReached
		}
		if err := st.walkDir(filepath.Join(dir, name), rules); err != nil {
			return err
		}
	}
	return nil
}

// applyRules keeps the entries the rule engine allows. Excluded
// directories are a hard prune: nothing below them is ever enumerated.
func (st *walkState) applyRules(dir string, names []string, rules *ignore.RuleSet, isDir bool) []string {
	kept := names[:0]
	for _, name := range names {
		full := filepath.Join(dir, name)
		if rules.Excluded(full, isDir) {
			st.track(full, ReasonIgnoredRule, isDir)
			continue
		}
		kept = append(kept, name)
	}
	return kept
}

func (st *walkState) applyExtensions(dir string, names []string) []string {
	if len(st.opts.Extensions) == 0 {
		return names
	}
	kept := names[:0]
	for _, name := range names {
		if hasSuffixIn(name, st.opts.Extensions) {
			kept = append(kept, name)
		} else {
			st.track(filepath.Join(dir, name), ReasonFilteredExtension, false)
		}
	}
	return kept
}

func hasSuffixIn(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func (st *walkState) limitReached() bool {
	return st.opts.MaxFiles > 0 && st.counters.Processed >= st.opts.MaxFiles
}

func (st *walkState) track(path string, reason SkippedReason, isDir bool) {
	st.opts.Logger.Debug("walker: %s [%s]", path, reason)
	st.skipped = append(st.skipped, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}
