package ignore

import (
	"path/filepath"
)

// Excluded reports whether path is ruled out. Evaluation order, stopping
// at the first hit: gitignore semantics (project matcher when present,
// accumulated rules otherwise), then the default denylist plus custom
// patterns. The last step is skipped for directories in files-only mode.
func (r *RuleSet) Excluded(path string, isDir bool) bool {
	if r == nil || path == "" || path == "." {
		return false
	}
	base := filepath.Base(path)

	if !r.noGitignore {
		if r.project != nil {
			if r.projectIgnored(path) {
				r.logger.Debug("ignore: %q excluded by project gitignore", path)
				return true
			}
		} else {
			for _, rule := range r.gitignoreRules {
				if Matches(base, rule) || (isDir && Matches(base+"/", rule)) {
					r.logger.Debug("ignore: %q excluded by gitignore rule %q", path, rule)
					return true
				}
			}
		}
	}

	if isDir && r.filesOnly {
		return false
	}
	for _, pattern := range defaultDenylist {
		if Matches(base, pattern) {
			r.logger.Debug("ignore: %q excluded by default pattern %q", path, pattern)
			return true
		}
	}
	for _, pattern := range r.customPatterns {
		if Matches(base, pattern) {
			r.logger.Debug("ignore: %q excluded by custom pattern %q", path, pattern)
			return true
		}
	}
	return false
}

// projectIgnored asks the compiled matcher about path, going through
// Match rather than the Ignore shortcut. On repository matchers Ignore
// dispatches to an embedded zero-rule matcher and always answers false.
// The call is fenced; a panic inside the gitignore library counts as
// "not ignored".
func (r *RuleSet) projectIgnored(path string) bool {
	ignored := false
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("ignore: gitignore matcher panic for %q: %v", path, rec)
				ignored = false
			}
		}()
		if m := r.project.Match(path); m != nil {
			ignored = m.Ignore()
		}
	}()
	return ignored
}
