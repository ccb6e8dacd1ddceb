package ignore

import (
	"github.com/bethropolis/promptpack/internal/utils"
)

// New builds a RuleSet from options. The zero configuration excludes only
// the default denylist.
func New(opts ...Option) *RuleSet {
	r := &RuleSet{logger: utils.NoopLogger{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithGitignoreLines derives a child rule set with lines appended to the
// accumulated gitignore rules. The parent's slice is capacity-clipped
// before the append, so sibling directories can never see each other's
// rules through a shared backing array.
func (r *RuleSet) WithGitignoreLines(lines []string) *RuleSet {
	if r.noGitignore || len(lines) == 0 {
		return r
	}
	child := *r
	inherited := r.gitignoreRules[:len(r.gitignoreRules):len(r.gitignoreRules)]
	child.gitignoreRules = append(inherited, lines...)
	return &child
}

// NeedsGitignoreFiles reports whether the caller should feed this rule set
// per-directory .gitignore content. Only the fallback mode wants it; the
// project matcher reads nested .gitignore files itself.
func (r *RuleSet) NeedsGitignoreFiles() bool {
	return !r.noGitignore && r.project == nil
}
