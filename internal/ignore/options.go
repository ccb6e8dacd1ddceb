package ignore

import (
	gitignore "github.com/denormal/go-gitignore"

	"github.com/bethropolis/promptpack/internal/utils"
)

// Option configures a RuleSet.
type Option func(*RuleSet)

// WithProjectMatcher supplies a compiled project-root gitignore matcher.
// When set, it answers all gitignore questions and the accumulated rules
// are not consulted.
func WithProjectMatcher(m gitignore.GitIgnore) Option {
	return func(r *RuleSet) {
		r.project = m
	}
}

// WithCustomPatterns sets user-supplied glob patterns, matched against
// basenames.
func WithCustomPatterns(patterns []string) Option {
	return func(r *RuleSet) {
		r.customPatterns = patterns
	}
}

// WithFilesOnly restricts custom and default patterns to files, so they
// never block descent into a directory.
func WithFilesOnly(filesOnly bool) Option {
	return func(r *RuleSet) {
		r.filesOnly = filesOnly
	}
}

// WithoutGitignore disables both gitignore sources entirely. Custom
// patterns and the default denylist stay active.
func WithoutGitignore(disabled bool) Option {
	return func(r *RuleSet) {
		r.noGitignore = disabled
	}
}

// WithLogger sets a custom logger for rule evaluation.
func WithLogger(logger utils.Logger) Option {
	return func(r *RuleSet) {
		if logger != nil {
			r.logger = logger
		}
	}
}
