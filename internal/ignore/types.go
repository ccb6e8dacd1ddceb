// Package ignore decides which paths stay out of the dump.
//
// Three rule sources compose into a single exclusion predicate: gitignore
// semantics (a project-root matcher when available, otherwise gitignore
// lines accumulated per directory), user-supplied glob patterns, and a
// fixed default denylist. Configuration uses the functional options
// pattern.
package ignore

import (
	gitignore "github.com/denormal/go-gitignore"

	"github.com/bethropolis/promptpack/internal/utils"
)

// RuleSet bundles every exclusion rule active at one directory level.
// A RuleSet is never mutated after construction; descending the tree
// derives child rule sets instead.
type RuleSet struct {
	// project, when non-nil, answers gitignore questions for the whole
	// run and supersedes the accumulated rules below.
	project gitignore.GitIgnore

	gitignoreRules []string
	customPatterns []string
	filesOnly      bool
	noGitignore    bool
	logger         utils.Logger
}

// defaultDenylist is always active, independent of gitignore handling and
// the hidden-file policy.
var defaultDenylist = []string{".env*", "*.env", ".gitignore"}
