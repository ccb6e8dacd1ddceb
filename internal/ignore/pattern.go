package ignore

import (
	"strings"

	"github.com/danwakefield/fnmatch"
)

// Matches reports whether name matches the glob pattern: `*` matches any
// run of characters, `?` exactly one, and every other character only
// itself. Matching is case-sensitive and anchored at both ends, so the
// whole name must match.
func Matches(name, pattern string) bool {
	return fnmatch.Match(literalBrackets(pattern), name, fnmatch.FNM_NOESCAPE)
}

// literalBrackets rewrites `[` as the one-element class `[[]` so bracket
// expressions carry no special meaning. FNM_NOESCAPE at the call site
// keeps backslash ordinary, leaving `*` and `?` as the only wildcards.
func literalBrackets(pattern string) string {
	if !strings.Contains(pattern, "[") {
		return pattern
	}
	return strings.ReplaceAll(pattern, "[", "[[]")
}
