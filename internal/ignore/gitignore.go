package ignore

import (
	"bufio"
	"io"
	"strings"
)

// gitignoreLineLimit caps how many lines of a single .gitignore are read.
const gitignoreLineLimit = 1000

// ParseGitignore extracts usable rule lines from .gitignore content:
// whitespace-trimmed, comment and blank lines dropped, original order
// preserved, at most gitignoreLineLimit lines considered.
func ParseGitignore(r io.Reader) []string {
	var rules []string
	scanner := bufio.NewScanner(r)
	for n := 0; n < gitignoreLineLimit && scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rules = append(rules, line)
	}
	return rules
}
