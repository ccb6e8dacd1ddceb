// Package setup assembles the exclusion rules and walk options for a run.
package setup

import (
	"os"
	"strings"

	"github.com/bethropolis/promptpack/internal/config"
	"github.com/bethropolis/promptpack/internal/ignore"
	"github.com/bethropolis/promptpack/internal/utils"
	"github.com/bethropolis/promptpack/internal/walker"
)

// Configure builds the rule set and walker options from the configuration.
//
// The project gitignore matcher is rooted at the current working directory.
// When it cannot be built (or gitignore handling is disabled) the rule set
// falls back to accumulating .gitignore lines directory by directory during
// the walk.
func Configure(cfg *config.Config, log utils.Logger) (*ignore.RuleSet, []walker.Option) {
	ignoreOptions := []ignore.Option{
		ignore.WithLogger(log),
		ignore.WithFilesOnly(cfg.IgnoreFilesOnly),
		ignore.WithoutGitignore(cfg.IgnoreGitignore),
	}

	if patterns := cfg.IgnoreList(); len(patterns) > 0 {
		ignoreOptions = append(ignoreOptions, ignore.WithCustomPatterns(patterns))
		log.Info("Using custom ignore patterns: %v", patterns)
	}

	if cfg.IgnoreGitignore {
		log.Info("Gitignore handling disabled.")
	} else if cwd, err := os.Getwd(); err == nil {
		if matcher := ignore.ProjectMatcher(cwd, log); matcher != nil {
			ignoreOptions = append(ignoreOptions, ignore.WithProjectMatcher(matcher))
		}
	}

	walkOptions := []walker.Option{
		walker.WithLogger(log),
		walker.WithIncludeHidden(cfg.IncludeHidden),
	}

	if exts := cfg.ExtensionList(); len(exts) > 0 {
		walkOptions = append(walkOptions, walker.WithExtensions(exts))
		log.Info("Filtering enabled. Only including extensions: %s", strings.Join(exts, ", "))
	} else {
		log.Debug("No extension filtering (including all file types).")
	}

	if cfg.IncludeHidden {
		log.Debug("Including hidden files/directories.")
	} else {
		log.Debug("Ignoring hidden files/directories (starting with '.').")
	}

	if cfg.MaxFileSizeMB > 0 {
		walkOptions = append(walkOptions, walker.WithMaxFileSize(cfg.MaxFileSizeMB*1024*1024))
		log.Info("Ignoring files larger than %d MB.", cfg.MaxFileSizeMB)
	}

	if cfg.MaxFiles > 0 {
		walkOptions = append(walkOptions, walker.WithMaxFiles(cfg.MaxFiles))
		log.Info("Stopping after %d files.", cfg.MaxFiles)
	}

	return ignore.New(ignoreOptions...), walkOptions
}
