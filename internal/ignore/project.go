package ignore

import (
	"path/filepath"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/bethropolis/promptpack/internal/utils"
)

// ProjectMatcher compiles the gitignore rules reachable from dir, nested
// .gitignore files included. A nil result means no usable matcher; callers
// fall back to per-directory rule accumulation.
func ProjectMatcher(dir string, log utils.Logger) gitignore.GitIgnore {
	if log == nil {
		log = utils.NoopLogger{}
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		log.Warn("ignore: cannot resolve %q: %v", dir, err)
		return nil
	}
	matcher, err := gitignore.NewRepository(absDir)
	if err != nil {
		log.Warn("ignore: cannot load gitignore rules from %q: %v", absDir, err)
		return nil
	}
	log.Debug("ignore: project gitignore matcher rooted at %s", absDir)
	return matcher
}
