// Package walker turns root paths into an ordered stream of readable,
// rule-passing files.
package walker

// WalkFunc receives one qualifying file. Returning a non-nil error stops
// the whole walk; per-file problems are handled inside the walker instead.
type WalkFunc func(displayPath string, content []byte) error

// SkippedReason clarifies why a path was not emitted.
type SkippedReason string

const (
	ReasonHidden            SkippedReason = "Hidden (Dotfile Rule)"
	ReasonIgnoredRule       SkippedReason = "Ignored (Gitignore/Pattern Rule)"
	ReasonFilteredExtension SkippedReason = "Filtered (Extension Mismatch)"
	ReasonBinaryContent     SkippedReason = "Skipped (Binary Content)"
	ReasonSizeLimit         SkippedReason = "Skipped (Size Limit Exceeded)"
	ReasonNotText           SkippedReason = "Skipped (Not Valid Text)"
	ReasonReadError         SkippedReason = "Skipped (Read Error)"
)

// SkippedItem records one skipped path for the end-of-run report.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// Counters is shared by every root of one invocation so that limits and
// the exit status apply to the run as a whole, not per root.
type Counters struct {
	Processed int
}
