package walker

import (
	"errors"
	"io/fs"
	"unicode/utf8"
)

// emitFile runs the per-file pipeline: limit check, binary sniff, size
// cap, full read, then the callback. Every skip recovers locally; the
// only errors returned are the limit sentinel and callback failures,
// both of which stop the walk.
func (st *walkState) emitFile(path string) error {
	if st.limitReached() {
		return errLimitReached
	}

	if isBinary(st.opts.FS, path) {
		st.track(path, ReasonBinaryContent, false)
		return nil
	}

	if st.opts.MaxFileSize > 0 {
		if info, err := st.opts.FS.Stat(path); err == nil && info.Size() > st.opts.MaxFileSize {
			st.opts.Logger.Warn("Skipping %s: %d bytes exceeds the %d byte limit",
				path, info.Size(), st.opts.MaxFileSize)
			st.track(path, ReasonSizeLimit, false)
			return nil
		}
	}

	content, err := st.opts.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Enumerated but gone by read time; a benign race.
			st.opts.Logger.Debug("walker: %s vanished before read", path)
			return nil
		}
		st.opts.Logger.Warn("Skipping %s: %v", path, err)
		st.track(path, ReasonReadError, false)
		return nil
	}

	if !utf8.Valid(content) {
		st.opts.Logger.Warn("Skipping %s: content is not valid text", path)
		st.track(path, ReasonNotText, false)
		return nil
	}

	if err := st.walkFn(path, content); err != nil {
		return err
	}
	st.counters.Processed++
	return nil
}
