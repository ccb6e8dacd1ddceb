package walker

import (
	"strings"

	"github.com/bethropolis/promptpack/internal/utils"
)

// WalkOptions configures a walk.
type WalkOptions struct {
	FS            FS
	Logger        utils.Logger
	IncludeHidden bool
	Extensions    []string // suffix filters, each with a leading dot
	MaxFileSize   int64    // bytes, 0 = no limit
	MaxFiles      int      // 0 = no limit
}

func defaultOptions() WalkOptions {
	return WalkOptions{
		FS:     OSFS{},
		Logger: utils.NoopLogger{},
	}
}

// Option is a functional option for configuring WalkOptions.
type Option func(*WalkOptions)

// WithFS sets the filesystem the walker reads through.
func WithFS(fsys FS) Option {
	return func(opts *WalkOptions) {
		if fsys != nil {
			opts.FS = fsys
		}
	}
}

// WithLogger sets a custom logger for the walker.
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithIncludeHidden keeps dotfiles and dot-directories in the walk.
func WithIncludeHidden(include bool) Option {
	return func(opts *WalkOptions) {
		opts.IncludeHidden = include
	}
}

// WithExtensions restricts emission to files whose name ends with one of
// the given suffixes. A missing leading dot is added; matching is
// case-sensitive.
func WithExtensions(extensions []string) Option {
	return func(opts *WalkOptions) {
		var suffixes []string
		for _, ext := range extensions {
			ext = strings.TrimSpace(ext)
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			suffixes = append(suffixes, ext)
		}
		opts.Extensions = suffixes
	}
}

// WithMaxFileSize sets the largest file size to read, in bytes.
func WithMaxFileSize(maxBytes int64) Option {
	return func(opts *WalkOptions) {
		opts.MaxFileSize = maxBytes
	}
}

// WithMaxFiles caps how many files the whole run may emit.
func WithMaxFiles(maxFiles int) Option {
	return func(opts *WalkOptions) {
		opts.MaxFiles = maxFiles
	}
}
