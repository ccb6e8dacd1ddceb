// Package logger implements the leveled stderr logger used by the CLI.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Level defines log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// ParseLevel converts a level name to a Level. Unknown names map to Info.
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "none", "off":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger writes timestamped, level-tagged lines to a single destination.
// Diagnostics only; document output never goes through here.
type Logger struct {
	out       io.Writer
	useColors bool
	level     Level
}

// New creates a Logger writing to out at the given level.
func New(out io.Writer, level Level, useColors bool) *Logger {
	return &Logger{out: out, useColors: useColors, level: level}
}

// WithLevel sets the level and returns the logger for chaining.
func (l *Logger) WithLevel(level Level) *Logger {
	l.level = level
	return l
}

func (l *Logger) Debug(format string, args ...any) {
	if l.level <= LevelDebug {
		l.log("DEBUG", color.CyanString, format, args...)
	}
}

func (l *Logger) Info(format string, args ...any) {
	if l.level <= LevelInfo {
		l.log("INFO", color.BlueString, format, args...)
	}
}

func (l *Logger) Warn(format string, args ...any) {
	if l.level <= LevelWarn {
		l.log("WARN", color.YellowString, format, args...)
	}
}

func (l *Logger) Error(format string, args ...any) {
	if l.level <= LevelError {
		l.log("ERROR", color.RedString, format, args...)
	}
}

func (l *Logger) log(tag string, paint func(string, ...interface{}) string, format string, args ...any) {
	if l.useColors {
		tag = paint(tag)
	}
	fmt.Fprintf(l.out, "[%s %s] %s\n", timeString(), tag, fmt.Sprintf(format, args...))
}

func timeString() string {
	return time.Now().Format("15:04:05.000")
}
