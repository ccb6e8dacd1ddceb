// Package config builds the run configuration from flags, with optional
// defaults from a YAML file.
package config

import (
	"flag"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Config holds all application settings for one invocation.
type Config struct {
	// Root paths to process, in command-line order.
	Paths []string

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	OutputFile  string
	ShowSkipped bool

	// Traversal settings
	IncludeHidden   bool
	IgnorePatterns  string
	IgnoreFilesOnly bool
	IgnoreGitignore bool
	Extensions      string
	MaxFileSizeMB   int64
	MaxFiles        int
	RelativePaths   bool

	// Output settings
	Format      string
	LineNumbers bool

	// Stdin path list
	ReadStdin bool
	NullSep   bool

	// Config file
	ConfigFile string

	// Version info
	ShowVersion bool
	Version     string
}

// New builds the configuration from the process command line.
func New() *Config {
	return FromArgs(os.Args[1:])
}

// FromArgs parses the given arguments. A -config flag (or a discovered
// .promptpack.yml) supplies flag defaults; explicit flags win.
func FromArgs(args []string) *Config {
	c := &Config{
		Version: "0.2.0",
	}

	fileDefaults := loadDefaults(args)

	fs := flag.NewFlagSet("promptpack", flag.ExitOnError)
	fs.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG and up)")
	fs.BoolVar(&c.Quiet, "quiet", false, "Suppress warnings and progress logging (errors only)")
	fs.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR); overrides -verbose and -quiet")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable color in log output")
	fs.StringVar(&c.OutputFile, "output", "", "Write output to a file instead of stdout")
	fs.BoolVar(&c.ShowSkipped, "show-skipped", false, "List skipped files/directories and reasons at the end")

	fs.BoolVar(&c.IncludeHidden, "include-hidden", fileDefaults.IncludeHidden, "Include hidden files and directories (names starting with '.')")
	fs.StringVar(&c.IgnorePatterns, "ignore", strings.Join(fileDefaults.IgnorePatterns, ","), "Skip files matching these glob patterns (comma-separated)")
	fs.BoolVar(&c.IgnoreFilesOnly, "ignore-files-only", false, "Apply -ignore patterns to files only, never to directories")
	fs.BoolVar(&c.IgnoreGitignore, "ignore-gitignore", false, "Disregard .gitignore files entirely")
	fs.StringVar(&c.Extensions, "ext", strings.Join(fileDefaults.Extensions, ","), "Only include files ending with these suffixes (comma-separated, e.g. 'go,md,txt')")
	fs.Int64Var(&c.MaxFileSizeMB, "max-size", fileDefaults.MaxFileSizeMB, "Max file size to include in MB (0 = no limit)")
	fs.IntVar(&c.MaxFiles, "max-files", fileDefaults.MaxFiles, "Stop after this many files (0 = no limit)")
	fs.BoolVar(&c.RelativePaths, "relative", false, "Display paths relative to the current directory")

	format := fileDefaults.Format
	if format == "" {
		format = "default"
	}
	fs.StringVar(&c.Format, "format", format, "Output format: default, xml, markdown or json")
	fs.BoolVar(&c.LineNumbers, "n", fileDefaults.LineNumbers, "Prefix content lines with line numbers (shorthand)")
	fs.BoolVar(&c.LineNumbers, "line-numbers", fileDefaults.LineNumbers, "Prefix content lines with line numbers")

	fs.BoolVar(&c.ReadStdin, "stdin", false, "Also read paths from standard input")
	fs.BoolVar(&c.NullSep, "0", false, "Stdin paths are NUL-delimited (implies -stdin)")
	fs.StringVar(&c.ConfigFile, "config", "", "Path to a YAML defaults file (default: nearest .promptpack.yml)")
	fs.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	fs.Parse(args)

	if c.NullSep {
		c.ReadStdin = true
	}
	c.Paths = fs.Args()
	if len(c.Paths) == 0 && !c.ReadStdin {
		c.Paths = []string{"."}
	}

	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())

	return c
}

// ExtensionList returns the configured suffixes, normalized to carry a
// leading dot.
func (c *Config) ExtensionList() []string {
	return NormalizeExtensions(splitList(c.Extensions))
}

// IgnoreList returns the custom ignore patterns.
func (c *Config) IgnoreList() []string {
	return splitList(c.IgnorePatterns)
}

// NormalizeExtensions ensures each suffix has a leading dot. Case is
// preserved; suffix matching is case-sensitive.
func NormalizeExtensions(exts []string) []string {
	var out []string
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
