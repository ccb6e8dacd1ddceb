package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the defaults file discovered by walking up from the
// working directory.
const ConfigFileName = ".promptpack.yml"

// FileConfig is the subset of settings a defaults file may provide.
// Values act as flag defaults; explicit flags override them.
type FileConfig struct {
	Extensions     []string `yaml:"extensions"`
	IgnorePatterns []string `yaml:"ignore"`
	Format         string   `yaml:"format"`
	LineNumbers    bool     `yaml:"line_numbers"`
	IncludeHidden  bool     `yaml:"include_hidden"`
	MaxFileSizeMB  int64    `yaml:"max_size_mb"`
	MaxFiles       int      `yaml:"max_files"`
}

// FindConfigFile walks up from dir looking for ConfigFileName. It returns
// the first hit, or "" when no ancestor carries one.
func FindConfigFile(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadFileConfig reads and parses a YAML defaults file.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &fc, nil
}

// loadDefaults resolves the defaults file for this invocation. An explicit
// -config must be honored before flag registration, so the argument list is
// scanned by hand here. A broken file falls back to zero defaults; flag
// parsing proceeds either way.
func loadDefaults(args []string) *FileConfig {
	path := configPathFromArgs(args)
	if path == "" {
		path = FindConfigFile(".")
	}
	if path == "" {
		return &FileConfig{}
	}
	fc, err := LoadFileConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "promptpack: ignoring config file: %v\n", err)
		return &FileConfig{}
	}
	return fc
}

func configPathFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-config" || arg == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "-config="):
			return strings.TrimPrefix(arg, "-config=")
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}
