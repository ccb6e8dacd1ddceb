package printer

import (
	"path/filepath"
	"strings"
)

// extLanguages tags markdown fences by file extension. Unknown extensions
// get an untagged fence.
var extLanguages = map[string]string{
	".c":     "c",
	".cpp":   "cpp",
	".css":   "css",
	".go":    "go",
	".h":     "c",
	".html":  "html",
	".java":  "java",
	".js":    "javascript",
	".json":  "json",
	".kt":    "kotlin",
	".md":    "markdown",
	".proto": "protobuf",
	".py":    "python",
	".rb":    "ruby",
	".rs":    "rust",
	".sh":    "bash",
	".sql":   "sql",
	".swift": "swift",
	".toml":  "toml",
	".ts":    "typescript",
	".txt":   "text",
	".xml":   "xml",
	".yaml":  "yaml",
	".yml":   "yaml",
}

func languageTag(path string) string {
	return extLanguages[strings.ToLower(filepath.Ext(path))]
}
