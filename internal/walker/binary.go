package walker

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// binaryExtensions mark files that are skipped without opening them.
var binaryExtensions = map[string]bool{
	// images
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".ico": true, ".webp": true, ".tiff": true, ".svg": true,
	// audio
	".mp3": true, ".wav": true, ".flac": true, ".ogg": true, ".m4a": true,
	// video
	".mp4": true, ".avi": true, ".mov": true, ".mkv": true, ".webm": true,
	// archives
	".zip": true, ".tar": true, ".gz": true, ".tgz": true, ".bz2": true,
	".xz": true, ".7z": true, ".rar": true,
	// fonts
	".ttf": true, ".otf": true, ".woff": true, ".woff2": true, ".eot": true,
	// compiled objects
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".bin": true,
	".o": true, ".a": true, ".class": true, ".pyc": true, ".wasm": true,
	// documents and databases
	".pdf": true, ".db": true, ".sqlite": true, ".sqlite3": true,
}

const sniffLen = 512

// isBinary reports whether the file should stay out of text output. A
// known binary extension decides without touching the file; otherwise the
// first 512 bytes are sniffed for NUL bytes or a high ratio of
// non-printable characters. Open and read failures never classify as
// binary, so the later full read surfaces the real error.
func isBinary(fsys FS, path string) bool {
	if binaryExtensions[strings.ToLower(filepath.Ext(path))] {
		return true
	}

	f, err := fsys.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buffer := make([]byte, sniffLen)
	n, err := f.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	buffer = buffer[:n]
	if len(buffer) == 0 {
		return false
	}

	if bytes.IndexByte(buffer, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range buffer {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(buffer)) > 0.3
}

// isPrintable reports whether b falls in the permissive text range:
// printable ASCII plus tab, newline and carriage return.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t'
}
