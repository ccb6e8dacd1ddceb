package config

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// ReadPathList reads root paths from r, one token per path. Tokens are
// split on whitespace, or on NUL bytes when nullSep is set (for use with
// find -print0 and friends).
func ReadPathList(r io.Reader, nullSep bool) ([]string, error) {
	scanner := bufio.NewScanner(r)
	if nullSep {
		scanner.Split(scanNull)
	} else {
		scanner.Split(bufio.ScanWords)
	}
	var paths []string
	for scanner.Scan() {
		if tok := strings.TrimSpace(scanner.Text()); tok != "" {
			paths = append(paths, tok)
		}
	}
	return paths, scanner.Err()
}

func scanNull(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
