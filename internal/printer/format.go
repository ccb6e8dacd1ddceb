package printer

import (
	"fmt"
	"strings"
)

// Format selects the document rendering mode. Exactly one is active per
// run; there are no combinable format flags.
type Format int

const (
	FormatDefault Format = iota
	FormatXML
	FormatMarkdown
	FormatJSON
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return FormatDefault, nil
	case "xml", "cxml":
		return FormatXML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatDefault, fmt.Errorf("printer: unknown format %q (want default, xml, markdown or json)", name)
}

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	default:
		return "default"
	}
}
