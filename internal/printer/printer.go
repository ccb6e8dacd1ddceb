// Package printer renders qualifying files into the output stream.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Printer formats documents and writes them line by line to the output
// destination. It owns the document index, which grows by exactly one per
// printed document and survives across runs until ResetIndex.
type Printer struct {
	output      io.Writer
	format      Format
	lineNumbers bool
	nextIndex   int
	emitted     int
	err         error
}

// New creates a Printer writing to stdout in the default format.
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		nextIndex: 1,
	}
}

// WithOutput sets the output destination.
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithFormat sets the rendering mode.
func (p *Printer) WithFormat(f Format) *Printer {
	p.format = f
	return p
}

// WithLineNumbers prefixes content lines with padded 1-based numbers.
func (p *Printer) WithLineNumbers(enabled bool) *Printer {
	p.lineNumbers = enabled
	return p
}

// ResetIndex restarts document numbering at 1. Without it, a second run
// on the same Printer continues the sequence.
func (p *Printer) ResetIndex() {
	p.nextIndex = 1
}

// Begin opens the run-level wrapper for formats that have one.
func (p *Printer) Begin() error {
	p.emitted = 0
	switch p.format {
	case FormatXML:
		p.line("<documents>")
	case FormatJSON:
		p.line("[")
	}
	return p.err
}

// Finalize closes the run-level wrapper.
func (p *Printer) Finalize() error {
	switch p.format {
	case FormatXML:
		p.line("</documents>")
	case FormatJSON:
		p.line("]")
	}
	return p.err
}

// PrintFile renders one document. The index advances exactly once per
// call, whether or not the active format shows it, so mixed-format runs
// still count consistently. A returned error means the destination is
// dead and the run should stop.
func (p *Printer) PrintFile(displayPath string, content []byte) error {
	index := p.nextIndex
	p.nextIndex++
	text := string(content)

	switch p.format {
	case FormatXML:
		p.printXML(index, displayPath, text)
	case FormatMarkdown:
		p.printMarkdown(displayPath, text)
	case FormatJSON:
		if err := p.printJSON(index, displayPath, text); err != nil {
			return err
		}
	default:
		p.printDefault(displayPath, text)
	}
	if p.err != nil {
		return p.err
	}
	p.emitted++
	return nil
}

func (p *Printer) printDefault(path, text string) {
	p.line(path)
	p.line("---")
	for _, l := range p.contentLines(text) {
		p.line(l)
	}
	p.line("")
	p.line("---")
}

func (p *Printer) printXML(index int, path, text string) {
	// Path and content go out verbatim, no escaping. A source file that
	// itself contains </document_content> will confuse consumers.
	p.line(fmt.Sprintf(`<document index="%d">`, index))
	p.line("<source>" + path + "</source>")
	p.line("<document_content>")
	for _, l := range p.contentLines(text) {
		p.line(l)
	}
	p.line("</document_content>")
	p.line("</document>")
}

func (p *Printer) printMarkdown(path, text string) {
	// The fence grows until it cannot collide with a backtick run inside
	// the content. Collision is checked against the raw text, before any
	// line numbering.
	fence := "```"
	for strings.Contains(text, fence) {
		fence += "`"
	}
	p.line(path)
	p.line(fence + languageTag(path))
	for _, l := range p.contentLines(text) {
		p.line(l)
	}
	p.line(fence)
}

type jsonDocument struct {
	Index   int    `json:"index"`
	Source  string `json:"source"`
	Content string `json:"content"`
}

func (p *Printer) printJSON(index int, path, text string) error {
	if p.lineNumbers {
		text = addLineNumbers(strings.TrimSuffix(text, "\n"))
	}
	data, err := json.Marshal(jsonDocument{Index: index, Source: path, Content: text})
	if err != nil {
		return fmt.Errorf("printer: encoding %s: %w", path, err)
	}
	if p.emitted > 0 {
		p.line(",")
	}
	p.line(string(data))
	return p.err
}

// contentLines prepares content for line-oriented formats: one trailing
// newline is absorbed into the block structure, numbering is applied if
// requested, and the result is split for the sink.
func (p *Printer) contentLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if p.lineNumbers {
		text = addLineNumbers(text)
	}
	return strings.Split(text, "\n")
}

// addLineNumbers prefixes each line with its 1-based number, left-padded
// to the width of the line count, followed by two spaces.
func addLineNumbers(content string) string {
	lines := strings.Split(content, "\n")
	width := len(strconv.Itoa(len(lines)))
	for i, line := range lines {
		lines[i] = fmt.Sprintf("%*d  %s", width, i+1, line)
	}
	return strings.Join(lines, "\n")
}

// line is the single write chokepoint. The first failure sticks and turns
// every later call into a no-op, so a broken pipe stops the run instead
// of spraying errors.
func (p *Printer) line(s string) {
	if p.err != nil {
		return
	}
	if _, err := io.WriteString(p.output, s+"\n"); err != nil {
		p.err = err
	}
}
