package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Formatter prints diagnostics in a Rust-style format, quoting the
// offending source line and underlining the span with carets.
type Formatter struct {
	w io.Writer
}

// NewFormatter creates a formatter writing to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Format prints d against src, the text the span offsets refer to.
func (f *Formatter) Format(d Diagnostic, src string) {
	f.printHeader(d)

	if d.Span.Start < 0 || d.Span.Start > len(src) {
		f.printHelp(d)
		return
	}

	lineStart, lineEnd, lineNum := lineAround(src, d.Span.Start)
	if d.Span.Line > 0 {
		lineNum = d.Span.Line
	}
	lineContent := strings.TrimRight(src[lineStart:lineEnd], "\r")
	column := d.Span.Column
	if column == 0 {
		column = len([]rune(src[lineStart:d.Span.Start])) + 1
	}

	lineNumWidth := len(fmt.Sprintf("%d", lineNum))
	gutter := strings.Repeat(" ", lineNumWidth)

	fmt.Fprintf(f.w, "  --> %d:%d\n", lineNum, column)
	fmt.Fprintf(f.w, " %s |\n", gutter)
	fmt.Fprintf(f.w, " %d | %s\n", lineNum, lineContent)
	fmt.Fprintf(f.w, " %s | %s\n", gutter, underline(lineContent, d.Span.Start-lineStart, d.Span.End-lineStart, d.Label))

	f.printHelp(d)
}

// printHeader prints the error header (error[CODE]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = "error"
	}

	if d.Code != "" {
		fmt.Fprintf(f.w, "%s[%s]: %s\n", severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(f.w, "%s: %s\n", severity, d.Message)
	}
}

func (f *Formatter) printHelp(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.w, "  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.w, "help: %s\n", d.Help)
	}
}

// lineAround returns the byte range of the line containing offset and its
// 1-based number.
func lineAround(src string, offset int) (start, end, num int) {
	start = strings.LastIndexByte(src[:offset], '\n') + 1
	end = len(src)
	if i := strings.IndexByte(src[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	num = strings.Count(src[:start], "\n") + 1
	return start, end, num
}

// underline builds the caret line for the byte range [start,end) of line.
// Tabs in the prefix are kept so the carets line up under tab-indented
// source; every other rune becomes as many spaces as it is wide.
func underline(line string, start, end int, label string) string {
	start = clamp(start, 0, len(line))
	end = clamp(end, start, len(line))

	var b strings.Builder
	for _, r := range line[:start] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	width := runewidth.StringWidth(line[start:end])
	if width < 1 {
		width = 1
	}
	b.WriteString(strings.Repeat("^", width))

	if label != "" {
		b.WriteByte(' ')
		b.WriteString(label)
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
