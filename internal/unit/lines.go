package unit

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Line is one line of a multi-declaration source. Offset is the byte
// offset of the line in the whole source.
type Line struct {
	Num    int // 1-based
	Offset int
	Text   string
	// Skip is set for blank lines and lines holding only a comment.
	Skip bool
}

// SplitLines breaks src into lines. A trailing newline does not start an
// extra line, and a carriage return before a newline is dropped from
// Text.
func SplitLines(src string) []Line {
	if src == "" {
		return nil
	}
	raw := strings.Split(strings.TrimSuffix(src, "\n"), "\n")

	lines := make([]Line, len(raw))
	offset := 0
	for i, text := range raw {
		trimmed := strings.TrimSpace(text)
		lines[i] = Line{
			Num:    i + 1,
			Offset: offset,
			Text:   strings.TrimSuffix(text, "\r"),
			Skip:   trimmed == "" || strings.HasPrefix(trimmed, "//"),
		}
		offset += len(text) + 1
	}
	return lines
}

// CountUnits returns the number of lines that hold a declaration.
func CountUnits(lines []Line) int {
	n := 0
	for _, l := range lines {
		if !l.Skip {
			n++
		}
	}
	return n
}

// Result is the outcome of compiling one line. Unit is nil for skipped
// lines.
type Result struct {
	Line Line
	Unit *Unit
	Err  error
}

// Options controls CompileLines.
type Options struct {
	// Debug verifies every arena before checking it.
	Debug bool
	// ParseOnly stops after parsing.
	ParseOnly bool
	// Workers bounds the number of lines processed at once. Zero means
	// GOMAXPROCS.
	Workers int
}

// CompileLines compiles every declaration line of lines. Results come
// back in line order whatever order the workers finish in. The returned
// error is non-nil only if ctx is cancelled; per-line failures are in
// the results.
func CompileLines(ctx context.Context, lines []Line, opts Options) ([]Result, error) {
	results := make([]Result, len(lines))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, l := range lines {
		results[i].Line = l
		if l.Skip {
			continue
		}

		i, l := i, l
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var u *Unit
			var err error
			if opts.ParseOnly {
				u, err = Parse(l.Text)
			} else {
				u, err = Compile(l.Text, opts.Debug)
			}
			results[i].Unit = u
			results[i].Err = err
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
