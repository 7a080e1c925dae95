package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lil-lang/lil/internal/unit"
)

func readLines(path string) ([]unit.Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return unit.SplitLines(string(data)), nil
}

func runCheck(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: lil check <file>\n")
		return 2
	}

	lines, err := readLines(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		return 1
	}

	failed, err := checkLines(context.Background(), os.Stderr, args[0], lines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d declarations failed\n", failed, unit.CountUnits(lines))
		return 1
	}
	return 0
}

// checkLines compiles every unit and reports each failure under its
// file position, in line order. It returns the number of failed units.
func checkLines(ctx context.Context, w io.Writer, path string, lines []unit.Line) (int, error) {
	results, err := unit.CompileLines(ctx, lines, unit.Options{Debug: *debug})
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		failed++
		fmt.Fprintf(w, "%s:%d:\n", path, r.Line.Num)
		r.Unit.Report(w, r.Err)
	}
	return failed, nil
}

func runFmt(args []string) int {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	check := fs.Bool("check", false, "report lines that are not in canonical form instead of printing")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: lil fmt [-check] <file>\n")
		return 2
	}
	path := fs.Arg(0)

	lines, err := readLines(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		return 1
	}

	formatted, err := formatLines(context.Background(), lines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s:%v\n", path, err)
		return 1
	}

	if *check {
		var dirty int
		for i, l := range lines {
			if l.Text != formatted[i] {
				fmt.Fprintf(os.Stderr, "%s:%d: not formatted\n", path, l.Num)
				dirty++
			}
		}
		if dirty > 0 {
			return 1
		}
		return 0
	}

	for _, text := range formatted {
		fmt.Println(text)
	}
	return 0
}

// lineError places a unit failure at its line in the file.
type lineError struct {
	num int
	err error
}

func (e *lineError) Error() string {
	return fmt.Sprintf("%d: %v", e.num, e.err)
}

func (e *lineError) Unwrap() error { return e.err }

// formatLines renders every unit canonically, keeping skipped lines as
// they are. Only the syntax has to be valid; type errors do not stop
// formatting. The first syntax error in line order is returned.
func formatLines(ctx context.Context, lines []unit.Line) ([]string, error) {
	results, err := unit.CompileLines(ctx, lines, unit.Options{ParseOnly: true})
	if err != nil {
		return nil, err
	}

	out := make([]string, len(results))
	for i, r := range results {
		switch {
		case r.Line.Skip:
			out[i] = r.Line.Text
		case r.Err != nil:
			return nil, &lineError{num: r.Line.Num, err: r.Err}
		default:
			text, err := r.Unit.Canonical()
			if err != nil {
				return nil, &lineError{num: r.Line.Num, err: err}
			}
			out[i] = text
		}
	}
	return out, nil
}
