// Package unit runs one declaration through the front end. A unit owns
// its arena, source map and type map; nothing is shared between units,
// so independent units may be processed concurrently.
package unit

import (
	"errors"
	"fmt"
	"io"

	"github.com/lil-lang/lil/internal/ast"
	"github.com/lil-lang/lil/internal/diag"
	"github.com/lil-lang/lil/internal/parser"
	"github.com/lil-lang/lil/internal/srcmap"
	"github.com/lil-lang/lil/internal/types"
)

// Unit is one declaration taken through parsing and, if that succeeded,
// checking.
type Unit struct {
	Src     string
	Arena   *ast.Arena
	Decl    ast.Decl
	Sources *srcmap.SourceMap
	Types   *types.TypeMap
}

// Parse parses src as a single declaration without checking it. The unit
// is returned even on failure so the error can be reported against it.
func Parse(src string) (*Unit, error) {
	u := &Unit{
		Src:     src,
		Sources: srcmap.New(src),
		Types:   types.NewTypeMap(),
	}

	arena, decl, err := parser.ParseLine(src, parser.WithSourceMapper(u.Sources.Map))
	u.Arena = arena
	u.Decl = decl
	return u, err
}

// Compile parses src as a single declaration and checks it. With debug
// set the arena is verified between the two phases.
func Compile(src string, debug bool) (*Unit, error) {
	u, err := Parse(src)
	if err != nil {
		return u, err
	}

	if debug {
		if err := ast.Verify(u.Arena); err != nil {
			return u, fmt.Errorf("arena verification failed: %w", err)
		}
	}

	checker := types.NewChecker(u.Arena, types.WithTypeMapper(u.Types.Map))
	if err := checker.Check(u.Decl); err != nil {
		return u, err
	}
	return u, nil
}

// Render returns the canonical text of the unit's declaration.
func (u *Unit) Render() string {
	return ast.PrintDecl(u.Arena, u.Decl)
}

// Canonical renders the declaration and parses the rendering back,
// failing unless it yields the same tree.
func (u *Unit) Canonical() (string, error) {
	text := u.Render()
	back, err := Parse(text)
	if err != nil {
		return "", fmt.Errorf("rendering %q does not parse: %w", text, err)
	}
	if !ast.Equal(u.Arena, u.Decl.Index(), back.Arena, back.Decl.Index()) {
		return "", fmt.Errorf("rendering %q changes the declaration", text)
	}
	return text, nil
}

// Diagnostic converts an error returned by Parse or Compile into a
// diagnostic placed in the unit's source.
func (u *Unit) Diagnostic(err error) diag.Diagnostic {
	var perr *parser.ParseError
	if errors.As(err, &perr) {
		return perr.ToDiagnostic()
	}

	var serr *types.SyntaxError
	if errors.As(err, &serr) {
		return serr.ToDiagnostic(u.Sources.Span).WithLabel(serr.Code.String())
	}

	return diag.Diagnostic{
		Stage:    diag.StageInternal,
		Severity: diag.SeverityError,
		Message:  err.Error(),
		Span:     diag.Span{Start: -1, End: -1},
	}
}

// Report prints err against the unit's source.
func (u *Unit) Report(w io.Writer, err error) {
	diag.NewFormatter(w).Format(u.Diagnostic(err), u.Src)
}
