package parser_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lil-lang/lil/internal/ast"
	"github.com/lil-lang/lil/internal/diag"
	"github.com/lil-lang/lil/internal/lexer"
	"github.com/lil-lang/lil/internal/parser"
)

func parseDecl(t *testing.T, src string) (*ast.Arena, ast.Decl) {
	t.Helper()

	a, d, err := parser.ParseLine(src)
	if err != nil {
		t.Fatalf("ParseLine(%q) returned error: %v", src, err)
	}
	if err := ast.Verify(a); err != nil {
		t.Fatalf("ParseLine(%q) produced an invalid arena: %v", src, err)
	}
	return a, d
}

func parseType(t *testing.T, src string) (*ast.Arena, ast.Type) {
	t.Helper()

	p := parser.New(src)
	typ, err := p.ParseType()
	if err != nil {
		t.Fatalf("ParseType(%q) returned error: %v", src, err)
	}
	if err := p.ExpectEOF(); err != nil {
		t.Fatalf("ParseType(%q) left input behind: %v", src, err)
	}
	return p.Arena(), typ
}

func expectParseError(t *testing.T, src, message string) *parser.ParseError {
	t.Helper()

	_, _, err := parser.ParseLine(src)
	if err == nil {
		t.Fatalf("ParseLine(%q) succeeded, expected %q", src, message)
	}
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ParseLine(%q) returned %T, expected *parser.ParseError", src, err)
	}
	if perr.Message != message {
		t.Fatalf("ParseLine(%q) error = %q, want %q", src, perr.Message, message)
	}
	return perr
}

// shape renders a type tree with explicit constructors so nesting is
// visible without relying on the printer's bracketing.
func shape(a *ast.Arena, t ast.Type) string {
	switch n := a.Type(t).(type) {
	case ast.ReferenceType:
		return "Ref(" + shape(a, n.Target) + ")"
	case ast.ArrayType:
		return "Array(" + shape(a, n.Elem) + ")"
	case ast.RecordType:
		fields := make([]string, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = a.Name(f.Name) + ":" + shape(a, f.Type)
		}
		return "Record(" + strings.Join(fields, ",") + ")"
	default:
		return ast.PrintType(a, t)
	}
}

func TestParseTypeShapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"bool", "bool"},
		{"null", "null"},
		{"void", "void"},
		{"u16", "u16"},
		{"&i16", "Ref(i16)"},
		{"&&i16", "Ref(Ref(i16))"},
		{"& &i16", "Ref(Ref(i16))"},
		{"&&&i16", "Ref(Ref(Ref(i16)))"},
		{"i32[]", "Array(i32)"},
		{"i32[][]", "Array(Array(i32))"},
		{"(&i32)[]", "Array(Ref(i32))"},
		{"(i32[])[]", "Array(Array(i32))"},
		{"&(u32[])", "Ref(Array(u32))"},
		{"((bool))", "bool"},
		{"{}", "Record()"},
		{"{i32 a, bool b}", "Record(a:i32,b:bool)"},
		{"{&u8 p, {i64 x} q}", "Record(p:Ref(u8),q:Record(x:i64))"},
		{"({u8 x})[]", "Array(Record(x:u8))"},
	}

	for _, tt := range tests {
		a, typ := parseType(t, tt.src)
		if got := shape(a, typ); got != tt.want {
			t.Fatalf("ParseType(%q) = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestRecordFieldOrderIsKept(t *testing.T) {
	a, typ := parseType(t, "{bool z, i8 a, u8 m}")

	rec, ok := a.Type(typ).(ast.RecordType)
	if !ok {
		t.Fatalf("expected RecordType, got %T", a.Type(typ))
	}
	var names []string
	for _, f := range rec.Fields {
		names = append(names, a.Name(f.Name))
	}
	if got := strings.Join(names, ","); got != "z,a,m" {
		t.Fatalf("field order = %s, want z,a,m", got)
	}
}

func TestReferenceDoesNotTakeArraySuffix(t *testing.T) {
	perr := expectParseError(t, "type t = &u32[];", "expected ';' after type declaration")
	if perr.Span.Column != 14 {
		t.Fatalf("expected the error at the '[', got column %d", perr.Span.Column)
	}

	a, d := parseDecl(t, "type t = &(u32[]);")
	td := a.Decl(d).(ast.TypeDecl)
	if got := shape(a, td.Type); got != "Ref(Array(u32))" {
		t.Fatalf("bracketed form = %s, want Ref(Array(u32))", got)
	}
}

func TestParseTypeErrors(t *testing.T) {
	tests := []struct {
		src     string
		message string
	}{
		{"type t = ;", "expected type"},
		{"type t = i32[;", "expected ']'"},
		{"type t = (i32;", "expected ')' after type"},
		{"type t = {i32 a bool b};", "expected ',' or '}' in record type"},
		{"type t = {i32};", "expected identifier"},
		{"type t = {i32 a,};", "expected type"},
		{"type = i32;", "expected identifier"},
		{"type t i32;", "expected '=' after type name"},
		{"type t = i32", "expected ';' after type declaration"},
		{"type t = &;", "expected type"},
	}

	for _, tt := range tests {
		expectParseError(t, tt.src, tt.message)
	}
}

func TestParseMethodDecl(t *testing.T) {
	a, d := parseDecl(t, "bool[] pick(i32 i, &({bool ok}) r) { skip; }")

	m, ok := a.Decl(d).(ast.MethodDecl)
	if !ok {
		t.Fatalf("expected MethodDecl, got %T", a.Decl(d))
	}
	if got := a.Name(m.Name); got != "pick" {
		t.Fatalf("expected name pick, got %q", got)
	}
	if got := shape(a, m.Return); got != "Array(bool)" {
		t.Fatalf("return type = %s", got)
	}
	if len(m.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(m.Params))
	}
	if got := a.Name(m.Params[1].Name); got != "r" {
		t.Fatalf("second param named %q", got)
	}
	if got := shape(a, m.Params[1].Declared); got != "Ref(Record(ok:bool))" {
		t.Fatalf("second param type = %s", got)
	}

	body, ok := a.Stmt(m.Body).(ast.BlockStmt)
	if !ok || len(body.Stmts) != 1 {
		t.Fatalf("expected a block with one statement, got %#v", a.Stmt(m.Body))
	}
	if _, ok := a.Stmt(body.Stmts[0]).(ast.SkipStmt); !ok {
		t.Fatalf("expected SkipStmt, got %T", a.Stmt(body.Stmts[0]))
	}
}

func TestParseMethodDeclErrors(t *testing.T) {
	tests := []struct {
		src     string
		message string
	}{
		{"void () {}", "expected identifier"},
		{"void f {}", "expected '(' after method name"},
		{"void f(i32) {}", "expected identifier"},
		{"void f(i32 a bool b) {}", "expected ',' or ')' in parameter list"},
		{"void f(i32 a,) {}", "expected type"},
		{"void f()", "expected '{' to start block"},
		{"void f() { skip;", "expected '}' to close block"},
		{"void f() { x; }", "expected statement"},
		{"void f() { skip }", "expected ';' after skip"},
		{"void f() { assert true }", "expected ';' after assertion"},
		{"void f() {} skip;", "unexpected input after declaration"},
		{"", "expected type"},
	}

	for _, tt := range tests {
		expectParseError(t, tt.src, tt.message)
	}
}

func assertion(t *testing.T, a *ast.Arena, d ast.Decl) ast.Expr {
	t.Helper()

	m := a.Decl(d).(ast.MethodDecl)
	body := a.Stmt(m.Body).(ast.BlockStmt)
	as, ok := a.Stmt(body.Stmts[0]).(ast.AssertStmt)
	if !ok {
		t.Fatalf("expected AssertStmt, got %T", a.Stmt(body.Stmts[0]))
	}
	return as.Cond
}

func exprShape(a *ast.Arena, e ast.Expr) string {
	switch n := a.Expr(e).(type) {
	case ast.BoolLiteral:
		return fmt.Sprintf("%t", n.Value)
	case ast.IntLiteral:
		return fmt.Sprintf("%d", n.Value)
	case ast.VarRef:
		return a.Name(n.Name)
	case ast.LessThan:
		return "Lt(" + exprShape(a, n.LHS) + "," + exprShape(a, n.RHS) + ")"
	case ast.Equals:
		return "Eq(" + exprShape(a, n.LHS) + "," + exprShape(a, n.RHS) + ")"
	case ast.NotEquals:
		return "Ne(" + exprShape(a, n.LHS) + "," + exprShape(a, n.RHS) + ")"
	default:
		return fmt.Sprintf("%T", n)
	}
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"true", "true"},
		{"false", "false"},
		{"0", "0"},
		{"2147483647", "2147483647"},
		{"x", "x"},
		{"(x)", "x"},
		{"i < 0", "Lt(i,0)"},
		{"a == b", "Eq(a,b)"},
		{"a != true", "Ne(a,true)"},
		{"(i < 0) == false", "Eq(Lt(i,0),false)"},
		{"x < (y < z)", "Lt(x,Lt(y,z))"},
	}

	for _, tt := range tests {
		src := "void f() { assert " + tt.expr + "; }"
		a, d := parseDecl(t, src)
		if got := exprShape(a, assertion(t, a, d)); got != tt.want {
			t.Fatalf("%q parsed as %s, want %s", tt.expr, got, tt.want)
		}
	}
}

func TestParseExpressionErrors(t *testing.T) {
	tests := []struct {
		expr    string
		message string
	}{
		{"a < b < c", "expected ';' after assertion"},
		{"a <= b", "operator '<=' is not supported"},
		{"a >= b", "operator '>=' is not supported"},
		{"a > b", "operator '>' is not supported"},
		{"a && b", "operator '&&' is not supported"},
		{"a || b", "operator '||' is not supported"},
		{"", "expected expression"},
		{"(a", "expected ')' after expression"},
		{"a <", "expected expression"},
		{"2147483648", "integer literal out of range for i32"},
	}

	for _, tt := range tests {
		expectParseError(t, "void f() { assert "+tt.expr+"; }", tt.message)
	}

	perr := expectParseError(t, "void f() { assert a >= b; }", "operator '>=' is not supported")
	if d := perr.ToDiagnostic(); d.Stage != diag.StageParser || d.Help == "" {
		t.Fatalf("expected a parser diagnostic with help, got %+v", d)
	}

	perr = expectParseError(t, "void f() { assert 99999999999; }", "integer literal out of range for i32")
	if perr.Code != diag.CodeParseIntegerRange {
		t.Fatalf("expected code %q, got %q", diag.CodeParseIntegerRange, perr.Code)
	}
}

func TestNestedBlocks(t *testing.T) {
	a, d := parseDecl(t, "void f() { { skip; } {} assert true; }")

	m := a.Decl(d).(ast.MethodDecl)
	body := a.Stmt(m.Body).(ast.BlockStmt)
	if len(body.Stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(body.Stmts))
	}
	inner, ok := a.Stmt(body.Stmts[0]).(ast.BlockStmt)
	if !ok || len(inner.Stmts) != 1 {
		t.Fatalf("expected an inner block with one statement, got %#v", a.Stmt(body.Stmts[0]))
	}
	if empty := a.Stmt(body.Stmts[1]).(ast.BlockStmt); len(empty.Stmts) != 0 {
		t.Fatalf("expected an empty block, got %d statements", len(empty.Stmts))
	}
}

func TestIllegalCharacter(t *testing.T) {
	perr := expectParseError(t, "void f() { assert #; }", `unrecognized character "#"`)
	if perr.Code != diag.CodeLexerIllegalRune {
		t.Fatalf("expected code %q, got %q", diag.CodeLexerIllegalRune, perr.Code)
	}
	if got := perr.Error(); got != `1:19: unrecognized character "#"` {
		t.Fatalf("unexpected error text %q", got)
	}
	if perr.Lexical == nil {
		t.Fatalf("expected the lexer error to be attached")
	}
	if d := perr.ToDiagnostic(); d.Stage != diag.StageLexer || d.Span.Start != 18 || d.Span.End != 19 {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}

func TestIllegalMultiByteCharacter(t *testing.T) {
	perr := expectParseError(t, "void f() { assert §; assert $; }", `unrecognized character "§"`)
	if perr.Lexical == nil || perr.Lexical.Span.Start != 18 || perr.Lexical.Span.End != 20 {
		t.Fatalf("expected the first illegal rune, got %+v", perr.Lexical)
	}
}

func TestCommentsAreIgnored(t *testing.T) {
	a, d := parseDecl(t, "void f() { // nothing here\n skip; }")
	if got := ast.PrintDecl(a, d); got != "void f() { skip; }" {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestChildrenPrecedeParents(t *testing.T) {
	a, d := parseDecl(t, "void f(&(i32[]) xs, {bool a} r) { { assert (x < 1) != false; } skip; }")

	if int(d.Index()) != a.Len()-1 {
		t.Fatalf("expected the declaration to be the last node, got %d of %d", d.Index(), a.Len())
	}
	ast.Walk(a, d.Index(), func(i ast.Index, n ast.Node) bool {
		for _, child := range ast.Children(n) {
			if child >= i {
				t.Fatalf("node %d (%T) refers to %d", i, n, child)
			}
		}
		return true
	})
}

func TestEveryNodeIsMapped(t *testing.T) {
	const src = "void f(bool b) { assert b == true; }"

	spans := map[ast.Index]lexer.Span{}
	mapper := func(i ast.Index, s lexer.Span) {
		if _, dup := spans[i]; dup {
			t.Fatalf("node %d mapped twice", i)
		}
		spans[i] = s
	}

	a, d, err := parser.ParseLine(src, parser.WithSourceMapper(mapper))
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if len(spans) != a.Len() {
		t.Fatalf("mapped %d of %d nodes", len(spans), a.Len())
	}

	text := func(i ast.Index) string {
		s := spans[i]
		return src[s.Start:s.End]
	}
	if got := text(d.Index()); got != src {
		t.Fatalf("declaration span covers %q", got)
	}

	m := a.Decl(d).(ast.MethodDecl)
	if got := text(m.Name.Index()); got != "f" {
		t.Fatalf("name span covers %q", got)
	}
	if got := text(m.Body.Index()); got != "{ assert b == true; }" {
		t.Fatalf("body span covers %q", got)
	}
	cond := assertion(t, a, d)
	if got := text(cond.Index()); got != "b == true" {
		t.Fatalf("condition span covers %q", got)
	}
}

func TestWithArenaSharesStorage(t *testing.T) {
	shared := ast.NewArena()

	_, first, err := parser.ParseLine("type a = i32;", parser.WithArena(shared))
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}
	before := shared.Len()

	_, second, err := parser.ParseLine("type b = bool;", parser.WithArena(shared))
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}
	if second.Index() <= first.Index() || shared.Len() <= before {
		t.Fatalf("expected the second declaration to be appended")
	}
	if got := ast.PrintDecl(shared, first); got != "type a = i32;" {
		t.Fatalf("first declaration changed: %q", got)
	}
	if err := ast.Verify(shared); err != nil {
		t.Fatalf("shared arena invalid: %v", err)
	}
}

func TestPrintRoundTrip(t *testing.T) {
	sources := []string{
		"type t = &&i16;",
		"type t = &&&(i16[][]);",
		"type t = (&i32)[];",
		"type t = ({i32 a, &(bool[]) b})[];",
		"type t = {};",
		"type t = &({u8 x});",
		"void f() {}",
		"void f(bool b) { assert b; }",
		"i64[] g(i64 x, u8[] y) { { skip; {} } assert (x < 3) == (y != y); }",
		"null h(void v) { assert ((a == b)) != (c < 0); skip; }",
	}

	for _, src := range sources {
		a, d := parseDecl(t, src)
		printed := ast.PrintDecl(a, d)

		b, e := parseDecl(t, printed)
		if !ast.Equal(a, d.Index(), b, e.Index()) {
			t.Fatalf("round trip of %q through %q changed the tree", src, printed)
		}
		if again := ast.PrintDecl(b, e); again != printed {
			t.Fatalf("printing is not stable: %q then %q", printed, again)
		}
	}
}
