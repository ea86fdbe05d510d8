package syntax

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/go-test/deep"
)

// ----------------------------------------------------------------------------
// Test helpers

func parseSrc(t *testing.T, src string) *Tree {
	t.Helper()
	tree, errs := parseSrcWithErrors(t, src)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors for %q: %v", src, errs)
	}
	return tree
}

func parseSrcWithErrors(t *testing.T, src string) (*Tree, []string) {
	t.Helper()
	var errs []string
	errh := func(pos Pos, msg string) {
		errs = append(errs, pos.String()+": "+msg)
	}
	tree, n := ParseFile("test.pyc", strings.NewReader(src), errh)
	if tree == nil {
		t.Fatal("ParseFile returned nil tree")
	}
	if n != len(errs) {
		t.Fatalf("error count = %d, but handler saw %d errors", n, len(errs))
	}
	return tree, errs
}

// body parses src as the body of a void function and returns its
// statement list.
func body(t *testing.T, src string) (*Tree, []NodeID) {
	t.Helper()
	tree := parseSrc(t, "void f() {\n"+src+"\n}")
	fn := tree.Decls()[0]
	return tree, tree.List(tree.Child(tree.Child(fn, 1), 1))
}

func summaries(t *Tree, ids []NodeID) []string {
	var s []string
	for _, id := range ids {
		s = append(s, summary(t, id))
	}
	return s
}

func opt(t *Tree, id NodeID) string {
	if id == NoNode {
		return "_"
	}
	return summary(t, id)
}

// summary renders a subtree in a compact nested form.
func summary(t *Tree, id NodeID) string {
	child := func(i int) string { return opt(t, t.Child(id, i)) }
	list := func(i int) string { return strings.Join(summaries(t, t.List(t.Child(id, i))), " ") }

	switch a := t.Attr(id).(type) {
	case *VarDecl:
		return a.Type.String() + " " + a.Name
	case *ArrayDecl:
		return fmt.Sprintf("%s %s[%d]", a.Elem, a.Name, a.Size)
	case *FuncDecl:
		def := ""
		if a.Def {
			def = "def "
		}
		return fmt.Sprintf("%s%s %s(%s) %s", def, a.Result, a.Name,
			strings.Join(summaries(t, t.List(t.Child(id, 0))), ", "), child(1))
	case *VarParam:
		return a.Type.String() + " " + a.Name
	case *ArrayParam:
		return a.Elem.String() + " " + a.Name + "[]"
	case *VoidParam:
		return "void"

	case *CompoundStmt:
		parts := append(summaries(t, t.List(t.Child(id, 0))), summaries(t, t.List(t.Child(id, 1)))...)
		return "Block{" + strings.Join(parts, "; ") + "}"
	case *ExprStmt:
		return child(0)
	case *NullStmt:
		return ";"
	case *SelectionStmt:
		if t.Child(id, 2) == NoNode {
			return "If{" + child(0) + "," + child(1) + "}"
		}
		return "If{" + child(0) + "," + child(1) + "," + child(2) + "}"
	case *WhileStmt:
		return "While{" + child(0) + "," + child(1) + "}"
	case *DoWhileStmt:
		return "Do{" + child(0) + "," + child(1) + "}"
	case *ForStmt:
		return "For{" + child(0) + "," + child(1) + "," + child(2) + "," + child(3) + "}"
	case *ForInStmt:
		return "ForIn{" + child(0) + "," + child(1) + "," + child(2) + "}"
	case *ReturnStmt:
		if t.Child(id, 0) == NoNode {
			return "Return"
		}
		return "Return{" + child(0) + "}"

	case *IdentExpr:
		return a.Name
	case *ConstExpr:
		if a.Lit == StringLit {
			return strconv.Quote(a.Value)
		}
		return a.Value
	case *BinaryExpr:
		return "Op{" + a.Op.String() + "," + child(0) + "," + child(1) + "}"
	case *AssignExpr:
		return "Asg{" + child(0) + "," + child(1) + "}"
	case *IndexExpr:
		return "Index{" + a.Name + "," + child(0) + "}"
	case *CallExpr:
		return "Call{" + a.Name + ",[" + list(0) + "]}"
	}
	return "<unknown>"
}

// ----------------------------------------------------------------------------
// Declarations

func TestParseDeclarations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"var", "int x;", []string{"int x"}},
		{"var_no_semi", "int x frac y str s", []string{"int x", "frac y", "string s"}},
		{"duplicate_is_syntactically_fine", "int x; int x;", []string{"int x", "int x"}},
		{"array", "int a[10];", []string{"int a[10]"}},
		{"zero_array", "int a[0];", []string{"int a[0]"}},
		{"func", "int f(int x){ return x; }", []string{"int f(int x) Block{Return{x}}"}},
		{"void_params", "int read(void) { return 0; }", []string{"int read(void) Block{Return{0}}"}},
		{"empty_params", "void g() { }", []string{"void g() Block{}"}},
		{"def", "def h(a, frac b[]): { }", []string{"def void h(int a, frac b[]) Block{}"}},
		{"string_result", "str name() { return \"x\"; }", []string{`string name() Block{Return{"x"}}`}},
		{"mixed", "int g; void f() { int y; y = g; } int h[2];",
			[]string{"int g", "void f() Block{int y; Asg{y,g}}", "int h[2]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseSrc(t, tt.src)
			got := summaries(tree, tree.Decls())
			if diff := deep.Equal(got, tt.want); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestParseDeclarationCount(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"int x;", 1},
		{"int x; int y[3]; frac z;", 3},
		{"int x; void f() { int x; { int x; } } def g(): { }", 3},
		{"int f(int n) { if (n < 2) return n; return f(n - 1) + f(n - 2); }\nvoid main(void) { write(f(10)); }", 2},
	}

	for _, tt := range tests {
		tree, n := ParseFile("test.pyc", strings.NewReader(tt.src), nil)
		if n != 0 {
			t.Errorf("%q: %d errors", tt.src, n)
			continue
		}
		if got := len(tree.Decls()); got != tt.want {
			t.Errorf("%q: %d declarations, want %d", tt.src, got, tt.want)
		}
	}
}

// ----------------------------------------------------------------------------
// Statements

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"null", ";", []string{";"}},
		{"expr", "x = 1;", []string{"Asg{x,1}"}},
		{"block", "{ int y; y = 2; }", []string{"Block{int y; Asg{y,2}}"}},
		{"return_void", "return;", []string{"Return"}},
		{"return_value", "return x + 1;", []string{"Return{Op{+,x,1}}"}},

		{"if_paren", "if (x) y = 1;", []string{"If{x,Asg{y,1}}"}},
		{"if_colon", "if x > 1: y = 1;", []string{"If{Op{>,x,1},Asg{y,1}}"}},
		{"if_paren_colon", "if (x) > 1: y = 1;", []string{"If{Op{>,x,1},Asg{y,1}}"}},
		{"if_else", "if (x) y = 1; else y = 2;", []string{"If{x,Asg{y,1},Asg{y,2}}"}},
		{"if_else_colon", "if x: y = 1; else: y = 2;", []string{"If{x,Asg{y,1},Asg{y,2}}"}},
		{"elif", "if x == 1: y = 1; elif x == 2: y = 2; else: y = 3;",
			[]string{"If{Op{==,x,1},Asg{y,1},If{Op{==,x,2},Asg{y,2},Asg{y,3}}}"}},
		{"dangling_else", "if (a) if (b) x = 1; else x = 2;",
			[]string{"If{a,If{b,Asg{x,1},Asg{x,2}}}"}},

		{"while_paren", "while (i < 10) i = i + 1;", []string{"While{Op{<,i,10},Asg{i,Op{+,i,1}}}"}},
		{"while_colon", "while i < 10: { i = i + 1; }", []string{"While{Op{<,i,10},Block{Asg{i,Op{+,i,1}}}}"}},
		{"do_while", "do i = i + 1; while (i < 3);", []string{"Do{Asg{i,Op{+,i,1}},Op{<,i,3}}"}},
		{"do_while_no_semi", "do ; while (x) x = 1;", []string{"Do{;,x}", "Asg{x,1}"}},
		{"for", "for (i = 0; i < n; i = i + 1) s = s + i;",
			[]string{"For{Asg{i,0},Op{<,i,n},Asg{i,Op{+,i,1}},Asg{s,Op{+,s,i}}}"}},
		{"for_empty", "for (;;) ;", []string{"For{_,_,_,;}"}},
		{"for_cond_only", "for (; i;) ;", []string{"For{_,i,_,;}"}},
		{"for_in", "for v in a: s = s + v;", []string{"ForIn{v,a,Asg{s,Op{+,s,v}}}"}},

		{"sequence", "x = 1; ; return x;", []string{"Asg{x,1}", ";", "Return{x}"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, stmts := body(t, tt.src)
			if diff := deep.Equal(summaries(tree, stmts), tt.want); diff != nil {
				t.Error(diff)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Expressions

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x", "x"},
		{"42", "42"},
		{"1.5", "1.5"},
		{`"hi"`, `"hi"`},
		{"f()", "Call{f,[]}"},
		{"f(1, x + 2, g(y))", "Call{f,[1 Op{+,x,2} Call{g,[y]}]}"},
		{"a[i + 1]", "Index{a,Op{+,i,1}}"},
		{"a[i] = b[j]", "Asg{Index{a,i},Index{b,j}}"},

		// Multiplicative binds tighter than additive
		{"1 + 2 * 3", "Op{+,1,Op{*,2,3}}"},
		{"1 * 2 + 3", "Op{+,Op{*,1,2},3}"},
		{"(1 + 2) * 3", "Op{*,Op{+,1,2},3}"},

		// Left associativity
		{"a - b - c", "Op{-,Op{-,a,b},c}"},
		{"a / b / c", "Op{/,Op{/,a,b},c}"},

		// Relational is loosest and non-associative
		{"a + 1 <= b * 2", "Op{<=,Op{+,a,1},Op{*,b,2}}"},
		{"a != b", "Op{!=,a,b}"},

		// Assignment is right associative
		{"a = b = 3", "Asg{a,Asg{b,3}}"},
		{"x = y < z", "Asg{x,Op{<,y,z}}"},

		// The target is only checked during analysis
		{"1 = 2", "Asg{1,2}"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tree, stmts := body(t, tt.src+";")
			if len(stmts) != 1 {
				t.Fatalf("got %d statements, want 1", len(stmts))
			}
			if got := summary(tree, stmts[0]); got != tt.want {
				t.Errorf("got:  %s\nwant: %s", got, tt.want)
			}
		})
	}
}

func TestParseLongChain(t *testing.T) {
	src := "x = 1" + strings.Repeat(" + 1", 10000) + ";"
	tree, stmts := body(t, src)
	rhs := tree.Child(tree.Child(stmts[0], 0), 1)
	depth := 0
	for id := rhs; tree.Kind(id) == ExprNode; id = tree.Child(id, 0) {
		depth++
	}
	if depth != 10001 {
		t.Errorf("left spine depth = %d, want 10001", depth)
	}
}

// ----------------------------------------------------------------------------
// Tree shape

func TestParseLinks(t *testing.T) {
	tree := parseSrc(t, "int g; int f(int a, int b) { int x; x = a; return b; }")

	decls := tree.Decls()
	if len(decls) != 2 {
		t.Fatalf("got %d decls, want 2", len(decls))
	}
	for _, d := range decls {
		if tree.Parent(d) != tree.Root {
			t.Errorf("decl %d parent = %d, want root", d, tree.Parent(d))
		}
	}
	if tree.Left(decls[1]) != decls[0] || tree.Right(decls[0]) != decls[1] {
		t.Error("declaration siblings not linked both ways")
	}

	fn := decls[1]
	for _, prm := range tree.List(tree.Child(fn, 0)) {
		if tree.Parent(prm) != fn {
			t.Errorf("param %d parent = %d, want %d", prm, tree.Parent(prm), fn)
		}
	}

	blk := tree.Child(fn, 1)
	stmts := tree.List(tree.Child(blk, 1))
	if len(stmts) != 2 {
		t.Fatalf("got %d stmts, want 2", len(stmts))
	}
	for _, s := range stmts {
		if tree.Parent(s) != blk {
			t.Errorf("stmt %d parent = %d, want %d", s, tree.Parent(s), blk)
		}
	}
	ret := stmts[1]
	isFunc := func(a Attr) bool { _, ok := a.(*FuncDecl); return ok }
	if got := tree.Enclosing(tree.Child(ret, 0), isFunc); got != fn {
		t.Errorf("Enclosing(return value) = %d, want %d", got, fn)
	}
}

func TestParseInitialTypes(t *testing.T) {
	tree := parseSrc(t, "void f() { x = 1 + 2; }")
	Inspect(tree, tree.Root, func(id NodeID) {
		if got := tree.Type(id).String(); got != "undefined" {
			t.Errorf("node %d type = %s, want undefined", id, got)
		}
	})
}

func TestParsePositions(t *testing.T) {
	src := "int f(int x)\n{\n  return\n    x + 1;\n}\n"
	tree := parseSrc(t, src)

	fn := tree.Decls()[0]
	ret := tree.List(tree.Child(tree.Child(fn, 1), 1))[0]
	add := tree.Child(ret, 0)

	tests := []struct {
		id        NodeID
		line, col int
	}{
		{fn, 1, 1},
		{tree.Child(fn, 0), 1, 7},
		{tree.Child(fn, 1), 2, 1},
		{ret, 3, 3},
		{add, 4, 7},
		{tree.Child(add, 0), 4, 5},
	}
	for _, tt := range tests {
		pos := tree.Pos(tt.id)
		if pos.Line() != tt.line || pos.Col() != tt.col {
			t.Errorf("node %s at %s, want %d:%d", summary(tree, tt.id), pos, tt.line, tt.col)
		}
	}
}

func TestParseTrivia(t *testing.T) {
	plain := parseSrc(t, "int f(int x) { if (x) return 1; return 0; }")
	noisy := parseSrc(t, `# leading comment
int f(int x)   // signature
{
	/* multi
	   line */
    if (x)
        return 1;
    return 0;
}
`)
	want := summaries(plain, plain.Decls())
	if diff := deep.Equal(summaries(noisy, noisy.Decls()), want); diff != nil {
		t.Error(diff)
	}
}

func TestParseTokenStream(t *testing.T) {
	// No explicit EOF: running off the end of the stream ends the parse.
	toks := []Token{
		{Kind: _Int, Pos: LinePos(1)},
		{Kind: _Name, Lit: "x", Pos: LinePos(1)},
		{Kind: _Semi, Pos: LinePos(1)},
		{Kind: _Newline, Pos: LinePos(1)},
		{Kind: _Frac, Pos: LinePos(2)},
		{Kind: _Name, Lit: "y", Pos: LinePos(2)},
	}
	tree, n := Parse(toks, nil)
	if n != 0 {
		t.Fatalf("got %d errors", n)
	}
	got := summaries(tree, tree.Decls())
	if diff := deep.Equal(got, []string{"int x", "frac y"}); diff != nil {
		t.Error(diff)
	}
	if line := tree.Line(tree.Decls()[1]); line != 2 {
		t.Errorf("line = %d, want 2", line)
	}
}

// ----------------------------------------------------------------------------
// Error tests

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"empty", "", "expected type, found EOF"},
		{"missing_name", "int", "expected identifier in declaration"},
		{"array_no_size", "int a[];", "expected integer array size, found ]"},
		{"array_frac_size", "int a[1.5];", "expected integer array size"},
		{"array_unclosed", "int a[3;", "expected ] after array size"},
		{"void_var", "void x;", "variable declared void"},
		{"void_param", "int f(void x) { }", "parameter declared void"},
		{"bad_param", "int f( { }", "expected type, found {"},
		{"def_var", "def x;", "expected function declaration after def"},
		{"def_no_colon", "def f() { }", "expected : after def signature"},
		{"trailing", "int x; 5", `expected declaration, found INTLIT "5"`},
		{"no_body", "int f()", "expected { to open block"},
		{"unclosed_block", "void f() { x = 1;", "expected } to close block"},
		{"missing_semi", "void f() { x = 1 }", "expected ; after expression, found }"},
		{"compound_assign", "void f() { x += 1; }", "expected ; after expression, found +="},
		{"decl_after_stmt", "void f() { x = 1; int y; }", "declaration after statement"},
		{"bare_cond", "void f() { if x y = 1; }", "expected ':' after if condition"},
		{"bare_while", "void f() { while x x = 1; }", "expected ':' after while condition"},
		{"half_paren_cond", "void f() { if (a) + b x = 1; }", "expected ':' after if condition"},
		{"do_no_while", "void f() { do x = 1; }", "expected while after do body"},
		{"for_missing_semi", "void f() { for (i = 0 i) ; }", "expected ; in for clause"},
		{"for_in_no_colon", "void f() { for v in a v = 1; }", "expected : after for-in range"},
		{"return_no_semi", "int f() { return 1 }", "expected ; after return"},
		{"bad_factor", "void f() { x = * 2; }", "expected expression, found *"},
		{"unclosed_call", "void f() { g(1, 2; }", "expected ) after arguments"},
		{"unclosed_index", "void f() { a[1 = 2; }", "expected ] after index"},
		{"lex_error", "int x @;", "unexpected character '@'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := parseSrcWithErrors(t, tt.src)
			if len(errs) == 0 {
				t.Fatalf("expected error containing %q, got none", tt.wantErr)
			}
			found := false
			for _, e := range errs {
				if strings.Contains(e, tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %q do not contain %q", errs, tt.wantErr)
			}
		})
	}
}

func TestParseOneErrorPerFailure(t *testing.T) {
	tree, errs := parseSrcWithErrors(t, "int x; int y; void f() { return } int z;")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	// The parse stops at the failing declaration; what came before survives.
	got := summaries(tree, tree.Decls())
	if diff := deep.Equal(got, []string{"int x", "int y"}); diff != nil {
		t.Error(diff)
	}
}

func TestParseLexicalErrorCountedOnce(t *testing.T) {
	_, errs := parseSrcWithErrors(t, "int x @")
	if diff := deep.Equal(errs, []string{"test.pyc:1:7: unexpected character '@'"}); diff != nil {
		t.Error(diff)
	}

	// A bad character the parse never reaches is still counted.
	_, errs = parseSrcWithErrors(t, "int x; void f() { return } @")
	if len(errs) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(errs), errs)
	}

	p := NewParser(Tokenize("e.pyc", strings.NewReader("int x @"), nil), nil)
	p.Parse()
	if p.Errors() != 1 || p.FirstError() == nil {
		t.Errorf("Errors() = %d, FirstError() = %v, want one error", p.Errors(), p.FirstError())
	}
}

func TestParseFirstError(t *testing.T) {
	toks := Tokenize("e.pyc", strings.NewReader("int x\nint [3]"), nil)
	p := NewParser(toks, nil)
	p.Parse()
	if p.Errors() != 1 {
		t.Fatalf("Errors() = %d, want 1", p.Errors())
	}
	err, ok := p.FirstError().(*SyntaxError)
	if !ok {
		t.Fatalf("FirstError() = %T, want *SyntaxError", p.FirstError())
	}
	if err.Pos.Line() != 2 || err.Pos.Col() != 5 {
		t.Errorf("error at %s, want 2:5", err.Pos)
	}
	if !strings.HasPrefix(err.Error(), "e.pyc:2:5: expected identifier") {
		t.Errorf("Error() = %q", err.Error())
	}
}

// ----------------------------------------------------------------------------
// Printing

func TestFprint(t *testing.T) {
	src := `int g[4];
int f(int x, frac y[]) {
  int z;
  z = x + 1;
  if (z > 2) return z; else return 0;
}
`
	want := `  Declare:  int g [4]
  Declare:  int f function with parameters :
    Parameter: int x
    Parameter: frac y[ ]
    Compound Stmt:
      Declare:  int z
      Expression stmt:
        Operator: =
          ID: z
          Operator: +
            ID: x
            Const: 1
      If  with ELSE
        Operator: >
          ID: z
          Const: 2
        Return
          ID: z
        Return
          Const: 0
`
	tree := parseSrc(t, src)
	var buf bytes.Buffer
	Fprint(&buf, tree, 0)
	if got := buf.String(); got != want {
		t.Errorf("listing mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFprintModes(t *testing.T) {
	tree := parseSrc(t, "def p(): { print(\"a\"); }")
	var buf bytes.Buffer
	Fprint(&buf, tree, ShowTypes|ShowLines)
	want := `   1   Declare:  void p function with parameters :
   1     Compound Stmt:
   1       Expression stmt:
   1         Call function: print, with arguments: : undefined
   1           Const: "a" : undefined
`
	if got := buf.String(); got != want {
		t.Errorf("listing mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFprintJSON(t *testing.T) {
	tree := parseSrc(t, "int g[4]; int main(void) { return g[0]; }")
	var buf bytes.Buffer
	if err := FprintJSON(&buf, tree); err != nil {
		t.Fatal(err)
	}

	var root struct {
		Node     string
		Children [][]struct {
			Node     string
			Name     string
			Size     int64
			Result   string
			Children [][]map[string]interface{}
		}
	}
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if root.Node != "Program" {
		t.Errorf("root node = %q, want Program", root.Node)
	}
	if len(root.Children) != 1 || len(root.Children[0]) != 2 {
		t.Fatalf("unexpected root children: %s", buf.String())
	}
	g, main := root.Children[0][0], root.Children[0][1]
	if g.Node != "ArrayDecl" || g.Name != "g" || g.Size != 4 {
		t.Errorf("first decl = %+v", g)
	}
	if main.Node != "FuncDecl" || main.Result != "int" || len(main.Children) != 2 {
		t.Errorf("second decl = %+v", main)
	}
	if main.Children[0][0]["node"] != "VoidParam" {
		t.Errorf("param = %v, want VoidParam", main.Children[0][0]["node"])
	}
}

// ----------------------------------------------------------------------------
// Walk tests

func TestWalk(t *testing.T) {
	tree := parseSrc(t, "int a; void f() { { } } int b;")

	var order []string
	Walk(tree, tree.Root, func(id NodeID) bool {
		order = append(order, fmt.Sprintf("%T", tree.Attr(id)))
		_, isFunc := tree.Attr(id).(*FuncDecl)
		return !isFunc
	})
	want := []string{"*syntax.Program", "*syntax.VarDecl", "*syntax.FuncDecl", "*syntax.VarDecl"}
	if diff := deep.Equal(order, want); diff != nil {
		t.Error(diff)
	}
}

func TestWalkPost(t *testing.T) {
	tree, stmts := body(t, "x = 1 + 2;")

	var order []string
	WalkPost(tree, stmts[0], func(id NodeID) {
		order = append(order, summary(tree, id))
	})
	want := []string{"x", "1", "2", "Op{+,1,2}", "Asg{x,Op{+,1,2}}", "Asg{x,Op{+,1,2}}"}
	if diff := deep.Equal(order, want); diff != nil {
		t.Error(diff)
	}
}

// ----------------------------------------------------------------------------
// Fuzz test

func FuzzParse(f *testing.F) {
	seeds := []string{
		"int x;",
		"int a[10]; int f(int x) { return x; }",
		"def g(a, b): { if a > b: return; else: write(a); }",
		"void f() { for (i = 0; i < 10; i = i + 1) { x = x * 2; } }",
		"void f() { do x = x - 1; while (x > 0) }",
		"void f() { for v in a: s = s + v; }",
		"void f() { if (a) x = 1; elif b: x = 2; }",
		"int x @",
		"/* unterminated",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("parser panicked on input %q: %v", src, r)
			}
		}()
		tree, _ := ParseFile("fuzz", strings.NewReader(src), nil)
		var buf bytes.Buffer
		Fprint(&buf, tree, ShowTypes)
	})
}
