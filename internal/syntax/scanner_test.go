package syntax

import (
	"strings"
	"testing"
)

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []Kind
		lits  []string
	}{
		// Identifiers and keywords
		{"ident", "foo", []Kind{_Name}, []string{"foo"}},
		{"ident_underscore", "_bar9", []Kind{_Name}, []string{"_bar9"}},
		{"kw_int", "int", []Kind{_Int}, []string{""}},
		{"kw_def", "def", []Kind{_Def}, []string{""}},
		{"kw_elif", "elif", []Kind{_Elif}, []string{""}},
		{"not_kw", "string", []Kind{_Name}, []string{"string"}},

		// Literals
		{"int_dec", "123", []Kind{_IntLit}, []string{"123"}},
		{"int_zero", "0", []Kind{_IntLit}, []string{"0"}},
		{"frac", "3.14", []Kind{_FracLit}, []string{"3.14"}},
		{"frac_no_digits", "3.", []Kind{_FracLit}, []string{"3."}},
		{"bad_number", "12ab", []Kind{_Error}, []string{"12ab"}},
		{"string", `"hello"`, []Kind{_StrLit}, []string{"hello"}},
		{"string_empty", `""`, []Kind{_StrLit}, []string{""}},
		{"string_escape", `"a\n\"b\""`, []Kind{_StrLit}, []string{"a\n\"b\""}},

		// Operators
		{"op_add", "+ ++ +=", []Kind{_Add, _Inc, _AddAssign}, nil},
		{"op_sub", "- -- -=", []Kind{_Sub, _Dec, _SubAssign}, nil},
		{"op_mul", "* ** *= **=", []Kind{_Mul, _Pow, _MulAssign, _PowAssign}, nil},
		{"op_div", "/ /=", []Kind{_Div, _DivAssign}, nil},
		{"op_rem", "% %=", []Kind{_Rem, _RemAssign}, nil},
		{"op_rel", "< <= > >= == !=", []Kind{_Lss, _Leq, _Gtr, _Geq, _Eql, _Neq}, nil},
		{"op_logic", "&& || ! & | << >>", []Kind{_AndAnd, _OrOr, _Not, _And, _Or, _Shl, _Shr}, nil},
		{"op_assign", "=", []Kind{_Assign}, nil},

		// Delimiters
		{"delims", "{}()[]:;,", []Kind{_Lbrace, _Rbrace, _Lparen, _Rparen, _Lbrack, _Rbrack, _Colon, _Semi, _Comma}, nil},

		// Trivia
		{"newline", "a\nb", []Kind{_Name, _Newline, _Name}, []string{"a", "", "b"}},
		{"indent_spaces", "  a", []Kind{_Indent, _Name}, []string{"2", "a"}},
		{"indent_tab", "\t a", []Kind{_Indent, _Name}, []string{"5", "a"}},
		{"indent_after_newline", "a\n    b", []Kind{_Name, _Newline, _Indent, _Name}, []string{"a", "", "4", "b"}},
		{"blanks_inside_line", "a   b", []Kind{_Name, _Name}, nil},
		{"hash_comment", "a # note\nb", []Kind{_Name, _Comment, _Newline, _Name}, []string{"a", "# note", "", "b"}},
		{"slash_comment", "a // note", []Kind{_Name, _Comment}, []string{"a", "// note"}},
		{"block_comment", "a /* x\ny */ b", []Kind{_Name, _Comment, _Name}, []string{"a", "/* x\ny */", "b"}},

		// Statements
		{"decl", "int a[10];", []Kind{_Int, _Name, _Lbrack, _IntLit, _Rbrack, _Semi}, nil},
		{"colon_if", "if x > 1: y = 2", []Kind{_If, _Name, _Gtr, _IntLit, _Colon, _Name, _Assign, _IntLit}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner("test", strings.NewReader(tt.src), nil)
			for i, want := range tt.kinds {
				s.Next()
				if s.Kind() != want {
					t.Errorf("token %d: got %v, want %v", i, s.Kind(), want)
				}
				if tt.lits != nil && s.Literal() != tt.lits[i] {
					t.Errorf("literal %d: got %q, want %q", i, s.Literal(), tt.lits[i])
				}
			}
			s.Next()
			if s.Kind() != _EOF {
				t.Errorf("expected EOF, got %v %q", s.Kind(), s.Literal())
			}
		})
	}
}

func TestScanPositions(t *testing.T) {
	toks := Tokenize("p.pyc", strings.NewReader("int x;\n  x = 1;\n"), nil)

	want := []struct {
		kind      Kind
		line, col int
	}{
		{_Int, 1, 1},
		{_Name, 1, 5},
		{_Semi, 1, 6},
		{_Newline, 1, 7},
		{_Indent, 2, 1},
		{_Name, 2, 3},
		{_Assign, 2, 5},
		{_IntLit, 2, 7},
		{_Semi, 2, 8},
		{_Newline, 2, 9},
		{_EOF, 3, 1},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		tok := toks[i]
		if tok.Kind != w.kind || tok.Pos.Line() != w.line || tok.Pos.Col() != w.col {
			t.Errorf("token %d: got %v at %d:%d, want %v at %d:%d",
				i, tok.Kind, tok.Pos.Line(), tok.Pos.Col(), w.kind, w.line, w.col)
		}
	}
	if toks[0].Pos.Filename() != "p.pyc" {
		t.Errorf("filename = %q, want p.pyc", toks[0].Pos.Filename())
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"unexpected_char", "a @ b", "unexpected character '@'"},
		{"unterminated_string", `"abc`, "string not terminated"},
		{"unterminated_comment", "/* abc", "comment not terminated"},
		{"bad_escape", `"\q"`, `unknown escape sequence: \q`},
		{"bad_number", "1x", "invalid character 'x' in numeric literal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msgs []string
			errh := func(pos Pos, msg string) {
				msgs = append(msgs, msg)
			}
			Tokenize("test", strings.NewReader(tt.src), errh)
			if len(msgs) == 0 {
				t.Fatalf("expected error %q, got none", tt.msg)
			}
			if msgs[0] != tt.msg {
				t.Errorf("error = %q, want %q", msgs[0], tt.msg)
			}
		})
	}
}

func TestScanErrorToken(t *testing.T) {
	toks := Tokenize("test", strings.NewReader("a $"), nil)
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	if toks[1].Kind != _Error || toks[1].Lit != "$" {
		t.Errorf("token 1 = %v, want ERROR \"$\"", toks[1])
	}
}
