// Package syntax implements lexical and syntactic analysis for the Pyc language.
package syntax

import "fmt"

// Kind represents the terminal category of a lexical token.
type Kind uint

const (
	// Special tokens
	_EOF   Kind = iota // end of file
	_Error             // lexical error

	// Names and literals
	_Name    // identifier
	_IntLit  // 123
	_FracLit // 1.5
	_StrLit  // "hello"

	// Arithmetic operators
	_Add // +
	_Sub // -
	_Mul // *
	_Div // /
	_Rem // %
	_Inc // ++
	_Dec // --
	_Pow // **

	// Comparison operators
	_Lss // <
	_Gtr // >
	_Leq // <=
	_Geq // >=
	_Eql // ==
	_Neq // !=

	// Logical and bitwise operators
	_AndAnd // &&
	_OrOr   // ||
	_Not    // !
	_And    // &
	_Or     // |
	_Shl    // <<
	_Shr    // >>

	// Assignment operators
	_Assign    // =
	_AddAssign // +=
	_SubAssign // -=
	_MulAssign // *=
	_DivAssign // /=
	_RemAssign // %=
	_PowAssign // **=

	// Delimiters
	_Lbrace // {
	_Rbrace // }
	_Lparen // (
	_Rparen // )
	_Lbrack // [
	_Rbrack // ]
	_Colon  // :
	_Semi   // ;
	_Comma  // ,

	// Trivia
	_Newline
	_Indent
	_Comment

	// Keywords
	_Int
	_Frac
	_Str
	_Void
	_Do
	_While
	_For
	_Def
	_Return
	_In
	_If
	_Elif
	_Else

	kindCount
)

// kindNames maps token kinds to their string representation.
var kindNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:    "NAME",
	_IntLit:  "INTLIT",
	_FracLit: "FRACLIT",
	_StrLit:  "STRLIT",

	_Add: "+",
	_Sub: "-",
	_Mul: "*",
	_Div: "/",
	_Rem: "%",
	_Inc: "++",
	_Dec: "--",
	_Pow: "**",

	_Lss: "<",
	_Gtr: ">",
	_Leq: "<=",
	_Geq: ">=",
	_Eql: "==",
	_Neq: "!=",

	_AndAnd: "&&",
	_OrOr:   "||",
	_Not:    "!",
	_And:    "&",
	_Or:     "|",
	_Shl:    "<<",
	_Shr:    ">>",

	_Assign:    "=",
	_AddAssign: "+=",
	_SubAssign: "-=",
	_MulAssign: "*=",
	_DivAssign: "/=",
	_RemAssign: "%=",
	_PowAssign: "**=",

	_Lbrace: "{",
	_Rbrace: "}",
	_Lparen: "(",
	_Rparen: ")",
	_Lbrack: "[",
	_Rbrack: "]",
	_Colon:  ":",
	_Semi:   ";",
	_Comma:  ",",

	_Newline: "NEWLINE",
	_Indent:  "INDENT",
	_Comment: "COMMENT",

	_Int:    "int",
	_Frac:   "frac",
	_Str:    "str",
	_Void:   "void",
	_Do:     "do",
	_While:  "while",
	_For:    "for",
	_Def:    "def",
	_Return: "return",
	_In:     "in",
	_If:     "if",
	_Elif:   "elif",
	_Else:   "else",
}

// String returns the string representation of the token kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsKeyword reports whether k is a keyword token.
func (k Kind) IsKeyword() bool {
	return k >= _Int && k <= _Else
}

// IsTrivia reports whether k is a token the parser skips.
func (k Kind) IsTrivia() bool {
	return k == _Newline || k == _Indent || k == _Comment
}

// isType reports whether k names a declarable type.
func (k Kind) isType() bool {
	return k == _Int || k == _Frac || k == _Str || k == _Void
}

// keywords maps keyword strings to their token kind.
var keywords = map[string]Kind{
	"int":    _Int,
	"frac":   _Frac,
	"str":    _Str,
	"void":   _Void,
	"do":     _Do,
	"while":  _While,
	"for":    _For,
	"def":    _Def,
	"return": _Return,
	"in":     _In,
	"if":     _If,
	"elif":   _Elif,
	"else":   _Else,
}

// LookupKeyword returns the token kind for the given identifier string.
// If the identifier is a keyword, returns the keyword kind.
// Otherwise, returns the name kind.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return _Name
}

// IsKeyword reports whether name is a reserved word.
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}

// Token is one element of the token stream.
// Lit is set only for names, literals, comments and indents.
type Token struct {
	Kind Kind
	Lit  string
	Pos  Pos
}

func (t Token) String() string {
	if t.Lit != "" {
		return fmt.Sprintf("%s %s %q", t.Pos, t.Kind, t.Lit)
	}
	return fmt.Sprintf("%s %s", t.Pos, t.Kind)
}

// LitKind represents the kind of a constant expression.
type LitKind uint8

const (
	IntLit    LitKind = iota // 123
	FracLit                  // 1.5
	StringLit                // "hello"
)

// litKindNames maps literal kinds to their string representation.
var litKindNames = [...]string{
	IntLit:    "int",
	FracLit:   "frac",
	StringLit: "string",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= StringLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// Operator is a binary operator appearing in the syntax tree.
type Operator uint8

const (
	_ Operator = iota

	// arithmetic
	Add // +
	Sub // -
	Mul // *
	Div // /

	// relational
	Lss // <
	Leq // <=
	Gtr // >
	Geq // >=
	Eql // ==
	Neq // !=
)

var opNames = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Lss: "<",
	Leq: "<=",
	Gtr: ">",
	Geq: ">=",
	Eql: "==",
	Neq: "!=",
}

func (op Operator) String() string {
	if op > 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Operator(%d)", op)
}

// IsRelational reports whether op compares its operands.
func (op Operator) IsRelational() bool {
	return op >= Lss && op <= Neq
}

// operators maps operator tokens accepted by the grammar to tree operators.
var operators = map[Kind]Operator{
	_Add: Add,
	_Sub: Sub,
	_Mul: Mul,
	_Div: Div,
	_Lss: Lss,
	_Leq: Leq,
	_Gtr: Gtr,
	_Geq: Geq,
	_Eql: Eql,
	_Neq: Neq,
}
