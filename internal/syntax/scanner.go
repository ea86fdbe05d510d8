package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// tabWidth is the indentation width a tab contributes to an INDENT token.
const tabWidth = 4

// Scanner performs lexical analysis on Pyc source code.
// Unlike the parser it keeps trivia: every newline, the indentation at
// the start of each line, and every comment become tokens.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Kind
	lit    string
	tokPos Pos

	bol bool // at beginning of line

	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col int, msg string)) *Scanner {
	return &Scanner{
		source: *newSource(filename, src, errh),
		bol:    true,
	}
}

// Tokenize scans src to the end and returns the token stream, terminated
// by an EOF token. Lexical errors are reported to errh and also appear
// in the stream as ERROR tokens.
func Tokenize(filename string, src io.Reader, errh ErrorHandler) []Token {
	s := NewScanner(filename, src, func(line, col int, msg string) {
		if errh != nil {
			errh(NewPos(filename, line, col), msg)
		}
	})

	var toks []Token
	for {
		s.Next()
		toks = append(toks, s.Token())
		if s.tok == _EOF {
			return toks
		}
	}
}

// Next advances to the next token.
func (s *Scanner) Next() {
	if s.bol {
		s.bol = false
		if s.scanIndent() {
			return
		}
	}

	for isBlank(s.ch) {
		s.nextch()
	}

	s.tokPos = s.pos()
	s.lit = ""

	switch {
	case s.ch < 0:
		s.tok = _EOF

	case s.ch == '\n':
		s.nextch()
		s.tok = _Newline
		s.bol = true

	case s.ch == '#':
		s.scanLineComment()

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '"':
		s.scanString()

	case isOperatorStart(s.ch):
		s.scanOperator()

	default:
		s.error(fmt.Sprintf("unexpected character %q", s.ch))
		s.tok = _Error
		s.lit = string(s.ch)
		s.nextch()
	}
}

// Token returns the current token.
func (s *Scanner) Token() Token {
	return Token{Kind: s.tok, Lit: s.lit, Pos: s.tokPos}
}

// Kind returns the current token kind.
func (s *Scanner) Kind() Kind {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// scanIndent measures the leading blanks of a line.
// It reports whether an INDENT token was produced.
func (s *Scanner) scanIndent() bool {
	pos := s.pos()
	width := 0
	for s.ch == ' ' || s.ch == '\t' {
		if s.ch == '\t' {
			width += tabWidth
		} else {
			width++
		}
		s.nextch()
	}
	if width == 0 {
		return false
	}
	s.tokPos = pos
	s.tok = _Indent
	s.lit = strconv.Itoa(width)
	return true
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
	if s.tok != _Name {
		s.lit = ""
	}
}

// scanNumber scans an integer or fractional literal.
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	s.tok = _IntLit
	s.scanDigits()

	if s.ch == '.' {
		s.tok = _FracLit
		s.litBuf.WriteRune(s.ch)
		s.nextch()
		s.scanDigits()
	}

	if isLetter(s.ch) {
		s.error(fmt.Sprintf("invalid character %q in numeric literal", s.ch))
		for isLetter(s.ch) || isDigit(s.ch) {
			s.litBuf.WriteRune(s.ch)
			s.nextch()
		}
		s.tok = _Error
	}

	s.lit = s.litBuf.String()
}

func (s *Scanner) scanDigits() {
	for isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
}

// scanString scans a string literal.
// The resulting literal is the decoded string content.
func (s *Scanner) scanString() {
	s.nextch() // skip opening "
	s.litBuf.Reset()

	for {
		switch {
		case s.ch == '"':
			s.nextch()
			s.lit = s.litBuf.String()
			s.tok = _StrLit
			return

		case s.ch == '\\':
			if r, ok := s.scanEscape(); ok {
				s.litBuf.WriteRune(r)
			}

		case s.ch == '\n' || s.ch < 0:
			s.error("string not terminated")
			s.lit = s.litBuf.String()
			s.tok = _Error
			return

		default:
			s.litBuf.WriteRune(s.ch)
			s.nextch()
		}
	}
}

// scanEscape scans an escape sequence and returns the decoded rune.
func (s *Scanner) scanEscape() (rune, bool) {
	s.nextch() // skip \

	var r rune
	switch s.ch {
	case 'n':
		r = '\n'
	case 't':
		r = '\t'
	case 'r':
		r = '\r'
	case '\\':
		r = '\\'
	case '"':
		r = '"'
	case '0':
		r = 0
	default:
		s.error(fmt.Sprintf("unknown escape sequence: \\%c", s.ch))
		if s.ch >= 0 && s.ch != '\n' {
			s.nextch()
		}
		return 0, false
	}
	s.nextch()
	return r, true
}

// scanLineComment scans a comment running to the end of the line.
// The newline itself is left for the next token.
func (s *Scanner) scanLineComment() {
	s.litBuf.Reset()
	for s.ch != '\n' && s.ch >= 0 {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.tok = _Comment
	s.lit = s.litBuf.String()
}

// scanBlockComment scans a /* */ comment. The current character is the '*'.
func (s *Scanner) scanBlockComment() {
	s.litBuf.Reset()
	s.litBuf.WriteString("/*")
	s.nextch()
	for {
		if s.ch < 0 {
			s.error("comment not terminated")
			break
		}
		if s.ch == '*' && s.peek() == '/' {
			s.litBuf.WriteString("*/")
			s.nextch()
			s.nextch()
			break
		}
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.tok = _Comment
	s.lit = s.litBuf.String()
}

// scanOperator scans an operator, delimiter or slash comment.
func (s *Scanner) scanOperator() {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		s.tok = s.pick(_Add, '+', _Inc, '=', _AddAssign)
	case '-':
		s.tok = s.pick(_Sub, '-', _Dec, '=', _SubAssign)
	case '*':
		if s.ch == '*' {
			s.nextch()
			s.tok = s.pick(_Pow, '=', _PowAssign, 0, 0)
		} else {
			s.tok = s.pick(_Mul, '=', _MulAssign, 0, 0)
		}
	case '/':
		switch s.ch {
		case '/':
			s.scanLineComment()
			s.lit = "/" + s.lit
		case '*':
			s.scanBlockComment()
		default:
			s.tok = s.pick(_Div, '=', _DivAssign, 0, 0)
		}
	case '%':
		s.tok = s.pick(_Rem, '=', _RemAssign, 0, 0)
	case '&':
		s.tok = s.pick(_And, '&', _AndAnd, 0, 0)
	case '|':
		s.tok = s.pick(_Or, '|', _OrOr, 0, 0)
	case '<':
		s.tok = s.pick(_Lss, '=', _Leq, '<', _Shl)
	case '>':
		s.tok = s.pick(_Gtr, '=', _Geq, '>', _Shr)
	case '=':
		s.tok = s.pick(_Assign, '=', _Eql, 0, 0)
	case '!':
		s.tok = s.pick(_Not, '=', _Neq, 0, 0)
	case ':':
		s.tok = _Colon
	case '(':
		s.tok = _Lparen
	case ')':
		s.tok = _Rparen
	case '[':
		s.tok = _Lbrack
	case ']':
		s.tok = _Rbrack
	case '{':
		s.tok = _Lbrace
	case '}':
		s.tok = _Rbrace
	case ',':
		s.tok = _Comma
	case ';':
		s.tok = _Semi
	}
}

// pick returns alt1 if the current character is c1, alt2 if it is c2
// (consuming that character), and tok otherwise.
func (s *Scanner) pick(tok Kind, c1 rune, alt1 Kind, c2 rune, alt2 Kind) Kind {
	switch {
	case c1 != 0 && s.ch == c1:
		s.nextch()
		return alt1
	case c2 != 0 && s.ch == c2:
		s.nextch()
		return alt2
	}
	return tok
}
