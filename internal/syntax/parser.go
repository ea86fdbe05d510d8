package syntax

import (
	"fmt"
	"io"
	"strconv"

	"github.com/you-not-fish/pyc/internal/types"
)

// ErrorHandler is called for each error reported while scanning or parsing.
type ErrorHandler func(pos Pos, msg string)

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Parser performs syntax analysis over a materialized token stream.
//
// Every production returns (NodeID, error). A failing production reports
// one error, discards what it built and returns (NoNode, err); callers
// propagate the failure unless the sub-production was optional. There is
// no resynchronization: the first hard failure aborts the parse and the
// tree built so far is returned.
type Parser struct {
	toks []Token
	idx  int // index of the current token in toks

	// Current token info
	tok Kind
	lit string
	pos Pos

	tree   *Tree
	parens map[NodeID]bool // expressions written inside ( )

	// Error handling
	errh    ErrorHandler
	errcnt  int
	first   error // first error encountered
	lexFail bool  // the parse failed at an ERROR token
}

// NewParser creates a Parser over toks. The stream need not end with an
// EOF token; running off its end is treated as EOF.
func NewParser(toks []Token, errh ErrorHandler) *Parser {
	p := &Parser{
		toks:   toks,
		idx:    -1,
		tree:   NewTree(),
		parens: make(map[NodeID]bool),
		errh:   errh,
	}
	p.next() // prime the parser with first token
	return p
}

// Parse parses toks and returns the tree and the number of syntax errors.
// With a non-zero count the tree is partial and must not be analyzed.
func Parse(toks []Token, errh ErrorHandler) (*Tree, int) {
	p := NewParser(toks, errh)
	tree := p.Parse()
	return tree, p.Errors()
}

// ParseFile scans and parses src. Lexical errors are counted with the
// syntax errors; a parse that fails at the bad token counts it once.
func ParseFile(filename string, src io.Reader, errh ErrorHandler) (*Tree, int) {
	lexErrs := 0
	toks := Tokenize(filename, src, func(pos Pos, msg string) {
		lexErrs++
		if errh != nil {
			errh(pos, msg)
		}
	})
	p := NewParser(toks, errh)
	tree := p.Parse()
	n := p.Errors() + lexErrs
	if p.lexFail {
		n--
	}
	return tree, n
}

// ----------------------------------------------------------------------------
// Token navigation

// skip returns the index of the first non-trivia token at or after i.
func (p *Parser) skip(i int) int {
	for i < len(p.toks) && p.toks[i].Kind.IsTrivia() {
		i++
	}
	return i
}

// next advances to the next significant token.
func (p *Parser) next() {
	if p.tok == _EOF && p.idx >= 0 {
		return
	}
	p.idx = p.skip(p.idx + 1)
	if p.idx >= len(p.toks) {
		p.tok, p.lit = _EOF, ""
		if n := len(p.toks); n > 0 {
			p.pos = p.toks[n-1].Pos
		}
		return
	}
	t := p.toks[p.idx]
	p.tok, p.lit, p.pos = t.Kind, t.Lit, t.Pos
}

// peek returns the kind of the n'th significant token after the current
// one without consuming anything.
func (p *Parser) peek(n int) Kind {
	i := p.idx
	for ; n > 0; n-- {
		if i >= len(p.toks) {
			return _EOF
		}
		i = p.skip(i + 1)
	}
	if i >= len(p.toks) {
		return _EOF
	}
	return p.toks[i].Kind
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Kind) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error.
func (p *Parser) want(tok Kind, context string) error {
	if !p.got(tok) {
		return p.syntaxError(fmt.Sprintf("expected %s %s", tok, context))
	}
	return nil
}

// name consumes an identifier and returns its text.
func (p *Parser) name(context string) (string, error) {
	if p.tok != _Name {
		return "", p.syntaxError("expected identifier " + context)
	}
	name := p.lit
	p.next()
	return name, nil
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current token.
func (p *Parser) syntaxError(msg string) error {
	if p.tok == _Error {
		return p.lexicalFailure(msg)
	}
	found := p.tok.String()
	switch p.tok {
	case _Name, _IntLit, _FracLit, _Error:
		found = fmt.Sprintf("%s %q", p.tok, p.lit)
	}
	return p.syntaxErrorAt(p.pos, msg+", found "+found)
}

// syntaxErrorAt reports a syntax error at a specific position.
func (p *Parser) syntaxErrorAt(pos Pos, msg string) error {
	err := &SyntaxError{Pos: pos, Msg: msg}
	if p.errcnt == 0 {
		p.first = err
	}
	p.errcnt++

	if p.errh != nil {
		p.errh(pos, msg)
	}
	return err
}

// lexicalFailure records a failure at an ERROR token. The scanner has
// already reported the bad input, so the handler is not called again.
func (p *Parser) lexicalFailure(msg string) error {
	err := &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf("%s, found %s %q", msg, p.tok, p.lit)}
	if p.errcnt == 0 {
		p.first = err
	}
	p.errcnt++
	p.lexFail = true
	return err
}

// Errors returns the number of errors encountered during parsing.
func (p *Parser) Errors() int {
	return p.errcnt
}

// FirstError returns the first error encountered, or nil if none.
func (p *Parser) FirstError() error {
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses the whole token stream and returns the tree.
//
//	program -> declaration+
func (p *Parser) Parse() *Tree {
	t := p.tree
	t.Root = t.New(p.pos, &Program{})

	var head, tail NodeID
	for {
		d, err := p.declaration()
		if err != nil {
			break
		}
		if head == NoNode {
			head = d
		}
		tail = t.Link(tail, d)

		if p.tok == _EOF {
			break
		}
		if !p.tok.isType() && p.tok != _Def {
			p.syntaxError("expected declaration")
			break
		}
	}
	t.SetChild(t.Root, 0, head)
	return t
}

// ----------------------------------------------------------------------------
// Declarations

// declaration parses a variable or function declaration.
// Three tokens decide between them: type-or-def, ID, '('.
func (p *Parser) declaration() (NodeID, error) {
	if (p.tok.isType() || p.tok == _Def) && p.peek(1) == _Name && p.peek(2) == _Lparen {
		return p.funDecl()
	}
	if p.tok == _Def {
		return NoNode, p.syntaxError("expected function declaration after def")
	}
	return p.varDecl()
}

// basicType consumes a type keyword.
func (p *Parser) basicType() (*types.Basic, error) {
	var typ *types.Basic
	switch p.tok {
	case _Int:
		typ = types.Typ[types.Int]
	case _Frac:
		typ = types.Typ[types.Frac]
	case _Str:
		typ = types.Typ[types.String]
	case _Void:
		typ = types.Typ[types.Void]
	default:
		return nil, p.syntaxError("expected type")
	}
	p.next()
	return typ, nil
}

// varDecl parses:
//
//	var_declaration -> type ID [ '[' INTLITERAL ']' ] [';']
func (p *Parser) varDecl() (NodeID, error) {
	pos := p.pos
	typ, err := p.basicType()
	if err != nil {
		return NoNode, err
	}
	if typ.Kind() == types.Void {
		return NoNode, p.syntaxErrorAt(pos, "variable declared void")
	}
	name, err := p.name("in declaration")
	if err != nil {
		return NoNode, err
	}

	var attr Attr = &VarDecl{Name: name, Type: typ}
	if p.got(_Lbrack) {
		if p.tok != _IntLit {
			return NoNode, p.syntaxError("expected integer array size")
		}
		size, err := strconv.ParseInt(p.lit, 10, 64)
		if err != nil {
			return NoNode, p.syntaxError("array size out of range")
		}
		p.next()
		if err := p.want(_Rbrack, "after array size"); err != nil {
			return NoNode, err
		}
		attr = &ArrayDecl{Name: name, Elem: typ, Size: size}
	}
	p.got(_Semi)

	return p.tree.New(pos, attr), nil
}

// funDecl parses:
//
//	fun_declaration -> type ID '(' param_list ')' compound_stmt
//	                 | 'def' ID '(' param_list ')' ':' compound_stmt
func (p *Parser) funDecl() (NodeID, error) {
	pos := p.pos
	d := &FuncDecl{}
	if p.got(_Def) {
		d.Def = true
		d.Result = types.Typ[types.Void]
	} else {
		typ, err := p.basicType()
		if err != nil {
			return NoNode, err
		}
		d.Result = typ
	}

	var err error
	if d.Name, err = p.name("in function declaration"); err != nil {
		return NoNode, err
	}
	if err := p.want(_Lparen, "after function name"); err != nil {
		return NoNode, err
	}
	params, err := p.paramList()
	if err != nil {
		return NoNode, err
	}
	if err := p.want(_Rparen, "after parameters"); err != nil {
		return NoNode, err
	}
	if d.Def {
		if err := p.want(_Colon, "after def signature"); err != nil {
			return NoNode, err
		}
	}
	body, err := p.compoundStmt()
	if err != nil {
		return NoNode, err
	}

	t := p.tree
	fn := t.New(pos, d)
	t.SetChild(fn, 0, params)
	t.SetChild(fn, 1, body)
	return fn, nil
}

// paramList parses:
//
//	param_list -> param (',' param)* | 'void' | ε
func (p *Parser) paramList() (NodeID, error) {
	if p.tok == _Rparen {
		return NoNode, nil
	}
	if p.tok == _Void && p.peek(1) == _Rparen {
		pos := p.pos
		p.next()
		return p.tree.New(pos, &VoidParam{}), nil
	}

	var head, tail NodeID
	for {
		prm, err := p.param()
		if err != nil {
			return NoNode, err
		}
		if head == NoNode {
			head = prm
		}
		tail = p.tree.Link(tail, prm)
		if !p.got(_Comma) {
			return head, nil
		}
	}
}

// param parses:
//
//	param -> type ID ['[' ']'] | ID
func (p *Parser) param() (NodeID, error) {
	pos := p.pos
	if p.tok == _Name {
		name := p.lit
		p.next()
		return p.tree.New(pos, &VarParam{Name: name, Type: types.Typ[types.Int]}), nil
	}

	typ, err := p.basicType()
	if err != nil {
		return NoNode, err
	}
	if typ.Kind() == types.Void {
		return NoNode, p.syntaxErrorAt(pos, "parameter declared void")
	}
	name, err := p.name("in parameter")
	if err != nil {
		return NoNode, err
	}
	if p.got(_Lbrack) {
		if err := p.want(_Rbrack, "in array parameter"); err != nil {
			return NoNode, err
		}
		return p.tree.New(pos, &ArrayParam{Name: name, Elem: typ}), nil
	}
	return p.tree.New(pos, &VarParam{Name: name, Type: typ}), nil
}

// ----------------------------------------------------------------------------
// Statements

// compoundStmt parses:
//
//	compound_stmt -> '{' var_declaration* statement* '}'
func (p *Parser) compoundStmt() (NodeID, error) {
	pos := p.pos
	if err := p.want(_Lbrace, "to open block"); err != nil {
		return NoNode, err
	}

	var decls, dtail NodeID
	for p.tok.isType() {
		d, err := p.varDecl()
		if err != nil {
			return NoNode, err
		}
		if decls == NoNode {
			decls = d
		}
		dtail = p.tree.Link(dtail, d)
	}

	var stmts, stail NodeID
	for p.tok != _Rbrace && p.tok != _EOF {
		s, err := p.stmt()
		if err != nil {
			return NoNode, err
		}
		if stmts == NoNode {
			stmts = s
		}
		stail = p.tree.Link(stail, s)
	}
	if err := p.want(_Rbrace, "to close block"); err != nil {
		return NoNode, err
	}

	t := p.tree
	c := t.New(pos, &CompoundStmt{})
	t.SetChild(c, 0, decls)
	t.SetChild(c, 1, stmts)
	return c, nil
}

// stmt parses a statement.
func (p *Parser) stmt() (NodeID, error) {
	switch p.tok {
	case _Lbrace:
		return p.compoundStmt()
	case _If:
		return p.selectionStmt()
	case _While:
		return p.whileStmt()
	case _Do:
		return p.doWhileStmt()
	case _For:
		return p.forStmt()
	case _Return:
		return p.returnStmt()
	case _Semi:
		pos := p.pos
		p.next()
		return p.tree.New(pos, &NullStmt{}), nil
	case _Int, _Frac, _Str, _Void:
		return NoNode, p.syntaxError("declaration after statement")
	}
	return p.exprStmt()
}

// cond parses the controlling expression of if, elif and while.
// A following ':' selects the colon form; otherwise the expression must
// have been parenthesized.
func (p *Parser) cond(keyword string) (NodeID, error) {
	x, err := p.expr()
	if err != nil {
		return NoNode, err
	}
	if p.got(_Colon) {
		return x, nil
	}
	if !p.parens[x] {
		return NoNode, p.syntaxError("expected ':' after " + keyword + " condition")
	}
	return x, nil
}

// selectionStmt parses:
//
//	selection_stmt -> 'if' cond statement [elif_part | 'else' [':'] statement]
//	elif_part      -> 'elif' cond statement [elif_part | 'else' [':'] statement]
func (p *Parser) selectionStmt() (NodeID, error) {
	pos := p.pos
	keyword := p.tok.String()
	p.next() // if or elif

	c, err := p.cond(keyword)
	if err != nil {
		return NoNode, err
	}
	then, err := p.stmt()
	if err != nil {
		return NoNode, err
	}

	var els NodeID
	switch p.tok {
	case _Elif:
		if els, err = p.selectionStmt(); err != nil {
			return NoNode, err
		}
	case _Else:
		p.next()
		p.got(_Colon)
		if els, err = p.stmt(); err != nil {
			return NoNode, err
		}
	}

	t := p.tree
	s := t.New(pos, &SelectionStmt{})
	t.SetChild(s, 0, c)
	t.SetChild(s, 1, then)
	t.SetChild(s, 2, els)
	return s, nil
}

// whileStmt parses:
//
//	'while' cond statement
func (p *Parser) whileStmt() (NodeID, error) {
	pos := p.pos
	p.next()

	c, err := p.cond("while")
	if err != nil {
		return NoNode, err
	}
	body, err := p.stmt()
	if err != nil {
		return NoNode, err
	}

	t := p.tree
	w := t.New(pos, &WhileStmt{})
	t.SetChild(w, 0, c)
	t.SetChild(w, 1, body)
	return w, nil
}

// doWhileStmt parses:
//
//	'do' statement 'while' '(' expr ')' [';']
func (p *Parser) doWhileStmt() (NodeID, error) {
	pos := p.pos
	p.next()

	body, err := p.stmt()
	if err != nil {
		return NoNode, err
	}
	if err := p.want(_While, "after do body"); err != nil {
		return NoNode, err
	}
	if err := p.want(_Lparen, "after while"); err != nil {
		return NoNode, err
	}
	c, err := p.expr()
	if err != nil {
		return NoNode, err
	}
	if err := p.want(_Rparen, "after do-while condition"); err != nil {
		return NoNode, err
	}
	p.got(_Semi)

	t := p.tree
	d := t.New(pos, &DoWhileStmt{})
	t.SetChild(d, 0, body)
	t.SetChild(d, 1, c)
	return d, nil
}

// forStmt parses:
//
//	'for' '(' [expr] ';' [expr] ';' [expr] ')' statement
//	'for' ID 'in' expr ':' statement
func (p *Parser) forStmt() (NodeID, error) {
	pos := p.pos
	p.next()

	if p.tok == _Name {
		return p.forInStmt(pos)
	}
	if err := p.want(_Lparen, "after for"); err != nil {
		return NoNode, err
	}

	var hdr [3]NodeID
	for i, term := range [3]Kind{_Semi, _Semi, _Rparen} {
		if p.tok != term {
			x, err := p.expr()
			if err != nil {
				return NoNode, err
			}
			hdr[i] = x
		}
		if err := p.want(term, "in for clause"); err != nil {
			return NoNode, err
		}
	}
	body, err := p.stmt()
	if err != nil {
		return NoNode, err
	}

	t := p.tree
	f := t.New(pos, &ForStmt{})
	t.SetChild(f, 0, hdr[0])
	t.SetChild(f, 1, hdr[1])
	t.SetChild(f, 2, hdr[2])
	t.SetChild(f, 3, body)
	return f, nil
}

func (p *Parser) forInStmt(pos Pos) (NodeID, error) {
	vpos := p.pos
	name := p.lit
	p.next()

	if err := p.want(_In, "after for variable"); err != nil {
		return NoNode, err
	}
	iter, err := p.expr()
	if err != nil {
		return NoNode, err
	}
	if err := p.want(_Colon, "after for-in range"); err != nil {
		return NoNode, err
	}
	body, err := p.stmt()
	if err != nil {
		return NoNode, err
	}

	t := p.tree
	v := t.New(vpos, &IdentExpr{Name: name})
	f := t.New(pos, &ForInStmt{})
	t.SetChild(f, 0, v)
	t.SetChild(f, 1, iter)
	t.SetChild(f, 2, body)
	return f, nil
}

// returnStmt parses:
//
//	return_stmt -> 'return' [expr] ';'
func (p *Parser) returnStmt() (NodeID, error) {
	pos := p.pos
	p.next()

	var x NodeID
	if p.tok != _Semi {
		var err error
		if x, err = p.expr(); err != nil {
			return NoNode, err
		}
	}
	if err := p.want(_Semi, "after return"); err != nil {
		return NoNode, err
	}

	t := p.tree
	r := t.New(pos, &ReturnStmt{})
	t.SetChild(r, 0, x)
	return r, nil
}

// exprStmt parses:
//
//	expression_stmt -> expr ';'
func (p *Parser) exprStmt() (NodeID, error) {
	pos := p.pos
	x, err := p.expr()
	if err != nil {
		return NoNode, err
	}
	if err := p.want(_Semi, "after expression"); err != nil {
		return NoNode, err
	}

	t := p.tree
	s := t.New(pos, &ExprStmt{})
	t.SetChild(s, 0, x)
	return s, nil
}

// ----------------------------------------------------------------------------
// Expressions

var litKinds = map[Kind]LitKind{
	_IntLit:  IntLit,
	_FracLit: FracLit,
	_StrLit:  StringLit,
}

// expr parses:
//
//	expression -> var '=' expression | simple_expression
//
// The target is parsed as a simple expression; whether it is a valid
// variable is checked during analysis.
func (p *Parser) expr() (NodeID, error) {
	x, err := p.simpleExpr()
	if err != nil {
		return NoNode, err
	}
	if p.tok != _Assign {
		return x, nil
	}
	pos := p.pos
	p.next()

	rhs, err := p.expr()
	if err != nil {
		return NoNode, err
	}

	t := p.tree
	a := t.New(pos, &AssignExpr{})
	t.SetChild(a, 0, x)
	t.SetChild(a, 1, rhs)
	return a, nil
}

// simpleExpr parses:
//
//	simple_expression -> additive_expr [relop additive_expr]
func (p *Parser) simpleExpr() (NodeID, error) {
	x, err := p.additiveExpr()
	if err != nil {
		return NoNode, err
	}
	op, ok := operators[p.tok]
	if !ok || !op.IsRelational() {
		return x, nil
	}
	return p.binary(x, op, p.additiveExpr)
}

// additiveExpr parses:
//
//	additive_expr -> term (('+'|'-') term)*
func (p *Parser) additiveExpr() (NodeID, error) {
	x, err := p.term()
	if err != nil {
		return NoNode, err
	}
	for p.tok == _Add || p.tok == _Sub {
		if x, err = p.binary(x, operators[p.tok], p.term); err != nil {
			return NoNode, err
		}
	}
	return x, nil
}

// term parses:
//
//	term -> factor (('*'|'/') factor)*
func (p *Parser) term() (NodeID, error) {
	x, err := p.factor()
	if err != nil {
		return NoNode, err
	}
	for p.tok == _Mul || p.tok == _Div {
		if x, err = p.binary(x, operators[p.tok], p.factor); err != nil {
			return NoNode, err
		}
	}
	return x, nil
}

// binary consumes the operator token and builds lhs op operand().
// The node is positioned at the operator.
func (p *Parser) binary(lhs NodeID, op Operator, operand func() (NodeID, error)) (NodeID, error) {
	pos := p.pos
	p.next()
	rhs, err := operand()
	if err != nil {
		return NoNode, err
	}

	t := p.tree
	b := t.New(pos, &BinaryExpr{Op: op})
	t.SetChild(b, 0, lhs)
	t.SetChild(b, 1, rhs)
	return b, nil
}

// factor parses:
//
//	factor -> '(' expression ')' | call | var | INTLITERAL | FRACLITERAL | STRLITERAL
//	call   -> ID '(' arg_list ')'
//	var    -> ID ['[' expression ']']
func (p *Parser) factor() (NodeID, error) {
	pos := p.pos
	t := p.tree

	switch p.tok {
	case _Lparen:
		p.next()
		x, err := p.expr()
		if err != nil {
			return NoNode, err
		}
		if err := p.want(_Rparen, "to close parenthesized expression"); err != nil {
			return NoNode, err
		}
		p.parens[x] = true
		return x, nil

	case _IntLit, _FracLit, _StrLit:
		c := t.New(pos, &ConstExpr{Lit: litKinds[p.tok], Value: p.lit})
		p.next()
		return c, nil

	case _Name:
		name := p.lit
		p.next()
		switch p.tok {
		case _Lparen:
			p.next()
			args, err := p.argList()
			if err != nil {
				return NoNode, err
			}
			if err := p.want(_Rparen, "after arguments"); err != nil {
				return NoNode, err
			}
			c := t.New(pos, &CallExpr{Name: name})
			t.SetChild(c, 0, args)
			return c, nil

		case _Lbrack:
			p.next()
			idx, err := p.expr()
			if err != nil {
				return NoNode, err
			}
			if err := p.want(_Rbrack, "after index"); err != nil {
				return NoNode, err
			}
			x := t.New(pos, &IndexExpr{Name: name})
			t.SetChild(x, 0, idx)
			return x, nil
		}
		return t.New(pos, &IdentExpr{Name: name}), nil
	}

	return NoNode, p.syntaxError("expected expression")
}

// argList parses:
//
//	arg_list -> expression (',' expression)* | ε
func (p *Parser) argList() (NodeID, error) {
	if p.tok == _Rparen {
		return NoNode, nil
	}
	var head, tail NodeID
	for {
		x, err := p.expr()
		if err != nil {
			return NoNode, err
		}
		if head == NoNode {
			head = x
		}
		tail = p.tree.Link(tail, x)
		if !p.got(_Comma) {
			return head, nil
		}
	}
}
