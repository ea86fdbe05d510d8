package syntax

import "github.com/you-not-fish/pyc/internal/types"

// ----------------------------------------------------------------------------
// Node kinds
//
// Every tree node carries an Attr, a tagged payload with one Go type per
// (kind, subkind) combination. The kind is implied by the payload type.

// NodeKind is the major category of a tree node.
type NodeKind uint8

const (
	RootNode NodeKind = iota
	DeclNode
	ParamNode
	StmtNode
	ExprNode
)

var nodeKindNames = [...]string{
	RootNode:  "Root",
	DeclNode:  "Declaration",
	ParamNode: "Parameter",
	StmtNode:  "Statement",
	ExprNode:  "Expression",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// Attr is the payload of a tree node.
type Attr interface {
	Kind() NodeKind
	aAttr() // marker method to restrict implementations to this package
}

type (
	root  struct{}
	decl  struct{}
	param struct{}
	stmt  struct{}
	expr  struct{}
)

func (root) Kind() NodeKind  { return RootNode }
func (decl) Kind() NodeKind  { return DeclNode }
func (param) Kind() NodeKind { return ParamNode }
func (stmt) Kind() NodeKind  { return StmtNode }
func (expr) Kind() NodeKind  { return ExprNode }

func (root) aAttr()  {}
func (decl) aAttr()  {}
func (param) aAttr() {}
func (stmt) aAttr()  {}
func (expr) aAttr()  {}

// ----------------------------------------------------------------------------
// Root

// Program is the root of a parsed file. Child 0 is the declaration list.
type Program struct{ root }

// ----------------------------------------------------------------------------
// Declarations

// VarDecl declares a scalar variable: int x
type VarDecl struct {
	decl
	Name string
	Type *types.Basic
}

// ArrayDecl declares a fixed-size array: int a[10]
type ArrayDecl struct {
	decl
	Name string
	Elem *types.Basic
	Size int64
}

// FuncDecl declares a function.
// Child 0 is the parameter list, child 1 the body.
type FuncDecl struct {
	decl
	Name   string
	Result *types.Basic
	Def    bool // declared with 'def'
}

// ----------------------------------------------------------------------------
// Parameters

// VarParam is a scalar parameter: int x, or a bare x.
type VarParam struct {
	param
	Name string
	Type *types.Basic
}

// ArrayParam is an array parameter: int a[]
type ArrayParam struct {
	param
	Name string
	Elem *types.Basic
}

// VoidParam is the sole parameter of an explicit (void) list.
type VoidParam struct{ param }

// ----------------------------------------------------------------------------
// Statements

type (
	// SelectionStmt: child 0 condition, 1 then, 2 else (optional).
	// An elif chain nests further SelectionStmts in the else slot.
	SelectionStmt struct{ stmt }

	// WhileStmt: child 0 condition, 1 body.
	WhileStmt struct{ stmt }

	// DoWhileStmt: child 0 body, 1 condition.
	DoWhileStmt struct{ stmt }

	// ForStmt: child 0 init, 1 condition, 2 update, 3 body.
	// Each of the three headers may be absent.
	ForStmt struct{ stmt }

	// ForInStmt: child 0 loop variable, 1 iterable, 2 body.
	ForInStmt struct{ stmt }

	// ExprStmt: child 0 expression.
	ExprStmt struct{ stmt }

	// CompoundStmt: child 0 local declarations, 1 statements.
	CompoundStmt struct{ stmt }

	// ReturnStmt: child 0 value (optional).
	ReturnStmt struct{ stmt }

	// NullStmt is a lone ';'.
	NullStmt struct{ stmt }
)

// ----------------------------------------------------------------------------
// Expressions

// BinaryExpr: child 0 left operand, 1 right operand.
type BinaryExpr struct {
	expr
	Op Operator
}

// ConstExpr is a literal. Value holds the literal text
// (decoded contents for strings).
type ConstExpr struct {
	expr
	Lit   LitKind
	Value string
}

// IdentExpr is a reference to a named variable or function.
type IdentExpr struct {
	expr
	Name string
}

// IndexExpr is an array element access. Child 0 is the index.
type IndexExpr struct {
	expr
	Name string
}

// CallExpr is a function call. Child 0 is the argument list.
type CallExpr struct {
	expr
	Name string
}

// AssignExpr: child 0 target, 1 value.
type AssignExpr struct{ expr }

// AttrName returns the identifier a declaration, parameter or reference
// node carries, or "" for payloads without a name.
func AttrName(a Attr) string {
	switch a := a.(type) {
	case *VarDecl:
		return a.Name
	case *ArrayDecl:
		return a.Name
	case *FuncDecl:
		return a.Name
	case *VarParam:
		return a.Name
	case *ArrayParam:
		return a.Name
	case *IdentExpr:
		return a.Name
	case *IndexExpr:
		return a.Name
	case *CallExpr:
		return a.Name
	}
	return ""
}
