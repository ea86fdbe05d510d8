package syntax

import (
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/pyc/internal/types"
)

// PrintMode controls optional parts of the tree listing.
type PrintMode uint

const (
	ShowTypes PrintMode = 1 << iota // append resolved expression types
	ShowLines                       // prefix every line with its source line
)

const indentGap = 2

// Fprint writes the declarations of t as an indented listing, one line
// per node. Children are indented one level below their parent and
// siblings share a level.
func Fprint(w io.Writer, t *Tree, mode PrintMode) {
	p := &printer{w: w, tree: t, mode: mode}
	p.print(t.Child(t.Root, 0))
}

type printer struct {
	w      io.Writer
	tree   *Tree
	mode   PrintMode
	indent int
}

func (p *printer) printf(id NodeID, format string, args ...interface{}) {
	var prefix string
	if p.mode&ShowLines != 0 {
		prefix = fmt.Sprintf("%4d ", p.tree.Line(id))
	}
	line := fmt.Sprintf(format, args...)
	if p.mode&ShowTypes != 0 && p.tree.Kind(id) == ExprNode {
		line += " : " + p.tree.Type(id).String()
	}
	fmt.Fprintf(p.w, "%s%s%s\n", prefix, strings.Repeat(" ", p.indent), line)
}

func (p *printer) print(id NodeID) {
	p.indent += indentGap
	for ; id != NoNode; id = p.tree.Right(id) {
		p.node(id)
		for i := 0; i < MaxChildren; i++ {
			p.print(p.tree.Child(id, i))
		}
	}
	p.indent -= indentGap
}

func (p *printer) node(id NodeID) {
	switch a := p.tree.Attr(id).(type) {
	case *Program:
		p.printf(id, "Program:")
	case *VarDecl:
		p.printf(id, "Declare:  %s %s", a.Type, a.Name)
	case *ArrayDecl:
		p.printf(id, "Declare:  %s %s [%d]", a.Elem, a.Name, a.Size)
	case *FuncDecl:
		p.printf(id, "Declare:  %s %s function with parameters :", a.Result, a.Name)

	case *VarParam:
		p.printf(id, "Parameter: %s %s", a.Type, a.Name)
	case *ArrayParam:
		p.printf(id, "Parameter: %s %s[ ]", a.Elem, a.Name)
	case *VoidParam:
		p.printf(id, "Parameter: %s", types.Typ[types.Void])

	case *SelectionStmt:
		if p.tree.Child(id, 2) != NoNode {
			p.printf(id, "If  with ELSE")
		} else {
			p.printf(id, "If  without ELSE")
		}
	case *WhileStmt:
		p.printf(id, "while stmt:")
	case *DoWhileStmt:
		p.printf(id, "do while stmt:")
	case *ForStmt:
		p.printf(id, "for stmt:")
	case *ForInStmt:
		p.printf(id, "for in stmt:")
	case *ExprStmt:
		p.printf(id, "Expression stmt:")
	case *CompoundStmt:
		p.printf(id, "Compound Stmt:")
	case *ReturnStmt:
		p.printf(id, "Return")
	case *NullStmt:
		p.printf(id, "Null statement:  ;")

	case *BinaryExpr:
		p.printf(id, "Operator: %s", a.Op)
	case *AssignExpr:
		p.printf(id, "Operator: =")
	case *ConstExpr:
		if a.Lit == StringLit {
			p.printf(id, "Const: %q", a.Value)
		} else {
			p.printf(id, "Const: %s", a.Value)
		}
	case *IdentExpr:
		p.printf(id, "ID: %s", a.Name)
	case *IndexExpr:
		p.printf(id, "Array: %s, with member index:", a.Name)
	case *CallExpr:
		p.printf(id, "Call function: %s, with arguments:", a.Name)

	default:
		p.printf(id, "Unknown node %T", a)
	}
}
