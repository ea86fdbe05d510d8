package types2

import (
	"github.com/you-not-fish/pyc/internal/syntax"
	"github.com/you-not-fish/pyc/internal/types"
)

// check computes the type of node id after its children were checked.
// Nodes whose types were fixed while resolving are left alone.
func (s *Session) check(id syntax.NodeID) {
	switch a := s.tree.Attr(id).(type) {
	case *syntax.ConstExpr:
		s.constExpr(id, a)
	case *syntax.IdentExpr:
		s.ident(id)
	case *syntax.IndexExpr:
		s.index(id, a)
	case *syntax.CallExpr:
		s.call(id, a)
	case *syntax.BinaryExpr:
		s.binary(id, a)
	case *syntax.AssignExpr:
		s.assign(id)
	case *syntax.ReturnStmt:
		s.returnStmt(id)
	case *syntax.ForInStmt:
		s.forIn(id)
	}
}

// resolved returns the declared type of the declaration that reference
// id resolved to. It returns nil if the reference did not resolve.
func (s *Session) resolved(id syntax.NodeID) types.Type {
	l := s.table.RefOf(id)
	if l == nil {
		return nil
	}
	return s.tree.Type(l.Bucket().Node())
}
