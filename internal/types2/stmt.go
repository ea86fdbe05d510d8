package types2

import (
	"github.com/you-not-fish/pyc/internal/syntax"
	"github.com/you-not-fish/pyc/internal/types"
)

func isFuncDecl(a syntax.Attr) bool {
	_, ok := a.(*syntax.FuncDecl)
	return ok
}

// returnStmt checks a return statement against the result type of the
// enclosing function.
func (s *Session) returnStmt(id syntax.NodeID) {
	t := s.tree
	fn := t.Enclosing(id, isFuncDecl)
	if fn == syntax.NoNode {
		return
	}
	f := t.Attr(fn).(*syntax.FuncDecl)
	result := f.Result
	if result == nil {
		result = types.Typ[types.Void]
	}
	val := t.Child(id, 0)

	switch {
	case result.Kind() == types.Void && val != syntax.NoNode:
		s.errorf(ReturnMismatch, id, f.Name, "type mismatch in return statement: void function '%s' returns a value", f.Name)
	case result.Kind() != types.Void && val == syntax.NoNode:
		s.errorf(ReturnMismatch, id, f.Name, "type mismatch in return statement: function '%s' must return %s", f.Name, result)
	case val != syntax.NoNode:
		vt := t.Type(val)
		if !types.IsUndefined(vt) && !types.IsUndefined(result) && !types.AssignableTo(vt, result) {
			s.errorf(ReturnMismatch, id, f.Name, "type mismatch in return statement: cannot return %s from function '%s' returning %s",
				vt, f.Name, result)
		}
	}
}

// forIn checks that a for-in loop ranges over an array whose elements
// can be assigned to the loop variable.
func (s *Session) forIn(id syntax.NodeID) {
	t := s.tree
	v, iter := t.Child(id, 0), t.Child(id, 1)

	it := t.Type(iter)
	if types.IsUndefined(it) {
		return
	}
	arr, ok := it.(*types.Array)
	if !ok {
		s.errorf(NotIterable, iter, "", "cannot range over %s", it)
		return
	}

	vt := t.Type(v)
	if types.IsUndefined(vt) {
		return
	}
	var name string
	if a, ok := t.Attr(v).(*syntax.IdentExpr); ok {
		name = a.Name
	}
	if !types.AssignableTo(arr.Elem(), vt) {
		s.errorf(AssignMismatch, v, name, "type mismatch in for loop: cannot assign %s element to %s variable '%s'", arr.Elem(), vt, name)
	}
}
