package types2

import (
	"github.com/you-not-fish/pyc/internal/syntax"
	"github.com/you-not-fish/pyc/internal/types"
)

var litTypes = [...]*types.Basic{
	syntax.IntLit:    types.Typ[types.Int],
	syntax.FracLit:   types.Typ[types.Frac],
	syntax.StringLit: types.Typ[types.String],
}

func (s *Session) constExpr(id syntax.NodeID, a *syntax.ConstExpr) {
	if int(a.Lit) < len(litTypes) {
		s.tree.SetType(id, litTypes[a.Lit])
	}
}

// ident gives a name reference the declared type of its declaration:
// a basic type for variables, the array type for arrays and the
// signature for functions.
func (s *Session) ident(id syntax.NodeID) {
	if typ := s.resolved(id); typ != nil {
		s.tree.SetType(id, typ)
	}
}

func (s *Session) index(id syntax.NodeID, a *syntax.IndexExpr) {
	t := s.tree
	if it := t.Type(t.Child(id, 0)); !types.IsUndefined(it) && !types.IsIntegerType(it) {
		s.errorf(IndexNotInt, id, a.Name, "array index must be an integer, not %s", it)
	}

	typ := s.resolved(id)
	if typ == nil || types.IsUndefined(typ) {
		return
	}
	arr, ok := typ.(*types.Array)
	if !ok {
		s.errorf(NotIndexable, id, a.Name, "cannot index '%s' of type %s", a.Name, typ)
		return
	}
	t.SetType(id, arr.Elem())
}

func (s *Session) call(id syntax.NodeID, a *syntax.CallExpr) {
	t := s.tree
	typ := s.resolved(id)
	if typ == nil || types.IsUndefined(typ) {
		return
	}
	sig, ok := typ.(*types.Func)
	if !ok {
		s.errorf(NotCallable, id, a.Name, "cannot call non-function '%s' of type %s", a.Name, typ)
		return
	}
	t.SetType(id, sig.Result())

	args := t.List(t.Child(id, 0))
	if len(args) != sig.NumParams() {
		s.errorf(ArgMismatch, id, a.Name, "wrong number of arguments in call to '%s': have %d, want %d",
			a.Name, len(args), sig.NumParams())
		return
	}
	for i, arg := range args {
		at := t.Type(arg)
		if types.IsUndefined(at) {
			continue
		}
		pt := sig.Param(i)
		if pt == nil {
			if b, ok := at.(*types.Basic); !ok || b.Kind() == types.Void {
				s.errorf(ArgMismatch, arg, a.Name, "cannot pass %s to '%s'", at, a.Name)
			}
			continue
		}
		if !passable(at, pt) {
			s.errorf(ArgMismatch, arg, a.Name, "cannot use %s as %s in argument %d to '%s'", at, pt, i+1, a.Name)
		}
	}
}

// passable reports whether an argument of type at can be passed to a
// parameter of type pt. Arrays are passed whole and must match exactly.
func passable(at, pt types.Type) bool {
	if _, ok := pt.(*types.Array); ok {
		return types.Identical(at, pt)
	}
	return types.AssignableTo(at, pt)
}

func (s *Session) binary(id syntax.NodeID, a *syntax.BinaryExpr) {
	t := s.tree
	x, y := t.Type(t.Child(id, 0)), t.Type(t.Child(id, 1))

	// Comparisons yield int even when the operands are wrong.
	if a.Op.IsRelational() {
		t.SetType(id, types.Typ[types.Int])
	}
	if types.IsUndefined(x) || types.IsUndefined(y) {
		return
	}

	if a.Op.IsRelational() {
		if !types.Comparable(x, y) {
			s.errorf(OperandMismatch, id, "", "invalid operation: %s %s %s (mismatched types)", x, a.Op, y)
		}
		return
	}
	r := types.ArithmeticResult(x, y)
	if r == nil {
		s.errorf(OperandMismatch, id, "", "invalid operation: %s %s %s (mismatched types)", x, a.Op, y)
		return
	}
	t.SetType(id, r)
}

func (s *Session) assign(id syntax.NodeID) {
	t := s.tree
	lhs, rhs := t.Child(id, 0), t.Child(id, 1)

	var name string
	switch a := t.Attr(lhs).(type) {
	case *syntax.IdentExpr:
		name = a.Name
	case *syntax.IndexExpr:
		name = a.Name
	default:
		s.errorf(BadAssignTarget, lhs, "", "cannot assign to %s", describe(t.Attr(lhs)))
		return
	}

	lt := t.Type(lhs)
	switch lt.(type) {
	case *types.Array:
		s.errorf(BadAssignTarget, lhs, name, "cannot assign to array '%s'", name)
		return
	case *types.Func:
		s.errorf(BadAssignTarget, lhs, name, "cannot assign to function '%s'", name)
		return
	}

	rt := t.Type(rhs)
	if types.IsUndefined(lt) || types.IsUndefined(rt) {
		return
	}
	t.SetType(id, lt)
	if !types.AssignableTo(rt, lt) {
		s.errorf(AssignMismatch, id, name, "type mismatch in assignment: cannot assign %s to %s", rt, lt)
	}
}

// describe names the form of an expression that is not assignable.
func describe(a syntax.Attr) string {
	switch a.(type) {
	case *syntax.ConstExpr:
		return "constant"
	case *syntax.BinaryExpr:
		return "operator result"
	case *syntax.CallExpr:
		return "function call result"
	case *syntax.AssignExpr:
		return "assignment"
	}
	return "expression"
}
