package types2

import (
	"github.com/you-not-fish/pyc/internal/symtab"
	"github.com/you-not-fish/pyc/internal/syntax"
	"github.com/you-not-fish/pyc/internal/types"
)

// voidParamName is the table name of a (void) parameter list. It is a
// keyword, so no reference can resolve to it.
const voidParamName = "void"

// resolve binds the declarations and references of the sibling chain
// starting at id in scope. A block or function opens a nested scope for
// its own children only; the siblings that follow it stay in scope.
func (s *Session) resolve(id syntax.NodeID, scope *symtab.Scope) {
	t := s.tree
	for ; id != syntax.NoNode; id = t.Right(id) {
		inner := s.bind(id, scope)
		for i := 0; i < syntax.MaxChildren; i++ {
			s.resolve(t.Child(id, i), inner)
		}
	}
}

// bind processes node id in scope and returns the scope for its children.
func (s *Session) bind(id syntax.NodeID, scope *symtab.Scope) *symtab.Scope {
	switch a := s.tree.Attr(id).(type) {
	case *syntax.VarDecl:
		s.declare(id, scope, a.Name, basic(a.Type))

	case *syntax.ArrayDecl:
		if a.Size <= 0 {
			s.errorf(BadArraySize, id, a.Name, "invalid size %d for array '%s'", a.Size, a.Name)
		}
		s.declare(id, scope, a.Name, types.NewArray(a.Size, basic(a.Elem)))

	case *syntax.FuncDecl:
		s.declare(id, scope, a.Name, s.signature(id, a))
		return s.table.AttachChildScope(scope, id)

	case *syntax.VarParam:
		s.declare(id, scope, a.Name, basic(a.Type))

	case *syntax.ArrayParam:
		s.declare(id, scope, a.Name, types.NewArray(0, basic(a.Elem)))

	case *syntax.VoidParam:
		s.declare(id, scope, voidParamName, types.Typ[types.Void])

	case *syntax.CompoundStmt:
		return s.table.AttachChildScope(scope, id)

	case *syntax.IdentExpr:
		s.use(id, scope, a.Name, "identifier")

	case *syntax.IndexExpr:
		s.use(id, scope, a.Name, "array")

	case *syntax.CallExpr:
		s.use(id, scope, a.Name, "function")
	}
	return scope
}

// declare records the type of declaration id and enters name into scope.
func (s *Session) declare(id syntax.NodeID, scope *symtab.Scope, name string, typ types.Type) {
	s.tree.SetType(id, typ)
	kind, _ := symtab.KindOf(s.tree.Attr(id))
	if kind != symtab.VoidParam && syntax.IsKeyword(name) {
		s.errorf(KeywordAsIdent, id, name, "'%s' is a keyword", name)
		return
	}
	if prev := scope.LookupLocal(name); prev != nil {
		s.errorf(DuplicateDecl, id, name, "'%s' already declared in this scope (previous declaration at line %d)", name, prev.Line())
		return
	}
	s.table.InsertDecl(scope, id, name, kind, s.tree.Line(id))
}

// use resolves a reference to name from scope and records it.
func (s *Session) use(id syntax.NodeID, scope *symtab.Scope, name, what string) {
	if syntax.IsKeyword(name) {
		s.errorf(KeywordAsIdent, id, name, "'%s' is a keyword", name)
		return
	}
	b := scope.Lookup(name)
	if b == nil {
		s.errorf(Undeclared, id, name, "%s '%s' not declared", what, name)
		return
	}
	s.table.InsertRef(id, s.tree.Line(id), b)
}

// signature returns the function type of declaration id.
func (s *Session) signature(id syntax.NodeID, f *syntax.FuncDecl) *types.Func {
	var params []types.Type
	for _, p := range s.tree.List(s.tree.Child(id, 0)) {
		switch p := s.tree.Attr(p).(type) {
		case *syntax.VarParam:
			params = append(params, basic(p.Type))
		case *syntax.ArrayParam:
			params = append(params, types.NewArray(0, basic(p.Elem)))
		}
	}
	return types.NewFunc(params, f.Result)
}

// basic returns b, or the undefined type for a declaration without one.
func basic(b *types.Basic) *types.Basic {
	if b == nil {
		return types.Typ[types.Undefined]
	}
	return b
}
