package types2

import (
	"github.com/you-not-fish/pyc/internal/symtab"
	"github.com/you-not-fish/pyc/internal/syntax"
	"github.com/you-not-fish/pyc/internal/types"
)

// declareBuiltins allocates declaration nodes for the builtin functions
// in the tree's arena, outside the program, and inserts them into the
// global scope at line 0 so that calls resolve like calls to user
// functions:
//
//	int read(void)
//	void write(int x)
//	void print(any)
func (s *Session) declareBuiltins() {
	t := s.tree
	pos := syntax.LinePos(0)
	s.builtins = make(map[string]syntax.NodeID, 3)

	readFn := t.New(pos, &syntax.FuncDecl{Name: "read", Result: types.Typ[types.Int]})
	t.SetChild(readFn, 0, t.New(pos, &syntax.VoidParam{}))
	t.SetType(readFn, types.NewFunc(nil, types.Typ[types.Int]))

	writeFn := t.New(pos, &syntax.FuncDecl{Name: "write", Result: types.Typ[types.Void]})
	x := t.New(pos, &syntax.VarParam{Name: "x", Type: types.Typ[types.Int]})
	t.SetType(x, types.Typ[types.Int])
	t.SetChild(writeFn, 0, x)
	t.SetType(writeFn, types.NewFunc([]types.Type{types.Typ[types.Int]}, types.Typ[types.Void]))

	printFn := t.New(pos, &syntax.FuncDecl{Name: "print", Result: types.Typ[types.Void]})
	t.SetType(printFn, types.NewAnyFunc(types.Typ[types.Void]))

	for _, id := range []syntax.NodeID{readFn, writeFn, printFn} {
		name := t.Attr(id).(*syntax.FuncDecl).Name
		s.table.InsertDecl(s.global, id, name, symtab.Func, 0)
		s.builtins[name] = id
	}
}

// IsBuiltin reports whether id is the declaration of a builtin function.
func (s *Session) IsBuiltin(id syntax.NodeID) bool {
	for _, b := range s.builtins {
		if b == id {
			return true
		}
	}
	return false
}
