// Package types2 implements semantic analysis for the Pyc programming
// language: name resolution against a scope-chained symbol table and
// static type checking of the syntax tree.
package types2

import (
	"fmt"

	"github.com/you-not-fish/pyc/internal/syntax"
)

// Code classifies a semantic error.
type Code int

const (
	_ Code = iota

	// DuplicateDecl occurs when a name is declared twice directly in
	// the same scope.
	DuplicateDecl

	// Undeclared occurs when a name does not resolve in any enclosing
	// scope.
	Undeclared

	// KeywordAsIdent occurs when a reserved word is used as a name.
	KeywordAsIdent

	// BadArraySize occurs when an array is declared with a size that
	// is not a positive constant.
	BadArraySize

	// IndexNotInt occurs when an array index is not of type int.
	IndexNotInt

	// AssignMismatch occurs when the value of an assignment cannot be
	// assigned to its target.
	AssignMismatch

	// ReturnMismatch occurs when a return statement disagrees with the
	// result type of the enclosing function.
	ReturnMismatch

	// OperandMismatch occurs when a binary operator is applied to
	// operands it does not accept.
	OperandMismatch

	// BadAssignTarget occurs when the left side of an assignment is not
	// a variable or array element.
	BadAssignTarget

	// ArgMismatch occurs when a call passes the wrong number or type of
	// arguments.
	ArgMismatch

	// NotCallable occurs when a name that is not a function is called.
	NotCallable

	// NotIndexable occurs when a name that is not an array is indexed.
	NotIndexable

	// NotIterable occurs when a for-in loop ranges over a value that is
	// not an array.
	NotIterable
)

var codeNames = [...]string{
	DuplicateDecl:   "DuplicateDecl",
	Undeclared:      "Undeclared",
	KeywordAsIdent:  "KeywordAsIdent",
	BadArraySize:    "BadArraySize",
	IndexNotInt:     "IndexNotInt",
	AssignMismatch:  "AssignMismatch",
	ReturnMismatch:  "ReturnMismatch",
	OperandMismatch: "OperandMismatch",
	BadAssignTarget: "BadAssignTarget",
	ArgMismatch:     "ArgMismatch",
	NotCallable:     "NotCallable",
	NotIndexable:    "NotIndexable",
	NotIterable:     "NotIterable",
}

func (c Code) String() string {
	if c > 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Error describes a semantic error.
type Error struct {
	Code Code
	Pos  syntax.Pos
	Name string // offending identifier, if any
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrorHandler is called for each semantic error as it is found.
type ErrorHandler func(err *Error)

// errorf records a semantic error at node id.
func (s *Session) errorf(code Code, id syntax.NodeID, name, format string, args ...interface{}) {
	err := &Error{
		Code: code,
		Pos:  s.tree.Pos(id),
		Name: name,
		Msg:  fmt.Sprintf(format, args...),
	}
	s.errors = append(s.errors, err)
	if s.conf.Error != nil {
		s.conf.Error(err)
	}
}
