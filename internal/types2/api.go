package types2

import (
	"io"
	"log/slog"

	"github.com/you-not-fish/pyc/internal/symtab"
	"github.com/you-not-fish/pyc/internal/syntax"
)

// Config specifies the configuration for semantic analysis.
type Config struct {
	// Error is called for each semantic error.
	// If nil, errors are only collected.
	Error ErrorHandler

	// Buckets is the number of hash slots per scope.
	// If zero, symtab.DefaultBuckets is used.
	Buckets int

	// Logger receives debug records about the analysis.
	// If nil, nothing is logged.
	Logger *slog.Logger
}

// Session is one semantic analysis run. It owns the symbol table and
// the registry linking tree nodes to it; both live until Release.
type Session struct {
	conf *Config
	log  *slog.Logger

	tree   *syntax.Tree
	table  *symtab.Table
	global *symtab.Scope

	builtins map[string]syntax.NodeID

	errors []*Error
}

// NewSession returns a session ready to analyze one tree.
func NewSession(conf *Config) *Session {
	if conf == nil {
		conf = &Config{}
	}
	log := conf.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{conf: conf, log: log}
}

// Analyze resolves every name in tree and checks its types, recording
// the resolved type of each expression on the tree. It returns the same
// tree and whether any semantic error was found. Analysis never stops at
// the first error.
//
// The tree must come from a parse without syntax errors.
func (s *Session) Analyze(tree *syntax.Tree) (*syntax.Tree, bool) {
	if tree == nil {
		return nil, false
	}
	if s.table != nil {
		s.Release()
	}
	s.tree = tree
	s.errors = nil
	s.table = symtab.New(s.conf.Buckets)
	s.global = s.table.CreateScope(true)

	s.declareBuiltins()

	decls := tree.Child(tree.Root, 0)
	s.resolve(decls, s.global)
	s.log.Debug("names resolved", "errors", len(s.errors))

	syntax.WalkPost(tree, decls, s.check)
	s.log.Debug("types checked", "errors", len(s.errors))

	return tree, s.ErrorFound()
}

// Release frees the symbol table. Types recorded on the tree remain.
func (s *Session) Release() {
	if s.table == nil {
		return
	}
	s.table.Release(s.global)
	s.table = nil
	s.global = nil
	s.builtins = nil
}

// ErrorFound reports whether the last analysis found any error.
func (s *Session) ErrorFound() bool {
	return len(s.errors) > 0
}

// Errors returns the errors of the last analysis in the order found.
func (s *Session) Errors() []*Error {
	return s.errors
}

// FirstError returns the first error of the last analysis, or nil.
func (s *Session) FirstError() *Error {
	if len(s.errors) == 0 {
		return nil
	}
	return s.errors[0]
}

// Table returns the symbol table, or nil after Release.
func (s *Session) Table() *symtab.Table {
	return s.table
}

// Scope returns the scope opened by a block or function node, or nil.
func (s *Session) Scope(id syntax.NodeID) *symtab.Scope {
	if s.table == nil {
		return nil
	}
	return s.table.ScopeOf(id)
}

// DeclOf returns the declaration a reference node resolved to, or
// NoNode if it did not resolve.
func (s *Session) DeclOf(ref syntax.NodeID) syntax.NodeID {
	if s.table == nil {
		return syntax.NoNode
	}
	if l := s.table.RefOf(ref); l != nil {
		return l.Bucket().Node()
	}
	return syntax.NoNode
}

// Check analyzes tree with a fresh session and returns the session
// together with the first error, if any.
func Check(tree *syntax.Tree, conf *Config) (*Session, error) {
	s := NewSession(conf)
	s.Analyze(tree)
	if err := s.FirstError(); err != nil {
		return s, err
	}
	return s, nil
}
