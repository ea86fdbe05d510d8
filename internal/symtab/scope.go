package symtab

import (
	"fmt"

	"github.com/you-not-fish/pyc/internal/syntax"
)

// DefaultBuckets is the number of hash slots per scope. A block rarely
// declares more than a few dozen names.
const DefaultBuckets = 71

// shift is the multiplier step of the hash function.
const shift = 4

// hash maps name to a bucket index in [0, n).
func hash(name string, n int) int {
	h := 0
	for i := 0; i < len(name); i++ {
		h = ((h << shift) + int(name[i])) % n
	}
	return h
}

// Kind classifies a declaration for reporting.
type Kind uint8

const (
	Var Kind = iota
	Array
	Func
	VarParam
	ArrayParam
	VoidParam
)

var kindNames = [...]string{
	Var:        "Var",
	Array:      "Array",
	Func:       "Func",
	VarParam:   "Var-Param",
	ArrayParam: "Array-Param",
	VoidParam:  "Void-Param",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// KindOf returns the declaration kind of a declaration or parameter
// payload. The second result is false for any other payload.
func KindOf(a syntax.Attr) (Kind, bool) {
	switch a.(type) {
	case *syntax.VarDecl:
		return Var, true
	case *syntax.ArrayDecl:
		return Array, true
	case *syntax.FuncDecl:
		return Func, true
	case *syntax.VarParam:
		return VarParam, true
	case *syntax.ArrayParam:
		return ArrayParam, true
	case *syntax.VoidParam:
		return VoidParam, true
	}
	return 0, false
}

// Scope is one node of the scope tree: the hash table of the names
// declared directly in a block.
type Scope struct {
	id    int
	node  syntax.NodeID // block that opened the scope, NoNode for the global scope
	upper *Scope

	// nested scopes, in creation order
	first, last *Scope
	next, prev  *Scope

	buckets []*Bucket
}

// ID returns the scope's sequence number within its table.
func (s *Scope) ID() int {
	return s.id
}

// Node returns the block that opened the scope.
func (s *Scope) Node() syntax.NodeID {
	return s.node
}

// Upper returns the enclosing scope, or nil for the global scope.
func (s *Scope) Upper() *Scope {
	return s.upper
}

// Children returns the nested scopes in creation order.
func (s *Scope) Children() []*Scope {
	var children []*Scope
	for c := s.first; c != nil; c = c.next {
		children = append(children, c)
	}
	return children
}

// LookupLocal returns the entry for name declared directly in s, or nil.
func (s *Scope) LookupLocal(name string) *Bucket {
	for b := s.buckets[hash(name, len(s.buckets))]; b != nil; b = b.next {
		if b.name == name {
			return b
		}
	}
	return nil
}

// Lookup returns the entry for name by searching s and then each
// enclosing scope up to the global scope. It returns nil if not found.
func (s *Scope) Lookup(name string) *Bucket {
	for scope := s; scope != nil; scope = scope.upper {
		if b := scope.LookupLocal(name); b != nil {
			return b
		}
	}
	return nil
}

// Entries returns the entries of s in table order: by bucket index,
// newest first within a bucket.
func (s *Scope) Entries() []*Bucket {
	var entries []*Bucket
	for _, head := range s.buckets {
		for b := head; b != nil; b = b.next {
			entries = append(entries, b)
		}
	}
	return entries
}

// Len returns the number of names declared directly in s.
func (s *Scope) Len() int {
	n := 0
	for _, head := range s.buckets {
		for b := head; b != nil; b = b.next {
			n++
		}
	}
	return n
}

// Bucket is the record of one declared name in one scope, together with
// the uses that resolved to it.
type Bucket struct {
	name  string
	kind  Kind
	node  syntax.NodeID
	line  int
	scope *Scope

	next *Bucket // chain within a hash slot

	first, last *Line
}

// Name returns the declared name.
func (b *Bucket) Name() string {
	return b.name
}

// Kind returns the declaration kind.
func (b *Bucket) Kind() Kind {
	return b.kind
}

// Node returns the declaration node.
func (b *Bucket) Node() syntax.NodeID {
	return b.node
}

// Line returns the declaration line.
func (b *Bucket) Line() int {
	return b.line
}

// Scope returns the scope holding the declaration.
func (b *Bucket) Scope() *Scope {
	return b.scope
}

// Refs returns the recorded uses in source order.
func (b *Bucket) Refs() []*Line {
	var refs []*Line
	for l := b.first; l != nil; l = l.next {
		refs = append(refs, l)
	}
	return refs
}

// RefLines returns the line numbers of the recorded uses in source order.
func (b *Bucket) RefLines() []int {
	var lines []int
	for l := b.first; l != nil; l = l.next {
		lines = append(lines, l.line)
	}
	return lines
}

// Line is the record of one use of a declared name.
type Line struct {
	node   syntax.NodeID
	line   int
	bucket *Bucket
	next   *Line
}

// Node returns the referencing node.
func (l *Line) Node() syntax.NodeID {
	return l.node
}

// Line returns the line of the use.
func (l *Line) Line() int {
	return l.line
}

// Bucket returns the declaration the use resolved to.
func (l *Line) Bucket() *Bucket {
	return l.bucket
}

// Next returns the following use of the same declaration.
func (l *Line) Next() *Line {
	return l.next
}
