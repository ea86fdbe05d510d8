// Package symtab implements the scope-chained symbol table: a tree of
// fixed-size hash tables mirroring lexical block nesting, with a record
// of every use of each declaration.
package symtab

import "github.com/you-not-fish/pyc/internal/syntax"

// Table is one analysis session's symbol table. It owns the scope tree
// and a registry linking syntax nodes to their table records in both
// directions. The registry replaces back-pointers in the tree, so
// releasing the table leaves no stale references behind.
type Table struct {
	nbuckets int
	nextID   int
	global   *Scope

	decls  map[syntax.NodeID]*Bucket
	refs   map[syntax.NodeID]*Line
	scopes map[syntax.NodeID]*Scope
}

// New returns an empty table whose scopes have nbuckets hash slots.
// A non-positive count selects DefaultBuckets.
func New(nbuckets int) *Table {
	if nbuckets <= 0 {
		nbuckets = DefaultBuckets
	}
	return &Table{
		nbuckets: nbuckets,
		decls:    make(map[syntax.NodeID]*Bucket),
		refs:     make(map[syntax.NodeID]*Line),
		scopes:   make(map[syntax.NodeID]*Scope),
	}
}

// Global returns the global scope, or nil if none was created.
func (t *Table) Global() *Scope {
	return t.global
}

// CreateScope allocates an empty, unattached scope with a fresh id.
// Creating the global scope restarts the id sequence at 0.
func (t *Table) CreateScope(isGlobal bool) *Scope {
	if isGlobal {
		t.nextID = 0
	}
	s := &Scope{
		id:      t.nextID,
		buckets: make([]*Bucket, t.nbuckets),
	}
	t.nextID++
	if isGlobal {
		t.global = s
	}
	return s
}

// AttachChildScope creates a scope nested in parent for the block node
// and appends it to parent's nested scopes.
func (t *Table) AttachChildScope(parent *Scope, node syntax.NodeID) *Scope {
	s := t.CreateScope(false)
	s.upper = parent
	s.node = node
	if parent.last == nil {
		parent.first = s
	} else {
		parent.last.next = s
		s.prev = parent.last
	}
	parent.last = s
	if node != syntax.NoNode {
		t.scopes[node] = s
	}
	return s
}

// InsertDecl records the declaration node of name in s and links node
// and record together. The caller must have checked that name is not
// already declared directly in s.
func (t *Table) InsertDecl(s *Scope, node syntax.NodeID, name string, kind Kind, line int) *Bucket {
	b := &Bucket{
		name:  name,
		kind:  kind,
		node:  node,
		line:  line,
		scope: s,
	}
	v := hash(name, len(s.buckets))
	b.next = s.buckets[v]
	s.buckets[v] = b
	t.decls[node] = b
	return b
}

// InsertRef appends a use of b by node at the end of b's use list and
// links node and record together.
func (t *Table) InsertRef(node syntax.NodeID, line int, b *Bucket) *Line {
	l := &Line{node: node, line: line, bucket: b}
	if b.last == nil {
		b.first = l
	} else {
		b.last.next = l
	}
	b.last = l
	t.refs[node] = l
	return l
}

// Lookup returns the entry for name visible from s, or nil.
func (t *Table) Lookup(s *Scope, name string) *Bucket {
	if s == nil {
		return nil
	}
	return s.Lookup(name)
}

// DeclOf returns the record of declaration node, or nil.
func (t *Table) DeclOf(node syntax.NodeID) *Bucket {
	return t.decls[node]
}

// RefOf returns the record of the use at node, or nil.
func (t *Table) RefOf(node syntax.NodeID) *Line {
	return t.refs[node]
}

// ScopeOf returns the scope opened by block node, or nil.
func (t *Table) ScopeOf(node syntax.NodeID) *Scope {
	return t.scopes[node]
}

// Release frees s and all scopes nested in it, dropping every registry
// link into them. Releasing the global scope empties the table.
func (t *Table) Release(s *Scope) {
	if s == nil {
		return
	}
	if p := s.upper; p != nil {
		if s.prev != nil {
			s.prev.next = s.next
		} else {
			p.first = s.next
		}
		if s.next != nil {
			s.next.prev = s.prev
		} else {
			p.last = s.prev
		}
		s.upper, s.next, s.prev = nil, nil, nil
	}
	if s == t.global {
		t.global = nil
	}
	t.release(s)
}

func (t *Table) release(s *Scope) {
	for c := s.first; c != nil; {
		next := c.next
		t.release(c)
		c = next
	}
	s.first, s.last = nil, nil

	for i, head := range s.buckets {
		for b := head; b != nil; b = b.next {
			for l := b.first; l != nil; l = l.next {
				delete(t.refs, l.node)
				l.bucket = nil
			}
			b.first, b.last = nil, nil
			delete(t.decls, b.node)
			b.scope = nil
		}
		s.buckets[i] = nil
	}
	if s.node != syntax.NoNode {
		delete(t.scopes, s.node)
	}
}

// Links returns the number of live node-to-record links.
func (t *Table) Links() int {
	return len(t.decls) + len(t.refs) + len(t.scopes)
}
