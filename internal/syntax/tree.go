package syntax

import "github.com/you-not-fish/pyc/internal/types"

// NodeID is a handle to a node in a Tree.
type NodeID int32

// NoNode is the null handle.
const NoNode NodeID = 0

// MaxChildren is the number of child slots per node.
const MaxChildren = 4

type node struct {
	child  [MaxChildren]NodeID
	left   NodeID
	right  NodeID
	parent NodeID
	pos    Pos
	attr   Attr
	typ    types.Type
}

// Tree is an arena of syntax nodes. Nodes are addressed by NodeID and
// are never freed individually; the arena lives as long as the tree.
//
// Child, sibling and parent links are NodeIDs. Lists (declarations,
// parameters, statements, arguments) are chains of right siblings whose
// head sits in the owning child slot; every node of such a chain has the
// owner as its parent.
type Tree struct {
	nodes []node
	Root  NodeID
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make([]node, 1, 64)} // slot 0 is NoNode
}

// New allocates a node with the given payload.
// Its resolved type starts out undefined.
func (t *Tree) New(pos Pos, attr Attr) NodeID {
	t.nodes = append(t.nodes, node{
		pos:  pos,
		attr: attr,
		typ:  types.Typ[types.Undefined],
	})
	return NodeID(len(t.nodes) - 1)
}

// Len returns the number of allocated nodes.
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

func (t *Tree) at(id NodeID) *node {
	if id <= NoNode || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Valid reports whether id refers to a node of t.
func (t *Tree) Valid(id NodeID) bool {
	return t.at(id) != nil
}

// Attr returns the payload of id, or nil.
func (t *Tree) Attr(id NodeID) Attr {
	if n := t.at(id); n != nil {
		return n.attr
	}
	return nil
}

// Kind returns the major category of id.
func (t *Tree) Kind(id NodeID) NodeKind {
	if a := t.Attr(id); a != nil {
		return a.Kind()
	}
	return RootNode
}

// Pos returns the source position of id.
func (t *Tree) Pos(id NodeID) Pos {
	if n := t.at(id); n != nil {
		return n.pos
	}
	return Pos{}
}

// Line returns the 1-based source line of id, or 0.
func (t *Tree) Line(id NodeID) int {
	return t.Pos(id).Line()
}

// Child returns the i'th child of id.
func (t *Tree) Child(id NodeID, i int) NodeID {
	if n := t.at(id); n != nil && i >= 0 && i < MaxChildren {
		return n.child[i]
	}
	return NoNode
}

// SetChild stores the list headed by child in slot i of id and makes id
// the parent of every node on that list.
func (t *Tree) SetChild(id NodeID, i int, child NodeID) {
	n := t.at(id)
	if n == nil || i < 0 || i >= MaxChildren {
		return
	}
	n.child[i] = child
	for c := child; c != NoNode; c = t.Right(c) {
		t.nodes[c].parent = id
	}
}

// Left returns the left sibling of id.
func (t *Tree) Left(id NodeID) NodeID {
	if n := t.at(id); n != nil {
		return n.left
	}
	return NoNode
}

// Right returns the right sibling of id.
func (t *Tree) Right(id NodeID) NodeID {
	if n := t.at(id); n != nil {
		return n.right
	}
	return NoNode
}

// Parent returns the parent of id.
func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.at(id); n != nil {
		return n.parent
	}
	return NoNode
}

// Link appends next to the sibling chain ending at prev and returns
// next, so that a list can be built with tail = t.Link(tail, n).
// If prev is NoNode, next starts a new chain.
func (t *Tree) Link(prev, next NodeID) NodeID {
	p, n := t.at(prev), t.at(next)
	if n == nil {
		return prev
	}
	if p != nil {
		p.right = next
		n.left = prev
		n.parent = p.parent
	}
	return next
}

// Type returns the resolved type of id.
func (t *Tree) Type(id NodeID) types.Type {
	if n := t.at(id); n != nil {
		return n.typ
	}
	return types.Typ[types.Undefined]
}

// SetType records the resolved type of id.
func (t *Tree) SetType(id NodeID, typ types.Type) {
	if n := t.at(id); n != nil {
		n.typ = typ
	}
}

// List returns the nodes of the sibling chain starting at head.
func (t *Tree) List(head NodeID) []NodeID {
	var ids []NodeID
	for id := head; id != NoNode; id = t.Right(id) {
		ids = append(ids, id)
	}
	return ids
}

// Decls returns the top-level declarations of the tree.
func (t *Tree) Decls() []NodeID {
	return t.List(t.Child(t.Root, 0))
}

// Enclosing returns the nearest ancestor of id (id excluded) whose
// payload satisfies match, or NoNode.
func (t *Tree) Enclosing(id NodeID, match func(Attr) bool) NodeID {
	for p := t.Parent(id); p != NoNode; p = t.Parent(p) {
		if match(t.Attr(p)) {
			return p
		}
	}
	return NoNode
}
