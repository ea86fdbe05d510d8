package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(id NodeID) bool

// Walk traverses the tree in pre-order starting at id: a node, then its
// child slots in order, then its right sibling. Siblings are iterated
// rather than recursed into, so long lists do not deepen the stack.
func Walk(t *Tree, id NodeID, v Visitor) {
	for ; id != NoNode; id = t.Right(id) {
		if !v(id) {
			continue
		}
		for i := 0; i < MaxChildren; i++ {
			Walk(t, t.Child(id, i), v)
		}
	}
}

// WalkPost traverses the tree in post-order starting at id: a node's
// child slots, then the node, then its right sibling.
func WalkPost(t *Tree, id NodeID, f func(id NodeID)) {
	for ; id != NoNode; id = t.Right(id) {
		for i := 0; i < MaxChildren; i++ {
			WalkPost(t, t.Child(id, i), f)
		}
		f(id)
	}
}

// Inspect calls f for every node reachable from id in pre-order.
func Inspect(t *Tree, id NodeID, f func(id NodeID)) {
	Walk(t, id, func(id NodeID) bool {
		f(id)
		return true
	})
}
