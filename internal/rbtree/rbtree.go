// Package rbtree implements a Red-Black Tree keyed by strings
// with insertion, deletion and search operations.
//
// Red-Black Tree is a self-balancing binary search tree that guarantees
// O(log n) time complexity for basic operations. A Tree is not safe for
// concurrent use; wrap it in a syncmap.Map when goroutines share it.
package rbtree

// Tree represents a Red-Black Tree instance mapping string keys to
// values of type E. Use New() to create a new tree instance.
type Tree[E any] struct {
	root    *node[E]
	nilNode *node[E] // Sentinel node
	size    int
}

// New creates and returns a new empty Red-Black Tree.
func New[E any]() *Tree[E] {
	sentinel := &node[E]{color: black}
	sentinel.parent = sentinel
	return &Tree[E]{
		root:    sentinel,
		nilNode: sentinel,
	}
}

// Insert adds key with its value while maintaining Red-Black Tree
// properties. Keys are unique: inserting a key that is already present
// leaves the tree and the stored value untouched and returns false.
func (t *Tree[E]) Insert(key string, val E) bool {
	if t.root == t.nilNode {
		t.root = t.newNode(key, val, black, t.nilNode)
		t.size++
		return true
	}

	n, parent := t.find(key)
	if n != t.nilNode {
		return false
	}

	// New nodes start red so black heights stay untouched.
	n = t.newNode(key, val, red, parent)
	if key < parent.key {
		parent.left = n
	} else {
		parent.right = n
	}
	t.size++

	t.insertFixup(n)
	return true
}

func (t *Tree[E]) insertFixup(n *node[E]) {
	for {
		if n == t.root {
			n.color = black
			return
		}

		p := n.parent
		if p.color == black {
			return
		}

		// p is red, so it is not the root and g is a real node.
		g := p.parent
		uncle := t.sibling(p)
		if uncle.color == red {
			p.color = black
			uncle.color = black
			g.color = red
			n = g
			continue
		}

		// Black uncle: one or two rotations settle it, their recoloring
		// leaves the new subtree top black with two red children.
		switch {
		case t.isRightChild(n) && t.isRightChild(p):
			t.rotateLeft(p)
		case t.isRightChild(n):
			t.rotateLeft(n)
			t.rotateRight(n)
		case t.isRightChild(p):
			t.rotateRight(n)
			t.rotateLeft(n)
		default:
			t.rotateRight(p)
		}
		return
	}
}

// Get returns the value stored under key.
func (t *Tree[E]) Get(key string) (E, bool) {
	n, _ := t.find(key)
	if n == t.nilNode {
		var zero E
		return zero, false
	}
	return n.val, true
}

// Contains checks if a key is present in the tree.
func (t *Tree[E]) Contains(key string) bool {
	n, _ := t.find(key)
	return n != t.nilNode
}

// find returns the node holding key together with its parent. When key
// is absent it returns the sentinel and the node a new key would hang
// from (the sentinel itself for an empty tree).
func (t *Tree[E]) find(key string) (*node[E], *node[E]) {
	parent := t.nilNode
	current := t.root
	for current != t.nilNode {
		if key == current.key {
			return current, parent
		}
		parent = current
		if key < current.key {
			current = current.left
		} else {
			current = current.right
		}
	}
	return t.nilNode, parent
}

// Depth returns the depth of key counting the root as 1, or 0 if the
// key is not in the tree.
func (t *Tree[E]) Depth(key string) int {
	n, _ := t.find(key)
	depth := 0
	for ; n != t.nilNode; n = n.parent {
		depth++
	}
	return depth
}

// Height returns the number of nodes on the longest path from the root
// down to a leaf.
func (t *Tree[E]) Height() int {
	return t.height(t.root)
}

func (t *Tree[E]) height(n *node[E]) int {
	if n == t.nilNode {
		return 0
	}
	return 1 + max(t.height(n.left), t.height(n.right))
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[E]) IsEmpty() bool {
	return t.root == t.nilNode
}

// Len returns the number of keys in the tree.
func (t *Tree[E]) Len() int {
	return t.size
}
