package rbtree

// rotateLeft moves n, a right child, into its parent's position.
//
//	    P                    P
//	    |                    |
//	    p                    n
//	   / \                  / \
//	  A   n       →        p   C
//	     / \              / \
//	    B   C            A   B
//
// The rotation recolors as it goes: n ends up black and p red. Every
// caller in the fix-up code relies on that.
func (t *Tree[E]) rotateLeft(n *node[E]) {
	p := n.parent
	p.right = n.left
	if n.left != t.nilNode {
		n.left.parent = p
	}
	t.replaceChild(p, n)
	n.left = p
	p.parent = n
	n.color = black
	p.color = red
}

// rotateRight moves n, a left child, into its parent's position.
//
//	       P                    P
//	       |                    |
//	       p                    n
//	      / \                  / \
//	     n   C       →        A   p
//	    / \                      / \
//	   A   B                    B   C
//
// Like rotateLeft, n ends up black and p red.
func (t *Tree[E]) rotateRight(n *node[E]) {
	p := n.parent
	p.left = n.right
	if n.right != t.nilNode {
		n.right.parent = p
	}
	t.replaceChild(p, n)
	n.right = p
	p.parent = n
	n.color = black
	p.color = red
}

// replaceChild hooks n into old's slot under old's parent, or makes it
// the root.
func (t *Tree[E]) replaceChild(old, n *node[E]) {
	n.parent = old.parent
	switch {
	case old.parent == t.nilNode:
		t.root = n
	case old == old.parent.left:
		old.parent.left = n
	default:
		old.parent.right = n
	}
}
