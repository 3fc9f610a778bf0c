package rbtree

// Delete removes key from the tree while maintaining Red-Black Tree
// properties and returns the value it held. If key doesn't exist,
// the operation is a no-op.
func (t *Tree[E]) Delete(key string) (E, bool) {
	z, _ := t.find(key)
	if z == t.nilNode {
		var zero E
		return zero, false
	}

	// y is the node physically taken out of its slot, x what fills that
	// slot. x may be the sentinel, whose parent then marks the slot.
	var x *node[E]
	y := z
	removedColor := y.color

	switch {
	case z.left == t.nilNode:
		x = z.right
		t.replaceChild(z, z.right)
	case z.right == t.nilNode:
		x = z.left
		t.replaceChild(z, z.left)
	default:
		y = t.minimum(z.right)
		removedColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.replaceChild(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.replaceChild(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	t.size--

	if removedColor == black {
		t.deleteFixup(x)
	}
	t.nilNode.parent = t.nilNode

	return z.val, true
}

func (t *Tree[E]) minimum(n *node[E]) *node[E] {
	for n.left != t.nilNode {
		n = n.left
	}
	return n
}

// deleteFixup resolves the missing black at x. Red x absorbs it, the
// root absorbs it trivially, anything else works on the sibling.
func (t *Tree[E]) deleteFixup(x *node[E]) {
	for x != t.root && x.color == black {
		p := x.parent
		left := p.left == x
		w := t.sibling(x)

		if w.color == red {
			// Turns w black and p red.
			t.rotateUp(w)
			w = t.sibling(x)
		}

		near, far := w.left, w.right
		if !left {
			near, far = w.right, w.left
		}

		if near.color == black && far.color == black {
			w.color = red
			x = p
			continue
		}

		if far.color == black {
			// Near nephew moves up black, w goes down red and becomes
			// the red far nephew.
			t.rotateUp(near)
			w = near
			far = w.right
			if !left {
				far = w.left
			}
		}

		pc := p.color
		t.rotateUp(w)
		w.color = pc
		p.color = black
		far.color = black
		x = t.root
	}
	x.color = black
}

// rotateUp rotates n into its parent's position from whichever side it
// hangs on.
func (t *Tree[E]) rotateUp(n *node[E]) {
	if t.isRightChild(n) {
		t.rotateLeft(n)
	} else {
		t.rotateRight(n)
	}
}
