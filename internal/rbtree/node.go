package rbtree

type color bool

const (
	red   color = true
	black color = false
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// node is either a keyed entry or the tree's shared sentinel.
// Real nodes never hold a Go nil child: absent children point at the
// sentinel, and so does the parent field of the root.
type node[E any] struct {
	key                 string
	val                 E
	color               color
	left, right, parent *node[E]
}

func (t *Tree[E]) newNode(key string, val E, c color, parent *node[E]) *node[E] {
	return &node[E]{
		key:    key,
		val:    val,
		color:  c,
		left:   t.nilNode,
		right:  t.nilNode,
		parent: parent,
	}
}

func (t *Tree[E]) isRightChild(n *node[E]) bool {
	return n.parent != t.nilNode && n.parent.right == n
}

// sibling returns the other child of n's parent. When n is the sentinel
// its side is taken from the parent's links, which is unambiguous because
// a deficient slot always has a real sibling.
func (t *Tree[E]) sibling(n *node[E]) *node[E] {
	p := n.parent
	if p.left == n {
		return p.right
	}
	return p.left
}
