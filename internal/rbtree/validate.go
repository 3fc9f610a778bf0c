package rbtree

import (
	"errors"
	"fmt"
)

// Errors reported by Check, one per broken invariant.
var (
	ErrRedRoot      = errors.New("root is red")
	ErrRedLeaf      = errors.New("sentinel leaf is red")
	ErrRedViolation = errors.New("red node has a red child")
	ErrBlackHeight  = errors.New("black height differs between paths")
	ErrOrder        = errors.New("keys out of order")
	ErrParentLink   = errors.New("child does not point back to its parent")
	ErrSize         = errors.New("size counter does not match node count")
)

// Validate reports whether the tree satisfies the Red-Black Tree
// invariants:
// 1. Root is always black
// 2. Red nodes must have black children
// 3. All paths from node to leaves have same black node count
func (t *Tree[E]) Validate() bool {
	return t.Check() == nil
}

// Check walks the whole tree without modifying it and returns the first
// violated invariant, wrapped with the offending key. Besides the
// coloring rules it verifies key order, parent back-links and the size
// counter.
func (t *Tree[E]) Check() error {
	if t.nilNode.color != black {
		return ErrRedLeaf
	}
	if t.root == t.nilNode {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree with size %d", ErrSize, t.size)
		}
		return nil
	}
	if t.root.color != black {
		return fmt.Errorf("%w: %q", ErrRedRoot, t.root.key)
	}
	if t.root.parent != t.nilNode {
		return fmt.Errorf("%w: root %q has a parent", ErrParentLink, t.root.key)
	}

	c := checker[E]{t: t, expected: -1}
	if err := c.walk(t.root, 0, nil, nil); err != nil {
		return err
	}
	if c.count != t.size {
		return fmt.Errorf("%w: counted %d nodes, size is %d", ErrSize, c.count, t.size)
	}
	return nil
}

type checker[E any] struct {
	t        *Tree[E]
	expected int // black count of the first path reached, -1 until then
	count    int
}

// walk checks the subtree under n; blacks is the number of black nodes
// above n, lo and hi bound the keys allowed in the subtree.
func (c *checker[E]) walk(n *node[E], blacks int, lo, hi *string) error {
	t := c.t
	if n == t.nilNode {
		if c.expected == -1 {
			c.expected = blacks
		}
		if blacks != c.expected {
			return fmt.Errorf("%w: path with %d black nodes, expected %d", ErrBlackHeight, blacks, c.expected)
		}
		return nil
	}
	c.count++

	if (lo != nil && n.key <= *lo) || (hi != nil && n.key >= *hi) {
		return fmt.Errorf("%w: %q", ErrOrder, n.key)
	}

	if n.color == red {
		if n.left.color == red || n.right.color == red {
			return fmt.Errorf("%w: %q", ErrRedViolation, n.key)
		}
	} else {
		blacks++
	}

	for _, child := range [2]*node[E]{n.left, n.right} {
		if child != t.nilNode && child.parent != n {
			return fmt.Errorf("%w: %q under %q", ErrParentLink, child.key, n.key)
		}
	}

	if err := c.walk(n.left, blacks, lo, &n.key); err != nil {
		return err
	}
	return c.walk(n.right, blacks, &n.key, hi)
}
