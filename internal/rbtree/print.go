package rbtree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// String renders the tree shape for debugging, one node per line with
// its side and color:
//
//	d (black)
//	├── L b (red)
//	│   ├── L a (black)
//	│   └── R c (black)
//	└── R f (black)
func (t *Tree[E]) String() string {
	if t.root == t.nilNode {
		return "(empty)"
	}
	tree := treeprint.NewWithRoot(fmt.Sprintf("%s (%s)", t.root.key, t.root.color))
	t.printChildren(tree, t.root)
	return tree.String()
}

func (t *Tree[E]) printChildren(branch treeprint.Tree, n *node[E]) {
	for _, c := range [...]struct {
		side  string
		child *node[E]
	}{{"L", n.left}, {"R", n.right}} {
		if c.child == t.nilNode {
			continue
		}
		label := fmt.Sprintf("%s %s (%s)", c.side, c.child.key, c.child.color)
		if c.child.left == t.nilNode && c.child.right == t.nilNode {
			branch.AddNode(label)
			continue
		}
		t.printChildren(branch.AddBranch(label), c.child)
	}
}
