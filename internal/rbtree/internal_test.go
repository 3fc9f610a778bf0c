package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inOrderKeys[E any](t *Tree[E]) []string {
	var keys []string
	var walk func(n *node[E])
	walk = func(n *node[E]) {
		if n == t.nilNode {
			return
		}
		walk(n.left)
		keys = append(keys, n.key)
		walk(n.right)
	}
	walk(t.root)
	return keys
}

func mustFind[E any](t *testing.T, tr *Tree[E], key string) *node[E] {
	t.Helper()
	n, _ := tr.find(key)
	require.NotSame(t, tr.nilNode, n, "key %q", key)
	return n
}

func TestRotateLeftAtRoot(t *testing.T) {
	tr := New[int]()
	for i, k := range []string{"b", "a", "d", "c", "e"} {
		tr.Insert(k, i)
	}
	before := inOrderKeys(tr)

	d := mustFind(t, tr, "d")
	b := mustFind(t, tr, "b")
	c := mustFind(t, tr, "c")
	tr.rotateLeft(d)

	assert.Same(t, d, tr.root)
	assert.Same(t, tr.nilNode, d.parent)
	assert.Same(t, b, d.left)
	assert.Same(t, d, b.parent)
	assert.Same(t, c, b.right, "inner subtree changes sides")
	assert.Same(t, b, c.parent)
	assert.Equal(t, black, d.color)
	assert.Equal(t, red, b.color)
	assert.Equal(t, before, inOrderKeys(tr))
}

func TestRotateRightInner(t *testing.T) {
	tr := New[int]()
	for i, k := range []string{"m", "f", "t", "c", "h", "a", "d"} {
		tr.Insert(k, i)
	}
	before := inOrderKeys(tr)

	m := mustFind(t, tr, "m")
	f := mustFind(t, tr, "f")
	c := mustFind(t, tr, "c")
	d := mustFind(t, tr, "d")
	require.Same(t, c, f.left)
	tr.rotateRight(c)

	assert.Same(t, m, tr.root)
	assert.Same(t, c, m.left)
	assert.Same(t, m, c.parent)
	assert.Same(t, f, c.right)
	assert.Same(t, d, f.left)
	assert.Same(t, f, d.parent)
	assert.Equal(t, black, c.color)
	assert.Equal(t, red, f.color)
	assert.Equal(t, before, inOrderKeys(tr))
}

func TestFindAttachmentPoint(t *testing.T) {
	tr := New[int]()
	n, parent := tr.find("x")
	assert.Same(t, tr.nilNode, n)
	assert.Same(t, tr.nilNode, parent)

	for i, k := range []string{"m", "f", "t"} {
		tr.Insert(k, i)
	}
	n, parent = tr.find("g")
	assert.Same(t, tr.nilNode, n)
	assert.Equal(t, "f", parent.key)

	n, parent = tr.find("t")
	assert.Equal(t, "t", n.key)
	assert.Equal(t, "m", parent.key)
}

func TestDeleteSuccessorIsRightChild(t *testing.T) {
	tr := New[int]()
	for i, k := range []string{"d", "b", "f", "a", "c", "e", "g", "h"} {
		tr.Insert(k, i)
	}
	f := mustFind(t, tr, "f")
	require.Equal(t, "g", f.right.key)

	_, ok := tr.Delete("f")
	require.True(t, ok)
	require.NoError(t, tr.Check())
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "g", "h"}, inOrderKeys(tr))
	assert.Same(t, tr.nilNode, tr.nilNode.parent)
	assert.Equal(t, black, tr.nilNode.color)
}

func TestCheckDetectsCorruption(t *testing.T) {
	build := func() *Tree[int] {
		tr := New[int]()
		for i, k := range []string{"d", "b", "f", "a", "c", "e", "g"} {
			tr.Insert(k, i)
		}
		require.NoError(t, tr.Check())
		return tr
	}

	tests := []struct {
		name    string
		corrupt func(t *testing.T, tr *Tree[int])
		want    error
	}{
		{
			name:    "red root",
			corrupt: func(t *testing.T, tr *Tree[int]) { tr.root.color = red },
			want:    ErrRedRoot,
		},
		{
			name: "red child of red node",
			corrupt: func(t *testing.T, tr *Tree[int]) {
				mustFind(t, tr, "b").color = red
				mustFind(t, tr, "a").color = red
			},
			want: ErrRedViolation,
		},
		{
			name:    "uneven black height",
			corrupt: func(t *testing.T, tr *Tree[int]) { mustFind(t, tr, "a").color = black },
			want:    ErrBlackHeight,
		},
		{
			name:    "red sentinel",
			corrupt: func(t *testing.T, tr *Tree[int]) { tr.nilNode.color = red },
			want:    ErrRedLeaf,
		},
		{
			name:    "keys out of order",
			corrupt: func(t *testing.T, tr *Tree[int]) { mustFind(t, tr, "c").key = "z" },
			want:    ErrOrder,
		},
		{
			name:    "broken parent link",
			corrupt: func(t *testing.T, tr *Tree[int]) { mustFind(t, tr, "g").parent = tr.root },
			want:    ErrParentLink,
		},
		{
			name:    "size drift",
			corrupt: func(t *testing.T, tr *Tree[int]) { tr.size++ },
			want:    ErrSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := build()
			tt.corrupt(t, tr)
			assert.ErrorIs(t, tr.Check(), tt.want)
			assert.False(t, tr.Validate())
		})
	}
}
