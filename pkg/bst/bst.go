// Package bst implements an unbalanced binary search tree with height and
// balance inspection.
package bst

import "cmp"

type node[K cmp.Ordered] struct {
	key         K
	left, right *node[K]
}

// Tree is a binary search tree of unique keys. The zero value is an empty tree.
type Tree[K cmp.Ordered] struct {
	root *node[K]
	size int
}

// New builds a tree by inserting keys in order.
func New[K cmp.Ordered](keys ...K) *Tree[K] {
	t := &Tree[K]{}
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// Insert adds k to the tree. Returns false if k was already present.
func (t *Tree[K]) Insert(k K) bool {
	link := &t.root
	for *link != nil {
		switch c := cmp.Compare(k, (*link).key); {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			return false
		}
	}
	*link = &node[K]{key: k}
	t.size++
	return true
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.size
}

// InOrder returns all keys in ascending order.
func (t *Tree[K]) InOrder() []K {
	keys := make([]K, 0, t.size)
	var walk func(n *node[K])
	walk = func(n *node[K]) {
		if n == nil {
			return
		}
		walk(n.left)
		keys = append(keys, n.key)
		walk(n.right)
	}
	walk(t.root)
	return keys
}

// FindMinHeight returns the number of edges on the shortest root-to-leaf path.
// An empty tree has height -1, a single node 0.
func (t *Tree[K]) FindMinHeight() int {
	return minHeight(t.root)
}

// FindMaxHeight returns the number of edges on the longest root-to-leaf path.
// An empty tree has height -1, a single node 0.
func (t *Tree[K]) FindMaxHeight() int {
	return maxHeight(t.root)
}

// IsBalanced reports whether, at every node, the heights of the two subtrees
// differ by at most one. An empty tree is balanced.
func (t *Tree[K]) IsBalanced() bool {
	return isBalanced(t.root)
}

func minHeight[K cmp.Ordered](n *node[K]) int {
	switch {
	case n == nil:
		return -1
	case n.left == nil && n.right == nil:
		return 0
	case n.left == nil:
		return minHeight(n.right) + 1
	case n.right == nil:
		return minHeight(n.left) + 1
	}
	return min(minHeight(n.left), minHeight(n.right)) + 1
}

func maxHeight[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return -1
	}
	return max(maxHeight(n.left), maxHeight(n.right)) + 1
}

func isBalanced[K cmp.Ordered](n *node[K]) bool {
	if n == nil {
		return true
	}
	diff := maxHeight(n.left) - maxHeight(n.right)
	if diff > 1 || diff < -1 {
		return false
	}
	return isBalanced(n.left) && isBalanced(n.right)
}
