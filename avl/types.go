package avl

import (
	"cmp"
	"errors"
)

// Sentinel errors reported by Validate.
var (
	// ErrUnbalanced indicates a node whose balance factor left {-1, 0, +1}.
	ErrUnbalanced = errors.New("avl: node out of balance")

	// ErrHeight indicates a node whose stored height disagrees with its subtrees.
	ErrHeight = errors.New("avl: stale node height")

	// ErrOrder indicates an in-order traversal that is not strictly ascending.
	ErrOrder = errors.New("avl: keys out of order")
)

// node is a single tree entry. height counts nodes on the longest downward path
// (leaf = 1).
type node[K cmp.Ordered, V any] struct {
	key    K
	val    V
	left   *node[K, V]
	right  *node[K, V]
	height int
}

// Tree is an AVL-balanced binary search tree mapping unique keys to values.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty Tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}
