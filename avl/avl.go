package avl

import (
	"cmp"
	"fmt"
	"iter"
)

// Insert adds key→val if key is absent and reports whether the tree changed.
// An existing key keeps its original value (first write wins).
//
// Complexity: O(log n).
func (t *Tree[K, V]) Insert(key K, val V) bool {
	var added bool
	t.root = insert(t.root, key, val, &added)
	if added {
		t.size++
	}

	return added
}

// Search returns the value stored under key and whether it was found.
//
// Complexity: O(log n), no mutation.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	n := t.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.val, true
		}
	}
	var zero V

	return zero, false
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Search(key)

	return ok
}

// Delete removes key and reports whether it was present.
// A node with two children is replaced by its in-order successor.
//
// Complexity: O(log n).
func (t *Tree[K, V]) Delete(key K) bool {
	var removed bool
	t.root = remove(t.root, key, &removed)
	if removed {
		t.size--
	}

	return removed
}

// Len returns the number of stored keys.
func (t *Tree[K, V]) Len() int { return t.size }

// Height returns the height of the root (0 for an empty tree).
func (t *Tree[K, V]) Height() int { return height(t.root) }

// Clear drops every entry.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.size = 0
}

// Min returns the smallest key and its value.
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	n := minNode(t.root)

	return n.key, n.val, true
}

// Max returns the largest key and its value.
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.root == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, n.val, true
}

// All yields every entry in ascending key order.
//
// Each call starts a fresh traversal. The sequence must not be used while the
// tree is being mutated. Breaking out of the range loop stops the walk early.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(t.root, yield)
	}
}

// Keys yields every key in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		walk(t.root, func(k K, _ V) bool { return yield(k) })
	}
}

// Values yields every value in ascending key order.
func (t *Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		walk(t.root, func(_ K, v V) bool { return yield(v) })
	}
}

// Validate checks the structural invariants: strictly ascending in-order keys,
// correct stored heights and |balance| ≤ 1 at every node.
func (t *Tree[K, V]) Validate() error {
	var prev *K
	_, err := validate(t.root, &prev)

	return err
}

// Balanced reports whether Validate succeeds.
func (t *Tree[K, V]) Balanced() bool { return t.Validate() == nil }

// walk is an in-order traversal that stops as soon as yield returns false.
func walk[K cmp.Ordered, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.left, yield) {
		return false
	}
	if !yield(n.key, n.val) {
		return false
	}

	return walk(n.right, yield)
}

func insert[K cmp.Ordered, V any](n *node[K, V], key K, val V, added *bool) *node[K, V] {
	if n == nil {
		*added = true
		return &node[K, V]{key: key, val: val, height: 1}
	}
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left = insert(n.left, key, val, added)
	case c > 0:
		n.right = insert(n.right, key, val, added)
	default:
		return n
	}
	if !*added {
		return n
	}
	fixHeight(n)
	b := balance(n)

	// Left-left: key landed left of the left child.
	if b < -1 && cmp.Less(key, n.left.key) {
		return rotateRight(n)
	}
	// Right-right.
	if b > 1 && cmp.Less(n.right.key, key) {
		return rotateLeft(n)
	}
	// Left-right.
	if b < -1 && cmp.Less(n.left.key, key) {
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}
	// Right-left.
	if b > 1 && cmp.Less(key, n.right.key) {
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

func remove[K cmp.Ordered, V any](n *node[K, V], key K, removed *bool) *node[K, V] {
	if n == nil {
		return nil
	}
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left = remove(n.left, key, removed)
	case c > 0:
		n.right = remove(n.right, key, removed)
	default:
		*removed = true
		if n.left == nil || n.right == nil {
			if n.left != nil {
				n = n.left
			} else {
				n = n.right
			}
		} else {
			succ := minNode(n.right)
			n.key, n.val = succ.key, succ.val
			var dropped bool
			n.right = remove(n.right, succ.key, &dropped)
		}
	}
	if n == nil {
		return nil
	}

	return rebalance(n)
}

// rebalance restores the AVL property at n after a deletion below it.
func rebalance[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	fixHeight(n)
	b := balance(n)
	switch {
	case b < -1 && balance(n.left) <= 0:
		return rotateRight(n)
	case b < -1:
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case b > 1 && balance(n.right) >= 0:
		return rotateLeft(n)
	case b > 1:
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

//	    y            x
//	   / \          / \
//	  x   C  ==>   A   y
//	 / \              / \
//	A   B            B   C
func rotateRight[K cmp.Ordered, V any](y *node[K, V]) *node[K, V] {
	x := y.left
	y.left = x.right
	x.right = y
	fixHeight(y)
	fixHeight(x)

	return x
}

//	  x                y
//	 / \              / \
//	A   y    ==>     x   C
//	   / \          / \
//	  B   C        A   B
func rotateLeft[K cmp.Ordered, V any](x *node[K, V]) *node[K, V] {
	y := x.right
	x.right = y.left
	y.left = x
	fixHeight(x)
	fixHeight(y)

	return y
}

func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return n.height
}

func balance[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return height(n.right) - height(n.left)
}

func fixHeight[K cmp.Ordered, V any](n *node[K, V]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

func minNode[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}

// validate returns the recomputed height of n or the first violation found.
func validate[K cmp.Ordered, V any](n *node[K, V], prev **K) (int, error) {
	if n == nil {
		return 0, nil
	}
	lh, err := validate(n.left, prev)
	if err != nil {
		return 0, err
	}
	if *prev != nil && !cmp.Less(**prev, n.key) {
		return 0, fmt.Errorf("%w: %v after %v", ErrOrder, n.key, **prev)
	}
	k := n.key
	*prev = &k
	rh, err := validate(n.right, prev)
	if err != nil {
		return 0, err
	}
	h := 1 + max(lh, rh)
	if h != n.height {
		return 0, fmt.Errorf("%w: key %v stores %d, want %d", ErrHeight, n.key, n.height, h)
	}
	if b := rh - lh; b < -1 || b > 1 {
		return 0, fmt.Errorf("%w: key %v balance %d", ErrUnbalanced, n.key, b)
	}

	return h, nil
}
