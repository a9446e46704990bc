// Package avl provides a height-balanced ordered index (AVL tree) keyed by any
// cmp.Ordered type.
//
// The tree backs the vertex catalog of core.Graph: vertices are stored once,
// keyed by their canonical identifier, and enumerated in ascending key order.
//
// Balance discipline:
//
//	balance(n) = height(n.right) - height(n.left)
//
// Every Insert and Delete restores balance(n) ∈ {-1, 0, +1} on the path back to
// the root using single (left/right) and double (left-right/right-left)
// rotations. A leaf has height 1; an empty subtree has height 0.
//
// Operations:
//
//	Insert(key, val) bool   // O(log n); first write wins
//	Search(key) (V, bool)   // O(log n); read-only
//	Delete(key) bool        // O(log n); in-order successor replacement
//	All() iter.Seq2[K, V]   // O(n) lazy in-order traversal, restartable
//	Len(), Height(), Min(), Max(), Validate()
//
// The zero Tree is empty and ready to use. A Tree is not safe for concurrent use.
//
// Errors:
//
//	ErrUnbalanced - Validate found a node with |balance| > 1.
//	ErrHeight     - Validate found a stale stored height.
//	ErrOrder      - Validate found keys out of ascending order.
package avl
