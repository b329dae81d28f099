package Trees

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

// BSTree is an unbalanced binary search tree mapping unique keys to values.
// Nothing rebalances it, so inserting keys in sorted order produces a chain and
// D, the height of the tree, can be as large as n-1. Inserting an existing key
// leaves the stored value untouched.
// K must be totally ordered; a key that isn't equal to itself (NaN) is rejected
// with an InvalidKeyError.
// BSTree is not safe for concurrent use and it must not be modified while
// a traversal or an iterator from Iter is running.
// The zero value isn't usable, create trees with New.
type BSTree[K constraints.Ordered, V any] struct {
	root *Node[K, V]
	err  error //first invalid key seen by Insert or Remove since the last Clear
	log  zerolog.Logger
}

// Option configures a BSTree in New.
type Option func(*options)

type options struct {
	log zerolog.Logger
}

// WithLogger sets the logger receiving debug events about ignored operations.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// New returns an empty tree.
func New[K constraints.Ordered, V any](opts ...Option) *BSTree[K, V] {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &BSTree[K, V]{log: o.log}
}

// valid reports whether k takes part in the total order of K.
func valid[K constraints.Ordered](k K) bool {
	return k == k
}

func (u *BSTree[K, V]) invalid(op string, key K) error {
	u.log.Debug().Str("op", op).Interface("key", key).Msg("rejected key outside the total order")
	return &InvalidKeyError{key, op}
}

// Root of the tree, nil if empty.
func (u *BSTree[K, V]) Root() *Node[K, V] {
	return u.root
}

// Err returns the first error met by Insert or Remove since the tree was created
// or last cleared.
func (u *BSTree[K, V]) Err() error {
	return u.err
}

func (u *BSTree[K, V]) record(err error) {
	if err != nil && u.err == nil {
		u.err = err
	}
}

// Inserted adds key with value and reports whether a node was created. An existing
// key is left untouched and reported as (false, nil).
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Inserted(key K, value V) (bool, error) {
	if !valid(key) {
		return false, u.invalid("insert", key)
	}
	if u.root == nil {
		u.root = NewNode(key, value)
		return true, nil
	}
	for cur := u.root; ; {
		if key < cur.key {
			if cur.l == nil {
				cur.l = NewNode(key, value)
				return true, nil
			}
			cur = cur.l
		} else if key > cur.key {
			if cur.r == nil {
				cur.r = NewNode(key, value)
				return true, nil
			}
			cur = cur.r
		} else {
			u.log.Debug().Interface("key", key).Msg("duplicate key ignored")
			return false, nil
		}
	}
}

// Put is Inserted without the report.
func (u *BSTree[K, V]) Put(key K, value V) error {
	_, err := u.Inserted(key, value)
	return err
}

// Insert is the chaining form of Put. An invalid key is recorded in Err.
func (u *BSTree[K, V]) Insert(key K, value V) *BSTree[K, V] {
	u.record(u.Put(key, value))
	return u
}

// minNode returns the leftmost node under n, n itself can be nil.
func minNode[K constraints.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	if n != nil {
		for n.l != nil {
			n = n.l
		}
	}
	return n
}

// remove key from the subtree rooting at cur recursively and return the new
// root of that subtree. A node with two children takes over the key and value
// of its in-order successor, which is then removed from the right subtree.
// Time: O(D)
func remove[K constraints.Ordered, V any](cur *Node[K, V], key K) (*Node[K, V], bool) {
	if cur == nil {
		return nil, false
	}
	var removed bool
	if key < cur.key {
		cur.l, removed = remove(cur.l, key)
		return cur, removed
	} else if key > cur.key {
		cur.r, removed = remove(cur.r, key)
		return cur, removed
	}
	if cur.l == nil {
		return cur.r, true
	} else if cur.r == nil {
		return cur.l, true
	}
	s := minNode(cur.r)
	cur.key, cur.v = s.key, s.v
	cur.r, _ = remove(cur.r, s.key)
	return cur, true
}

// Removed deletes key and reports whether it was present. Recursive.
// Time: O(D)
func (u *BSTree[K, V]) Removed(key K) (bool, error) {
	if !valid(key) {
		return false, u.invalid("remove", key)
	}
	var removed bool
	u.root, removed = remove(u.root, key)
	if !removed {
		u.log.Debug().Interface("key", key).Msg("remove of absent key ignored")
	}
	return removed, nil
}

// Delete is Removed without the report.
func (u *BSTree[K, V]) Delete(key K) error {
	_, err := u.Removed(key)
	return err
}

// Remove is the chaining form of Delete. An invalid key is recorded in Err.
func (u *BSTree[K, V]) Remove(key K) *BSTree[K, V] {
	u.record(u.Delete(key))
	return u
}

// Clear drops every node and the recorded error.
func (u *BSTree[K, V]) Clear() *BSTree[K, V] {
	u.log.Debug().Msg("tree cleared")
	u.root, u.err = nil, nil
	return u
}

// Search returns the node holding key, or nil.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Search(key K) *Node[K, V] {
	if !valid(key) {
		return nil
	}
	for cur := u.root; cur != nil; {
		if key < cur.key {
			cur = cur.l
		} else if key > cur.key {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Includes reports whether key is in the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Includes(key K) bool {
	return u.Search(key) != nil
}

// Min returns the node with the smallest key, nil if the tree is empty.
func (u *BSTree[K, V]) Min() *Node[K, V] {
	return minNode(u.root)
}

// Max returns the node with the largest key, nil if the tree is empty.
func (u *BSTree[K, V]) Max() *Node[K, V] {
	cur := u.root
	if cur != nil {
		for cur.r != nil {
			cur = cur.r
		}
	}
	return cur
}

// Floor returns the node with the greatest key less than or equal to key, or nil.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Floor(key K) *Node[K, V] {
	var p *Node[K, V]
	if !valid(key) {
		return p
	}
	for cur := u.root; cur != nil; {
		if key < cur.key {
			cur = cur.l
		} else if key > cur.key {
			p = cur
			cur = cur.r
		} else {
			return cur
		}
	}
	return p
}

// Ceiling returns the node with the least key greater than or equal to key, or nil.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Ceiling(key K) *Node[K, V] {
	var p *Node[K, V]
	if !valid(key) {
		return p
	}
	for cur := u.root; cur != nil; {
		if key < cur.key {
			p = cur
			cur = cur.l
		} else if key > cur.key {
			cur = cur.r
		} else {
			return cur
		}
	}
	return p
}

// Height of the root, -1 for an empty tree.
func (u *BSTree[K, V]) Height() int {
	if u.root == nil {
		return -1
	}
	return u.root.Height()
}

func (u *BSTree[K, V]) IsEmpty() bool {
	return u.root == nil
}
