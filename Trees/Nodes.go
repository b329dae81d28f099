package Trees

import (
	"github.com/g-m-twostay/bstree/Queues"
	"golang.org/x/exp/constraints"
)

// Pair is a key together with its value.
type Pair[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// Node is one position in a BSTree. A node owns its children exclusively and
// keeps no reference to its parent.
// Every method other than the constructor requires a non-nil receiver; a nil
// *Node is what the tree returns for "not found".
// All shape queries are computed from the two child pointers on each call.
type Node[K constraints.Ordered, V any] struct {
	key  K
	v    V
	l, r *Node[K, V]
}

func NewNode[K constraints.Ordered, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{key: key, v: value}
}

func (u *Node[K, V]) Key() K {
	return u.key
}

func (u *Node[K, V]) Value() V {
	return u.v
}

// SetValue replaces the payload. The key of a node can't be changed from outside
// the tree.
func (u *Node[K, V]) SetValue(v V) {
	u.v = v
}

func (u *Node[K, V]) Left() *Node[K, V] {
	return u.l
}

func (u *Node[K, V]) Right() *Node[K, V] {
	return u.r
}

// Degree is the number of children, 0 to 2.
func (u *Node[K, V]) Degree() (d int) {
	if u.l != nil {
		d++
	}
	if u.r != nil {
		d++
	}
	return
}

// Children returns the present children, left before right.
func (u *Node[K, V]) Children() []*Node[K, V] {
	cs := make([]*Node[K, V], 0, 2)
	if u.l != nil {
		cs = append(cs, u.l)
	}
	if u.r != nil {
		cs = append(cs, u.r)
	}
	return cs
}

func (u *Node[K, V]) IsLeaf() bool {
	return u.l == nil && u.r == nil
}

func (u *Node[K, V]) IsInternal() bool {
	return !u.IsLeaf()
}

func (u *Node[K, V]) IsFull() bool {
	return u.l != nil && u.r != nil
}

func (u *Node[K, V]) IsPartial() bool {
	return u.Degree() == 1
}

// IsRightPartial reports a right child without a left one, which a complete
// tree never contains.
func (u *Node[K, V]) IsRightPartial() bool {
	return u.l == nil && u.r != nil
}

// Height is the number of edges on the longest downward path to a leaf. A leaf
// has height 0. The subtree is scanned level by level so that skewed subtrees
// don't recurse.
// Time: O(n); Space: O(w), w the widest level.
func (u *Node[K, V]) Height() int {
	q := Queues.NewArrayQueue[*Node[K, V]](2)
	q.Push(u)
	h := -1
	for !q.Empty() {
		h++
		for n := q.Size(); n > 0; n-- {
			cur, _ := q.Pop()
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
	return h
}

func (u *Node[K, V]) ToPair() Pair[K, V] {
	return Pair[K, V]{u.key, u.v}
}
