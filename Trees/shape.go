package Trees

import (
	"github.com/g-m-twostay/bstree/Queues"
)

// collect the nodes satisfying keep, in order.
func (u *BSTree[K, V]) collect(keep func(*Node[K, V]) bool) []*Node[K, V] {
	var ns []*Node[K, V]
	u.InOrder(func(n *Node[K, V]) {
		if keep == nil || keep(n) {
			ns = append(ns, n)
		}
	})
	return ns
}

// ToArray returns every node in order.
func (u *BSTree[K, V]) ToArray() []*Node[K, V] {
	return u.collect(nil)
}

// ToPairs returns every key value pair in order.
func (u *BSTree[K, V]) ToPairs() []Pair[K, V] {
	var ps []Pair[K, V]
	u.InOrder(func(n *Node[K, V]) {
		ps = append(ps, n.ToPair())
	})
	return ps
}

// Keys in ascending order.
func (u *BSTree[K, V]) Keys() []K {
	var ks []K
	u.InOrder(func(n *Node[K, V]) {
		ks = append(ks, n.key)
	})
	return ks
}

// Size counts the nodes by walking the tree; it isn't cached.
// Time: O(n)
func (u *BSTree[K, V]) Size() (sz int) {
	u.InOrder(func(*Node[K, V]) {
		sz++
	})
	return
}

func (u *BSTree[K, V]) LeafNodes() []*Node[K, V] {
	return u.collect((*Node[K, V]).IsLeaf)
}

func (u *BSTree[K, V]) InternalNodes() []*Node[K, V] {
	return u.collect((*Node[K, V]).IsInternal)
}

func (u *BSTree[K, V]) FullNodes() []*Node[K, V] {
	return u.collect((*Node[K, V]).IsFull)
}

func (u *BSTree[K, V]) PartialNodes() []*Node[K, V] {
	return u.collect((*Node[K, V]).IsPartial)
}

func (u *BSTree[K, V]) newQueue() *Queues.ArrayQueue[*Node[K, V]] {
	q := Queues.NewArrayQueue[*Node[K, V]](8)
	if u.root != nil {
		q.Push(u.root)
	}
	return q
}

// IsBalanced reports whether the depths at which paths from the root end differ
// by at most one. A path ends at a leaf, or at a node missing a child, so
// minD is the depth of the shallowest node with fewer than two children and maxD
// is the depth of the deepest leaf. This is a property of the whole tree, not
// the per subtree balance factor of AVL trees. The scan stops after the first
// level that breaks it.
// Time: O(n)
func (u *BSTree[K, V]) IsBalanced() bool {
	q := u.newQueue()
	minD, maxD := -1, -1
	for d := 0; !q.Empty(); d++ {
		for n := q.Size(); n > 0; n-- {
			cur, _ := q.Pop()
			if minD < 0 && !cur.IsFull() {
				minD = d
			}
			if cur.IsLeaf() {
				maxD = d
			} else {
				q.PushAll(cur.Children()...)
			}
		}
		if minD >= 0 && maxD-minD > 1 {
			return false
		}
	}
	return true
}

// IsFull reports whether every node has either zero or two children.
// Time: O(n)
func (u *BSTree[K, V]) IsFull() bool {
	q := u.newQueue()
	for !q.Empty() {
		cur, _ := q.Pop()
		if cur.IsPartial() {
			return false
		}
		if cur.IsFull() {
			q.PushAll(cur.l, cur.r)
		}
	}
	return true
}

// IsComplete reports whether every level is filled except possibly the last,
// which is filled from the left.
// Time: O(n)
func (u *BSTree[K, V]) IsComplete() bool {
	q := u.newQueue()
	sawNonFull := false
	for !q.Empty() {
		cur, _ := q.Pop()
		if cur.IsRightPartial() {
			return false
		}
		if cur.IsLeaf() {
			sawNonFull = true
			continue
		}
		if sawNonFull {
			return false
		}
		cs := cur.Children()
		sawNonFull = len(cs) < 2
		q.PushAll(cs...)
	}
	return true
}

// IsPerfect reports whether every internal node has two children and all leaves
// are at the same depth.
// Time: O(n)
func (u *BSTree[K, V]) IsPerfect() bool {
	q := u.newQueue()
	leafD := -1
	for d := 0; !q.Empty(); d++ {
		for n := q.Size(); n > 0; n-- {
			cur, _ := q.Pop()
			if cur.IsPartial() {
				return false
			}
			if cur.IsLeaf() {
				if leafD >= 0 && leafD != d {
					return false
				}
				leafD = d
			} else {
				if leafD >= 0 {
					return false
				}
				q.PushAll(cur.l, cur.r)
			}
		}
	}
	return true
}

// Shape is a snapshot of the structural properties of a tree.
type Shape struct {
	Size, Height                       int
	Leaves, Internal, Full, Partial    int
	Balanced, Complete, Perfect, Empty bool
	FullTree                           bool //every node has zero or two children
}

// Shape computes every structural property in one call.
// Time: O(n)
func (u *BSTree[K, V]) Shape() Shape {
	s := Shape{
		Height:   u.Height(),
		Balanced: u.IsBalanced(),
		Complete: u.IsComplete(),
		Perfect:  u.IsPerfect(),
		FullTree: u.IsFull(),
		Empty:    u.IsEmpty(),
	}
	u.InOrder(func(n *Node[K, V]) {
		s.Size++
		switch n.Degree() {
		case 0:
			s.Leaves++
		case 1:
			s.Internal++
			s.Partial++
		case 2:
			s.Internal++
			s.Full++
		}
	})
	return s
}
