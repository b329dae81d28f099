package Trees

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/bstree/Queues"
	"golang.org/x/exp/constraints"
)

// Order is a traversal order of a BSTree.
type Order uint8

const (
	OrderIn    Order = iota //left, node, right; ascending keys
	OrderOut                //right, node, left; descending keys
	OrderPre                //node, left, right
	OrderPost               //left, right, node
	OrderLevel              //breadth first, left before right
)

var orderNames = [...]string{"in", "out", "pre", "post", "level"}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", uint8(o))
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(s string) (Order, error) {
	for i, n := range orderNames {
		if n == s {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("unknown traversal order %q", s)
}

// nodeStack gives the untyped gods stack a typed face.
type nodeStack[K constraints.Ordered, V any] struct {
	*arraystack.Stack
}

func newNodeStack[K constraints.Ordered, V any]() nodeStack[K, V] {
	return nodeStack[K, V]{arraystack.New()}
}

func (s nodeStack[K, V]) push(n *Node[K, V]) {
	s.Push(n)
}

func (s nodeStack[K, V]) pop() *Node[K, V] {
	v, _ := s.Pop()
	return v.(*Node[K, V])
}

func (s nodeStack[K, V]) peek() *Node[K, V] {
	v, _ := s.Peek()
	return v.(*Node[K, V])
}

// Iter returns a closure acting like an iterator over the nodes in order o.
// Calling it is like calling "Next()": n, valid = f(). n is meaningful only if
// valid is true, and once valid is false it stays false. The iterator is single
// pass; call Iter again to restart.
// The tree must not be modified while the iterator is in use.
// Time: amortized O(1) per call. Space: O(D) for the depth first orders, O(w)
// for OrderLevel with w the widest level.
func (u *BSTree[K, V]) Iter(o Order) func() (*Node[K, V], bool) {
	switch o {
	case OrderIn:
		return spineIter(u.root, false)
	case OrderOut:
		return spineIter(u.root, true)
	case OrderPre:
		return preIter(u.root)
	case OrderPost:
		return postIter(u.root)
	case OrderLevel:
		return levelIter(u.root)
	}
	panic(fmt.Sprintf("Trees: invalid traversal order %d", uint8(o)))
}

// spineIter pushes the left spine (right spine if mirrored), then pops a node,
// yields it, and descends into its other side.
func spineIter[K constraints.Ordered, V any](cur *Node[K, V], mirrored bool) func() (*Node[K, V], bool) {
	st := newNodeStack[K, V]()
	return func() (*Node[K, V], bool) {
		for cur != nil {
			st.push(cur)
			if mirrored {
				cur = cur.r
			} else {
				cur = cur.l
			}
		}
		if st.Empty() {
			return nil, false
		}
		n := st.pop()
		if mirrored {
			cur = n.l
		} else {
			cur = n.r
		}
		return n, true
	}
}

// preIter pushes right before left so that left pops first.
func preIter[K constraints.Ordered, V any](root *Node[K, V]) func() (*Node[K, V], bool) {
	st := newNodeStack[K, V]()
	if root != nil {
		st.push(root)
	}
	return func() (*Node[K, V], bool) {
		if st.Empty() {
			return nil, false
		}
		n := st.pop()
		if n.r != nil {
			st.push(n.r)
		}
		if n.l != nil {
			st.push(n.l)
		}
		return n, true
	}
}

// postIter uses a single stack. last is the most recently yielded node: a node
// on top of the stack is yielded only when it has no right child or its right
// child was just yielded.
func postIter[K constraints.Ordered, V any](cur *Node[K, V]) func() (*Node[K, V], bool) {
	st := newNodeStack[K, V]()
	var last *Node[K, V]
	return func() (*Node[K, V], bool) {
		for cur != nil || !st.Empty() {
			if cur != nil {
				st.push(cur)
				cur = cur.l
				continue
			}
			top := st.peek()
			if top.r != nil && top.r != last {
				cur = top.r
			} else {
				last = st.pop()
				return last, true
			}
		}
		return nil, false
	}
}

func levelIter[K constraints.Ordered, V any](root *Node[K, V]) func() (*Node[K, V], bool) {
	q := Queues.NewArrayQueue[*Node[K, V]](8)
	if root != nil {
		q.Push(root)
	}
	return func() (*Node[K, V], bool) {
		n, err := q.Pop()
		if err != nil {
			return nil, false
		}
		if n.l != nil {
			q.Push(n.l)
		}
		if n.r != nil {
			q.Push(n.r)
		}
		return n, true
	}
}

// Walk calls fn once for every node in order o, synchronously.
func (u *BSTree[K, V]) Walk(o Order, fn func(*Node[K, V])) *BSTree[K, V] {
	next := u.Iter(o)
	for n, ok := next(); ok; n, ok = next() {
		fn(n)
	}
	return u
}

// InOrder visits left subtree, node, right subtree: keys in ascending order.
func (u *BSTree[K, V]) InOrder(fn func(*Node[K, V])) *BSTree[K, V] {
	return u.Walk(OrderIn, fn)
}

// OutOrder is the mirror of InOrder: keys in descending order.
func (u *BSTree[K, V]) OutOrder(fn func(*Node[K, V])) *BSTree[K, V] {
	return u.Walk(OrderOut, fn)
}

// PreOrder visits node, left subtree, right subtree.
func (u *BSTree[K, V]) PreOrder(fn func(*Node[K, V])) *BSTree[K, V] {
	return u.Walk(OrderPre, fn)
}

// PostOrder visits left subtree, right subtree, node.
func (u *BSTree[K, V]) PostOrder(fn func(*Node[K, V])) *BSTree[K, V] {
	return u.Walk(OrderPost, fn)
}

// LevelOrder visits the nodes level by level from the root, left to right.
func (u *BSTree[K, V]) LevelOrder(fn func(*Node[K, V])) *BSTree[K, V] {
	return u.Walk(OrderLevel, fn)
}
