package Trees

import "golang.org/x/exp/constraints"

// OrderedMap is a key value container kept in key order and built from nodes.
// Receivers returning a *Node return nil to mean "not found"; none of them
// panic for a missing key. Mutators return the container so calls can be
// chained, their checked forms (Put, Delete) return the error instead.
// Traversals call the visitor once per node, synchronously, and finish before
// returning. The container must not be modified from inside a visitor.
// Methods implemented recursively are noted, otherwise they are iterative.
type OrderedMap[K constraints.Ordered, V any] interface {
	//Insert key with value. An existing key keeps its value.
	Insert(key K, value V) *BSTree[K, V]
	//Put is the checked form of Insert.
	Put(key K, value V) error
	//Remove key if present.
	Remove(key K) *BSTree[K, V]
	//Delete is the checked form of Remove.
	Delete(key K) error
	Clear() *BSTree[K, V]
	Search(key K) *Node[K, V]
	Includes(key K) bool
	//Min node of the tree.
	Min() *Node[K, V]
	//Max node of the tree.
	Max() *Node[K, V]
	//Floor returns the greatest node not greater than key.
	Floor(key K) *Node[K, V]
	//Ceiling returns the least node not less than key.
	Ceiling(key K) *Node[K, V]
	//Height of the tree, -1 if empty.
	Height() int
	//Size of the tree.
	Size() int
	IsEmpty() bool
	ToArray() []*Node[K, V]
	ToPairs() []Pair[K, V]
	InOrder(fn func(*Node[K, V])) *BSTree[K, V]
	OutOrder(fn func(*Node[K, V])) *BSTree[K, V]
	PreOrder(fn func(*Node[K, V])) *BSTree[K, V]
	PostOrder(fn func(*Node[K, V])) *BSTree[K, V]
	LevelOrder(fn func(*Node[K, V])) *BSTree[K, V]
	//Iter returns A closure function f acting like an iterator over the nodes
	//in order o, see BSTree.Iter.
	Iter(o Order) func() (*Node[K, V], bool)
}

var _ OrderedMap[int, struct{}] = (*BSTree[int, struct{}])(nil)
