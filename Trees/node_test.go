package Trees

import (
	"testing"
)

func TestNode_Degree(t *testing.T) {
	leaf := NewNode(1, "a")
	left := &Node[int, string]{key: 2, l: NewNode(1, "")}
	right := &Node[int, string]{key: 2, r: NewNode(3, "")}
	full := &Node[int, string]{key: 2, l: NewNode(1, ""), r: NewNode(3, "")}
	cases := []struct {
		n                                        *Node[int, string]
		degree                                   int
		leaf, internal, full, partial, rightOnly bool
	}{
		{leaf, 0, true, false, false, false, false},
		{left, 1, false, true, false, true, false},
		{right, 1, false, true, false, true, true},
		{full, 2, false, true, true, false, false},
	}
	for i, c := range cases {
		if c.n.Degree() != c.degree || len(c.n.Children()) != c.degree {
			t.Errorf("case %d: degree %d with %d children, want %d", i, c.n.Degree(), len(c.n.Children()), c.degree)
		}
		if c.n.IsLeaf() != c.leaf || c.n.IsInternal() != c.internal || c.n.IsFull() != c.full ||
			c.n.IsPartial() != c.partial || c.n.IsRightPartial() != c.rightOnly {
			t.Errorf("case %d: wrong predicates", i)
		}
	}
	if cs := full.Children(); cs[0].Key() != 1 || cs[1].Key() != 3 {
		t.Error("children are not ordered left before right")
	}
	if p := leaf.ToPair(); p.Key != 1 || p.Value != "a" {
		t.Errorf("pair is %v", p)
	}
}

func TestNode_Height(t *testing.T) {
	tree := build(5, 3, 8, 1, 0, 9)
	for k, want := range map[int]int{5: 3, 3: 2, 1: 1, 0: 0, 8: 1, 9: 0} {
		if h := tree.Search(k).Height(); h != want {
			t.Errorf("height of %d is %d, want %d", k, h, want)
		}
	}
}
