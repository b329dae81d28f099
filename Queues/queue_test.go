package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

var _ Queue[int] = (*ArrayQueue[int])(nil)

func TestArrayQueue_Empty(t *testing.T) {
	q := NewArrayQueue[int](0)
	if !q.Empty() || q.Size() != 0 {
		t.Fatalf("new queue is not empty")
	}
	if _, err := q.Pop(); !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("pop on empty queue returned %v, want ErrEmptyQueue", err)
	}
	if _, ok := q.Peek(); ok {
		t.Errorf("peek on empty queue reported an item")
	}
}

func TestArrayQueue_FIFO(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	for _, initCap := range []int{0, 1, 3, 64} {
		q := NewArrayQueue[int](initCap)
		var model []int
		next := 0
		for range 5000 {
			if rg.Intn(3) != 0 {
				q.Push(next)
				model = append(model, next)
				next++
			} else {
				v, err := q.Pop()
				if len(model) == 0 {
					if err == nil {
						t.Fatalf("pop succeeded on empty queue")
					}
					continue
				}
				if err != nil {
					t.Fatalf("pop failed with %d items", len(model))
				}
				if v != model[0] {
					t.Fatalf("popped %d, want %d", v, model[0])
				}
				model = model[1:]
			}
			if q.Size() != len(model) {
				t.Fatalf("size is %d, want %d", q.Size(), len(model))
			}
			if len(model) > 0 {
				if v, _ := q.Peek(); v != model[0] {
					t.Fatalf("peek is %d, want %d", v, model[0])
				}
			}
		}
	}
}

func TestArrayQueue_ShrinkClear(t *testing.T) {
	q := NewArrayQueue[int](2)
	q.PushAll(1, 2, 3, 4, 5)
	q.Pop()
	q.Pop()
	q.Push(6)
	q.Shrink()
	for _, want := range []int{3, 4, 5, 6} {
		if v, err := q.Pop(); err != nil || v != want {
			t.Fatalf("popped (%d, %v), want %d", v, err, want)
		}
	}
	q.PushAll(7, 8)
	q.Clear()
	if !q.Empty() {
		t.Fatalf("queue not empty after Clear")
	}
	q.Push(9)
	if v, _ := q.Pop(); v != 9 {
		t.Fatalf("popped %d after Clear, want 9", v)
	}
}
