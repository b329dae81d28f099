package Queues

// minGrow is the capacity given to a queue that is pushed to while having none.
const minGrow = 4

// ArrayQueue is a Queue backed by a circular slice. It grows by 3/2 when full and
// never shrinks unless Shrink is called.
type ArrayQueue[T any] struct {
	sz, head, tail int
	content        []T
}

// NewArrayQueue makes an empty queue with room for initCap items.
func NewArrayQueue[T any](initCap int) *ArrayQueue[T] {
	if initCap < 0 {
		initCap = 0
	}
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

func (this *ArrayQueue[T]) Empty() bool {
	return this.sz == 0
}

func (this *ArrayQueue[T]) Size() int {
	return this.sz
}

// resize copies the live items to the front of a new slice of length newLen.
// newLen must be at least sz.
func (this *ArrayQueue[T]) resize(newLen int) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			n := copy(nc, this.content[this.head:])
			copy(nc[n:], this.content[:this.tail])
		}
	}
	this.head, this.tail = 0, this.sz
	if newLen > 0 {
		this.tail %= newLen
	}
	this.content = nc
}

// Shrink the backing slice to fit the current items.
func (this *ArrayQueue[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *ArrayQueue[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this *ArrayQueue[T]) Push(item T) {
	if this.sz == len(this.content) {
		this.resize(max(this.sz*3/2, this.sz+minGrow))
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % len(this.content)
	this.sz++
}

// PushAll pushes items in order.
func (this *ArrayQueue[T]) PushAll(items ...T) {
	for _, item := range items {
		this.Push(item)
	}
}

func (this *ArrayQueue[T]) Pop() (item T, e error) {
	if this.Empty() {
		return item, ErrEmptyQueue
	}
	item = this.content[this.head]
	this.content[this.head] = *new(T) //release the reference
	this.head = (this.head + 1) % len(this.content)
	this.sz--
	return item, nil
}

func (this *ArrayQueue[T]) Peek() (item T, ok bool) {
	if this.Empty() {
		return
	}
	return this.content[this.head], true
}
