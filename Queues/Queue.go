package Queues

import "errors"

// Queue is a FIFO container. Implementations are not safe for concurrent use.
type Queue[T any] interface {
	//Push item to the back of the queue.
	Push(item T)
	//Pop removes and returns the front item. It returns ErrEmptyQueue if
	//there is nothing to pop.
	Pop() (T, error)
	//Peek at the front item without removing it. The second return value
	//is false when the queue is empty.
	Peek() (T, bool)
	Empty() bool
	Size() int
	//Clear removes every item but keeps the allocated capacity.
	Clear()
}

// ErrEmptyQueue is returned by Pop on an empty queue.
var ErrEmptyQueue = errors.New("Queue is Empty: cannot Pop")
