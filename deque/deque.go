// Package deque is a fixed-capacity double-ended queue backed by a ring array.
package deque

type Deque[T any] interface {
	// Size is the number of stored elements.
	Size() int

	// Get returns the i-th element counted from the head.
	Get(i int) T

	// Traverse visits the elements from head to tail.
	Traverse(f func(i int, item T))

	AddLast(item T) bool
	RemoveLast() (T, bool)
	AddFirst(item T) bool
	RemoveFirst() (T, bool)

	IsFull() bool
	IsEmpty() bool
}
