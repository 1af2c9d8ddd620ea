// Package list provides the singly linked container that backs every
// stack and queue, and the two disciplines built on it.
package list

import "fmt"

type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedContainer is a named singly linked chain with head and tail
// references. It supports insertion at either end and removal from the
// front, all in constant time.
type LinkedContainer[T any] struct {
	name  string
	head  *node[T]
	tail  *node[T]
	count int
}

func newLinkedContainer[T any](name string) LinkedContainer[T] {
	return LinkedContainer[T]{name: name}
}

// InsertFront adds v as the new front.
func (l *LinkedContainer[T]) InsertFront(v T) {
	n := &node[T]{value: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.count++
}

// InsertBack adds v after the current tail.
func (l *LinkedContainer[T]) InsertBack(v T) {
	n := &node[T]{value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.count++
}

// RemoveFront unlinks the front node and returns its value.
// It panics if the container is empty.
func (l *LinkedContainer[T]) RemoveFront() T {
	if l.head == nil {
		panic(fmt.Sprintf("list: RemoveFront on empty container %q", l.name))
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	n.next = nil
	l.count--
	return n.value
}

// IsEmpty reports whether the container holds no values.
func (l *LinkedContainer[T]) IsEmpty() bool { return l.count == 0 }

// Len returns the number of values held.
func (l *LinkedContainer[T]) Len() int { return l.count }

// Name returns the container's name.
func (l *LinkedContainer[T]) Name() string { return l.name }

// Values returns the held values front first.
func (l *LinkedContainer[T]) Values() []T {
	out := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
