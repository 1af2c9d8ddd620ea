package list

import "github.com/mesh-intelligence/simplelist/pkg/types"

// Stack is a LIFO container: Push inserts at the front.
type Stack[T any] struct {
	LinkedContainer[T]
}

// NewStack returns an empty stack.
func NewStack[T any](name string) *Stack[T] {
	return &Stack[T]{LinkedContainer: newLinkedContainer[T](name)}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) { s.InsertFront(v) }

// Pop removes and returns the top of the stack.
func (s *Stack[T]) Pop() T { return s.RemoveFront() }

// Discipline returns types.Stack.
func (s *Stack[T]) Discipline() types.Discipline { return types.Stack }

// Queue is a FIFO container: Push inserts at the back.
type Queue[T any] struct {
	LinkedContainer[T]
}

// NewQueue returns an empty queue.
func NewQueue[T any](name string) *Queue[T] {
	return &Queue[T]{LinkedContainer: newLinkedContainer[T](name)}
}

// Push appends v to the back of the queue.
func (q *Queue[T]) Push(v T) { q.InsertBack(v) }

// Pop removes and returns the front of the queue.
func (q *Queue[T]) Pop() T { return q.RemoveFront() }

// Discipline returns types.Queue.
func (q *Queue[T]) Discipline() types.Discipline { return types.Queue }

// New builds an empty container of the given discipline.
// Any discipline other than types.Stack yields a queue.
func New[T any](name string, d types.Discipline) types.Container[T] {
	if d == types.Stack {
		return NewStack[T](name)
	}
	return NewQueue[T](name)
}

var (
	_ types.Container[int64]   = (*Stack[int64])(nil)
	_ types.Container[float64] = (*Queue[float64])(nil)
	_ types.Container[string]  = (*Stack[string])(nil)
)
