package types

// Container is a named sequence of values with a fixed access discipline.
// Stacks and queues both satisfy it; they differ only in how Push places
// a value relative to the front that Pop removes from.
type Container[T any] interface {
	// Push adds a value according to the container's discipline.
	Push(v T)

	// Pop removes and returns the front value. Callers must check IsEmpty
	// first; popping an empty container panics.
	Pop() T

	// IsEmpty reports whether the container holds no values.
	IsEmpty() bool

	// Len returns the number of values held.
	Len() int

	// Name returns the name the container was created under.
	Name() string

	// Discipline returns Stack or Queue.
	Discipline() Discipline

	// Values returns a copy of the held values, front first.
	Values() []T
}
