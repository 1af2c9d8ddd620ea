// Package registry holds the named containers of one interpreter run,
// one independent map per value kind.
package registry

import "github.com/mesh-intelligence/simplelist/pkg/types"

// Registry maps container names to containers of a single value type.
// Entries are never removed.
type Registry[T any] struct {
	byName map[string]types.Container[T]
	order  []string
}

// New returns an empty Registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{byName: make(map[string]types.Container[T])}
}

// Exists reports whether name is registered.
func (r *Registry[T]) Exists(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Find returns the container registered under name.
func (r *Registry[T]) Find(name string) (types.Container[T], bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Insert registers c under name. Callers check Exists first; a duplicate
// name is refused with types.ErrNameExists and the first entry is kept.
func (r *Registry[T]) Insert(name string, c types.Container[T]) error {
	if r.Exists(name) {
		return types.ErrNameExists
	}
	r.byName[name] = c
	r.order = append(r.order, name)
	return nil
}

// Names returns the registered names in creation order.
func (r *Registry[T]) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered containers.
func (r *Registry[T]) Len() int { return len(r.order) }

// Registries groups the three typed registries of a run.
type Registries struct {
	Integers *Registry[int64]
	Floats   *Registry[float64]
	Texts    *Registry[string]
}

// NewRegistries returns three empty registries.
func NewRegistries() *Registries {
	return &Registries{
		Integers: New[int64](),
		Floats:   New[float64](),
		Texts:    New[string](),
	}
}

// Len returns the total number of containers across all kinds.
func (r *Registries) Len() int {
	return r.Integers.Len() + r.Floats.Len() + r.Texts.Len()
}
