// Package registry deduplicates named entities within a single import batch.
//
// A Registry maps an entity name to the one instance created for it, so every
// record in the batch that mentions the same name ends up pointing at the same
// object. Registries are created per import call and never shared.
package registry

// Registry is a name-keyed set of entities built on demand.
type Registry[T any] struct {
	items map[string]*T
	order []string
	build func(name string) *T
}

// New creates an empty registry that uses build to construct missing entries.
func New[T any](build func(name string) *T) *Registry[T] {
	return &Registry[T]{
		items: make(map[string]*T),
		build: build,
	}
}

// Resolve returns the entity registered under name, creating it first if needed.
// Names are matched exactly (case-sensitive).
func (r *Registry[T]) Resolve(name string) *T {
	if item, ok := r.items[name]; ok {
		return item
	}

	item := r.build(name)
	r.items[name] = item
	r.order = append(r.order, name)
	return item
}

// Len returns the number of distinct entities created so far.
func (r *Registry[T]) Len() int {
	return len(r.items)
}

// Values returns the entities in first-seen order.
func (r *Registry[T]) Values() []*T {
	values := make([]*T, 0, len(r.order))
	for _, name := range r.order {
		values = append(values, r.items[name])
	}
	return values
}
