package build

// Container is an insertion ordered collection of items keyed by id.
// Adding an id that is already present replaces the item in place.
type Container[T any] struct {
	ids   []string
	items map[string]T
}

// NewContainer returns an empty container.
func NewContainer[T any]() *Container[T] {
	return &Container[T]{items: make(map[string]T)}
}

// Add registers item under id.
func (c *Container[T]) Add(id string, item T) {
	if _, ok := c.items[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.items[id] = item
}

// Has reports whether id is registered.
func (c *Container[T]) Has(id string) bool {
	_, ok := c.items[id]
	return ok
}

// Get returns the item registered under id.
func (c *Container[T]) Get(id string) (T, bool) {
	item, ok := c.items[id]
	return item, ok
}

// IDs returns the registered ids in insertion order.
func (c *Container[T]) IDs() []string {
	return append([]string(nil), c.ids...)
}

// Values returns the registered items in insertion order.
func (c *Container[T]) Values() []T {
	values := make([]T, 0, len(c.ids))
	for _, id := range c.ids {
		values = append(values, c.items[id])
	}
	return values
}

// Len returns the number of registered items.
func (c *Container[T]) Len() int {
	return len(c.ids)
}

// IsEmpty reports whether the container holds no item.
func (c *Container[T]) IsEmpty() bool {
	return len(c.ids) == 0
}
