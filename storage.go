package densecs

// storage is the type-erased handle over one component column. Exactly one
// operation is needed polymorphically: growing the column when entities are
// created. Everything else goes through the typed *column[T] recovered by
// type assertion in operations.go.
type storage interface {
	grow(n int)
}

// column is the dense, entity-indexed sequence for one component type.
// Its length always equals the entity count of the owning World.
type column[T any] struct {
	items []T
}

func (c *column[T]) grow(n int) {
	c.items = growSlice(c.items, n)
}
