// Package densecs implements a dense entity-component data store for Go.
//
// Features:
// - Densely packed parallel columns, one per component type, indexed by entity.
// - Per-world component registry, no global state.
// - Typed column views recovered from type-erased storage via generics.
// - Default backfill when a component type is first registered.
// - Manual 8-bit reference count per entity, advisory only.
//
// The store is built for the dense case: a small number of component types,
// each present (or backfillable) for every entity. For sparse data, keep a
// separate map keyed by Entity instead of registering a column.
//
// A World is a single unit of mutable state with no internal locking. It
// assumes one live writer at a time; guard it externally if it is ever
// shared across goroutines.
package densecs

import (
	"fmt"
	"math"
	"reflect"
)

// identifierSpace is the number of distinct 32-bit entity identifiers.
const identifierSpace = 1 << 32

// World owns the reference-count sequence and one dense column per
// registered component type. All columns share the entity index space:
// row i of every column belongs to the entity whose Index() is i.
type World struct {
	resources  Resources
	typeToSlot map[reflect.Type]int
	columns    []storage
	refCounts  []uint8
}

// NewWorld creates an empty store with no entities and no registered
// component types.
func NewWorld() *World {
	return &World{
		typeToSlot: make(map[reflect.Type]int, 16),
	}
}

// CreateEntity adds one entity to the world and returns its handle.
//
// The new entity's index equals the entity count before the call. Every
// registered component column grows by one default-valued slot so that all
// columns stay aligned with the entity count, and the entity's reference
// count starts at 1.
//
// It panics if the 32-bit identifier space is exhausted.
func (w *World) CreateEntity() Entity {
	id := len(w.refCounts)
	if uint64(id) >= identifierSpace {
		panic("densecs: entity identifier space exhausted")
	}
	w.refCounts = append(w.refCounts, 1)
	for _, c := range w.columns {
		c.grow(1)
	}
	return Entity{id: uint32(id)}
}

// CreateEntities adds n entities and returns their handles in creation
// order. It is equivalent to n CreateEntity calls but grows each column
// once.
func (w *World) CreateEntities(n int) []Entity {
	if n <= 0 {
		return nil
	}
	first := len(w.refCounts)
	if uint64(first)+uint64(n) > identifierSpace {
		panic("densecs: entity identifier space exhausted")
	}
	w.refCounts = growSlice(w.refCounts, n)
	for i := first; i < first+n; i++ {
		w.refCounts[i] = 1
	}
	for _, c := range w.columns {
		c.grow(n)
	}
	ents := make([]Entity, n)
	for i := range ents {
		ents[i] = Entity{id: uint32(first + i)}
	}
	return ents
}

// Len returns the number of entities created so far.
func (w *World) Len() int {
	return len(w.refCounts)
}

// Retain increments the entity's reference count by one.
//
// The count is advisory bookkeeping for the embedding program; the world
// never acts on it. Retain panics if the count would exceed 255, since a
// wrapped count silently corrupts its meaning.
func (w *World) Retain(e Entity) {
	row := w.row(e)
	if w.refCounts[row] == math.MaxUint8 {
		panic(fmt.Sprintf("densecs: reference count overflow for entity %d", e.id))
	}
	w.refCounts[row]++
}

// Release decrements the entity's reference count by one. It panics if the
// count is already zero, since wrapping to 255 would mask use-after-release
// bugs.
func (w *World) Release(e Entity) {
	row := w.row(e)
	if w.refCounts[row] == 0 {
		panic(fmt.Sprintf("densecs: reference count underflow for entity %d", e.id))
	}
	w.refCounts[row]--
}

// RefCount returns the entity's current reference count.
func (w *World) RefCount(e Entity) uint8 {
	return w.refCounts[w.row(e)]
}

// Resources returns the world's resource bag, a type-keyed store for
// singleton values the embedding program wants to carry alongside the
// entity data.
func (w *World) Resources() *Resources {
	return &w.resources
}

// row bounds-checks an entity against this world. A handle the world never
// created is a programmer error, not an expected condition.
func (w *World) row(e Entity) int {
	idx := e.Index()
	if idx >= len(w.refCounts) {
		panic(fmt.Sprintf("densecs: entity %d out of range (%d entities)", e.id, len(w.refCounts)))
	}
	return idx
}
