// Package densecs provides a dense entity-component data store.
package densecs

import "math"

// Entity is an opaque handle identifying one row across every component
// sequence of the World that created it. Entities are comparable with ==,
// usable as map keys, and ordered by creation via Less or Compare.
//
// The only way to obtain an Entity is World.CreateEntity or
// World.CreateEntities.
type Entity struct {
	id uint32
}

// Index converts the entity to its row index. It panics if the identifier
// does not fit the platform int type, which is only reachable on 32-bit
// targets.
func (e Entity) Index() int {
	if uint64(e.id) > uint64(math.MaxInt) {
		panic("densecs: entity identifier overflows platform index type")
	}
	return int(e.id)
}

// Less reports whether e was created before other.
func (e Entity) Less(other Entity) bool {
	return e.id < other.id
}

// Compare returns -1, 0 or 1 ordering e against other by creation order.
func (e Entity) Compare(other Entity) int {
	switch {
	case e.id < other.id:
		return -1
	case e.id > other.id:
		return 1
	default:
		return 0
	}
}
