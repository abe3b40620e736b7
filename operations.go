package densecs

import "reflect"

// Insert sets the component of type T for the entity, registering the type
// on first use.
//
// When T has never been seen before, a new column is registered with one
// default-valued slot per existing entity and val written at the entity's
// own row, so that earlier entities keep valid rows in the new column. When
// T is already registered, val overwrites whatever the row held.
//
// Parameters:
//   - w: The World the entity belongs to.
//   - e: The Entity to write the component for.
//   - val: The component value of type T.
//
// Returns:
//   - true if T was already registered, false if this call registered it.
//
// Insert panics if e does not belong to w.
func Insert[T any](w *World, e Entity, val T) bool {
	row := w.row(e)
	t := reflect.TypeOf((*T)(nil)).Elem()
	if slot, ok := w.typeToSlot[t]; ok {
		w.columns[slot].(*column[T]).items[row] = val
		return true
	}
	c := &column[T]{items: make([]T, len(w.refCounts))}
	c.items[row] = val
	w.typeToSlot[t] = len(w.columns)
	w.columns = append(w.columns, c)
	return false
}

// Query returns the full column of component type T, one element per
// entity, ordered by entity index, or (nil, false) if T was never
// registered. Absence is a defined result, not a fault.
//
// The returned slice aliases the world's storage and must be treated as
// read-only; use QueryMut to modify elements. The slice is only valid until
// the next entity creation, which may move the column.
func Query[T any](w *World) ([]T, bool) {
	slot, ok := w.typeToSlot[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	return w.columns[slot].(*column[T]).items, true
}

// QueryMut is Query with element-level mutation allowed through the
// returned view. Writes land directly in the world's storage.
func QueryMut[T any](w *World) ([]T, bool) {
	slot, ok := w.typeToSlot[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	return w.columns[slot].(*column[T]).items, true
}
