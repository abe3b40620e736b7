package densecs

import "reflect"

// Resources is a type-keyed store for singleton values that ride along with
// a World: configuration, lookup tables, anything the embedding program
// wants exactly one of. At most one resource per concrete type may be
// present at a time.
type Resources struct {
	items map[reflect.Type]any
}

// Add stores a resource, normally a pointer. It panics if res is nil or a
// resource of the same type is already present.
func (r *Resources) Add(res any) {
	if res == nil {
		panic("densecs: cannot add nil resource")
	}
	t := reflect.TypeOf(res)
	if r.items == nil {
		r.items = make(map[reflect.Type]any)
	}
	if _, ok := r.items[t]; ok {
		panic("densecs: resource of type " + t.String() + " already exists")
	}
	r.items[t] = res
}

// Clear removes all resources.
func (r *Resources) Clear() {
	clear(r.items)
}

// HasResource reports whether a *T resource is present.
func HasResource[T any](r *Resources) bool {
	_, ok := r.items[reflect.TypeOf((**T)(nil)).Elem()]
	return ok
}

// GetResource returns the stored *T resource, or nil if none is present.
func GetResource[T any](r *Resources) *T {
	if res, ok := r.items[reflect.TypeOf((**T)(nil)).Elem()]; ok {
		return res.(*T)
	}
	return nil
}

// RemoveResource removes the *T resource if present.
func RemoveResource[T any](r *Resources) {
	delete(r.items, reflect.TypeOf((**T)(nil)).Elem())
}
