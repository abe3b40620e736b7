package densecs

// growSlice extends a slice by n zero-valued elements, doubling the capacity
// when a reallocation is needed.
func growSlice[T any](s []T, n int) []T {
	newLen := len(s) + n
	if cap(s) >= newLen {
		return s[:newLen]
	}
	newCap := max(2*cap(s), newLen)
	ns := make([]T, newLen, newCap)
	copy(ns, s)
	return ns
}
