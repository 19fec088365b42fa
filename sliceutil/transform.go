package sliceutil

// Filter returns a new slice holding the elements of collection that satisfy predicate.
// The result is never nil.
func Filter[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return []T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	// Heuristic pre-allocation of capacity
	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return res
}

// Map transforms a slice of type T to a slice of type R.
// The result is never nil, and has the same length and order as collection.
func Map[T any, R any](collection []T, transform func(T) R) []R {
	if len(collection) == 0 {
		return []R{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	// Pre-allocate result slice
	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return res
}
