package seqs

import "iter"

// Collect drains seq into a new slice. Unlike slices.Collect, an empty
// sequence produces an empty, non-nil slice.
func Collect[T any](seq iter.Seq[T]) []T {
	res := []T{}
	for v := range seq {
		res = append(res, v)
	}
	return res
}
