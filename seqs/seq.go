package seqs

import "iter"

// Filter applies predicate to each element of seq, yielding only those that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Map applies transform to each element of seq, yielding the transformed elements.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// TryMap applies transform to each element of seq, yielding the transformed elements.
// The transform function can return an error.
// The resulting sequence yields pairs of (transformed element, error).
// If transform returns an error:
//   - The error is yielded to the consumer along with the result of transform.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryMap[T, R any](seq iter.Seq[T], transform func(T) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for v := range seq {
			res, err := transform(v)
			if !yield(res, err) {
				return
			}
		}
	}
}

// TryCollect drains seq into a new slice, stopping at the first error.
// No partial result is returned with the error.
func TryCollect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	res := []T{}
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}
