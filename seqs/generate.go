package seqs

import "iter"

// Range yields start, start+step, ... up to but excluding end.
// A negative step counts down towards end. A zero step yields nothing.
// The sequence stops instead of wrapping when the next value would
// overflow T.
func Range[T Integer](start, end, step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; {
			if !yield(i) {
				return
			}
			next := i + step
			// wrapped around
			if step > 0 && next < i || step < 0 && next > i {
				return
			}
			i = next
		}
	}
}
