package seqs

import "iter"

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Number interface {
	Integer | ~float32 | ~float64
}

func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Average returns the arithmetic mean of seq as a float64.
// The second result is false if seq is empty.
func Average[T Number](seq iter.Seq[T]) (float64, bool) {
	var total float64
	n := 0
	for v := range seq {
		total += float64(v)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

// CheckedMul returns a*b and reports whether the product fits in T.
// On overflow the wrapped product is returned with false.
func CheckedMul[T Signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	// r/b == a misses exactly one case: minT * -1 wraps to minT.
	if r/b != a || b == -1 && a < 0 && r < 0 {
		return r, false
	}
	return r, true
}
