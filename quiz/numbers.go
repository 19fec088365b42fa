package quiz

import (
	"fmt"

	"linqquiz/seqs"
	"linqquiz/sliceutil"
)

// GetEvenNumbers returns all even numbers n with 1 <= n < exclusiveUpperLimit
// in ascending order.
//
// It fails with ErrArgumentOutOfRange if exclusiveUpperLimit is lower than 1.
func GetEvenNumbers(exclusiveUpperLimit int32) ([]int32, error) {
	if exclusiveUpperLimit < 1 {
		return nil, fmt.Errorf("%w: exclusive upper limit %d is lower than 1", ErrArgumentOutOfRange, exclusiveUpperLimit)
	}
	return seqs.Collect(seqs.Range(2, exclusiveUpperLimit, 2)), nil
}

// GetSquares returns the squares of the numbers n with 1 <= n < exclusiveUpperLimit
// whose square is divisible by 7, ordered by descending n.
//
// The result is empty if exclusiveUpperLimit is lower than 2. Every candidate
// is squared, and the call fails with ErrArithmeticOverflow as soon as one
// square does not fit in an int32.
func GetSquares(exclusiveUpperLimit int32) ([]int32, error) {
	if exclusiveUpperLimit <= 1 {
		return []int32{}, nil
	}

	squares, err := seqs.TryCollect(seqs.TryMap(seqs.Range(exclusiveUpperLimit-1, 0, -1), square))
	if err != nil {
		return nil, err
	}
	return sliceutil.Filter(squares, func(sq int32) bool {
		return sq%7 == 0
	}), nil
}

func square(n int32) (int32, error) {
	sq, ok := seqs.CheckedMul(n, n)
	if !ok {
		return 0, fmt.Errorf("%w: %d * %d exceeds int32", ErrArithmeticOverflow, n, n)
	}
	return sq, nil
}
