package quiz

import (
	"fmt"
	"slices"

	"linqquiz/seqs"
	"linqquiz/sliceutil"
)

// Family is a group of persons sharing an identifier.
// The identifier is passed through as is and need not be unique.
type Family interface {
	ID() int
	Persons() []Person
}

type Person interface {
	Age() int
}

// FamilySummary is the statistic produced for a single Family.
type FamilySummary struct {
	FamilyID              int
	NumberOfFamilyMembers int
	// AverageAge is 0 for a family without persons.
	AverageAge float64
}

// GetFamilyStatistic returns one summary per family, in the order of families.
//
// A nil families slice fails with ErrArgumentNil. An empty one yields an
// empty result.
func GetFamilyStatistic(families []Family) ([]FamilySummary, error) {
	if families == nil {
		return nil, fmt.Errorf("%w: families", ErrArgumentNil)
	}
	return sliceutil.Map(families, summarize), nil
}

func summarize(f Family) FamilySummary {
	persons := f.Persons()
	// Average reports 0 for an empty family.
	avg, _ := seqs.Average(seqs.Map(slices.Values(persons), Person.Age))
	return FamilySummary{
		FamilyID:              f.ID(),
		NumberOfFamilyMembers: len(persons),
		AverageAge:            avg,
	}
}
