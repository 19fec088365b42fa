package quiz_test

import (
	"fmt"
	"strings"

	"linqquiz/quiz"
)

func ExampleGetEvenNumbers() {
	evens, err := quiz.GetEvenNumbers(10)
	fmt.Println(evens, err)

	_, err = quiz.GetEvenNumbers(0)
	fmt.Println(err)

	// Output:
	// [2 4 6 8] <nil>
	// argument out of range: exclusive upper limit 0 is lower than 1
}

func ExampleGetSquares() {
	squares, err := quiz.GetSquares(22)
	fmt.Println(squares, err)

	// Output:
	// [441 196 49] <nil>
}

func ExampleGetFamilyStatistic() {
	records, err := quiz.DecodeFamilies(strings.NewReader(`
families:
  - id: 1
    persons: [{age: 10}, {age: 20}]
  - id: 2
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	summaries, _ := quiz.GetFamilyStatistic(quiz.AsFamilies(records))
	for _, s := range summaries {
		fmt.Printf("%d: %d members, average age %.1f\n", s.FamilyID, s.NumberOfFamilyMembers, s.AverageAge)
	}

	// Output:
	// 1: 2 members, average age 15.0
	// 2: 0 members, average age 0.0
}

func ExampleGetLetterStatistic() {
	for _, occ := range quiz.GetLetterStatistic("aAbb!! 123") {
		fmt.Printf("%c=%d\n", occ.Letter, occ.Count)
	}

	// Output:
	// A=2
	// B=2
}
