package quiz

import "linqquiz/seqs"

// LetterOccurrence pairs an uppercase letter with the number of times it occurs.
type LetterOccurrence struct {
	Letter rune
	Count  int
}

// GetLetterStatistic counts the letters A to Z in text, ignoring case.
//
// Only ASCII letters are counted; digits, punctuation, whitespace and
// non-ASCII characters are skipped. The result is ordered from A to Z and
// contains only letters that occur at least once.
func GetLetterStatistic(text string) []LetterOccurrence {
	var counts ['Z' - 'A' + 1]int
	// Bytes of multi-byte UTF-8 sequences are all >= 0x80 and never match.
	for i := 0; i < len(text); i++ {
		c := text[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if 'A' <= c && c <= 'Z' {
			counts[c-'A']++
		}
	}

	present := seqs.Filter(seqs.Range[rune]('A', 'Z'+1, 1), func(r rune) bool {
		return counts[r-'A'] > 0
	})
	return seqs.Collect(seqs.Map(present, func(r rune) LetterOccurrence {
		return LetterOccurrence{Letter: r, Count: counts[r-'A']}
	}))
}
