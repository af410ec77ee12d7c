package wordle

// Score evaluates guess against answer tile by tile.
//
// Exact matches are marked first. The remaining answer letters are then
// handed out left to right, so a repeated guess letter is marked present
// only while unmatched copies of it are left in the answer; later copies
// are absent.
func Score(answer, guess string) []Feedback {
	a := []rune(answer)
	g := []rune(guess)
	res := make([]Feedback, len(g))

	// Answer letters not consumed by exact matches.
	remaining := make(map[rune]int, len(a))
	for i := range a {
		if i < len(g) && g[i] == a[i] {
			res[i] = FeedbackCorrect
			continue
		}
		remaining[a[i]]++
	}

	for i, r := range g {
		if res[i] == FeedbackCorrect {
			continue
		}
		if remaining[r] > 0 {
			res[i] = FeedbackPresent
			remaining[r]--
		} else {
			res[i] = FeedbackAbsent
		}
	}
	return res
}
