package clip

// levenshtein computes the edit distance between two strings. It backs
// the "did you mean" suggestion for mistyped aliases.
func levenshtein(str, tgt string) int {
	source, target := []rune(str), []rune(tgt)

	if len(source) == 0 {
		return len(target)
	}

	if len(target) == 0 {
		return len(source)
	}

	prev := make([]int, len(target)+1)
	cur := make([]int, len(target)+1)

	for j := range prev {
		prev[j] = j
	}

	for i, sc := range source {
		cur[0] = i + 1

		for j, tc := range target {
			cost := 1
			if sc == tc {
				cost = 0
			}

			cur[j+1] = min(prev[j]+cost, cur[j]+1, prev[j+1]+1)
		}

		prev, cur = cur, prev
	}

	return prev[len(target)]
}

// closestChoice returns the choice closest to the given string, along
// with its edit distance. An empty string is returned when there are no
// choices at all.
func closestChoice(str string, choices []string) (string, int) {
	if len(choices) == 0 {
		return "", 0
	}

	minChoice := -1
	minDist := -1

	for i, choice := range choices {
		dist := levenshtein(str, choice)

		if minChoice < 0 || dist < minDist {
			minDist = dist
			minChoice = i
		}
	}

	return choices[minChoice], minDist
}
