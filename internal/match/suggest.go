package match

// MinSimilarity is the lowest normalized similarity Closest accepts.
const MinSimilarity = 0.5

// Closest returns the candidate most similar to name after normalization.
// It reports false when no candidate reaches MinSimilarity. Ties go to the
// candidate listed first.
func Closest(name string, candidates []string) (string, bool) {
	var (
		best      string
		bestScore float64
		want      = Normalize(name)
	)

	for _, c := range candidates {
		score := Similarity(want, Normalize(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}
