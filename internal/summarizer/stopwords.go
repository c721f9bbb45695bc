package summarizer

// defaultStopwords is the fixed baseline set of English function words
// excluded from frequency counting and sentence scoring.
func defaultStopwords() map[string]struct{} {
	words := []string{
		"the", "and", "is", "in", "at", "of", "a", "an", "to", "it",
		"for", "on", "with", "as", "by", "this", "that", "from", "i",
		"you", "he", "she", "they", "we", "but", "or", "if", "so", "are",
		"was", "were", "be", "been", "being", "am", "do", "does", "did",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
