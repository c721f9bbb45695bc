// Package summarizer implements frequency-based key sentence extraction.
package summarizer

import (
	"sort"
	"strings"

	"summarize/internal/domain"
	"summarize/internal/segmenter"
	"summarize/internal/textproc"
)

// FrequencySummarizer picks, for each of the most frequent terms of the text,
// the highest-scoring sentence mentioning that term.
type FrequencySummarizer struct {
	stopwords map[string]struct{}
}

// NewFrequencySummarizer creates a summarizer with the baseline English
// stopword set.
func NewFrequencySummarizer() *FrequencySummarizer {
	return &FrequencySummarizer{stopwords: defaultStopwords()}
}

// Summarize runs the full pipeline: segmentation, frequency counting over the
// normalized text, top-term selection, and per-term best-sentence selection.
// Empty text and topWords <= 0 yield an empty summary, not an error.
func (s *FrequencySummarizer) Summarize(text string, topWords int) (domain.Summary, error) {
	if text == "" {
		return domain.Summary{}, nil
	}
	sentences := segmenter.Split(text)
	freq := countFrequencies(textproc.Tokenize(textproc.Normalize(text)), s.stopwords)
	top := topTerms(freq, topWords)
	selected := s.selectKeySentences(sentences, top, freq)
	return domain.Summary{
		Bulleted:     formatBullets(selected),
		KeySentences: selected,
	}, nil
}

// countFrequencies tallies every token that is not a stopword. Tokens are
// already lowercase here; absent tokens read back as 0.
func countFrequencies(tokens []string, stopwords map[string]struct{}) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		if _, isStop := stopwords[tok]; isStop {
			continue
		}
		freq[tok]++
	}
	return freq
}

// topTerms returns the min(k, len(freq)) highest-count terms. Equal counts
// are ordered lexicographically ascending so selection is deterministic.
func topTerms(freq map[string]int, k int) []string {
	if k <= 0 || len(freq) == 0 {
		return nil
	}
	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] == freq[terms[j]] {
			return terms[i] < terms[j]
		}
		return freq[terms[i]] > freq[terms[j]]
	})
	if k > len(terms) {
		k = len(terms)
	}
	return terms[:k]
}

// selectKeySentences picks, for each top term in order, the sentence with the
// strictly highest score among sentences whose normalized form contains the
// term as a substring. Substring containment is deliberate: a term matching
// inside a longer word still counts. The first-scanned sentence wins score
// ties, and a sentence already selected keeps its first-insertion position.
func (s *FrequencySummarizer) selectKeySentences(sentences, top []string, freq map[string]int) []string {
	// Per-sentence scores do not depend on the term, so compute them once.
	normalized := make([]string, len(sentences))
	scores := make([]int, len(sentences))
	for i, sent := range sentences {
		normalized[i] = textproc.Normalize(sent)
		for _, tok := range textproc.Tokenize(normalized[i]) {
			if _, isStop := s.stopwords[tok]; isStop {
				continue
			}
			scores[i] += freq[tok]
		}
	}
	seen := make(map[string]struct{})
	var selected []string
	for _, term := range top {
		bestScore := 0
		var best string
		found := false
		for i := range sentences {
			if !strings.Contains(normalized[i], term) {
				continue
			}
			if scores[i] > bestScore {
				bestScore = scores[i]
				best = strings.TrimSpace(sentences[i])
				found = true
			}
		}
		if !found {
			continue
		}
		if _, dup := seen[best]; dup {
			continue
		}
		seen[best] = struct{}{}
		selected = append(selected, best)
	}
	return selected
}

// formatBullets joins the selected sentences into a bulleted list with no
// trailing newline. An empty selection yields an empty string.
func formatBullets(sentences []string) string {
	if len(sentences) == 0 {
		return ""
	}
	var b strings.Builder
	for _, sent := range sentences {
		b.WriteString("• ")
		b.WriteString(sent)
		b.WriteByte('\n')
	}
	return strings.TrimSpace(b.String())
}
