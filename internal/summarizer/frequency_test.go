package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmptyInput(t *testing.T) {
	s := NewFrequencySummarizer()
	summary, err := s.Summarize("", 15)
	require.NoError(t, err)
	assert.Empty(t, summary.KeySentences)
	assert.Equal(t, "", summary.Bulleted)
}

func TestSummarizeZeroTopWords(t *testing.T) {
	s := NewFrequencySummarizer()
	for _, k := range []int{0, -3} {
		summary, err := s.Summarize("Dogs run fast. Cats sleep.", k)
		require.NoError(t, err)
		assert.Empty(t, summary.KeySentences)
		assert.Equal(t, "", summary.Bulleted)
	}
}

func TestSummarizeSelectsBestSentencePerTopWord(t *testing.T) {
	s := NewFrequencySummarizer()
	text := "Dogs run fast. Dogs bark loudly. Cats sleep all day."
	summary, err := s.Summarize(text, 2)
	require.NoError(t, err)
	// Top terms: dogs(2), then "all" (lexicographically first among the
	// count-1 terms). Both dog sentences score 4; the first scanned wins.
	assert.Equal(t, []string{"Dogs run fast.", "Cats sleep all day."}, summary.KeySentences)
	assert.Equal(t, "• Dogs run fast.\n• Cats sleep all day.", summary.Bulleted)
}

func TestSummarizeSubstringMatching(t *testing.T) {
	s := NewFrequencySummarizer()
	// "cat" is the top term but the highest-scoring sentence containing it
	// only does so inside "scatter". Substring matching selects it anyway.
	text := "A cat. A cat. A cat. Scatter scatter everywhere everywhere."
	summary, err := s.Summarize(text, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Scatter scatter everywhere everywhere."}, summary.KeySentences)
}

func TestSummarizeDeduplicatesSentences(t *testing.T) {
	s := NewFrequencySummarizer()
	// bark, meow and woof all tie at count 2; every sentence scores 4, so the
	// first sentence wins for both of the first two top terms and is kept once.
	summary, err := s.Summarize("Bark meow. Meow woof? Woof bark!", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bark meow."}, summary.KeySentences)
}

func TestSummarizeOrderFollowsTopTerms(t *testing.T) {
	s := NewFrequencySummarizer()
	// The top term "dogs" selects the second sentence, the next term "cats"
	// the first. Output keeps selection order, not position in the text.
	summary, err := s.Summarize("Cats sleep. Dogs run dogs.", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dogs run dogs.", "Cats sleep."}, summary.KeySentences)
}

func TestSummarizeBounds(t *testing.T) {
	s := NewFrequencySummarizer()
	text := "Dogs run fast. Dogs bark loudly. Cats sleep all day."
	summary, err := s.Summarize(text, 100)
	require.NoError(t, err)
	// Never more selections than sentences, regardless of how many top words
	// were requested.
	assert.LessOrEqual(t, len(summary.KeySentences), 3)
}

func TestSummarizeIdempotent(t *testing.T) {
	s := NewFrequencySummarizer()
	text := "Dogs run fast. Dogs bark loudly. Cats sleep all day."
	first, err := s.Summarize(text, 5)
	require.NoError(t, err)
	second, err := s.Summarize(text, 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSummarizeTrimsSelectedSentences(t *testing.T) {
	s := NewFrequencySummarizer()
	summary, err := s.Summarize("  Dogs run fast.   Dogs bark.  ", 1)
	require.NoError(t, err)
	require.NotEmpty(t, summary.KeySentences)
	assert.Equal(t, "Dogs run fast.", summary.KeySentences[0])
}

func TestTopTerms(t *testing.T) {
	freq := map[string]int{"b": 2, "a": 2, "c": 1}
	// Ties break lexicographically ascending.
	assert.Equal(t, []string{"a", "b"}, topTerms(freq, 2))
	assert.Equal(t, []string{"a", "b", "c"}, topTerms(freq, 10))
	assert.Nil(t, topTerms(freq, 0))
	assert.Nil(t, topTerms(nil, 3))
}

func TestCountFrequencies(t *testing.T) {
	stop := defaultStopwords()
	freq := countFrequencies([]string{"the", "dogs", "run", "dogs"}, stop)
	assert.Equal(t, map[string]int{"dogs": 2, "run": 1}, freq)
	assert.Zero(t, freq["the"])
}

func TestFormatBullets(t *testing.T) {
	assert.Equal(t, "", formatBullets(nil))
	assert.Equal(t,
		"• Dogs run fast.\n• Cats sleep all day.",
		formatBullets([]string{"Dogs run fast.", "Cats sleep all day."}))
}
