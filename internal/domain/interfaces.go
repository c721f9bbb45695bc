package domain

// Summary is the result of one summarization pass.
type Summary struct {
	Bulleted     string
	KeySentences []string
}

// Span marks a byte range [Start, End) within the original text.
type Span struct {
	Start int
	End   int
}

// Summarizer extracts the key sentences of the provided text, driven by the
// topWords most frequent non-stopword terms.
type Summarizer interface {
	Summarize(text string, topWords int) (Summary, error)
}

// SummaryService defines the operations exposed by the application core.
type SummaryService interface {
	SummarizeText(text string) (Summary, error)
	SummarizeFiles(paths []string) (text string, summary Summary, err error)
}
