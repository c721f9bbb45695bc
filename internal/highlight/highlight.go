// Package highlight locates literal occurrences of selected sentences so the
// presentation layer can mark them in the original text.
package highlight

import (
	"sort"
	"strings"

	"summarize/internal/domain"
)

// Occurrences returns every non-overlapping occurrence of sentence within
// text, scanning left to right and resuming immediately after each match.
// A sentence that never occurs verbatim yields no spans.
func Occurrences(text, sentence string) []domain.Span {
	if sentence == "" {
		return nil
	}
	var spans []domain.Span
	offset := 0
	for {
		idx := strings.Index(text[offset:], sentence)
		if idx < 0 {
			return spans
		}
		start := offset + idx
		end := start + len(sentence)
		spans = append(spans, domain.Span{Start: start, End: end})
		offset = end
	}
}

// Merge sorts spans by start offset and joins overlapping or touching ranges,
// so a renderer can walk them in a single pass. The input is not modified.
func Merge(spans []domain.Span) []domain.Span {
	if len(spans) == 0 {
		return nil
	}
	sorted := make([]domain.Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start == sorted[j].Start {
			return sorted[i].End < sorted[j].End
		}
		return sorted[i].Start < sorted[j].Start
	})
	merged := sorted[:1]
	for _, sp := range sorted[1:] {
		last := &merged[len(merged)-1]
		if sp.Start <= last.End {
			if sp.End > last.End {
				last.End = sp.End
			}
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}
