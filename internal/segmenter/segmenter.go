// Package segmenter splits raw text into an ordered sequence of sentences.
package segmenter

import (
	"unicode"
	"unicode/utf8"
)

// Split divides text into sentences. A boundary lies after a '.', '!' or '?'
// that is immediately followed by whitespace; the separating whitespace is
// consumed and belongs to neither sentence. A trailing fragment without a
// terminator is kept as the final sentence. Pieces are returned untrimmed;
// trimming happens at selection time.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		if !isTerminator(text[i]) {
			continue
		}
		// Runs like "?!" split after the last terminator.
		if i+1 < len(text) && isTerminator(text[i+1]) {
			continue
		}
		j := i + 1
		for j < len(text) {
			r, size := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(r) {
				break
			}
			j += size
		}
		if j == i+1 {
			// Terminator inside a word ("e.g" or "3.14"), not a boundary.
			continue
		}
		sentences = append(sentences, text[start:i+1])
		start = j
		i = j - 1
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}
