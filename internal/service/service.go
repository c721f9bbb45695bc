package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"summarize/internal/domain"
)

var _ domain.SummaryService = (*Service)(nil)

// Service wires the summarizer to the front ends and handles file input.
type Service struct {
	summarizer domain.Summarizer
	topWords   int
}

func New(summarizer domain.Summarizer, topWords int) *Service {
	return &Service{summarizer: summarizer, topWords: topWords}
}

// SummarizeText runs one summarization pass over raw text.
func (s *Service) SummarizeText(text string) (domain.Summary, error) {
	return s.summarizer.Summarize(text, s.topWords)
}

// SummarizeFiles loads the given paths and summarizes the combined text.
// The joined text is returned alongside the summary so the caller can
// locate the key sentences within it.
func (s *Service) SummarizeFiles(paths []string) (string, domain.Summary, error) {
	text, err := s.LoadFiles(paths)
	if err != nil {
		return "", domain.Summary{}, err
	}
	summary, err := s.summarizer.Summarize(text, s.topWords)
	return text, summary, err
}

// LoadFiles reads every .txt file matched by the given paths or globs and
// joins their contents with a newline, in argument order.
func (s *Service) LoadFiles(paths []string) (string, error) {
	var parts []string
	for _, p := range paths {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !strings.HasSuffix(strings.ToLower(m), ".txt") {
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return "", fmt.Errorf("read %s: %w", m, err)
			}
			parts = append(parts, string(data))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no .txt documents found")
	}
	return strings.Join(parts, "\n"), nil
}
