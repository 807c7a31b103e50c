package summarizer

import (
	"strings"
)

// DefaultWordLimit is the number of tokens kept in a summary unless
// configured otherwise.
const DefaultWordLimit = 10

// Summarizer extracts the leading words of a text.
type Summarizer struct {
	wordLimit int
}

// New creates a summarizer that keeps at most wordLimit tokens.
// Non-positive limits fall back to DefaultWordLimit; configuration
// validation rejects them before this point in normal operation.
func New(wordLimit int) *Summarizer {
	if wordLimit <= 0 {
		wordLimit = DefaultWordLimit
	}
	return &Summarizer{wordLimit: wordLimit}
}

// Summarize splits text on runs of whitespace, keeps the first
// wordLimit tokens in original order, and rejoins them with single
// spaces. Empty or whitespace-only input returns a *ValidationError.
func (s *Summarizer) Summarize(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &ValidationError{Message: "text cannot be empty or only whitespace"}
	}

	words := strings.Fields(text)
	if len(words) > s.wordLimit {
		words = words[:s.wordLimit]
	}

	return strings.Join(words, " "), nil
}

// WordLimit returns the configured token limit.
func (s *Summarizer) WordLimit() int {
	return s.wordLimit
}

// ValidationError represents invalid summarization input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
