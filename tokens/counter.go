package tokens

import (
	"math"
	"unicode/utf8"
)

// DefaultCharsPerToken is the backend's character-to-token ratio.
const DefaultCharsPerToken = 4.5

// Counter estimates token counts for text.
type Counter interface {
	// Count estimates the number of tokens in the given text.
	Count(text string) int

	// FitsInLimit returns true if the text fits within the token limit.
	FitsInLimit(text string, limit int) bool
}

// EstimatingCounter uses a character-to-token ratio for estimation.
// Counts are always rounded up so a text is never under-charged.
type EstimatingCounter struct {
	// CharsPerToken is the average characters per token.
	CharsPerToken float64
}

// NewEstimatingCounter creates a token counter with the backend ratio.
func NewEstimatingCounter() *EstimatingCounter {
	return &EstimatingCounter{
		CharsPerToken: DefaultCharsPerToken,
	}
}

// NewEstimatingCounterWithRatio creates a token counter with a custom ratio.
// If charsPerToken is <= 0, the default ratio (4.5) is used.
func NewEstimatingCounterWithRatio(charsPerToken float64) *EstimatingCounter {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &EstimatingCounter{
		CharsPerToken: charsPerToken,
	}
}

// Count returns ceil(runes / CharsPerToken), or 0 for an empty string.
// Length is counted in code points, not UTF-16 units: a character outside the
// BMP, such as most emoji, counts as 1 here where a browser's String.length
// counts 2, so the estimate can run below a UTF-16 based one for such text.
func (c *EstimatingCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return CountRunes(utf8.RuneCountInString(text), c.CharsPerToken)
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *EstimatingCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// CountRunes converts a rune count to tokens at the given ratio.
// A ratio <= 0 means DefaultCharsPerToken.
// The float division is the same IEEE-754 operation the backend performs,
// so the ceiling agrees with it for every length.
func CountRunes(runes int, charsPerToken float64) int {
	if runes <= 0 {
		return 0
	}
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return int(math.Ceil(float64(runes) / charsPerToken))
}

var backend = NewEstimatingCounter()

// Estimate returns the backend token estimate for text.
func Estimate(text string) int {
	return backend.Count(text)
}
