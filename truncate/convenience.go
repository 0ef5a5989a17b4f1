package truncate

import "github.com/randalmurphal/pagekit/tokens"

// ToTokenLimit truncates text to the backend's 4000-token limit using the
// default notice.
func ToTokenLimit(text string) Result {
	return New().Truncate(text)
}

// EstimateTokens returns the backend token estimate for text.
func EstimateTokens(text string) int {
	return tokens.Estimate(text)
}
