package tokens

import "fmt"

// DefaultMaxTokens is the backend's per-request token limit.
const DefaultMaxTokens = 4000

// NearLimitPercent is the usage percentage above which a text is flagged
// as close to the limit.
const NearLimitPercent = 80

// Status classifies how much of a budget a text consumes.
type Status int

const (
	// StatusOK means usage is at or below NearLimitPercent.
	StatusOK Status = iota

	// StatusNear means usage is above NearLimitPercent but within the limit.
	StatusNear

	// StatusOver means usage exceeds the limit and the text will be truncated.
	StatusOver
)

// Icon returns the indicator shown next to a usage line.
func (s Status) Icon() string {
	switch s {
	case StatusOver:
		return "⚠️"
	case StatusNear:
		return "⚡"
	default:
		return "✅"
	}
}

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOver:
		return "over"
	case StatusNear:
		return "near"
	default:
		return "ok"
	}
}

// Usage describes the share of a budget consumed by a text.
type Usage struct {
	Tokens  int     `json:"tokens"`
	Max     int     `json:"max"`
	Percent float64 `json:"percent"`
	Status  Status  `json:"status"`
}

// String renders the usage as "<icon> <tokens>/<max> tokens (<pct>%)".
func (u Usage) String() string {
	return fmt.Sprintf("%s %d/%d tokens (%.1f%%)", u.Status.Icon(), u.Tokens, u.Max, u.Percent)
}

// Budget measures texts against a fixed token limit.
// The zero value measures with the backend estimator against DefaultMaxTokens.
type Budget struct {
	// Max is the token limit. Values <= 0 mean DefaultMaxTokens.
	Max int

	counter Counter
}

// NewBudget creates a budget with the given limit and the backend estimator.
// If limit is <= 0, DefaultMaxTokens is used.
func NewBudget(limit int) *Budget {
	if limit <= 0 {
		limit = DefaultMaxTokens
	}
	return &Budget{
		Max:     limit,
		counter: NewEstimatingCounter(),
	}
}

// DefaultBudget creates a budget for the backend's 4000-token limit.
func DefaultBudget() *Budget {
	return NewBudget(DefaultMaxTokens)
}

// WithCounter sets a custom token counter.
func (b *Budget) WithCounter(counter Counter) *Budget {
	b.counter = counter
	return b
}

func (b *Budget) limit() int {
	if b.Max <= 0 {
		return DefaultMaxTokens
	}
	return b.Max
}

func (b *Budget) counterOrDefault() Counter {
	if b.counter == nil {
		return backend
	}
	return b.counter
}

// Measure estimates the tokens in text and reports its usage.
func (b *Budget) Measure(text string) Usage {
	return b.Usage(b.counterOrDefault().Count(text))
}

// Usage reports the usage of an already-counted number of tokens.
func (b *Budget) Usage(tokens int) Usage {
	limit := b.limit()
	percent := float64(tokens) / float64(limit) * 100

	status := StatusOK
	switch {
	case percent > 100:
		status = StatusOver
	case percent > NearLimitPercent:
		status = StatusNear
	}

	return Usage{
		Tokens:  tokens,
		Max:     limit,
		Percent: percent,
		Status:  status,
	}
}

// Fits returns true if the text fits within the budget.
func (b *Budget) Fits(text string) bool {
	return b.counterOrDefault().FitsInLimit(text, b.limit())
}

// Remaining returns the tokens left after used, clamped at zero.
func (b *Budget) Remaining(used int) int {
	remaining := b.limit() - used
	if remaining < 0 {
		return 0
	}
	return remaining
}
