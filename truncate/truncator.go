package truncate

import (
	"log/slog"

	"github.com/randalmurphal/pagekit/tokens"
)

// MaxTokens is the backend's per-request token limit.
const MaxTokens = tokens.DefaultMaxTokens

// MinCandidateRunes is the length at which the shrink loop gives up.
const MinCandidateRunes = 100

// Result describes the outcome of a truncation.
// When WasTruncated is false, Content is the input and FinalTokens equals
// OriginalTokens.
type Result struct {
	Content        string `json:"content"`
	WasTruncated   bool   `json:"wasTruncated"`
	OriginalTokens int    `json:"originalTokens"`
	FinalTokens    int    `json:"finalTokens"`
	MaxTokens      int    `json:"maxTokens"`
}

// WithinLimit reports whether FinalTokens fits MaxTokens.
func (r Result) WithinLimit() bool {
	return r.FinalTokens <= r.MaxTokens
}

// Truncator truncates text to fit within a token limit.
type Truncator struct {
	counter   tokens.Counter
	notice    string
	maxTokens int
}

// New creates a truncator with the backend estimator, DefaultNotice and
// MaxTokens.
func New() *Truncator {
	return &Truncator{
		counter:   tokens.NewEstimatingCounter(),
		notice:    DefaultNotice,
		maxTokens: MaxTokens,
	}
}

// ForLanguage creates a default truncator whose notice is in lang.
func ForLanguage(lang string) *Truncator {
	return New().WithNotice(Notice(lang))
}

// WithCounter sets a custom token counter.
func (t *Truncator) WithCounter(counter tokens.Counter) *Truncator {
	t.counter = counter
	return t
}

// WithNotice sets the notice appended to truncated content.
func (t *Truncator) WithNotice(notice string) *Truncator {
	t.notice = notice
	return t
}

// WithMaxTokens sets the token limit. Values <= 0 are ignored.
func (t *Truncator) WithMaxTokens(maxTokens int) *Truncator {
	if maxTokens > 0 {
		t.maxTokens = maxTokens
	}
	return t
}

// Notice returns the truncator's notice.
func (t *Truncator) Notice() string {
	return t.notice
}

// MaxTokens returns the truncator's token limit.
func (t *Truncator) MaxTokens() int {
	return t.maxTokens
}

// Truncate reduces text to fit within the token limit.
func (t *Truncator) Truncate(text string) Result {
	if text == "" {
		return Result{MaxTokens: t.maxTokens}
	}

	originalTokens := t.counter.Count(text)
	if originalTokens <= t.maxTokens {
		return Result{
			Content:        text,
			OriginalTokens: originalTokens,
			FinalTokens:    originalTokens,
			MaxTokens:      t.maxTokens,
		}
	}

	runes := []rune(text)
	candidate := runes[:t.charBudget(len(runes))]
	candidate = t.shrink(candidate)
	candidate = snapToBoundary(candidate)

	content := string(candidate) + t.notice
	finalTokens := t.counter.Count(content)

	slog.Debug("truncated content to token limit",
		slog.Int("original_length", len(runes)),
		slog.Int("original_tokens", originalTokens),
		slog.Int("truncated_length", len(candidate)),
		slog.Int("final_length", len(candidate)+len([]rune(t.notice))),
		slog.Int("final_tokens", finalTokens),
		slog.Int("max_tokens", t.maxTokens),
		slog.Bool("within_limit", finalTokens <= t.maxTokens))

	return Result{
		Content:        content,
		WasTruncated:   true,
		OriginalTokens: originalTokens,
		FinalTokens:    finalTokens,
		MaxTokens:      t.maxTokens,
	}
}

// charBudget converts the tokens left after the notice into characters,
// clamped to [0, available].
func (t *Truncator) charBudget(available int) int {
	noticeTokens := t.counter.Count(t.notice)
	budget := (t.maxTokens - noticeTokens) * 9 / 2 // floor(tokens * 4.5)
	if budget < 0 {
		return 0
	}
	if budget > available {
		return available
	}
	return budget
}

// shrink drops 10% of the candidate at a time until it fits with the notice
// or reaches MinCandidateRunes.
func (t *Truncator) shrink(candidate []rune) []rune {
	for len(candidate) > MinCandidateRunes &&
		!t.counter.FitsInLimit(string(candidate)+t.notice, t.maxTokens) {
		candidate = candidate[:len(candidate)*9/10]
	}
	return candidate
}

// snapToBoundary cuts at the last space or newline when it falls in the final
// 20% of the candidate.
func snapToBoundary(candidate []rune) []rune {
	boundary := lastBoundary(candidate)
	if boundary*5 > len(candidate)*4 {
		return candidate[:boundary]
	}
	return candidate
}

func lastBoundary(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' || runes[i] == '\n' {
			return i
		}
	}
	return -1
}

