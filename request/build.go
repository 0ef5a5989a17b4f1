package request

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/randalmurphal/pagekit/truncate"
)

// Builder assembles requests with a configurable token limit.
type Builder struct {
	maxTokens int
}

// NewBuilder creates a builder for the backend's default limit.
func NewBuilder() *Builder {
	return &Builder{maxTokens: truncate.MaxTokens}
}

// WithMaxTokens sets the token limit. Values <= 0 are ignored.
func (b *Builder) WithMaxTokens(maxTokens int) *Builder {
	if maxTokens > 0 {
		b.maxTokens = maxTokens
	}
	return b
}

// Build validates the inputs and bounds content to the token limit.
// The truncation notice is written in lang.
func (b *Builder) Build(action Action, content string, lang Language, question string) (Request, truncate.Result, error) {
	if !action.Valid() {
		return Request{}, truncate.Result{}, &ValidationError{Field: "action", Value: string(action), Err: ErrUnknownAction}
	}
	if !lang.Valid() {
		return Request{}, truncate.Result{}, &ValidationError{Field: "language", Value: string(lang), Err: ErrUnsupportedLanguage}
	}
	if strings.TrimSpace(content) == "" {
		return Request{}, truncate.Result{}, &ValidationError{Field: "content", Err: ErrEmptyContent}
	}

	question = strings.TrimSpace(question)
	if action == ActionQuestion && question == "" {
		return Request{}, truncate.Result{}, &ValidationError{Field: "question", Err: ErrMissingQuestion}
	}
	if action != ActionQuestion {
		question = ""
	}

	res := truncate.ForLanguage(string(lang)).WithMaxTokens(b.maxTokens).Truncate(content)

	req := Request{
		ID:       uuid.New(),
		Action:   action,
		Content:  res.Content,
		Language: lang,
		Question: question,
	}

	if res.WasTruncated {
		slog.Info("page content truncated for request",
			slog.String("request_id", req.ID.String()),
			slog.String("action", string(action)),
			slog.Int("original_tokens", res.OriginalTokens),
			slog.Int("final_tokens", res.FinalTokens))
	}

	return req, res, nil
}

// Build assembles a request with the default builder.
func Build(action Action, content string, lang Language, question string) (Request, truncate.Result, error) {
	return NewBuilder().Build(action, content, lang, question)
}
