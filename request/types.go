package request

import (
	"github.com/google/uuid"

	"github.com/randalmurphal/pagekit/markdown"
)

// Action is a quick action understood by the backend.
type Action string

// Backend actions.
const (
	ActionSummarize   Action = "resumir"
	ActionSimplify    Action = "simplificar"
	ActionExtractData Action = "extrair_dados"
	ActionRewrite     Action = "reescrever"
	ActionQuestion    Action = "pergunta"
)

// Actions lists every valid action in panel order.
var Actions = []Action{
	ActionSummarize, ActionSimplify, ActionExtractData, ActionRewrite, ActionQuestion,
}

var actionLabels = map[Action]string{
	ActionSummarize:   "Resumir",
	ActionSimplify:    "Simplificar",
	ActionExtractData: "Extrair dados",
	ActionRewrite:     "Reescrever",
	ActionQuestion:    "Pergunta",
}

// Label returns the button label for an action, or the raw action if unknown.
func (a Action) Label() string {
	if l, ok := actionLabels[a]; ok {
		return l
	}
	return string(a)
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	_, ok := actionLabels[a]
	return ok
}

// Language is an answer language.
type Language string

// Supported languages.
const (
	LangPTBR Language = "pt-BR"
	LangPTPT Language = "pt-PT"
	LangEN   Language = "en"
	LangES   Language = "es"
)

// DefaultLanguage is used when no preference has been stored.
const DefaultLanguage = LangPTBR

// Languages lists every supported language.
var Languages = []Language{LangPTBR, LangPTPT, LangEN, LangES}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	for _, v := range Languages {
		if l == v {
			return true
		}
	}
	return false
}

// ParseLanguage validates s as a Language.
func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if !l.Valid() {
		return "", &ValidationError{Field: "language", Value: s, Err: ErrUnsupportedLanguage}
	}
	return l, nil
}

// Request is the body of an /ask call.
type Request struct {
	// ID correlates the request with its log lines. It is not sent.
	ID uuid.UUID `json:"-"`

	Action   Action   `json:"action"`
	Content  string   `json:"content"`
	Language Language `json:"language"`
	Question string   `json:"question,omitempty"`
}

// Response is the body the backend answers with.
type Response struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// Failed reports whether the backend or transport reported an error.
func (r Response) Failed() bool {
	return r.Error != ""
}

// Elements structures the answer for rendering.
func (r Response) Elements() []markdown.Element {
	return markdown.Parse(r.Response)
}

var fallbackMessages = map[Language]string{
	LangPTBR: "Ocorreu um erro ao processar sua solicitação.",
	LangPTPT: "Ocorreu um erro ao processar o seu pedido.",
	LangEN:   "An error occurred while processing your request.",
	LangES:   "Ocurrió un error al procesar su solicitud.",
}

// FallbackResponse builds the response shown when a call fails before the
// backend answers.
func FallbackResponse(lang Language, err error) Response {
	msg, ok := fallbackMessages[lang]
	if !ok {
		msg = fallbackMessages[DefaultLanguage]
	}
	r := Response{Response: msg, Error: "Unknown error"}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
