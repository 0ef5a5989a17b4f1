package markdown

import "github.com/invopop/jsonschema"

// Kind identifies what an Element renders as.
type Kind string

// Element kinds.
const (
	KindText        Kind = "text"
	KindBold        Kind = "bold"
	KindItalic      Kind = "italic"
	KindCode        Kind = "code"
	KindCodeBlock   Kind = "codeblock"
	KindHeading     Kind = "heading"
	KindList        Kind = "list"
	KindOrderedList Kind = "orderedlist"
	KindLink        Kind = "link"
	KindLineBreak   Kind = "linebreak"
	KindParagraph   Kind = "paragraph"
)

// Kinds lists every element kind.
var Kinds = []Kind{
	KindText, KindBold, KindItalic, KindCode, KindCodeBlock, KindHeading,
	KindList, KindOrderedList, KindLink, KindLineBreak, KindParagraph,
}

// IsInline reports whether k is produced by the inline pass.
func (k Kind) IsInline() bool {
	switch k {
	case KindText, KindBold, KindItalic, KindCode, KindLink:
		return true
	}
	return false
}

// JSONSchema restricts Kind to its known values.
func (Kind) JSONSchema() *jsonschema.Schema {
	enum := make([]any, len(Kinds))
	for i, k := range Kinds {
		enum[i] = string(k)
	}
	return &jsonschema.Schema{
		Type: "string",
		Enum: enum,
	}
}

// Element is one render instruction. Only the fields relevant to Kind are set.
type Element struct {
	// Kind selects the visual primitive.
	Kind Kind `json:"type" yaml:"type"`

	// Content is the element's text. Paragraph and linebreak markers carry none.
	Content string `json:"content" yaml:"content"`

	// Level is the heading level, 1 to 6.
	Level int `json:"level,omitempty" yaml:"level,omitempty" jsonschema:"minimum=1,maximum=6"`

	// Language is the code block's declared language, "text" when none was given.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// URL is the link target.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Number is the ordered list item's number as written.
	Number int `json:"number,omitempty" yaml:"number,omitempty"`
}
