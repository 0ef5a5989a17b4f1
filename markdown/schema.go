package markdown

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaID identifies the element schema.
const SchemaID = "https://pagekit.dev/schemas/markdown-element.json"

// Schema returns the JSON Schema of Element, for renderers that validate the
// instruction stream they receive.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	s := r.Reflect(&Element{})
	s.ID = jsonschema.ID(SchemaID)
	s.Title = "MarkdownElement"
	s.Description = "One render instruction produced by the markdown structurer."

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal element schema: %w", err)
	}
	return out, nil
}
