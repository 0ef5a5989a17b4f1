package markdown

import (
	"strconv"
	"strings"
)

// PlainText renders elements as unformatted text, one block per line.
// Links are written as "text (url)".
func PlainText(elements []Element) string {
	var sb strings.Builder
	inline := false

	endLine := func() {
		if inline {
			sb.WriteByte('\n')
			inline = false
		}
	}

	for _, el := range elements {
		if el.Kind.IsInline() {
			sb.WriteString(el.Content)
			if el.Kind == KindLink {
				sb.WriteString(" (" + el.URL + ")")
			}
			inline = true
			continue
		}

		endLine()
		switch el.Kind {
		case KindHeading, KindCodeBlock:
			sb.WriteString(el.Content)
			sb.WriteByte('\n')
		case KindList:
			sb.WriteString("- " + el.Content + "\n")
		case KindOrderedList:
			sb.WriteString(strconv.Itoa(el.Number) + ". " + el.Content + "\n")
		case KindLineBreak:
			sb.WriteByte('\n')
		}
	}
	endLine()

	return sb.String()
}
