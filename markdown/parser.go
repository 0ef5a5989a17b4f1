package markdown

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const fence = "```"

// defaultLanguage is used for code blocks without a declared language.
const defaultLanguage = "text"

// lineChar matches any rune except a line terminator. Go's "." only stops at
// '\n', so bare CR, U+2028 and U+2029 are excluded explicitly.
const lineChar = `[^\n\r\x{2028}\x{2029}]`

// spaceClass is the full Unicode whitespace set, including NBSP and BOM. Go's "\s"
// is ASCII only.
const spaceClass = `[\t\n\v\f\r\x{feff}\x{2028}\x{2029}\p{Zs}]`

// maxHeadingLevel caps the number of leading '#' that count toward a level.
const maxHeadingLevel = 6

// Parser structures markdown into Elements.
// A Parser is safe for concurrent use.
type Parser struct {
	// orderedItemRegex matches "1. item", allowing leading whitespace.
	orderedItemRegex *regexp.Regexp

	// bulletItemRegex matches the "- ", "* " or "+ " prefix of a list item.
	bulletItemRegex *regexp.Regexp

	// inline holds the inline patterns in tie-break priority order.
	inline []inlinePattern
}

// NewParser creates a parser with compiled regexes.
func NewParser() *Parser {
	return &Parser{
		orderedItemRegex: regexp.MustCompile(`^` + spaceClass + `*(\d+)\.` + spaceClass + `(` + lineChar + `+)`),
		bulletItemRegex:  regexp.MustCompile(`^` + spaceClass + `*[-*+]` + spaceClass),
		inline: []inlinePattern{
			{kind: KindBold, re: regexp.MustCompile(`\*\*(` + lineChar + `*?)\*\*`)},
			{kind: KindItalic, re: regexp.MustCompile(`\*(` + lineChar + `*?)\*`)},
			{kind: KindCode, re: regexp.MustCompile("`(" + lineChar + "*?)`")},
			{kind: KindLink, re: regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)},
		},
	}
}

var defaultParser = NewParser()

// Parse structures text using the default parser.
func Parse(text string) []Element {
	return defaultParser.Parse(text)
}

// Parse structures text into an ordered sequence of elements.
func (p *Parser) Parse(text string) []Element {
	var elements []Element
	lines := strings.Split(text, "\n")

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if trimSpace(line) == "" {
			elements = append(elements, Element{Kind: KindLineBreak})
			continue
		}

		if strings.HasPrefix(line, fence) {
			var block Element
			block, i = codeBlock(lines, i)
			elements = append(elements, block)
			continue
		}

		if strings.HasPrefix(line, "#") {
			elements = append(elements, heading(line))
			continue
		}

		if m := p.orderedItemRegex.FindStringSubmatch(line); m != nil {
			elements = append(elements, Element{
				Kind:    KindOrderedList,
				Content: m[2],
				Number:  parseNumber(m[1]),
			})
			continue
		}

		if loc := p.bulletItemRegex.FindStringIndex(line); loc != nil {
			elements = append(elements, Element{
				Kind:    KindList,
				Content: line[loc[1]:],
			})
			continue
		}

		if inline := p.parseInline(line); len(inline) > 0 {
			elements = append(elements, Element{Kind: KindParagraph})
			elements = append(elements, inline...)
		}
	}

	return elements
}

// codeBlock consumes the fence at lines[start] through its closing fence and
// returns the block with the index of the closing fence. An unclosed fence
// runs to the end of the input.
func codeBlock(lines []string, start int) (Element, int) {
	language := trimSpace(lines[start][len(fence):])
	if language == "" {
		language = defaultLanguage
	}

	end := start + 1
	for end < len(lines) && !strings.HasPrefix(lines[end], fence) {
		end++
	}

	return Element{
		Kind:     KindCodeBlock,
		Content:  strings.Join(lines[start+1:end], "\n"),
		Language: language,
	}, end
}

func heading(line string) Element {
	hashes := len(line) - len(strings.TrimLeft(line, "#"))
	return Element{
		Kind:    KindHeading,
		Content: trimSpace(line[hashes:]),
		Level:   min(hashes, maxHeadingLevel),
	}
}

// parseNumber parses a digit run, saturating at math.MaxInt.
func parseNumber(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return n
}

// trimSpace trims the same rune set spaceClass matches. Unlike
// strings.TrimSpace it strips U+FEFF and keeps U+0085.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}
