package markdown

import (
	"regexp"
	"sort"
)

type inlinePattern struct {
	kind Kind
	re   *regexp.Regexp
}

// inlineMatch is one pattern hit inside a line, in byte offsets.
type inlineMatch struct {
	start   int
	end     int
	kind    Kind
	content string
	url     string
}

// parseInline splits one line into literal text and formatted spans.
func (p *Parser) parseInline(line string) []Element {
	matches := p.findInline(line)

	var elements []Element
	cursor := 0
	for _, m := range resolveOverlaps(matches) {
		if m.start > cursor {
			elements = append(elements, Element{Kind: KindText, Content: line[cursor:m.start]})
		}
		elements = append(elements, Element{Kind: m.kind, Content: m.content, URL: m.url})
		cursor = m.end
	}

	if cursor < len(line) {
		elements = append(elements, Element{Kind: KindText, Content: line[cursor:]})
	}

	if len(elements) == 0 && trimSpace(line) != "" {
		elements = append(elements, Element{Kind: KindText, Content: line})
	}

	return elements
}

// findInline scans the whole line once per pattern and returns every match,
// sorted by start offset. Ties keep pattern order.
func (p *Parser) findInline(line string) []inlineMatch {
	var matches []inlineMatch

	for _, pat := range p.inline {
		for _, loc := range pat.re.FindAllStringSubmatchIndex(line, -1) {
			m := inlineMatch{
				start:   loc[0],
				end:     loc[1],
				kind:    pat.kind,
				content: line[loc[2]:loc[3]],
			}
			if pat.kind == KindLink {
				m.url = line[loc[4]:loc[5]]
			}
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})

	return matches
}

// resolveOverlaps keeps a match only if it starts at or after the end of every
// match kept before it. Dropped matches are not trimmed or retried.
func resolveOverlaps(sorted []inlineMatch) []inlineMatch {
	kept := make([]inlineMatch, 0, len(sorted))
	end := 0
	for _, m := range sorted {
		if m.start < end {
			continue
		}
		kept = append(kept, m)
		end = m.end
	}
	return kept
}
