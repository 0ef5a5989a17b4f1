// Package markdown turns a backend answer into a flat sequence of typed
// render instructions without a full markdown library.
//
// Parsing runs in two passes. The block pass walks the input line by line and
// recognizes blank lines, fenced code blocks, headings, ordered and unordered
// list items. Every other line goes through the inline pass, which finds bold,
// italic, code span and link matches and emits them interleaved with literal
// text.
//
// Example usage:
//
//	for _, el := range markdown.Parse(answer) {
//	    switch el.Kind {
//	    case markdown.KindHeading:
//	        paintHeading(el.Level, el.Content)
//	    case markdown.KindLink:
//	        paintLink(el.Content, el.URL)
//	    // ...
//	    }
//	}
//
// # Inline Overlaps
//
// The four inline patterns are scanned independently over the whole line, so
// their matches can overlap ("**a*b**c*" yields a bold match and several
// italic ones). Overlaps are resolved greedily: matches are ordered by start
// offset, ties go to the pattern listed first (bold, italic, code, link), and a
// match is dropped if it starts before the end of a match already kept. This is
// not CommonMark nesting, and renderers rely on it staying that way.
//
// Parsing never fails. Anything that is not recognized comes out as text.
package markdown
