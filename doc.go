// Package pagekit is the core of a "read this page and answer" side panel.
//
// pagekit bounds the text scraped from a page so it fits the answering
// backend's token limit, and turns the backend's markdown answer into a flat
// sequence of typed render instructions. Each subpackage can be used
// independently:
//
//   - tokens: Token estimation matching the backend, plus usage display
//   - truncate: Boundary-aware truncation to the 4000-token budget
//   - markdown: Two-pass markdown structurer (block, then inline)
//   - tabstate: Explicit per-tab content and preference store
//   - request: Validated outbound request assembly
//   - config: File/env configuration with live reload
//
// # Quick Start
//
// Bounding page text:
//
//	import "github.com/randalmurphal/pagekit/truncate"
//	res := truncate.ToTokenLimit(pageText)
//	send(res.Content)
//
// Structuring an answer:
//
//	import "github.com/randalmurphal/pagekit/markdown"
//	for _, el := range markdown.Parse(answer) {
//	    paint(el)
//	}
//
// # Design Philosophy
//
//   - The estimator must agree with the backend: ceil(chars / 4.5)
//   - Truncation and parsing are total functions; they never fail
//   - Each package usable independently
//   - No hidden global state; callers own tab and preference lifecycles
package pagekit
