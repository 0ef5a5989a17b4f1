// Package truncate keeps outbound page text within the backend's token limit.
//
// The backend rejects requests above 4000 tokens, counted as ceil(chars / 4.5).
// Truncation reserves room for a human-readable notice, cuts the text to the
// remaining character budget, shrinks it by 10% steps until the estimate fits,
// and finally snaps the cut back to a space or newline when one is close to
// the end so words are not severed.
//
// # Basic Usage
//
//	res := truncate.ToTokenLimit(pageText)
//	if res.WasTruncated {
//	    log.Printf("sent %d of %d tokens", res.FinalTokens, res.OriginalTokens)
//	}
//	send(res.Content)
//
// # Custom Truncators
//
// The notice, limit and counter can be changed:
//
//	tr := truncate.New().WithNotice(truncate.Notice("en")).WithMaxTokens(2000)
//	res := tr.Truncate(text)
//
// # Limits of the Guarantee
//
// The shrink loop stops once the candidate is 100 characters or shorter, even
// if the estimate is still over the limit. With the default limit and notice
// this cannot happen, but a tiny limit or a huge notice can yield a Result
// whose FinalTokens exceeds MaxTokens. Treat FinalTokens as advisory; the
// backend's own check is authoritative.
package truncate
