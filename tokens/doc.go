// Package tokens estimates token counts the same way the answering backend does.
//
// The backend charges ceil(chars / 4.5) tokens for a request, where chars is the
// number of Unicode code points. Truncation decisions are only useful if they
// agree with that accounting, so the estimator here uses the same divisor and
// the same rounding.
//
// # Counter
//
// The Counter interface provides token counting methods:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")     // 3 tokens
//	fits := counter.FitsInLimit("text", 4000)   // true if <= 4000 tokens
//
// For one-off counting, use the convenience function:
//
//	count := tokens.Estimate("Hello, world!")
//
// A TiktokenCounter is available for comparing the heuristic against a real
// BPE encoding. It is never used for truncation.
//
// # Budget
//
// Budget reports how much of the request limit a text consumes:
//
//	usage := tokens.DefaultBudget().Measure(text)
//	fmt.Println(usage) // "✅ 812/4000 tokens (20.3%)"
package tokens
