package tokens

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNewEstimatingCounter(t *testing.T) {
	c := NewEstimatingCounter()

	if c.CharsPerToken != DefaultCharsPerToken {
		t.Errorf("expected CharsPerToken %v, got %v", DefaultCharsPerToken, c.CharsPerToken)
	}
}

func TestNewEstimatingCounterWithRatio(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		expected float64
	}{
		{name: "custom ratio", ratio: 3.0, expected: 3.0},
		{name: "zero ratio uses default", ratio: 0, expected: DefaultCharsPerToken},
		{name: "negative ratio uses default", ratio: -1, expected: DefaultCharsPerToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEstimatingCounterWithRatio(tt.ratio)
			if c.CharsPerToken != tt.expected {
				t.Errorf("expected CharsPerToken %v, got %v", tt.expected, c.CharsPerToken)
			}
		})
	}
}

func TestEstimatingCounter_Count(t *testing.T) {
	c := NewEstimatingCounter()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty string", text: "", expected: 0},
		{name: "single character", text: "a", expected: 1},        // 1/4.5 rounds up
		{name: "four characters", text: "test", expected: 1},      // 4/4.5 = 0.89
		{name: "eight characters", text: "testtest", expected: 2}, // 8/4.5 = 1.78
		{name: "exact multiple", text: "123456789", expected: 2},  // 9/4.5 = 2
		{name: "one past multiple", text: "1234567890", expected: 3},
		{name: "hello world", text: "Hello, World!", expected: 3}, // 13/4.5 = 2.89
		{name: "accented runes not bytes", text: "ãããããããããã", expected: 3},
		{name: "emoji", text: "👍👍👍👍👍", expected: 2},
		{name: "non-BMP characters count once each", text: "😀😀😀😀😀😀😀😀😀", expected: 2}, // 18 UTF-16 units would give 4
		{name: "whitespace only", text: "   ", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Count(tt.text)
			if result != tt.expected {
				t.Errorf("Count(%q) = %d, expected %d", tt.text, result, tt.expected)
			}
		})
	}
}

func TestEstimatingCounter_ZeroValue(t *testing.T) {
	var c EstimatingCounter

	if got := c.Count("123456789"); got != 2 {
		t.Errorf("Count on zero value = %d, expected 2", got)
	}
	if got := CountRunes(10, 0); got != 3 {
		t.Errorf("CountRunes(10, 0) = %d, expected 3", got)
	}
}

func TestEstimatingCounter_Count_CustomRatio(t *testing.T) {
	c := NewEstimatingCounterWithRatio(4.0)

	text := "Hello World" // 11 chars
	expected := 3         // 11/4 = 2.75 rounds up to 3

	result := c.Count(text)
	if result != expected {
		t.Errorf("Count(%q) with ratio 4.0 = %d, expected %d", text, result, expected)
	}
}

func TestEstimatingCounter_FitsInLimit(t *testing.T) {
	c := NewEstimatingCounter()

	tests := []struct {
		name     string
		text     string
		limit    int
		expected bool
	}{
		{name: "empty fits any limit", text: "", limit: 0, expected: true},
		{name: "fits exactly", text: "123456789", limit: 2, expected: true},
		{name: "fits with room", text: "test", limit: 10, expected: true},
		{name: "one char over", text: "1234567890", limit: 2, expected: false},
		{name: "zero limit", text: "hello", limit: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.FitsInLimit(tt.text, tt.limit)
			if result != tt.expected {
				t.Errorf("FitsInLimit(%q, %d) = %v, expected %v",
					tt.text, tt.limit, result, tt.expected)
			}
		})
	}
}

func TestEstimate(t *testing.T) {
	text := "Hello World"
	expected := NewEstimatingCounter().Count(text)

	result := Estimate(text)
	if result != expected {
		t.Errorf("Estimate(%q) = %d, expected %d", text, result, expected)
	}
}

func TestEstimate_LargeText(t *testing.T) {
	// 18000 chars / 4.5 = 4000 exactly
	text := strings.Repeat("x", 18000)
	if got := Estimate(text); got != 4000 {
		t.Errorf("Estimate(18000 chars) = %d, expected 4000", got)
	}
	if got := Estimate(text + "x"); got != 4001 {
		t.Errorf("Estimate(18001 chars) = %d, expected 4001", got)
	}
}

func TestCountRunes_IntegerCeiling(t *testing.T) {
	// ceil(n/4.5) == ceil(2n/9) for every n; the float path must agree.
	for n := 0; n <= 50000; n++ {
		want := (2*n + 8) / 9
		if got := CountRunes(n, DefaultCharsPerToken); got != want {
			t.Fatalf("CountRunes(%d) = %d, expected %d", n, got, want)
		}
	}
}

func TestEstimateProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("estimate is ceil(runes/4.5)", prop.ForAll(
		func(s string) bool {
			want := 0
			if s != "" {
				want = int(math.Ceil(float64(utf8.RuneCountInString(s)) / 4.5))
			}
			return Estimate(s) == want
		},
		gen.AnyString(),
	))

	properties.Property("estimate is monotonic in appended text", prop.ForAll(
		func(a, b string) bool {
			return Estimate(a+b) >= Estimate(a)
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestCounter_Interface(t *testing.T) {
	var _ Counter = (*EstimatingCounter)(nil)
	var _ Counter = (*TiktokenCounter)(nil)
}

func BenchmarkEstimate(b *testing.B) {
	text := strings.Repeat("Hello World ", 1000)

	b.ResetTimer()
	for range b.N {
		Estimate(text)
	}
}
