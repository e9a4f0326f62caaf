package rewrite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	engine := New()
	require.NotNil(t, engine)
	assert.Equal(t, 4, engine.Len())
}

func TestTransform_Empty(t *testing.T) {
	engine := New()

	out, err := engine.Transform(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTransform_Deterministic(t *testing.T) {
	engine := New()
	ctx := context.Background()
	input := "it was very nice .the dog  went HOME"

	first, err := engine.Transform(ctx, input)
	require.NoError(t, err)
	second, err := engine.Transform(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTransform_Cancelled(t *testing.T) {
	engine := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := engine.Transform(ctx, "some text")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out)
}

func TestTransform_FullPipeline(t *testing.T) {
	engine := New()
	ctx := context.Background()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "capitalises after sentence end",
			input:    "hello. world",
			expected: "Hello. World",
		},
		{
			name:     "substitutes tabled words",
			input:    "It was very nice",
			expected: "It was incredibly delightful",
		},
		{
			name:     "substitution is case-insensitive",
			input:    "VERY Nice",
			expected: "incredibly delightful",
		},
		{
			name:     "collapses whitespace runs",
			input:    "a   b",
			expected: "a b",
		},
		{
			name:     "strips space before punctuation",
			input:    "wait , what ?ok",
			expected: "Wait, what? Ok",
		},
		{
			name:     "substituted words keep sentence boundaries",
			input:    "she went home. he saw it",
			expected: "She journeyed home. He observed it",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := engine.Transform(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestNormalisePunctuation_Idempotent(t *testing.T) {
	inputs := []string{
		"hello , world !done",
		"a .b ,c ;d :e",
		"no changes needed. At all.",
	}

	for _, input := range inputs {
		once := NormalisePunctuation(input)
		twice := NormalisePunctuation(once)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestCapitaliseSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"start of text", "hello there", "Hello there"},
		{"after period", "one. two. three", "One. Two. Three"},
		{"after question mark", "really? yes", "Really? Yes"},
		{"after exclamation", "go! now", "Go! Now"},
		{"already capitalised", "Hello. World", "Hello. World"},
		{"comma is not a boundary", "one, two", "One, two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CapitaliseSentences(tt.input))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("a \t b\n\nc"))
	assert.Equal(t, "untouched", CollapseWhitespace("untouched"))
}

func TestSubstituteWords_NoMatchesLeft(t *testing.T) {
	out := SubstituteWords("It was very nice and VERY Good")
	assert.NotContains(t, out, "very")
	assert.NotContains(t, out, "VERY")
	assert.Contains(t, out, "incredibly")
	assert.Contains(t, out, "delightful")
	assert.Contains(t, out, "excellent")
}

func TestNewWithPasses_Order(t *testing.T) {
	engine := NewWithPasses(
		Pass{Name: "suffix-a", Apply: func(s string) string { return s + "a" }},
		Pass{Name: "suffix-b", Apply: func(s string) string { return s + "b" }},
	)

	out, err := engine.Transform(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "xab", out)
}
