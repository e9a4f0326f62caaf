package rewrite

import (
	"regexp"
	"strings"
)

var (
	spaceBeforePunct = regexp.MustCompile(`\s+([.,!?;:])`)
	spaceAfterPunct  = regexp.MustCompile(`([.,!?;:])\s*([A-Za-z])`)
	sentenceStart    = regexp.MustCompile(`(^|[.!?]\s+)[a-z]`)
	whitespaceRun    = regexp.MustCompile(`\s{2,}`)
)

// substitution maps a source word to its canonical replacement.
// Matching is case-insensitive; the replacement is inserted verbatim
// regardless of the original casing.
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

// substitutions is the fixed lexical table, applied in order.
var substitutions = []substitution{
	{regexp.MustCompile(`(?i)very`), "incredibly"},
	{regexp.MustCompile(`(?i)nice`), "delightful"},
	{regexp.MustCompile(`(?i)good`), "excellent"},
	{regexp.MustCompile(`(?i)bad`), "unfortunate"},
	{regexp.MustCompile(`(?i)big`), "enormous"},
	{regexp.MustCompile(`(?i)small`), "tiny"},
	{regexp.MustCompile(`(?i)went`), "journeyed"},
	{regexp.MustCompile(`(?i)saw`), "observed"},
	{regexp.MustCompile(`(?i)said`), "exclaimed"},
}

// DefaultPasses returns the standard pipeline in its required order.
func DefaultPasses() []Pass {
	return []Pass{
		{Name: "punctuation-spacing", Apply: NormalisePunctuation},
		{Name: "capitalisation", Apply: CapitaliseSentences},
		{Name: "whitespace-collapse", Apply: CollapseWhitespace},
		{Name: "lexical-substitution", Apply: SubstituteWords},
	}
}

// NormalisePunctuation removes whitespace before `.,!?;:` and ensures
// exactly one space between a punctuation mark and a following letter.
// Applying it twice yields the same result as applying it once.
func NormalisePunctuation(s string) string {
	s = spaceBeforePunct.ReplaceAllString(s, "$1")
	return spaceAfterPunct.ReplaceAllString(s, "$1 $2")
}

// CapitaliseSentences uppercases a lowercase letter at the start of
// the text or immediately after a sentence terminator plus whitespace.
func CapitaliseSentences(s string) string {
	return sentenceStart.ReplaceAllStringFunc(s, func(match string) string {
		// The final byte is the matched lowercase ASCII letter.
		return match[:len(match)-1] + strings.ToUpper(match[len(match)-1:])
	})
}

// CollapseWhitespace replaces any run of two or more whitespace
// characters with a single space.
func CollapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(s, " ")
}

// SubstituteWords applies the lexical table across the whole text.
func SubstituteWords(s string) string {
	for _, sub := range substitutions {
		s = sub.pattern.ReplaceAllString(s, sub.replacement)
	}
	return s
}
