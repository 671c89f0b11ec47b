// Package naming derives safe, deterministic identifiers from raw field
// names and enforces their uniqueness within sibling scopes.
package naming

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/unicode/norm"

	"github.com/specforge/specforge/ir"
)

// digitPrefix is prepended when a derived identifier would start with a
// digit, and used as the stem for names that strip down to nothing.
const digitPrefix = "field"

// hashSuffixLen is the number of hex characters appended when a name is
// truncated or fully stripped.
const hashSuffixLen = 4

// Normalizer derives identifiers from raw field names. It holds no mutable
// state and is safe for concurrent use.
type Normalizer struct {
	// MaxLength bounds the derived identifier; longer results are truncated
	// to MaxLength-4 characters plus a 4-hex-character hash of the
	// pre-truncation string. Bounds too small to hold the hash suffix
	// disable truncation.
	MaxLength int

	pinyinArgs pinyin.Args
}

// NewNormalizer creates a Normalizer with the given identifier length bound.
func NewNormalizer(maxLength int) *Normalizer {
	return &Normalizer{
		MaxLength:  maxLength,
		pinyinArgs: pinyin.NewArgs(),
	}
}

// Normalize derives the identifier for a raw field name. Identical input
// always yields identical output, independent of locale or invocation order.
func (n *Normalizer) Normalize(raw string) string {
	s := n.transliterate(norm.NFKC.String(raw))
	s = stripDisallowed(s)
	result := camelJoin(splitSegments(s))

	if result != "" && unicode.IsDigit(rune(result[0])) {
		result = digitPrefix + strings.ToUpper(result[:1]) + result[1:]
	}
	if result == "" {
		result = digitPrefix + ir.ShortHash(raw)
	}
	if n.MaxLength > hashSuffixLen && len(result) > n.MaxLength {
		result = result[:n.MaxLength-hashSuffixLen] + ir.ShortHash(result)
	}
	return result
}

// transliterate replaces CJK ideographs with their phonetic Latin form. The
// first letter of every syllable after the first in a contiguous ideograph
// run is capitalized so the word boundary survives camel-casing.
func (n *Normalizer) transliterate(s string) string {
	if !strings.ContainsFunc(s, isHan) {
		return s
	}
	var builder strings.Builder
	inRun := false
	for _, r := range s {
		if !isHan(r) {
			builder.WriteRune(r)
			inRun = false
			continue
		}
		syllable := n.syllable(r)
		if syllable == "" {
			// Ideograph without a reading; dropped later by the strip pass.
			inRun = false
			continue
		}
		if inRun {
			syllable = strings.ToUpper(syllable[:1]) + syllable[1:]
		}
		builder.WriteString(syllable)
		inRun = true
	}
	return builder.String()
}

func (n *Normalizer) syllable(r rune) string {
	readings := pinyin.SinglePinyin(r, n.pinyinArgs)
	if len(readings) == 0 {
		return ""
	}
	return readings[0]
}

func isHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// stripDisallowed removes every character that is not a Latin letter, digit,
// underscore or hyphen.
func stripDisallowed(s string) string {
	var builder strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// splitSegments splits on underscores and hyphens, discarding empty segments.
func splitSegments(s string) []string {
	var segments []string
	for _, segment := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	}) {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

// camelJoin joins segments in lower-camel-case. Segments written in a single
// case (FIRST_NAME, branch) get full camel treatment; mixed-case segments
// (customerInfo, xingMing) keep their interior capitalization so authored and
// transliterated word boundaries survive.
func camelJoin(segments []string) string {
	var builder strings.Builder
	for i, segment := range segments {
		single := isSingleCase(segment)
		head := segment[:1]
		tail := segment[1:]
		if i == 0 {
			head = strings.ToLower(head)
		} else {
			head = strings.ToUpper(head)
		}
		if single {
			tail = strings.ToLower(tail)
		}
		builder.WriteString(head)
		builder.WriteString(tail)
	}
	return builder.String()
}

// isSingleCase reports whether the segment's letters are all upper or all
// lower case. Digits do not count either way.
func isSingleCase(segment string) bool {
	hasUpper := false
	hasLower := false
	for _, r := range segment {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		}
	}
	return !(hasUpper && hasLower)
}
