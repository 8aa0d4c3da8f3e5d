// Package names turns free-form input into clean name lists and partner
// pairs. Casing follows Turkish rules, so "i" capitalizes to "İ".
package names

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jask/karmator/internal/shuffle"
)

// PairSeparator joins the two halves of a normalized pair line.
const PairSeparator = " - "

// Casers keep state between calls, so each use gets a fresh one.
func upper() cases.Caser { return cases.Upper(language.Turkish) }

func lower() cases.Caser { return cases.Lower(language.Turkish) }

// Capitalize trims s and upper-cases its first letter. The rest of the
// string is kept as typed.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return upper().String(s[:size]) + s[size:]
}

// ParsePair splits a line on a hyphen. It is valid only when exactly two
// non-empty halves remain after trimming.
func ParsePair(line string) (shuffle.Pair, bool) {
	parts := strings.Split(line, "-")
	if len(parts) != 2 {
		return shuffle.Pair{}, false
	}
	left, right := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if left == "" || right == "" {
		return shuffle.Pair{}, false
	}
	return shuffle.Pair{Left: left, Right: right}, true
}

// NormalizePair renders a valid line as "Left - Right", optionally
// capitalizing both halves. Invalid lines come back unchanged with ok=false.
func NormalizePair(line string, capitalize bool) (string, bool) {
	p, ok := ParsePair(line)
	if !ok {
		return line, false
	}
	if capitalize {
		p.Left, p.Right = Capitalize(p.Left), Capitalize(p.Right)
	}
	return FormatPair(p), true
}

// FormatPair renders p in its normalized form.
func FormatPair(p shuffle.Pair) string {
	return p.Left + PairSeparator + p.Right
}

// ValidPairs parses every entry and drops the ones that are not pairs.
func ValidPairs(entries []string) []shuffle.Pair {
	out := make([]shuffle.Pair, 0, len(entries))
	for _, e := range entries {
		if p, ok := ParsePair(e); ok {
			out = append(out, p)
		}
	}
	return out
}

// ValidNames trims entries and drops the empty ones.
func ValidNames(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if n := strings.TrimSpace(e); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func splitBulk(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n'
	})
}

// ParseBulk splits pasted text on commas and newlines, dropping empty
// segments.
func ParseBulk(text string, capitalize bool) []string {
	var out []string
	for _, seg := range splitBulk(text) {
		seg = strings.TrimSpace(seg)
		if capitalize {
			seg = Capitalize(seg)
		}
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// ParseBulkPairs splits pasted text like ParseBulk and normalizes every
// segment that parses as a pair. Segments that do not parse are kept as
// typed so they can be fixed by hand.
func ParseBulkPairs(text string) []string {
	var out []string
	for _, seg := range splitBulk(text) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		norm, _ := NormalizePair(seg, true)
		out = append(out, norm)
	}
	return out
}

// Similar is a pair of names that look like typos of one another.
type Similar struct {
	A, B     string
	Distance int
}

// SimilarNames reports every pair of names whose case-folded edit distance
// is at most maxDistance. Identical names report a distance of zero.
func SimilarNames(list []string, maxDistance int) []Similar {
	if maxDistance < 0 {
		return nil
	}
	folded := make([]string, len(list))
	for i, n := range list {
		folded[i] = lower().String(strings.TrimSpace(n))
	}
	var out []Similar
	for i := 0; i < len(list); i++ {
		if folded[i] == "" {
			continue
		}
		for j := i + 1; j < len(list); j++ {
			if folded[j] == "" {
				continue
			}
			d := levenshtein.ComputeDistance(folded[i], folded[j])
			if d <= maxDistance {
				out = append(out, Similar{A: list[i], B: list[j], Distance: d})
			}
		}
	}
	return out
}
