// Package abilities recovers discrete ability records from the concatenated,
// delimiter-free ability text of a card page, using the reference dictionary
// to anchor the cuts.
package abilities

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/carnevale-tools/card-parser/internal/reference"
)

// Segment splits a concatenated blob into discrete ability fragments.
// Reference entries are tried longest-first so a short name never matches as
// the prefix of a longer one. Each entry extracts at most one occurrence, in
// this priority: base name with a parenthesized integer; base name with any
// parenthesized payload (parametric entries only); base name at the start of
// the remaining text followed by a non-lowercase boundary. Whatever text is
// left after all entries have been tried becomes a fragment too, the raw
// material for unique-ability detection upstream. Fragments come back in
// source order, not extraction order.
//
// The input and the reference are never mutated; identical inputs always
// yield identical output.
func Segment(blob string, ref *reference.Reference) []string {
	var out []string
	remaining := blob

	for _, p := range ref.CommonByLengthDesc() {
		if m := p.FindNumbered(remaining); m != "" {
			out = append(out, m)
			remaining = strings.TrimSpace(strings.Replace(remaining, m, "", 1))
			continue
		}

		if m := p.FindPayload(remaining); m != "" {
			out = append(out, m)
			remaining = strings.TrimSpace(strings.Replace(remaining, m, "", 1))
			continue
		}

		if strings.HasPrefix(remaining, p.Base) {
			rest := remaining[len(p.Base):]
			if boundary(rest) {
				out = append(out, p.Base)
				remaining = strings.TrimSpace(rest)
			}
		}
	}

	if remaining != "" {
		out = append(out, remaining)
	}
	if len(out) == 0 {
		return []string{blob}
	}

	// Extraction walks the dictionary longest-first, so out is in dictionary
	// order. Restore the order the fragments appear in on the page.
	slices.SortStableFunc(out, func(a, b string) int {
		return blobIndex(blob, a) - blobIndex(blob, b)
	})
	return out
}

// blobIndex locates a fragment in the original blob. Fragments cut out of a
// mutated remainder may no longer occur verbatim (surrounding text was
// removed first); those keep their extraction position at the end.
func blobIndex(blob, fragment string) int {
	if i := strings.Index(blob, fragment); i >= 0 {
		return i
	}
	return len(blob)
}

// boundary reports whether rest begins at a token boundary: end of text, a
// non-letter, or an uppercase letter starting the next run-together ability.
func boundary(rest string) bool {
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return !unicode.IsLetter(r) || unicode.IsUpper(r)
}
