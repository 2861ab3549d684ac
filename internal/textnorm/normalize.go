// Package textnorm repairs extraction damage in page text: lost word
// boundaries, missing line breaks, and decorative bullet glyphs. Everything
// here is a pure function; absence of a pattern is a no-op.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	bulletRe       = regexp.MustCompile(`•\s*`)
	lowerUpperRe   = regexp.MustCompile(`([a-z])([A-Z])`)
	bangUpperRe    = regexp.MustCompile(`(!)([A-Z])`)
	commandMarkRe  = regexp.MustCompile(`(PULSE|AURA)\s*Command Ability\s*`)
	spaceRunRe     = regexp.MustCompile(`[ \t]+`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// Clean normalizes an ability-zone blob. Rules run in order: strip bullets,
// re-insert the space lost between a lowercase and an uppercase letter, break
// the line after "!" preceding an uppercase letter, force the description
// after a PULSE/AURA Command Ability marker onto its own line, and collapse
// space/tab runs while preserving newlines.
func Clean(text string) string {
	out := bulletRe.ReplaceAllString(text, "")
	out = lowerUpperRe.ReplaceAllString(out, "$1 $2")
	out = bangUpperRe.ReplaceAllString(out, "$1\n$2")
	out = commandMarkRe.ReplaceAllString(out, "$1 Command Ability\n")
	out = spaceRunRe.ReplaceAllString(out, " ")
	return out
}

// Description collapses all whitespace runs, newlines included, to single
// spaces and trims the ends.
func Description(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
