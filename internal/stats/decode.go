// Package stats decodes the positionally-overloaded numerals of a card: the
// fused Actions/Life/Will/Command digit string, the five-stat block line, and
// the base-size/ducats pair.
package stats

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/carnevale-tools/card-parser/constants"
)

// Line holds the decoded Actions/Life/Will/Command values. Command is nil for
// cards whose header carries no Command column.
type Line struct {
	Actions int
	Life    int
	Will    int
	Command *int
}

// fusedRe finds the version token followed by the base-size/ducats numeral
// (possibly space-split) and the fused 2-6 digit stat string.
var fusedRe = regexp.MustCompile(`(\d+\.\d+\.\d+)\s*\n\s*(\d+(?:\s+\d+)?)\s*\n\s*(\d{2,6})`)

// Decode recovers the stat fields from a fused digit string. Field widths are
// positional: actions is always the first digit; with a Command header the
// last digit is command; a Will header claims the digit before it; life is
// whatever remains in between, and an empty remainder decodes to life 0 — a
// deliberate degradation, not a defect. Digit strings too short for their
// header shape leave the line at its zero value.
func Decode(digits string, hasCommand, hasWill bool) Line {
	var l Line

	switch {
	case hasCommand && len(digits) >= 4:
		l.Actions = digit(digits[0])
		cmd := digit(digits[len(digits)-1])
		l.Command = &cmd
		if hasWill {
			l.Will = digit(digits[len(digits)-2])
			if len(digits) > 3 {
				l.Life = span(digits[1 : len(digits)-2])
			}
		} else {
			l.Life = span(digits[1 : len(digits)-1])
		}

	case !hasCommand && len(digits) >= 2:
		l.Actions = digit(digits[0])
		if hasWill && len(digits) >= 3 {
			l.Will = digit(digits[len(digits)-1])
			l.Life = span(digits[1 : len(digits)-1])
		} else {
			l.Life = span(digits[1:])
		}
	}
	return l
}

// FindFused locates the version token and its adjacent fused stat string in
// page text. ok is false on total pattern failure, in which case callers fall
// back to the default version and zero stats.
func FindFused(text string) (version, digits string, ok bool) {
	m := fusedRe.FindStringSubmatch(text)
	if m == nil {
		return constants.DefaultVersion, "", false
	}
	return m[1], m[3], true
}

// HasCommandHeader reports whether the page carries the Command stat column.
func HasCommandHeader(text string) bool {
	return strings.Contains(text, constants.CommandHeader)
}

// HasWillHeader reports whether the page carries the Will stat column.
func HasWillHeader(text string) bool {
	return strings.Contains(text, constants.WillHeader)
}

func digit(b byte) int { return int(b - '0') }

// span parses a run of digits as one integer; an empty run is zero.
func span(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
