package reference

import (
	"regexp"
	"slices"
	"strings"

	"github.com/carnevale-tools/card-parser/constants"
)

// AbilityPattern is one reference dictionary entry. A parametric entry, e.g.
// "Expert Grappler (X)", matches its base name followed by any parenthesized
// payload; an exact entry matches only its literal name.
type AbilityPattern struct {
	// Raw is the entry as loaded, including a possible "(X)" marker.
	Raw string
	// Base is Raw with the "(X)" marker removed and trimmed. Segmentation
	// searches for this.
	Base string
	// Loose is Base with any remaining parentheses stripped. Fuzzy
	// containment matches against this.
	Loose string
	// Parametric is true when Raw carries the "(X)" marker.
	Parametric bool

	paramRe   *regexp.Regexp // ^Base\s*\([^)]+\)$ for parametric entries
	numRe     *regexp.Regexp // Base followed by a parenthesized integer
	payloadRe *regexp.Regexp // Base followed by any parenthesized payload
}

// FindNumbered returns the first "Base (N)" occurrence in text, or "".
func (p AbilityPattern) FindNumbered(text string) string {
	return p.numRe.FindString(text)
}

// FindPayload returns the first "Base (...)" occurrence in text, or "".
// Only meaningful for parametric entries.
func (p AbilityPattern) FindPayload(text string) string {
	if p.payloadRe == nil {
		return ""
	}
	return p.payloadRe.FindString(text)
}

// NewAbilityPattern builds a pattern from a raw dictionary name.
func NewAbilityPattern(raw string) AbilityPattern {
	p := AbilityPattern{
		Raw:        raw,
		Parametric: strings.Contains(raw, constants.ParametricMarker),
	}
	p.Base = strings.TrimSpace(strings.ReplaceAll(raw, constants.ParametricMarker, ""))
	loose := strings.ReplaceAll(raw, constants.ParametricMarker, "")
	loose = strings.ReplaceAll(loose, "(", "")
	loose = strings.ReplaceAll(loose, ")", "")
	p.Loose = strings.TrimSpace(loose)
	p.numRe = regexp.MustCompile(regexp.QuoteMeta(p.Base) + ` \(\d+\)`)
	if p.Parametric {
		p.paramRe = regexp.MustCompile(`^` + regexp.QuoteMeta(p.Base) + `\s*\([^)]+\)$`)
		p.payloadRe = regexp.MustCompile(regexp.QuoteMeta(p.Base) + ` \([^)]+\)`)
	}
	return p
}

// Reference is the immutable dictionary of known ability names. It is loaded
// once per run and shared read-only by every matcher, so parses may run
// concurrently against it.
type Reference struct {
	Common []AbilityPattern
	Weapon []AbilityPattern

	byLenDesc []AbilityPattern // Common sorted by descending raw length
}

// New builds a Reference from raw common and weapon ability names.
func New(common, weapon []string) *Reference {
	r := &Reference{
		Common: make([]AbilityPattern, 0, len(common)),
		Weapon: make([]AbilityPattern, 0, len(weapon)),
	}
	for _, name := range common {
		r.Common = append(r.Common, NewAbilityPattern(name))
	}
	for _, name := range weapon {
		r.Weapon = append(r.Weapon, NewAbilityPattern(name))
	}
	r.byLenDesc = slices.Clone(r.Common)
	// Stable sort: ties keep dictionary order, so segmentation stays
	// deterministic across runs.
	slices.SortStableFunc(r.byLenDesc, func(a, b AbilityPattern) int {
		return len(b.Raw) - len(a.Raw)
	})
	return r
}

// Empty returns the degraded no-dictionary Reference: every ability becomes a
// unique-ability candidate downstream.
func Empty() *Reference { return New(nil, nil) }

// CommonByLengthDesc returns the common entries longest-first. Longer names
// must be tried before their prefixes during segmentation.
func (r *Reference) CommonByLengthDesc() []AbilityPattern { return r.byLenDesc }

// Match decides whether candidate equals a known common ability. Priority
// order: exact equality against a raw entry; parametric match (base name plus
// any parenthesized payload, returned with the payload preserved); fuzzy
// containment of a loose base name. Empty means "not a known common ability";
// downstream treats that as a unique-ability candidate, never as an error.
func (r *Reference) Match(candidate string) string {
	text := strings.TrimSpace(candidate)

	for _, p := range r.Common {
		if text == p.Raw {
			return text
		}
	}

	for _, p := range r.Common {
		if p.Parametric && p.paramRe.MatchString(text) {
			return text
		}
	}

	for _, p := range r.Common {
		if text == p.Loose {
			return p.Loose
		}
		if p.Loose != "" && strings.Contains(text, p.Loose) {
			return text
		}
	}

	return ""
}

// ContainsPattern is the strict form used by validation: candidate must equal
// a raw entry, or fill a parametric entry's "(X)" slot with a parenthesized
// payload. No fuzzy containment.
func (r *Reference) ContainsPattern(candidate string) bool {
	for _, p := range r.Common {
		if candidate == p.Raw {
			return true
		}
	}
	for _, p := range r.Common {
		if !p.Parametric {
			continue
		}
		prefix, suffix, ok := strings.Cut(p.Raw, constants.ParametricMarker)
		if !ok {
			continue
		}
		if !strings.HasPrefix(candidate, prefix) || !strings.HasSuffix(candidate, suffix) {
			continue
		}
		if len(candidate) <= len(prefix)+len(suffix) {
			continue
		}
		middle := candidate[len(prefix) : len(candidate)-len(suffix)]
		if strings.HasPrefix(middle, "(") && strings.HasSuffix(middle, ")") {
			return true
		}
	}
	return false
}
