// Package section locates the anchor-bounded zones of a card page. Headers
// are the only reliably literal tokens in the source; the content between
// them stays free-form and is parsed downstream. Every extraction is
// best-effort: a missing anchor yields an empty zone, not an error.
package section

import "regexp"

var (
	keywordsZoneRe = regexp.MustCompile(`(?s)Keywords\s*•\s*(.*?)Character Abilities`)
	abilitiesZoneRe = regexp.MustCompile(`(?s)Character Abilities\s*•?\s*(.*?)(?:\n\d+\.\d+\.\d+|$)`)
	weaponZoneRe = regexp.MustCompile(`(?s)Weapon Range Evasion Damage Penetration Abilities\n(.*?)(?:MOVEMENT DEXTERITY ATTACK PROTECTION MIND|Keywords)`)
)

// KeywordsZone returns the text between the Keywords and Character Abilities
// headers, or "" when either anchor is absent.
func KeywordsZone(text string) string {
	m := keywordsZoneRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// AbilitiesZone returns the text after the Character Abilities header, up to
// the next version-number token or end of text.
func AbilitiesZone(text string) string {
	m := abilitiesZoneRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// WeaponZone returns the weapon table body between its header and either the
// stat-block header or the Keywords header. Unlike the other zones this one
// needs a closing anchor; with neither terminator present it yields "".
func WeaponZone(text string) string {
	m := weaponZoneRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}
