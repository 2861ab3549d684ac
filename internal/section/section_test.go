package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordsZone(t *testing.T) {
	text := "Keywords\n • Duelist • Butcher •\nCharacter Abilities\nmore"
	assert.Equal(t, "Duelist • Butcher •\n", KeywordsZone(text))
}

func TestKeywordsZone_MissingAnchor(t *testing.T) {
	assert.Equal(t, "", KeywordsZone("no anchors here"))
	assert.Equal(t, "", KeywordsZone("Keywords • Duelist but no closing header"))
}

func TestAbilitiesZone_EndsAtVersionToken(t *testing.T) {
	text := "Character Abilities\n • Engage\n2.2.0\n30 8"
	assert.Equal(t, "Engage", AbilitiesZone(text))
}

func TestAbilitiesZone_EndsAtTextEnd(t *testing.T) {
	text := "Character Abilities\nEngage"
	assert.Equal(t, "Engage", AbilitiesZone(text))
}

func TestAbilitiesZone_MissingAnchor(t *testing.T) {
	assert.Equal(t, "", AbilitiesZone("nothing to see"))
}

func TestWeaponZone_TerminatedByStatHeader(t *testing.T) {
	text := "Weapon Range Evasion Damage Penetration Abilities\n" +
		"Rapier 1\" 3 4 1 Parry\n" +
		"MOVEMENT DEXTERITY ATTACK PROTECTION MIND\n4 3 2 1 5"
	assert.Equal(t, "Rapier 1\" 3 4 1 Parry\n", WeaponZone(text))
}

func TestWeaponZone_TerminatedByKeywords(t *testing.T) {
	text := "Weapon Range Evasion Damage Penetration Abilities\n" +
		"Rapier 1\" 3 4 1 Parry\nKeywords • Duelist"
	assert.Equal(t, "Rapier 1\" 3 4 1 Parry\n", WeaponZone(text))
}

func TestWeaponZone_NoTerminatorYieldsNothing(t *testing.T) {
	text := "Weapon Range Evasion Damage Penetration Abilities\nRapier 1\" 3 4 1 Parry"
	assert.Equal(t, "", WeaponZone(text))
}
