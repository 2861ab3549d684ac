package weapons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carnevale-tools/card-parser/internal/entity"
)

func weaponPage(rows string) string {
	return "Weapon Range Evasion Damage Penetration Abilities\n" +
		rows +
		"MOVEMENT DEXTERITY ATTACK PROTECTION MIND\n4 3 2 1 5"
}

func TestParse_FullRow(t *testing.T) {
	got := Parse(weaponPage("Rapier 1\" 3 4 1 Parry\n"))

	require.Len(t, got, 1)
	assert.Equal(t, entity.WeaponEntry{
		Name:        "Rapier",
		Range:       `1"`,
		Evasion:     "3",
		Damage:      "4",
		Penetration: "1",
		Abilities:   "Parry",
	}, got[0])
}

func TestParse_DashesNormalizeToZero(t *testing.T) {
	got := Parse(weaponPage("Poisoned Needle 0\" - - -1 Poisoned\n"))

	require.Len(t, got, 1)
	assert.Equal(t, entity.WeaponEntry{
		Name:        "Poisoned Needle",
		Range:       `0"`,
		Evasion:     "0",
		Damage:      "0",
		Penetration: "-1",
		Abilities:   "Poisoned",
	}, got[0])
}

func TestParse_ContinuationLinesAreDropped(t *testing.T) {
	got := Parse(weaponPage("Rapier 1\" 3 4 1 Parry\nsome wrapped ability text\n"))

	require.Len(t, got, 1)
	assert.Equal(t, "Rapier", got[0].Name)
}

func TestParse_MultipleRows(t *testing.T) {
	got := Parse(weaponPage("Rapier 1\" 3 4 1 Parry\nPistol 9\" 2 5 2 Loud\n"))

	require.Len(t, got, 2)
	assert.Equal(t, "Rapier", got[0].Name)
	assert.Equal(t, "Pistol", got[1].Name)
	assert.Equal(t, `9"`, got[1].Range)
}

func TestParse_NoWeaponSection(t *testing.T) {
	got := Parse("a page without a weapon table")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
