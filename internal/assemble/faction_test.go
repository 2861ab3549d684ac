package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactionAbility_NameAndDescription(t *testing.T) {
	text := "The Guild\n" +
		"Strength in Numbers\n" +
		"PULSE Command Ability\n" +
		"Friendly characters within 6\" gain +1 Action\nuntil end of turn."

	fa := FactionAbility(text)

	assert.Equal(t, "Strength in Numbers", fa.Name)
	assert.Equal(t, `Friendly characters within 6" gain +1 Action until end of turn.`, fa.Description)
}

func TestFactionAbility_NoiseLineFallsBackToPlaceholder(t *testing.T) {
	text := "May use the following Command Ability\nPULSE Command Ability\nSome effect."

	fa := FactionAbility(text)

	assert.Equal(t, "Unknown Ability", fa.Name)
	assert.Equal(t, "Some effect.", fa.Description)
}

func TestFactionAbility_NoMarkerYieldsZeroValue(t *testing.T) {
	fa := FactionAbility("a page without the marker")
	assert.Equal(t, "", fa.Name)
	assert.Equal(t, "", fa.Description)
}
