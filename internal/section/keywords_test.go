package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywords_PlainList(t *testing.T) {
	text := "Keywords\n • Duelist • Butcher •\nCharacter Abilities"

	keywords, rank := Keywords(text)
	assert.Equal(t, []string{"Duelist", "Butcher"}, keywords)
	assert.Nil(t, rank)
}

func TestKeywords_RankLineIsSplitOut(t *testing.T) {
	text := "Keywords\n • Duelist • Hero of the Rialto •\nCharacter Abilities"

	keywords, rank := Keywords(text)
	assert.Equal(t, []string{"Duelist"}, keywords)
	require.NotNil(t, rank)
	assert.Equal(t, "Hero of the Rialto", *rank)
}

func TestKeywords_DisciplineKeepsParenthesesAndSpansLines(t *testing.T) {
	text := "Keywords\n • Discipline ( Blood Ri - tes,\nWild Ma - gic ) • Leader •\nCharacter Abilities"

	keywords, rank := Keywords(text)
	assert.Equal(t, []string{"Discipline ( Blood Rites, Wild Magic )"}, keywords)
	require.NotNil(t, rank)
	assert.Equal(t, "Leader", *rank)
}

func TestKeywords_DropsNoiseFragments(t *testing.T) {
	text := "Keywords\n • Duelist • ab • The Guild Faction •\nCharacter Abilities"

	keywords, _ := Keywords(text)
	assert.Equal(t, []string{"Duelist"}, keywords)
}

func TestKeywords_StripsPlainParentheticals(t *testing.T) {
	text := "Keywords\n • Butcher (see rulebook) •\nCharacter Abilities"

	keywords, _ := Keywords(text)
	assert.Equal(t, []string{"Butcher"}, keywords)
}

func TestKeywords_NoZone(t *testing.T) {
	keywords, rank := Keywords("no keyword section at all")
	assert.Nil(t, keywords)
	assert.Nil(t, rank)
}
