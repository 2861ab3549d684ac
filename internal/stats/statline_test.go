package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStatBlock_HeadedForm(t *testing.T) {
	text := "MOVEMENT DEXTERITY ATTACK PROTECTION MIND\n4 3 2 1 5\nKeywords"

	sb := DecodeStatBlock(text)
	require.False(t, sb.IsEmpty())
	assert.Equal(t, 4, *sb.Movement)
	assert.Equal(t, 3, *sb.Dexterity)
	assert.Equal(t, 2, *sb.Attack)
	assert.Equal(t, 1, *sb.Protection)
	assert.Equal(t, 5, *sb.Mind)
}

func TestDecodeStatBlock_FallbackTakesLastFiveNumbers(t *testing.T) {
	text := "some 9 noise 8 then 4 3 2 1 5"

	sb := DecodeStatBlock(text)
	require.False(t, sb.IsEmpty())
	assert.Equal(t, 4, *sb.Movement)
	assert.Equal(t, 5, *sb.Mind)
}

func TestDecodeStatBlock_TooFewNumbersStaysEmpty(t *testing.T) {
	sb := DecodeStatBlock("only 1 2 3 numbers")
	assert.True(t, sb.IsEmpty())
}
