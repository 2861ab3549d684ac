package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_StripsBullets(t *testing.T) {
	assert.Equal(t, "Engage", Clean("• Engage"))
}

func TestClean_RestoresLostWordBoundary(t *testing.T) {
	assert.Equal(t, "Engage Expert Grappler (2)", Clean("EngageExpert Grappler (2)"))
}

func TestClean_BreaksLineAfterBang(t *testing.T) {
	assert.Equal(t, "Charge!\nNimble", Clean("Charge!Nimble"))
}

func TestClean_IsolatesCommandMarker(t *testing.T) {
	got := Clean("PULSE Command Ability Push every enemy.")
	assert.Equal(t, "PULSE Command Ability\nPush every enemy.", got)
}

func TestClean_CollapsesSpacesButKeepsNewlines(t *testing.T) {
	got := Clean("a  \t b\nc")
	assert.Equal(t, "a b\nc", got)
}

func TestClean_NoPatternIsANoOp(t *testing.T) {
	assert.Equal(t, "plain text", Clean("plain text"))
}

func TestDescription_CollapsesAllWhitespace(t *testing.T) {
	got := Description("  Push  every\nenemy\t within 3\".  ")
	assert.Equal(t, `Push every enemy within 3".`, got)
}

func TestDescription_Empty(t *testing.T) {
	assert.Equal(t, "", Description("   \n\t "))
}
