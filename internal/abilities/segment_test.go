package abilities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carnevale-tools/card-parser/internal/reference"
)

func TestSegment_SplitsRunTogetherAbilities(t *testing.T) {
	ref := reference.New([]string{"Engage", "Expert Grappler (X)"}, nil)

	got := Segment("EngageExpert Grappler (2)", ref)
	assert.Equal(t, []string{"Engage", "Expert Grappler (2)"}, got)
}

func TestSegment_KeepsSourceOrder(t *testing.T) {
	ref := reference.New([]string{"Engage", "Expert Grappler (X)"}, nil)

	got := Segment("Engage Expert Grappler (2)", ref)
	assert.Equal(t, []string{"Engage", "Expert Grappler (2)"}, got)
}

func TestSegment_NumberedPayloadWinsOverBareName(t *testing.T) {
	ref := reference.New([]string{"Fear (X)"}, nil)

	got := Segment("Fear (3)", ref)
	assert.Equal(t, []string{"Fear (3)"}, got)
}

func TestSegment_LongestEntryFirst(t *testing.T) {
	// "Engage" must not be cut out of "Engage the Enemy" when the longer
	// entry also applies.
	ref := reference.New([]string{"Engage", "Engage the Enemy"}, nil)

	got := Segment("Engage the Enemy", ref)
	assert.Equal(t, []string{"Engage the Enemy"}, got)
}

func TestSegment_PrefixNeedsBoundary(t *testing.T) {
	ref := reference.New([]string{"Engage"}, nil)

	// "Engagement" is not "Engage" followed by a new token.
	got := Segment("Engagement", ref)
	assert.Equal(t, []string{"Engagement"}, got)
}

func TestSegment_LeftoverBecomesFinalFragment(t *testing.T) {
	ref := reference.New([]string{"Engage"}, nil)

	got := Segment("EngageSomething Weird", ref)
	assert.Equal(t, []string{"Engage", "Something Weird"}, got)
}

func TestSegment_EmptyReferencePassesBlobThrough(t *testing.T) {
	got := Segment("whatever text", reference.Empty())
	assert.Equal(t, []string{"whatever text"}, got)
}

func TestSegment_Deterministic(t *testing.T) {
	ref := reference.New([]string{"Engage", "Expert Grappler (X)", "Fear (X)"}, nil)
	blob := "Fear (2) Engage Expert Grappler (4)"

	first := Segment(blob, ref)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Segment(blob, ref))
	}
}
