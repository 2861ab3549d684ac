package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_MessageWithCause(t *testing.T) {
	err := NewAppError("REFERENCE_INVALID", "reference abilities.json", errors.New("boom"))

	assert.Equal(t, "REFERENCE_INVALID: reference abilities.json: boom", err.Error())
	assert.EqualError(t, errors.Unwrap(err), "boom")
}

func TestAppError_MessageWithoutCause(t *testing.T) {
	err := NewAppError("NOT_FOUND", "no such faction", nil)

	assert.Equal(t, "NOT_FOUND: no such faction", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestWrapError(t *testing.T) {
	base := errors.New("boom")

	wrapped := WrapError(base, "load pages")
	require.Error(t, wrapped)
	assert.EqualError(t, wrapped, "load pages: boom")
	assert.ErrorIs(t, wrapped, base)

	assert.NoError(t, WrapError(nil, "load pages"))
}

func TestSentinelsMatchThroughWrapping(t *testing.T) {
	wrapped := WrapError(ErrInvalidInput, "page 0")
	assert.ErrorIs(t, wrapped, ErrInvalidInput)
}
