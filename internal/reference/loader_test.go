package reference

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeDictionary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parsed_abilities.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidDictionary(t *testing.T) {
	path := writeDictionary(t, `{
		"common_abilities": ["Engage", "Expert Grappler (X)"],
		"weapon_abilities": ["Poisoned"]
	}`)

	ref, err := Load(path, testLogger())
	require.NoError(t, err)
	require.Len(t, ref.Common, 2)
	require.Len(t, ref.Weapon, 1)
	assert.Equal(t, "Engage", ref.Match("Engage"))
}

func TestLoad_MissingFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	ref, err := Load(path, testLogger())
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Empty(t, ref.Common)
	assert.Equal(t, "", ref.Match("Engage"))
}

func TestLoad_MalformedJSONIsAnError(t *testing.T) {
	path := writeDictionary(t, `{"common_abilities": [`)

	_, err := Load(path, testLogger())
	require.Error(t, err)
}

func TestLoad_SchemaViolationIsAnError(t *testing.T) {
	path := writeDictionary(t, `{"common_abilities": "not an array"}`)

	_, err := Load(path, testLogger())
	require.Error(t, err)
}

func TestLoad_UnknownKeyIsAnError(t *testing.T) {
	path := writeDictionary(t, `{"common_abilities": [], "extra": true}`)

	_, err := Load(path, testLogger())
	require.Error(t, err)
}
