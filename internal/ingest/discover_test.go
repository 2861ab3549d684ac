package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover_FindsAndSortsFactionFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"Vatican_extracted_text.json",
		"The_Guild_extracted_text.json",
		"notes.txt",
		"parsed_abilities.json",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("[]"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub_extracted_text.json.d"), 0o755))

	files, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "The_Guild", files[0].Faction)
	assert.Equal(t, filepath.Join(dir, "The_Guild_extracted_text.json"), files[0].Path)
	assert.Equal(t, "Vatican", files[1].Faction)
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestFactionName(t *testing.T) {
	assert.Equal(t, "The_Guild", FactionName("The_Guild_extracted_text.json"))
	assert.Equal(t, "Vatican", FactionName("/data/out/Vatican_extracted_text.json"))
	assert.Equal(t, "plain.json", FactionName("plain.json"))
}
