package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CARDS_TEXT_DIR", "")
	t.Setenv("CARDS_REFERENCE", "")
	t.Setenv("CARDS_OUT_DIR", "")
	t.Setenv("CARDS_WORKERS", "")
	t.Setenv("CARDS_WATCH_DEBOUNCE", "")

	cfg := LoadConfig()

	assert.Equal(t, "", cfg.Paths.TextDir)
	assert.Equal(t, "parsed_abilities.json", cfg.Paths.ReferencePath)
	assert.Equal(t, 1, cfg.Parser.Workers)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CARDS_TEXT_DIR", "/data/text")
	t.Setenv("CARDS_REFERENCE", "/data/abilities.json")
	t.Setenv("CARDS_WORKERS", "4")
	t.Setenv("CARDS_WATCH_DEBOUNCE", "2s")

	cfg := LoadConfig()

	assert.Equal(t, "/data/text", cfg.Paths.TextDir)
	assert.Equal(t, "/data/abilities.json", cfg.Paths.ReferencePath)
	assert.Equal(t, 4, cfg.Parser.Workers)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
}

func TestLoadConfig_BadValuesFallBack(t *testing.T) {
	t.Setenv("CARDS_WORKERS", "lots")
	t.Setenv("CARDS_WATCH_DEBOUNCE", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 1, cfg.Parser.Workers)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce)
}
