// Package ingest discovers faction text files and watches them for changes.
// File layout and the extraction step that produces these files are external
// collaborators; this package only finds their output.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TextFileSuffix is the naming convention of the extraction step's output.
const TextFileSuffix = "_extracted_text.json"

// FactionFile pairs a faction name with its extracted-text file.
type FactionFile struct {
	Faction string
	Path    string
}

// Discover lists the faction text files under dir, sorted by faction name.
func Discover(dir string) ([]FactionFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var out []FactionFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), TextFileSuffix) {
			continue
		}
		out = append(out, FactionFile{
			Faction: FactionName(e.Name()),
			Path:    filepath.Join(dir, e.Name()),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Faction < out[j].Faction })
	return out, nil
}

// FactionName derives the faction name from a text-file name by stripping
// the conventional suffix: "The_Guild_extracted_text.json" -> "The_Guild".
func FactionName(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), TextFileSuffix)
}
