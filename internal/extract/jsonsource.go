package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/carnevale-tools/card-parser/internal/common"
	"github.com/carnevale-tools/card-parser/internal/entity"
)

// JSONSource reads pre-extracted page text from the JSON files the
// extraction step writes: a list of {"page": n, "text": "..."} objects.
type JSONSource struct{}

// Pages loads and orders the page list from path.
func (JSONSource) Pages(ctx context.Context, path string) ([]entity.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pages: %w", err)
	}
	var pages []entity.Page
	if err := json.Unmarshal(raw, &pages); err != nil {
		return nil, fmt.Errorf("decode pages %s: %w", path, err)
	}
	for i, p := range pages {
		if p.Page < 1 {
			return nil, fmt.Errorf("pages %s: entry %d has page number %d: %w", path, i, p.Page, common.ErrInvalidInput)
		}
	}
	sort.SliceStable(pages, func(i, j int) bool { return pages[i].Page < pages[j].Page })
	return pages, nil
}
