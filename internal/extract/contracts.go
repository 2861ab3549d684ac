package extract

import (
	"context"

	"github.com/carnevale-tools/card-parser/internal/entity"
)

// PageSource is the text-extraction collaborator boundary: something that
// turns a document path into ordered page text. PDF/image extraction itself
// lives outside this module; the core only consumes its output.
type PageSource interface {
	Pages(ctx context.Context, path string) ([]entity.Page, error)
}
