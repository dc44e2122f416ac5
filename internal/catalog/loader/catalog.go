package loader

import (
	"context"

	"github.com/catalog-explorer/server/internal/catalog/model"
	errx "github.com/catalog-explorer/server/internal/core/error"
	logx "github.com/catalog-explorer/server/pkg/logger"
)

// Source yields the raw catalog records.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]*model.RawRecord, error)
}

// Catalog is the normalized product list. It is never modified after New,
// so it can be shared between callers without locking.
type Catalog struct {
	products []model.Product
}

// New builds a catalog over products; the slice is copied.
func New(products []model.Product) *Catalog {
	c := &Catalog{products: make([]model.Product, len(products))}
	copy(c.products, products)
	return c
}

// Load fetches raw records from src and normalizes them once.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	raw, err := src.Fetch(ctx)
	if err != nil {
		logx.Error().Err(err).Str("source", src.Name()).Msg("failed to fetch raw catalog")
		return nil, err
	}

	products, stats := normalize(raw)
	logx.Info().
		Str("source", src.Name()).
		Int("raw", stats.Raw).
		Int("kept", stats.Kept).
		Int("sections", stats.Sections).
		Int("unnamed", stats.Unnamed).
		Msg("catalog loaded")

	if stats.Kept == 0 {
		logx.Warn().Str("source", src.Name()).Msg("catalog has no products")
	}

	return &Catalog{products: products}, nil
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy of the catalog in load order.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Names lists product names in catalog order. Duplicate names are repeated.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.products))
	for i, p := range c.products {
		names[i] = p.Name
	}
	return names
}

// At returns the product at catalog position i.
func (c *Catalog) At(i int) (model.Product, bool) {
	if i < 0 || i >= len(c.products) {
		return model.Product{}, false
	}
	return c.products[i], true
}

// Lookup returns the first product in catalog order named exactly name.
func (c *Catalog) Lookup(name string) (model.Product, error) {
	for _, p := range c.products {
		if p.Name == name {
			return p, nil
		}
	}
	return model.Product{}, errx.NotFound(name)
}
