package explorer

import (
	"errors"

	"github.com/catalog-explorer/server/internal/catalog/loader"
	"github.com/catalog-explorer/server/internal/catalog/model"
	"github.com/catalog-explorer/server/internal/catalog/pricing"
	logx "github.com/catalog-explorer/server/pkg/logger"
)

// Details is everything shown for one selected product.
type Details struct {
	Product     model.Product
	RetailPrice model.Price

	// Exactly one of Pricing and Unavailable is set.
	Pricing     *model.PricingInsight
	Unavailable *pricing.UnavailableError
}

// Describe looks name up in c and derives its prices. A product whose
// prices cannot be derived still describes successfully, with Unavailable set.
func Describe(c *loader.Catalog, name string) (*Details, error) {
	p, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	return Of(p), nil
}

// Of builds the details of a product already in hand.
func Of(p model.Product) *Details {
	d := &Details{
		Product:     p,
		RetailPrice: pricing.RetailPrice(p.DP),
	}

	insight, err := pricing.Derive(p)
	var unavailable *pricing.UnavailableError
	switch {
	case err == nil:
		d.Pricing = &insight
	case errors.As(err, &unavailable):
		logx.Debug().Str("product", p.Name).Str("reason", string(unavailable.Reason)).Msg("pricing unavailable")
		d.Unavailable = unavailable
	}
	return d
}
