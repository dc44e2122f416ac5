package pricing

import (
	"fmt"

	"github.com/catalog-explorer/server/internal/catalog/model"
	errx "github.com/catalog-explorer/server/internal/core/error"
	"github.com/shopspring/decimal"
)

const places = 2

var (
	// LoyaltyDiscount is the flat percentage every customer gets on top of
	// the MRP/DP reduction.
	LoyaltyDiscount = decimal.RequireFromString("25.00")

	// RetailShare is the fraction of DP quoted as the retail price.
	RetailShare = decimal.RequireFromString("0.40")

	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Reason says why no insight could be derived.
type Reason string

const (
	ReasonUnknownMRP Reason = "mrp unknown"
	ReasonUnknownDP  Reason = "dp unknown"
	ReasonZeroMRP    Reason = "mrp is zero"
)

// UnavailableError is returned by Derive for degenerate price inputs.
type UnavailableError struct {
	Product string
	Reason  Reason
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("pricing unavailable for %q: %s", e.Product, e.Reason)
}

func (e *UnavailableError) Unwrap() error {
	return errx.Unavailable(string(e.Reason))
}

// round rounds half away from zero.
func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(places)
}

// Derive computes the pricing insight of p. Each step is rounded to two
// decimals before the next one uses it, so the selling price can differ from
// the unrounded formula by a cent.
func Derive(p model.Product) (model.PricingInsight, error) {
	mrp, ok := p.MRP.Amount()
	if !ok {
		return model.PricingInsight{}, &UnavailableError{Product: p.Name, Reason: ReasonUnknownMRP}
	}
	dp, ok := p.DP.Amount()
	if !ok {
		return model.PricingInsight{}, &UnavailableError{Product: p.Name, Reason: ReasonUnknownDP}
	}
	if mrp.IsZero() {
		return model.PricingInsight{}, &UnavailableError{Product: p.Name, Reason: ReasonZeroMRP}
	}

	diff := round(mrp.Sub(dp))
	pct := round(diff.Div(mrp).Mul(hundred))
	total := round(LoyaltyDiscount.Add(pct))
	selling := round(mrp.Mul(one.Sub(total.Div(hundred))))

	return model.PricingInsight{
		PriceDifference:      diff,
		PercentReduction:     pct,
		LoyaltyDiscount:      LoyaltyDiscount,
		TotalDiscountPercent: total,
		SellingPrice:         selling,
	}, nil
}

// RetailPrice is 40% of DP rounded to two decimals, unknown when DP is.
func RetailPrice(dp model.Price) model.Price {
	amount, ok := dp.Amount()
	if !ok {
		return model.Unknown()
	}
	return model.Known(round(amount.Mul(RetailShare)))
}
