package model

import "github.com/shopspring/decimal"

// PricingInsight is derived per lookup from a product's MRP and DP and is
// never stored. Every field is already rounded to two decimals.
type PricingInsight struct {
	PriceDifference      decimal.Decimal
	PercentReduction     decimal.Decimal
	LoyaltyDiscount      decimal.Decimal
	TotalDiscountPercent decimal.Decimal
	SellingPrice         decimal.Decimal
}
