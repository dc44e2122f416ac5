package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/catalog-explorer/server/internal/catalog/explorer"
	"github.com/catalog-explorer/server/internal/catalog/loader"
	"github.com/catalog-explorer/server/internal/catalog/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type GetProductDetailsInput struct {
	Name string `json:"name"`
}

type PricingOutput struct {
	PriceDifference      float64 `json:"price_difference"`
	PercentReduction     float64 `json:"percent_reduction"`
	LoyaltyDiscount      float64 `json:"loyalty_discount"`
	TotalDiscountPercent float64 `json:"total_discount_percent"`
	SellingPrice         float64 `json:"selling_price"`
}

// GetProductDetailsOutput uses null for prices that could not be read.
type GetProductDetailsOutput struct {
	Name               string                              `json:"name"`
	MRP                model.Price                         `json:"mrp"`
	DP                 model.Price                         `json:"dp"`
	RetailPrice        model.Price                         `json:"retail_price"`
	Attributes         *orderedmap.OrderedMap[string, any] `json:"attributes"`
	Pricing            *PricingOutput                      `json:"pricing,omitempty"`
	PricingUnavailable string                              `json:"pricing_unavailable,omitempty"`
}

func toDetailsOutput(d *explorer.Details) *GetProductDetailsOutput {
	out := &GetProductDetailsOutput{
		Name:        d.Product.Name,
		MRP:         d.Product.MRP,
		DP:          d.Product.DP,
		RetailPrice: d.RetailPrice,
		Attributes:  d.Product.Attributes,
	}
	if out.Attributes == nil {
		out.Attributes = orderedmap.New[string, any]()
	}
	if d.Pricing != nil {
		out.Pricing = toPricingOutput(d.Pricing)
	}
	if d.Unavailable != nil {
		out.PricingUnavailable = string(d.Unavailable.Reason)
	}
	return out
}

func toPricingOutput(in *model.PricingInsight) *PricingOutput {
	return &PricingOutput{
		PriceDifference:      in.PriceDifference.InexactFloat64(),
		PercentReduction:     in.PercentReduction.InexactFloat64(),
		LoyaltyDiscount:      in.LoyaltyDiscount.InexactFloat64(),
		TotalDiscountPercent: in.TotalDiscountPercent.InexactFloat64(),
		SellingPrice:         in.SellingPrice.InexactFloat64(),
	}
}

func createGetProductDetailsTool(c *loader.Catalog) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "get_product_details",
			Desc: "Get a product's MRP, DP, retail price, descriptive attributes and derived selling price. When MRP or DP is missing or MRP is zero, pricing is omitted and pricing_unavailable says why.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"name": {
					Type:     schema.String,
					Desc:     "Exact product name as returned by list_products. No partial or fuzzy matching.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *GetProductDetailsInput) (*GetProductDetailsOutput, error) {
			if strings.TrimSpace(in.Name) == "" {
				return nil, fmt.Errorf("name is required")
			}

			d, err := explorer.Describe(c, in.Name)
			if err != nil {
				return nil, err
			}
			return toDetailsOutput(d), nil
		},
	)
}
