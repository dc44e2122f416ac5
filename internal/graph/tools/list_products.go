package tools

import (
	"context"

	"github.com/catalog-explorer/server/internal/catalog/loader"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

const (
	DefaultMaxResults = 20
	MaxResultsLimit   = 100
)

// ===================================
// List Products Tool
// ===================================

type ListProductsInput struct {
	MaxResults int `json:"max_results,omitempty"`
}

type ListProductsOutput struct {
	Names []string `json:"names"`
	Total int      `json:"total"`
}

func normalizeMaxResults(n int) int {
	if n <= 0 {
		return DefaultMaxResults
	}
	if n > MaxResultsLimit {
		return MaxResultsLimit
	}
	return n
}

func createListProductsTool(c *loader.Catalog) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: "list_products",
			Desc: "List product names in catalog order. Names are the exact keys accepted by get_product_details. Total is the size of the whole catalog, which may exceed the names returned.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"max_results": {
					Type: schema.Integer,
					Desc: "Maximum number of names to return (default: 20, max: 100)",
				},
			}),
		},
		func(ctx context.Context, in *ListProductsInput) (*ListProductsOutput, error) {
			names := c.Names()
			total := len(names)

			if limit := normalizeMaxResults(in.MaxResults); len(names) > limit {
				names = names[:limit]
			}

			return &ListProductsOutput{
				Names: names,
				Total: total,
			}, nil
		},
	)
}
