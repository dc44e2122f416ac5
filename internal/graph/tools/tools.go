package tools

import (
	"context"

	"github.com/catalog-explorer/server/internal/catalog/loader"
	"github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
	"github.com/cloudwego/eino/components/tool"
)

// NewCatalogTools returns the read-only catalog tools bound to c.
func NewCatalogTools(c *loader.Catalog) []tool.InvokableTool {
	return []tool.InvokableTool{
		createListProductsTool(c),
		createGetProductDetailsTool(c),
	}
}

// NewProductDetailsTool returns only get_product_details, for surfaces that
// render its JSON directly.
func NewProductDetailsTool(c *loader.Catalog) tool.InvokableTool {
	return createGetProductDetailsTool(c)
}

// NewListProductsTool returns only list_products.
func NewListProductsTool(c *loader.Catalog) tool.InvokableTool {
	return createListProductsTool(c)
}

// Run invokes t outside a compose graph, reporting the call to handlers the
// same way a ToolsNode would.
func Run(ctx context.Context, t tool.InvokableTool, argumentsInJSON string, handlers ...callbacks.Handler) (string, error) {
	info, err := t.Info(ctx)
	if err != nil {
		return "", err
	}

	ctx = callbacks.InitCallbacks(ctx, &callbacks.RunInfo{
		Name:      info.Name,
		Type:      "Catalog",
		Component: components.ComponentOfTool,
	}, handlers...)
	ctx = callbacks.OnStart(ctx, &tool.CallbackInput{ArgumentsInJSON: argumentsInJSON})

	out, err := t.InvokableRun(ctx, argumentsInJSON)
	if err != nil {
		callbacks.OnError(ctx, err)
		return "", err
	}
	callbacks.OnEnd(ctx, &tool.CallbackOutput{Response: out})
	return out, nil
}
