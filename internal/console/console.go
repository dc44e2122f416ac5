package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/catalog-explorer/server/internal/catalog/explorer"
	"github.com/catalog-explorer/server/internal/catalog/loader"
	"github.com/catalog-explorer/server/internal/catalog/model"
	errx "github.com/catalog-explorer/server/internal/core/error"
	"github.com/catalog-explorer/server/internal/graph/observers"
	"github.com/catalog-explorer/server/internal/graph/tools"
	logx "github.com/catalog-explorer/server/pkg/logger"
	"github.com/cloudwego/eino/components/tool"
)

const prompt = "select a product (number or exact name, \"json <selection>\" or \"json list [n]\" for JSON, q to quit): "

// Console is the interactive product picker.
type Console struct {
	catalog *loader.Catalog
	details tool.InvokableTool
	list    tool.InvokableTool
	in      io.Reader
	out     io.Writer
}

func New(c *loader.Catalog, in io.Reader, out io.Writer) *Console {
	return &Console{
		catalog: c,
		details: tools.NewProductDetailsTool(c),
		list:    tools.NewListProductsTool(c),
		in:      in,
		out:     out,
	}
}

type scanResult struct {
	lines <-chan string
	err   <-chan error
}

// scanLines feeds input lines to a channel so Run can stop on ctx while a
// read is pending. The reader goroutine exits once done is closed and the
// pending read returns.
func (c *Console) scanLines(done <-chan struct{}) scanResult {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		errc <- sc.Err()
	}()
	return scanResult{lines: lines, err: errc}
}

// Run lists the catalog and answers selections until q, end of input or
// ctx is done.
func (c *Console) Run(ctx context.Context) error {
	c.printCatalog()

	done := make(chan struct{})
	defer close(done)
	input := c.scanLines(done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, prompt)

		var raw string
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return ctx.Err()
		case l, ok := <-input.lines:
			if !ok {
				fmt.Fprintln(c.out)
				return <-input.err
			}
			raw = l
		}

		line := strings.TrimSpace(raw)
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "l", "list":
			c.printCatalog()
			continue
		}

		if rest, ok := cutCommand(line, "json"); ok {
			c.printJSON(ctx, rest)
			continue
		}
		c.printSelection(line)
	}
}

func cutCommand(line, cmd string) (string, bool) {
	head, rest, found := strings.Cut(line, " ")
	if !found || !strings.EqualFold(head, cmd) {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func (c *Console) printCatalog() {
	fmt.Fprintf(c.out, "Catalog: %d products\n", c.catalog.Len())
	for i, name := range c.catalog.Names() {
		fmt.Fprintf(c.out, "%4d. %s\n", i+1, name)
	}
}

// resolve maps a selection to a product name. An exact name wins over a
// list number; a list number resolves to the name at that position, so
// duplicate names always show the first match.
func (c *Console) resolve(selection string) (string, error) {
	if _, err := c.catalog.Lookup(selection); err == nil {
		return selection, nil
	}
	if n, err := strconv.Atoi(selection); err == nil {
		if p, ok := c.catalog.At(n - 1); ok {
			return p.Name, nil
		}
	}
	return "", errx.NotFound(selection)
}

func (c *Console) printSelection(selection string) {
	name, err := c.resolve(selection)
	if err != nil {
		c.printError(err)
		return
	}
	d, err := explorer.Describe(c.catalog, name)
	if err != nil {
		c.printError(err)
		return
	}
	c.printDetails(d)
}

func (c *Console) printJSON(ctx context.Context, selection string) {
	if _, err := c.catalog.Lookup(selection); err != nil {
		if rest, ok := listCommand(selection); ok {
			c.printJSONList(ctx, rest)
			return
		}
	}

	name, err := c.resolve(selection)
	if err != nil {
		c.printError(err)
		return
	}
	args, err := json.Marshal(tools.GetProductDetailsInput{Name: name})
	if err != nil {
		c.printError(err)
		return
	}
	out, err := tools.Run(ctx, c.details, string(args), observers.NewToolCallbacks())
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, out)
}

// listCommand matches "list" and "list <n>".
func listCommand(selection string) (string, bool) {
	if strings.EqualFold(selection, "list") {
		return "", true
	}
	return cutCommand(selection, "list")
}

func (c *Console) printJSONList(ctx context.Context, limit string) {
	var in tools.ListProductsInput
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			fmt.Fprintf(c.out, "invalid list size %q\n", limit)
			return
		}
		in.MaxResults = n
	}
	args, err := json.Marshal(in)
	if err != nil {
		c.printError(err)
		return
	}
	out, err := tools.Run(ctx, c.list, string(args), observers.NewToolCallbacks())
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, out)
}

func (c *Console) printError(err error) {
	if errors.Is(err, errx.ErrProductNotFound) {
		fmt.Fprintln(c.out, err.Error())
		return
	}
	logx.Error().Err(err).Msg("selection failed")
	fmt.Fprintf(c.out, "error: %v\n", err)
}

func (c *Console) printDetails(d *explorer.Details) {
	p := d.Product
	fmt.Fprintln(c.out, "### Product Details")
	fmt.Fprintf(c.out, "%s: %s\n", model.FieldName, p.Name)
	fmt.Fprintf(c.out, "%s: %s\n", model.FieldMRP, p.MRP)
	fmt.Fprintf(c.out, "%s: %s\n", model.FieldDP, p.DP)
	fmt.Fprintf(c.out, "Retail Price (RP): %s\n", d.RetailPrice)
	p.EachAttribute(func(key string, value any) {
		fmt.Fprintf(c.out, "%s: %s\n", key, formatValue(value))
	})

	if d.Unavailable != nil {
		fmt.Fprintf(c.out, "pricing unavailable for this product (%s)\n", d.Unavailable.Reason)
		return
	}

	in := d.Pricing
	fmt.Fprintln(c.out, "### Pricing")
	fmt.Fprintf(c.out, "Price difference: %s\n", in.PriceDifference.StringFixed(2))
	fmt.Fprintf(c.out, "Percent reduction: %s%%\n", in.PercentReduction.StringFixed(2))
	fmt.Fprintf(c.out, "Loyalty discount: %s%%\n", in.LoyaltyDiscount.StringFixed(2))
	fmt.Fprintf(c.out, "Total discount: %s%%\n", in.TotalDiscountPercent.StringFixed(2))
	fmt.Fprintf(c.out, "Selling Price (SP): %s\n", in.SellingPrice.StringFixed(2))
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
