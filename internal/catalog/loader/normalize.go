package loader

import (
	"fmt"
	"strconv"

	"github.com/catalog-explorer/server/internal/catalog/model"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Stats counts what Normalize kept and dropped.
type Stats struct {
	Raw      int
	Kept     int
	Sections int
	Unnamed  int
}

// Normalize turns raw records into products, keeping source order.
// Section headers and records without a name are dropped silently, and price
// fields that are not numeric become unknown. raw is not modified.
func Normalize(raw []*model.RawRecord) []model.Product {
	products, _ := normalize(raw)
	return products
}

func normalize(raw []*model.RawRecord) ([]model.Product, Stats) {
	stats := Stats{Raw: len(raw)}
	products := make([]model.Product, 0, len(raw))

	for _, r := range raw {
		if r == nil {
			stats.Unnamed++
			continue
		}
		if isSection(r) {
			stats.Sections++
			continue
		}
		name, ok := productName(r)
		if !ok {
			stats.Unnamed++
			continue
		}

		mrp, _ := r.Get(model.FieldMRP)
		dp, _ := r.Get(model.FieldDP)

		products = append(products, model.Product{
			Name:       name,
			MRP:        model.ParsePrice(mrp),
			DP:         model.ParsePrice(dp),
			Attributes: passThrough(r),
		})
	}

	stats.Kept = len(products)
	return products, stats
}

// isSection is true only for a boolean true flag.
func isSection(r *model.RawRecord) bool {
	v, ok := r.Get(model.FieldIsSection)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func productName(r *model.RawRecord) (string, bool) {
	v, ok := r.Get(model.FieldName)
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return fmt.Sprint(t), true
	}
}

func passThrough(r *model.RawRecord) *model.Attributes {
	attrs := orderedmap.New[string, any]()
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		switch pair.Key {
		case model.FieldIsSection, model.FieldName, model.FieldMRP, model.FieldDP:
			continue
		}
		attrs.Set(pair.Key, pair.Value)
	}
	return attrs
}
