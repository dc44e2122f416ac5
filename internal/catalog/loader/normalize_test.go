package loader

import (
	"encoding/json"
	"testing"

	"github.com/catalog-explorer/server/internal/catalog/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRaw(t *testing.T, doc string) []*model.RawRecord {
	t.Helper()
	var raw []*model.RawRecord
	require.NoError(t, json.Unmarshal([]byte(doc), &raw))
	return raw
}

func names(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestNormalize_SectionAndSingleProduct(t *testing.T) {
	raw := decodeRaw(t, `[
		{"is_section": true},
		{"Product and Net Content": "Soap", "MRP(Rs.)": "100", "DP(Rs.)": "60"}
	]`)

	products := Normalize(raw)

	require.Len(t, products, 1)
	assert.Equal(t, "Soap", products[0].Name)
	assert.True(t, products[0].MRP.Equal(model.KnownFloat(100)), "mrp %s", products[0].MRP)
	assert.True(t, products[0].DP.Equal(model.KnownFloat(60)), "dp %s", products[0].DP)
}

func TestNormalize_DropsSections(t *testing.T) {
	raw := decodeRaw(t, `[
		{"is_section": true, "Product and Net Content": "PERSONAL CARE"},
		{"is_section": false, "Product and Net Content": "Shampoo 200ml", "MRP(Rs.)": 250, "DP(Rs.)": 180},
		{"is_section": true, "Product and Net Content": "HOME CARE", "MRP(Rs.)": 1, "DP(Rs.)": 1}
	]`)

	products := Normalize(raw)

	assert.Equal(t, []string{"Shampoo 200ml"}, names(products))
}

func TestNormalize_SectionFlagMustBeBooleanTrue(t *testing.T) {
	raw := decodeRaw(t, `[
		{"is_section": "true", "Product and Net Content": "Quoted flag"},
		{"is_section": 1, "Product and Net Content": "Numeric flag"},
		{"is_section": null, "Product and Net Content": "Null flag"}
	]`)

	products := Normalize(raw)

	assert.Equal(t, []string{"Quoted flag", "Numeric flag", "Null flag"}, names(products))
}

func TestNormalize_DropsRecordsWithoutName(t *testing.T) {
	raw := decodeRaw(t, `[
		{"MRP(Rs.)": "100", "DP(Rs.)": "60"},
		{"Product and Net Content": null, "MRP(Rs.)": "100"},
		null,
		{"Product and Net Content": "", "MRP(Rs.)": "10", "DP(Rs.)": "5"},
		{"Product and Net Content": "Toothpaste 150g", "MRP(Rs.)": "95", "DP(Rs.)": "70"}
	]`)

	products, stats := normalize(raw)

	assert.Equal(t, []string{"", "Toothpaste 150g"}, names(products))
	assert.Equal(t, Stats{Raw: 5, Kept: 2, Sections: 0, Unnamed: 3}, stats)
}

func TestNormalize_PreservesOrderAndDuplicates(t *testing.T) {
	raw := decodeRaw(t, `[
		{"Product and Net Content": "C"},
		{"is_section": true},
		{"Product and Net Content": "A", "MRP(Rs.)": "10", "DP(Rs.)": "5"},
		{"Product and Net Content": "B"},
		{"Product and Net Content": "A", "MRP(Rs.)": "20", "DP(Rs.)": "8"}
	]`)

	products := Normalize(raw)

	assert.Equal(t, []string{"C", "A", "B", "A"}, names(products))
	assert.True(t, products[1].MRP.Equal(model.KnownFloat(10)))
	assert.True(t, products[3].MRP.Equal(model.KnownFloat(20)))
}

func TestNormalize_MalformedPricesBecomeUnknown(t *testing.T) {
	raw := decodeRaw(t, `[
		{"Product and Net Content": "Lotion", "MRP(Rs.)": "N/A", "DP(Rs.)": "abc"},
		{"Product and Net Content": "Balm", "DP(Rs.)": ""},
		{"Product and Net Content": "Oil", "MRP(Rs.)": null, "DP(Rs.)": true}
	]`)

	var products []model.Product
	require.NotPanics(t, func() { products = Normalize(raw) })

	require.Len(t, products, 3)
	for _, p := range products {
		assert.False(t, p.MRP.IsKnown(), "%s mrp", p.Name)
		assert.False(t, p.DP.IsKnown(), "%s dp", p.Name)
	}
}

func TestNormalize_AttributesPassThroughInOrder(t *testing.T) {
	raw := decodeRaw(t, `[
		{"S.No.": 12, "Product and Net Content": "Face Wash 100ml", "Code": "FW100",
		 "MRP(Rs.)": "199", "Category": "Skin", "DP(Rs.)": "150", "is_section": false, "BV": 4.5}
	]`)

	products := Normalize(raw)
	require.Len(t, products, 1)

	var keys []string
	var values []any
	products[0].EachAttribute(func(k string, v any) {
		keys = append(keys, k)
		values = append(values, v)
	})

	assert.Equal(t, []string{"S.No.", "Code", "Category", "BV"}, keys)
	assert.Equal(t, []any{float64(12), "FW100", "Skin", 4.5}, values)

	_, ok := products[0].Attribute(model.FieldIsSection)
	assert.False(t, ok)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	raw := decodeRaw(t, `[
		{"is_section": true},
		{"Product and Net Content": "Soap", "MRP(Rs.)": "100", "DP(Rs.)": "60", "Code": "S1"}
	]`)
	before, err := json.Marshal(raw)
	require.NoError(t, err)

	products := Normalize(raw)
	products[0].Attributes.Set("Code", "changed")

	after, err := json.Marshal(raw)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
	assert.Len(t, raw, 2)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize(decodeRaw(t, `[{"is_section": true}]`)))
}

func TestNormalize_NonStringName(t *testing.T) {
	products := Normalize(decodeRaw(t, `[{"Product and Net Content": 4711}]`))

	require.Len(t, products, 1)
	assert.Equal(t, "4711", products[0].Name)
}
