package model

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Field names of the raw catalog file.
const (
	FieldIsSection = "is_section"
	FieldName      = "Product and Net Content"
	FieldMRP       = "MRP(Rs.)"
	FieldDP        = "DP(Rs.)"
)

// RawRecord is one object of the raw catalog in source field order. It is
// either a section header or a product.
type RawRecord = orderedmap.OrderedMap[string, any]

// Attributes holds the pass-through descriptive fields of a product.
type Attributes = orderedmap.OrderedMap[string, any]

// NewRawRecord builds a record from alternating key/value pairs.
func NewRawRecord(kv ...any) *RawRecord {
	r := orderedmap.New[string, any]()
	for i := 0; i+1 < len(kv); i += 2 {
		r.Set(kv[i].(string), kv[i+1])
	}
	return r
}

// Product is a normalized catalog entry.
type Product struct {
	Name       string
	MRP        Price
	DP         Price
	Attributes *Attributes
}

// Attribute returns a pass-through field by name.
func (p Product) Attribute(key string) (any, bool) {
	if p.Attributes == nil {
		return nil, false
	}
	return p.Attributes.Get(key)
}

// EachAttribute visits the pass-through fields in source order.
func (p Product) EachAttribute(fn func(key string, value any)) {
	if p.Attributes == nil {
		return
	}
	for pair := p.Attributes.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}
