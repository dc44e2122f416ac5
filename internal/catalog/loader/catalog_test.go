package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/catalog-explorer/server/internal/catalog/model"
	errx "github.com/catalog-explorer/server/internal/core/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	records []*model.RawRecord
	err     error
}

func (s stubSource) Name() string { return "stub" }

func (s stubSource) Fetch(ctx context.Context) ([]*model.RawRecord, error) {
	return s.records, s.err
}

func TestLoad(t *testing.T) {
	src := stubSource{records: []*model.RawRecord{
		model.NewRawRecord(model.FieldIsSection, true),
		model.NewRawRecord(model.FieldName, "Soap", model.FieldMRP, "100", model.FieldDP, "60"),
		model.NewRawRecord(model.FieldName, "Shampoo", model.FieldMRP, 250.0, model.FieldDP, 180.0),
	}}

	c, err := Load(context.Background(), src)

	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"Soap", "Shampoo"}, c.Names())
}

func TestLoad_SourceError(t *testing.T) {
	boom := errors.New("boom")

	c, err := Load(context.Background(), stubSource{err: boom})

	assert.Nil(t, c)
	assert.ErrorIs(t, err, boom)
}

func TestLookup_FirstMatchWins(t *testing.T) {
	c := New(Normalize([]*model.RawRecord{
		model.NewRawRecord(model.FieldName, "Aloe Gel", model.FieldMRP, "300", model.FieldDP, "200"),
		model.NewRawRecord(model.FieldName, "Hair Oil", model.FieldMRP, "150", model.FieldDP, "100"),
		model.NewRawRecord(model.FieldName, "Aloe Gel", model.FieldMRP, "999", model.FieldDP, "1"),
	}))

	require.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"Aloe Gel", "Hair Oil", "Aloe Gel"}, c.Names())

	p, err := c.Lookup("Aloe Gel")
	require.NoError(t, err)
	assert.True(t, p.MRP.Equal(model.KnownFloat(300)), "got mrp %s", p.MRP)
	assert.True(t, p.DP.Equal(model.KnownFloat(200)), "got dp %s", p.DP)

	second, ok := c.At(2)
	require.True(t, ok)
	assert.True(t, second.MRP.Equal(model.KnownFloat(999)))
}

func TestLookup_ExactNameOnly(t *testing.T) {
	c := New(Normalize([]*model.RawRecord{
		model.NewRawRecord(model.FieldName, "Aloe Gel"),
	}))

	for _, name := range []string{"aloe gel", "Aloe", "Aloe Gel ", ""} {
		_, err := c.Lookup(name)
		require.Error(t, err, name)
		assert.ErrorIs(t, err, errx.ErrProductNotFound)
		assert.Equal(t, errx.KindNotFound, errx.KindOf(err))
	}
}

func TestCatalog_IsNotAffectedByCallers(t *testing.T) {
	products := Normalize([]*model.RawRecord{
		model.NewRawRecord(model.FieldName, "Soap"),
	})
	c := New(products)

	products[0].Name = "changed"
	got := c.Products()
	got[0].Name = "changed again"

	assert.Equal(t, []string{"Soap"}, c.Names())
	_, ok := c.At(1)
	assert.False(t, ok)
	_, ok = c.At(-1)
	assert.False(t, ok)
}
