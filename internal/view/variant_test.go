package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emeraldshop/internal/domain"
	"emeraldshop/internal/view"
)

func variants() []domain.Variant {
	return []domain.Variant{
		{ID: "v1", SKU: "TEE-BLK-M", Title: "Black / M", Price: "12.00", CompareAt: "10.00"},
		{ID: "v2", SKU: "TEE-BLK-L", Title: "Black / L", Price: "12.00", CompareAt: "15.00"},
		{ID: "v3", SKU: "TEE-BLK-XL", Title: "Black / XL", Price: "abc"},
	}
}

func TestPickerStartsOnFirstVariant(t *testing.T) {
	p := view.NewVariantPicker("USD", variants(), nil)
	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "v1", cur.ID)
	assert.Equal(t, "12", p.UnitPrice().String())
}

func TestPickerSelectUpdatesPrices(t *testing.T) {
	p := view.NewVariantPicker("USD", variants(), nil)
	p.Select("v2")

	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "v2", cur.ID)
	assert.Equal(t, "$12.00", p.PriceLabel())

	cmp, ok := p.ComparePrice()
	require.True(t, ok)
	assert.Equal(t, "15", cmp.String())
	assert.True(t, p.ShowCompare())
	assert.Equal(t, "$15.00", p.CompareLabel())
}

func TestPickerCompareNotGreaterIsSuppressed(t *testing.T) {
	// v1: price 12.00, compare_at 10.00 — present but not greater.
	p := view.NewVariantPicker("USD", variants(), nil)
	_, ok := p.ComparePrice()
	assert.True(t, ok)
	assert.False(t, p.ShowCompare())
}

func TestPickerUnknownIDRevertsToFirst(t *testing.T) {
	p := view.NewVariantPicker("USD", variants(), nil)
	p.Select("v2")
	p.Select("nope")

	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "v1", cur.ID)
	assert.Equal(t, "nope", p.Selected())
}

func TestPickerUnparseablePriceIsZero(t *testing.T) {
	p := view.NewVariantPicker("USD", variants(), nil)
	p.Select("v3")
	assert.True(t, p.UnitPrice().IsZero())
	assert.Equal(t, "$0.00", p.PriceLabel())
	assert.False(t, p.ShowCompare())
}

func TestPickerNoVariants(t *testing.T) {
	p := view.NewVariantPicker("USD", nil, nil)
	_, ok := p.Current()
	assert.False(t, ok)
	assert.Empty(t, p.Selected())
	assert.True(t, p.UnitPrice().IsZero())
	assert.False(t, p.ShowCompare())
}

func TestPickerNotifiesCallback(t *testing.T) {
	var got []string
	p := view.NewVariantPicker("USD", variants(), func(id string) { got = append(got, id) })

	p.Select("v2")
	p.Select("v2") // re-entrant selection, last write wins
	p.Select("ghost")

	assert.Equal(t, []string{"v2", "v2", "ghost"}, got)
}
