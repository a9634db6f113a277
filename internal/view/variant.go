// Package view holds the per-page interaction state for the product
// detail page: which variant is selected and which gallery image is
// active. Each value is owned by a single page render; nothing here is
// shared across requests, so no locking is needed.
package view

import (
	"github.com/shopspring/decimal"

	"emeraldshop/internal/domain"
	"emeraldshop/internal/money"
)

// SelectFunc is notified after every variant selection with the requested
// variant id. It is the only hook cart or wishlist features attach to;
// the picker itself never mutates anything beyond its own state.
type SelectFunc func(variantID string)

type VariantPicker struct {
	currency string
	variants []domain.Variant
	selected string
	onSelect SelectFunc
}

// NewVariantPicker starts with the first variant in display order
// selected, or nothing when the product has no variants.
func NewVariantPicker(currency string, variants []domain.Variant, onSelect SelectFunc) *VariantPicker {
	p := &VariantPicker{currency: currency, variants: variants, onSelect: onSelect}
	if len(variants) > 0 {
		p.selected = variants[0].ID
	}
	return p
}

// Select records the requested id, last write wins. Unknown ids are kept
// as-is; Current resolves them back to the first variant.
func (p *VariantPicker) Select(variantID string) {
	p.selected = variantID
	if p.onSelect != nil {
		p.onSelect(variantID)
	}
}

func (p *VariantPicker) Selected() string { return p.selected }

func (p *VariantPicker) Variants() []domain.Variant { return p.variants }

// Current resolves the active variant: the one matching the selected id,
// else the first variant, else nothing for variant-less products.
func (p *VariantPicker) Current() (domain.Variant, bool) {
	for _, v := range p.variants {
		if v.ID == p.selected {
			return v, true
		}
	}
	if len(p.variants) > 0 {
		return p.variants[0], true
	}
	return domain.Variant{}, false
}

// CurrentVariant is Current for templates, which can't take two returns.
func (p *VariantPicker) CurrentVariant() domain.Variant {
	v, _ := p.Current()
	return v
}

// UnitPrice is the active variant's parsed price. Unparseable text and
// the no-variant case both yield zero so a price slot never shows junk.
func (p *VariantPicker) UnitPrice() decimal.Decimal {
	v, ok := p.Current()
	if !ok {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v.Price)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ComparePrice is the active variant's "was" price, when present and
// parseable.
func (p *VariantPicker) ComparePrice() (decimal.Decimal, bool) {
	v, ok := p.Current()
	if !ok || v.CompareAt == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(v.CompareAt)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ShowCompare reports whether the struck-through comparison label should
// render: only for a present compare price strictly above the unit price.
func (p *VariantPicker) ShowCompare() bool {
	cmp, ok := p.ComparePrice()
	return ok && cmp.GreaterThan(p.UnitPrice())
}

func (p *VariantPicker) PriceLabel() string {
	return money.Format(p.UnitPrice(), p.currency)
}

func (p *VariantPicker) CompareLabel() string {
	cmp, ok := p.ComparePrice()
	if !ok {
		return ""
	}
	return money.Format(cmp, p.currency)
}
