package services

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"emeraldshop/internal/domain"
	"emeraldshop/internal/money"
)

// Fetcher is what the page composer needs from the remote gateway.
type Fetcher interface {
	FetchProduct(ctx context.Context, id string) (domain.Product, error)
	FetchImages(ctx context.Context, productID string) []domain.GalleryImage
}

// Placeholder shown when the media service has nothing for a product.
var placeholderImage = domain.GalleryImage{URL: "/static/placeholder.svg", Alt: "No image"}

// ProductPage is the render-ready merge of catalog and media data.
type ProductPage struct {
	Product       domain.Product
	Images        []domain.GalleryImage // never empty
	MinPrice      decimal.Decimal
	HasMinPrice   bool
	ShowFromPrice bool   // multi-variant products only
	FromLabel     string // e.g. "$9.50", empty unless ShowFromPrice
}

type PageService struct {
	Remote Fetcher
}

func NewPageService(remote Fetcher) *PageService { return &PageService{Remote: remote} }

// ProductPage fetches catalog and media data concurrently and joins the
// results. The media branch can only ever contribute an empty slice on
// failure; a catalog failure aborts the whole composition.
func (s *PageService) ProductPage(ctx context.Context, id string) (ProductPage, error) {
	var (
		product domain.Product
		images  []domain.GalleryImage
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		product, err = s.Remote.FetchProduct(ctx, id)
		return err
	})
	g.Go(func() error {
		images = s.Remote.FetchImages(ctx, id)
		return nil
	})
	if err := g.Wait(); err != nil {
		return ProductPage{}, err
	}

	if len(images) == 0 {
		images = []domain.GalleryImage{placeholderImage}
	}

	page := ProductPage{Product: product, Images: images}
	page.MinPrice, page.HasMinPrice = MinVariantPrice(product.Variants)
	page.ShowFromPrice = page.HasMinPrice && len(product.Variants) > 1
	if page.ShowFromPrice {
		page.FromLabel = money.Format(page.MinPrice, product.DefaultCurrency)
	}
	return page, nil
}

// MinVariantPrice is the lowest parseable variant price. Variants whose
// price text doesn't parse are skipped, never an error; ok is false when
// nothing parses.
func MinVariantPrice(variants []domain.Variant) (min decimal.Decimal, ok bool) {
	for _, v := range variants {
		d, err := decimal.NewFromString(v.Price)
		if err != nil {
			continue
		}
		if !ok || d.LessThan(min) {
			min = d
			ok = true
		}
	}
	return min, ok
}
