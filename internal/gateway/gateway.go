// Package gateway fetches product and image data from the two upstream
// services the storefront composes: the catalog service (system of record
// for products and variants) and the media service (product images).
//
// Successful responses are reused for a bounded revalidation window. The
// cache trades freshness for latency; there is no invalidation protocol.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	cache "github.com/patrickmn/go-cache"

	"emeraldshop/internal/domain"
	applog "emeraldshop/internal/log"
)

// ErrNotFound signals that the catalog has no product with the requested
// id. Callers turn this into a terminal not-found page.
var ErrNotFound = errors.New("product not found")

type Client struct {
	catalogBase string
	mediaBase   string
	http        *http.Client
	catalog     *cache.Cache
	media       *cache.Cache
}

// New builds a client for the given base URLs (no trailing slashes).
// revalidate is the staleness window; timeout bounds each upstream call
// and is owned by this transport layer, not by page composition.
func New(catalogBase, mediaBase string, revalidate, timeout time.Duration) *Client {
	return &Client{
		catalogBase: catalogBase,
		mediaBase:   mediaBase,
		http:        &http.Client{Timeout: timeout},
		catalog:     cache.New(revalidate, 2*revalidate),
		media:       cache.New(revalidate, 2*revalidate),
	}
}

// FetchProduct looks a product up by id. A 404 from the catalog maps to
// ErrNotFound; any other failure is fatal for the page being rendered.
func (c *Client) FetchProduct(ctx context.Context, id string) (domain.Product, error) {
	path := "/catalog/products/" + id
	if v, ok := c.catalog.Get(path); ok {
		applog.Debug("catalog.cache.hit", map[string]any{"path": path})
		return v.(domain.Product), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.catalogBase+path, nil)
	if err != nil {
		return domain.Product{}, fmt.Errorf("catalog: build request: %w", err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return domain.Product{}, fmt.Errorf("catalog: %w", err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return domain.Product{}, ErrNotFound
	case res.StatusCode != http.StatusOK:
		return domain.Product{}, fmt.Errorf("catalog: unexpected status %d", res.StatusCode)
	}

	var p domain.Product
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return domain.Product{}, fmt.Errorf("catalog: decode: %w", err)
	}
	c.catalog.Set(path, p, cache.DefaultExpiration)
	return p, nil
}

// mediaList is the only response shape the media service is trusted to
// produce. Anything that doesn't decode into it degrades to no images.
type mediaList struct {
	Items []struct {
		URL string `json:"url"`
		Alt string `json:"alt"`
	} `json:"items"`
}

// FetchImages returns the product's gallery images. Image absence must
// never break the page, so every failure path yields an empty slice.
func (c *Client) FetchImages(ctx context.Context, productID string) []domain.GalleryImage {
	path := "/products/" + productID + "/images"
	if v, ok := c.media.Get(path); ok {
		applog.Debug("media.cache.hit", map[string]any{"path": path})
		return v.([]domain.GalleryImage)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.mediaBase+path, nil)
	if err != nil {
		return nil
	}
	res, err := c.http.Do(req)
	if err != nil {
		applog.Debug("media.fetch.degraded", map[string]any{"path": path, "err": err.Error()})
		return nil
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		applog.Debug("media.fetch.degraded", map[string]any{"path": path, "status": res.StatusCode})
		return nil
	}

	var list mediaList
	if err := json.NewDecoder(res.Body).Decode(&list); err != nil {
		applog.Debug("media.fetch.degraded", map[string]any{"path": path, "err": err.Error()})
		return nil
	}

	imgs := make([]domain.GalleryImage, 0, len(list.Items))
	for _, it := range list.Items {
		if it.URL == "" {
			continue
		}
		// The media service sends paths relative to its own base.
		imgs = append(imgs, domain.GalleryImage{URL: c.mediaBase + it.URL, Alt: it.Alt})
	}
	c.media.Set(path, imgs, cache.DefaultExpiration)
	return imgs
}
