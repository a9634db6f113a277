package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"emeraldshop/internal/gateway"
)

const productJSON = `{
	"id": "tee-001",
	"title": "Organic Cotton Tee",
	"slug": "organic-cotton-tee",
	"status": "active",
	"default_currency": "USD",
	"variants": [
		{"id": "v1", "sku": "TEE-BLK-M", "title": "Black / M", "price": "19.99"},
		{"id": "v2", "sku": "TEE-BLK-L", "title": "Black / L", "price": "21.99", "compare_at": "29.99"}
	]
}`

func TestFetchProduct(t *testing.T) {
	catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/catalog/products/tee-001":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(productJSON))
		case "/catalog/products/gone":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer catalog.Close()

	c := gateway.New(catalog.URL, "http://media.invalid", 30*time.Second, 2*time.Second)

	p, err := c.FetchProduct(context.Background(), "tee-001")
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "Organic Cotton Tee" || len(p.Variants) != 2 {
		t.Fatalf("unexpected product: %+v", p)
	}
	if p.Variants[1].CompareAt != "29.99" {
		t.Fatalf("compare_at not decoded: %+v", p.Variants[1])
	}

	if _, err := c.FetchProduct(context.Background(), "gone"); !errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	if _, err := c.FetchProduct(context.Background(), "boom"); err == nil || errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("server error must be fatal, got %v", err)
	}
}

func TestFetchProductReusesCachedResponse(t *testing.T) {
	var hits int32
	catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(productJSON))
	}))
	defer catalog.Close()

	c := gateway.New(catalog.URL, "http://media.invalid", time.Minute, 2*time.Second)
	for i := 0; i < 3; i++ {
		if _, err := c.FetchProduct(context.Background(), "tee-001"); err != nil {
			t.Fatal(err)
		}
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("want 1 upstream hit within the revalidation window, got %d", n)
	}
}

func TestFetchImagesResolvesAgainstMediaBase(t *testing.T) {
	media := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/tee-001/images" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"items":[{"url":"/media/products/tee-001/000001-front.jpg","alt":"Front"},{"url":"/media/products/tee-001/000002-back.jpg"}]}`))
	}))
	defer media.Close()

	c := gateway.New("http://catalog.invalid", media.URL, 30*time.Second, 2*time.Second)
	imgs := c.FetchImages(context.Background(), "tee-001")
	if len(imgs) != 2 {
		t.Fatalf("want 2 images, got %d", len(imgs))
	}
	if imgs[0].URL != media.URL+"/media/products/tee-001/000001-front.jpg" {
		t.Fatalf("URL not resolved against media base: %s", imgs[0].URL)
	}
	if imgs[0].Alt != "Front" || imgs[1].Alt != "" {
		t.Fatalf("alt decode wrong: %+v", imgs)
	}
}

func TestFetchImagesDegradesToEmpty(t *testing.T) {
	media := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/p500/images":
			w.WriteHeader(http.StatusInternalServerError)
		case "/products/pbad/images":
			w.Write([]byte(`{"items": "not-a-list"`))
		}
	}))
	defer media.Close()

	c := gateway.New("http://catalog.invalid", media.URL, 30*time.Second, 2*time.Second)

	if imgs := c.FetchImages(context.Background(), "p500"); len(imgs) != 0 {
		t.Fatalf("HTTP 500 must degrade to empty, got %v", imgs)
	}
	if imgs := c.FetchImages(context.Background(), "pbad"); len(imgs) != 0 {
		t.Fatalf("malformed body must degrade to empty, got %v", imgs)
	}

	// Unreachable host: transport errors degrade the same way.
	down := gateway.New("http://catalog.invalid", "http://127.0.0.1:1", 30*time.Second, time.Second)
	if imgs := down.FetchImages(context.Background(), "p1"); len(imgs) != 0 {
		t.Fatalf("transport failure must degrade to empty, got %v", imgs)
	}
}
