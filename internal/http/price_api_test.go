package handlers_test

import (
	"encoding/json"
	"testing"
)

func TestPriceQuoteDefaultsToFirstVariant(t *testing.T) {
	app := newApp(catalogStub(t).URL, mediaStub(t).URL)

	status, body := get(t, app, "/api/v1/price?product=tee-001")
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	var resp map[string]any
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("bad JSON: %v; body=%s", err, body)
	}
	if resp["variant_id"] != "v1" || resp["unit_label"] != "$19.99" {
		t.Fatalf("unexpected quote: %v", resp)
	}
	if resp["show_compare"] != false {
		t.Fatalf("no compare price seeded, show_compare must be false: %v", resp)
	}
}

func TestPriceQuoteSelectsVariant(t *testing.T) {
	app := newApp(catalogStub(t).URL, mediaStub(t).URL)

	status, body := get(t, app, "/api/v1/price?product=tee-001&variant=v3")
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	var resp map[string]any
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["variant_id"] != "v3" || resp["unit_label"] != "$9.50" {
		t.Fatalf("unexpected quote: %v", resp)
	}
}

func TestPriceQuoteUnknownVariantFallsBack(t *testing.T) {
	app := newApp(catalogStub(t).URL, mediaStub(t).URL)

	status, body := get(t, app, "/api/v1/price?product=tee-001&variant=ghost")
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	var resp map[string]any
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["variant_id"] != "v1" {
		t.Fatalf("unknown variant must fall back to the first: %v", resp)
	}
}

func TestPriceQuoteErrors(t *testing.T) {
	app := newApp(catalogStub(t).URL, mediaStub(t).URL)

	if status, _ := get(t, app, "/api/v1/price?product=gone"); status != 404 {
		t.Fatalf("expected 404 for unknown product, got %d", status)
	}
	if status, _ := get(t, app, "/api/v1/price"); status != 400 {
		t.Fatalf("expected 400 for missing product id, got %d", status)
	}
}
