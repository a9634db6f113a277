package domain

// Product statuses as reported by the catalog service.
const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusArchived = "archived"
)

type Product struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Status          string    `json:"status"` // draft | active | archived
	Description     string    `json:"description"`
	Brand           string    `json:"brand"`
	DefaultCurrency string    `json:"default_currency"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
	Variants        []Variant `json:"variants"` // insertion order = display order
}

// Variant is one purchasable SKU of a product. Prices travel as text so
// the catalog service never coerces them through floating point.
type Variant struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Title       string `json:"title"` // option label, e.g. "Black / M"
	Price       string `json:"price"`
	CompareAt   string `json:"compare_at,omitempty"`
	Barcode     string `json:"barcode,omitempty"`
	WeightGrams int    `json:"weight_grams,omitempty"`
}

// GalleryImage is a display-ready picture; URL is already absolute.
type GalleryImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}
