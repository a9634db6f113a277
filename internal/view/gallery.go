package view

import "emeraldshop/internal/domain"

// ZoomOrigin anchors the magnified view, as percentages of the hero
// image's bounding box.
type ZoomOrigin struct {
	X float64
	Y float64
}

// Gallery tracks the active image over a fixed slice of resolved images
// plus the hover-zoom state for the hero image. The slice is never
// mutated after construction; the composer has already substituted a
// placeholder when the product has no images.
type Gallery struct {
	images []domain.GalleryImage
	active int
	origin ZoomOrigin
	zoomed bool
}

func NewGallery(images []domain.GalleryImage) *Gallery {
	return &Gallery{images: images, origin: ZoomOrigin{X: 50, Y: 50}}
}

func (g *Gallery) Len() int { return len(g.images) }

// Thumbnails mirrors the image sequence; activating thumbnail i is
// Select(i).
func (g *Gallery) Thumbnails() []domain.GalleryImage { return g.images }

// Select clamps out-of-range indices instead of rejecting them.
func (g *Gallery) Select(i int) { g.active = clampIndex(i, len(g.images)) }

// ActiveIndex clamps again on read, guarding against an image slice that
// shrank since the index was stored.
func (g *Gallery) ActiveIndex() int { return clampIndex(g.active, len(g.images)) }

func (g *Gallery) Active() (domain.GalleryImage, bool) {
	if len(g.images) == 0 {
		return domain.GalleryImage{}, false
	}
	return g.images[g.ActiveIndex()], true
}

// ActiveImage is Active for templates.
func (g *Gallery) ActiveImage() domain.GalleryImage {
	img, _ := g.Active()
	return img
}

func (g *Gallery) PointerEnter() { g.zoomed = true }

// PointerLeave drops the magnification only; the last origin persists.
func (g *Gallery) PointerLeave() { g.zoomed = false }

func (g *Gallery) Zoomed() bool { return g.zoomed }

// PointerMove maps a pointer position inside a w×h box to a percentage
// origin on each axis, clamped into [0,100]. Degenerate boxes keep the
// previous origin.
func (g *Gallery) PointerMove(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	g.origin = ZoomOrigin{
		X: clamp01(x/w) * 100,
		Y: clamp01(y/h) * 100,
	}
}

func (g *Gallery) Origin() ZoomOrigin { return g.origin }

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
