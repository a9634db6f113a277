package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"emeraldshop/internal/gateway"
	"emeraldshop/internal/log"
	"emeraldshop/internal/services"
	"emeraldshop/internal/validate"
	"emeraldshop/internal/view"
)

type ProductHandler struct {
	Pages *services.PageService
}

// Detail renders the product page. The optional variant and image query
// params replay the shopper's selection state into the page models.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	page, err := h.Pages.ProductPage(c.UserContext(), id)
	if errors.Is(err, gateway.ErrNotFound) {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	if err != nil {
		// Rendering without real product data would mislead the
		// shopper; let the app error handler take over.
		return fmt.Errorf("product page %s: %w", id, err)
	}

	gallery := view.NewGallery(page.Images)
	if s := c.Query("image"); s != "" {
		gallery.Select(validate.Index(s))
	}

	picker := view.NewVariantPicker(page.Product.DefaultCurrency, page.Product.Variants, nil)
	if v, ok := validate.ID(c.Query("variant")); ok {
		picker.Select(v)
	}

	return render(c, "product", fiber.Map{
		"P":       page,
		"Gallery": gallery,
		"Picker":  picker,
	})
}
