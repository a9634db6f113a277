package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"emeraldshop/internal/gateway"
	"emeraldshop/internal/log"
	"emeraldshop/internal/services"
	"emeraldshop/internal/validate"
	"emeraldshop/internal/view"
)

type PriceHandler struct {
	Pages *services.PageService
}

// Quote returns the price block for a variant selection, so the page can
// swap prices without a full reload.
func (h *PriceHandler) Quote(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Query("product"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	page, err := h.Pages.ProductPage(c.UserContext(), id)
	if errors.Is(err, gateway.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		return err
	}

	picker := view.NewVariantPicker(page.Product.DefaultCurrency, page.Product.Variants, nil)
	if v, ok := validate.ID(c.Query("variant")); ok {
		picker.Select(v)
	}

	cur := picker.CurrentVariant()
	resp := fiber.Map{
		"variant_id":   cur.ID,
		"unit_price":   picker.UnitPrice().String(),
		"unit_label":   picker.PriceLabel(),
		"show_compare": picker.ShowCompare(),
	}
	if cmp, ok := picker.ComparePrice(); ok {
		resp["compare_price"] = cmp.String()
		resp["compare_label"] = picker.CompareLabel()
	}
	return c.JSON(resp)
}
