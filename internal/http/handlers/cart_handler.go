package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"emeraldshop/internal/chrome"
	"emeraldshop/internal/log"
	"emeraldshop/internal/validate"
)

// CartHandler is a stub: nothing is persisted. Adding only bumps the
// session's cart badge so the header reflects the click.
type CartHandler struct {
	Badges *chrome.Badges
}

func sessionID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, HTTPOnly: true, SameSite: "Lax"})
	}
	return sid
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := sessionID(c)
	variantID, ok := validate.ID(c.FormValue("variant_id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "variant_id"})
		return c.Status(400).Render("notfound", fiber.Map{"Message": "That variant could not be added"})
	}
	qty := validate.Qty(c.FormValue("qty"))

	h.Badges.AddToCart(sid, qty)
	log.Audit(c, "cart.add.stub", map[string]any{"variant": variantID, "qty": qty})

	if back := c.FormValue("return"); back != "" && back[0] == '/' {
		return c.Redirect(back, fiber.StatusSeeOther)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
