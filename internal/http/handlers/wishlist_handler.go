package handlers

import (
	"github.com/gofiber/fiber/v2"

	"emeraldshop/internal/chrome"
	"emeraldshop/internal/log"
	"emeraldshop/internal/validate"
)

// WishlistHandler is a stub: saves raise a notification badge, nothing
// is persisted.
type WishlistHandler struct {
	Badges *chrome.Badges
}

func (h *WishlistHandler) Save(c *fiber.Ctx) error {
	sid := sessionID(c)
	productID, ok := validate.ID(c.FormValue("product_id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product_id"})
		return c.Status(400).Render("notfound", fiber.Map{"Message": "That item could not be saved"})
	}

	h.Badges.Notify(sid)
	log.Audit(c, "wishlist.save.stub", map[string]any{"product": productID})

	if back := c.FormValue("return"); back != "" && back[0] == '/' {
		return c.Redirect(back, fiber.StatusSeeOther)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *WishlistHandler) Dismiss(c *fiber.Ctx) error {
	sid := sessionID(c)
	h.Badges.ClearUnread(sid)
	log.Info(c, "notifications.clear", nil)
	return c.Redirect("/", fiber.StatusSeeOther)
}
