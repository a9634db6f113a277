package handlers

import "github.com/gofiber/fiber/v2"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Header badge counts, set by the sid middleware in main
	if qty := c.Locals("cartQty"); qty != nil {
		data["CartQty"] = qty
	}
	if n := c.Locals("unread"); n != nil {
		data["Unread"] = n
	}
	// Pick up the token the CSRF middleware put into Locals
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}
