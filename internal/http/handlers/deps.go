package handlers

import (
	"emeraldshop/internal/chrome"
	"emeraldshop/internal/gateway"
	"emeraldshop/internal/services"
)

type Deps struct {
	ProductHandler  *ProductHandler
	PriceHandler    *PriceHandler
	CartHandler     *CartHandler
	WishlistHandler *WishlistHandler
}

func NewDeps(remote *gateway.Client, badges *chrome.Badges) *Deps {
	pages := services.NewPageService(remote)

	return &Deps{
		ProductHandler:  &ProductHandler{Pages: pages},
		PriceHandler:    &PriceHandler{Pages: pages},
		CartHandler:     &CartHandler{Badges: badges},
		WishlistHandler: &WishlistHandler{Badges: badges},
	}
}
