package server

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/config"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Product.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Wishlist.RegisterRoutes(e)
	h.Order.RegisterRoutes(e, cfg)
	h.AdminProduct.RegisterRoutes(e, cfg)
	h.Menu.RegisterRoutes(e, cfg)
	h.Auth.RegisterRoutes(e, cfg)
}
