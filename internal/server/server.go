package server

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/middleware"
)

// Handlersは登録対象のハンドラ一式。
type Handlers struct {
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Wishlist     *handler.WishlistHandler
	Order        *handler.OrderHandler
	AdminProduct *handler.AdminProductHandler
	Menu         *handler.MenuHandler
	Auth         *handler.AuthHandler
}

// New はルート登録済みのechoを作る。
func New(cfg config.Config, logger zerolog.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLogger(logger))

	RegisterRoutes(e, cfg, h)
	return e
}

// Start はサーバーを起動する。
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
