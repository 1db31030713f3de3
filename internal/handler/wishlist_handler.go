package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/usecase"
)

// /wishlistのHTTP
type WishlistHandler struct {
	uc *usecase.WishlistUsecase
}

// DI
func NewWishlistHandler(uc *usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

type AddWishlistRequest struct {
	ProductID int64 `json:"product_id"`
}

// /wishlist配下を登録
func (h *WishlistHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/wishlist")

	g.GET("", h.list)
	g.POST("", h.add)
	g.DELETE("/:id", h.remove)
}

func (h *WishlistHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.List())
}

func (h *WishlistHandler) add(c echo.Context) error {
	var req AddWishlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Add(req.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	//登録済みの場合も200のまま。already_presentで見分ける
	return c.JSON(http.StatusOK, out)
}

func (h *WishlistHandler) remove(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	return c.JSON(http.StatusOK, h.uc.Remove(id))
}
