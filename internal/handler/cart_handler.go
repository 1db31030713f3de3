package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront/internal/usecase"
)

// /cartのHTTP。カートはログインなしで使える（注文時にだけログインが要る）。
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	ProductID int64 `json:"product_id"`
}

// /cart配下を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.GET("/summary", h.summary)
	g.POST("/items", h.addItem)
	g.POST("/items/:id/increment", h.increment)
	g.POST("/items/:id/decrement", h.decrement)
	g.DELETE("/items/:id", h.deleteItem)
	g.POST("/selection/:id", h.toggleSelect)
	g.DELETE("/selection", h.deleteSelected)
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.GetCart())
}

func (h *CartHandler) summary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Summary())
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	line, err := h.uc.AddToCart(req.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, line)
}

func (h *CartHandler) increment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	line, err := h.uc.Increment(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, line)
}

func (h *CartHandler) decrement(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	line, err := h.uc.Decrement(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, line)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	return c.JSON(http.StatusOK, h.uc.Remove(id))
}

func (h *CartHandler) toggleSelect(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ToggleSelect(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) deleteSelected(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.DeleteSelected())
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
