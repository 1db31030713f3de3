package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/config"
	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

// /ordersのHTTP。全ルートがログイン必須。
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderItemsRequest struct {
	Items []usecase.OrderLineInput `json:"items"`
}

// /orders配下を登録
func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.placeOrder)
	g.POST("/custom", h.createCustomOrder)
	g.PATCH("/:id", h.editOrder)
}

func (h *OrderHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.List())
}

func (h *OrderHandler) detail(c echo.Context) error {
	out, err := h.uc.Get(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// カート全体から注文を作る。成功でカートは空になる。
func (h *OrderHandler) placeOrder(c echo.Context) error {
	email, ok := getAccountEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.PlaceOrder(email)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// カートから選んだ明細だけで注文を作る。
func (h *OrderHandler) createCustomOrder(c echo.Context) error {
	email, ok := getAccountEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req OrderItemsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateCustomOrder(email, req.Items)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// 所有者だけが明細を編集できる。
func (h *OrderHandler) editOrder(c echo.Context) error {
	email, ok := getAccountEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req OrderItemsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.EditOrder(email, c.Param("id"), req.Items)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
