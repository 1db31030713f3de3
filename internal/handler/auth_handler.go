package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/config"
	"storefront/internal/middleware"
	"storefront/internal/repository"
	auth "storefront/internal/usecase/auth_usecase"
)

// /authのHTTP（会員登録・ログイン・プロフィール）
type AuthHandler struct {
	registerUC *auth.RegisterAccountUsecase
	loginUC    *auth.LoginUsecase
	profileUC  *auth.ProfileUsecase
}

// DIコンストラクタ
func NewAuthHandler(
	registerUC *auth.RegisterAccountUsecase,
	loginUC *auth.LoginUsecase,
	profileUC *auth.ProfileUsecase,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		profileUC:  profileUC,
	}
}

// /auth/register のリクエストボディ。
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// /auth/login のリクエストボディ。
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// /auth/profile のリクエストボディ。passwordは空なら変更なし。
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// /auth配下を登録。profileだけJWT必須。
func (h *AuthHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.POST("/auth/register", h.register)
	e.POST("/auth/login", h.login)

	g := e.Group("/auth/profile")
	g.Use(middleware.AuthJWT(cfg))
	g.GET("", h.getProfile)
	g.PATCH("", h.updateProfile)
	g.DELETE("", h.deleteProfile)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return writeAuthError(c, err)
	}

	return c.JSON(http.StatusOK, out.Account)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeAuthError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) getProfile(c echo.Context) error {
	email, ok := getAccountEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	a, err := h.profileUC.Get(c.Request().Context(), email)
	if err != nil {
		return writeAuthError(c, err)
	}

	return c.JSON(http.StatusOK, a)
}

func (h *AuthHandler) updateProfile(c echo.Context) error {
	email, ok := getAccountEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	a, err := h.profileUC.Update(c.Request().Context(), email, auth.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeAuthError(c, err)
	}

	return c.JSON(http.StatusOK, a)
}

func (h *AuthHandler) deleteProfile(c echo.Context) error {
	email, ok := getAccountEmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.profileUC.Delete(c.Request().Context(), email); err != nil {
		return writeAuthError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// authのsentinelエラーをHTTPへ対応付ける。
func writeAuthError(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	switch err {
	case auth.ErrNameRequired, auth.ErrInvalidEmailFormat, auth.ErrPasswordTooShort:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case auth.ErrEmailAlreadyExists:
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case auth.ErrInvalidCredentials:
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case auth.ErrNotCurrentAccount:
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
