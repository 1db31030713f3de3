package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"storefront/internal/config"
)

const (
	CtxAccountEmailKey = "account_email" // string
	CtxAccountNameKey  = "account_name"  // string
	CtxIsAdminKey      = "is_admin"      // bool
)

type errorResponse struct {
	Error string `json:"error"`
}

// bearerAuth用のJWT検証ミドルウェア。
// 検証が通ったらアカウント情報（email・名前・管理者フラグ）をcontextへ入れる。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//JWTをパースして検証する
			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//claimsを取り出す
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//email（sub）を取り出す
			email, err := parseString(claims["sub"])
			if err != nil || email == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//name を取り出す（空でも許可）
			name, _ := parseString(claims["name"])

			//管理者フラグを取り出す
			isAdmin, err := parseBool(claims["is_admin"])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//contextへ保存
			c.Set(CtxAccountEmailKey, email)
			c.Set(CtxAccountNameKey, name)
			c.Set(CtxIsAdminKey, isAdmin)

			return next(c)
		}
	}
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

func parseString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.New("not a string")
	}
	return s, nil
}

func parseBool(v interface{}) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, errors.New("not a bool")
	}
	return b, nil
}
