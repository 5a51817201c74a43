package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// shop_id（string, UUID）
const CtxShopIDKey = "shop_id"

// トークンからショップIDを取り出すもの
type TokenParser interface {
	Parse(raw string) (string, error)
}

// bearerAuth用のJWT検証ミドルウェア。
func AuthJWT(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON(http.StatusUnauthorized, "authorization header is missing"))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON(http.StatusUnauthorized, "bearer token is missing"))
			}
			rawToken := strings.TrimSpace(parts[1])

			//署名を検証してショップIDを取り出す
			shopID, err := parser.Parse(rawToken)
			if err != nil || shopID == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON(http.StatusUnauthorized, "invalid token"))
			}

			//contextへ保存
			c.Set(CtxShopIDKey, shopID)

			return next(c)
		}
	}
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func errorJSON(status int, msg string) errorResponse {
	return errorResponse{Status: status, Message: msg}
}
