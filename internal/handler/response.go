package handler

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// レスポンスは全部この形。HTTPステータスとstatusは同じ値。
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
	Order   any    `json:"order,omitempty"`
}

func writeJSON(c echo.Context, res Response) error {
	if res.Status == 0 {
		res.Status = http.StatusOK
	}
	return c.JSON(res.Status, res)
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	log := zerolog.Ctx(c.Request().Context())

	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status >= http.StatusInternalServerError {
			log.Error().Err(he.Err).Int("status", he.Status).Str("path", c.Path()).Msg(he.Message)
		}
		return writeJSON(c, Response{Status: he.Status, Message: he.Message})
	}

	//500
	log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return writeJSON(c, Response{Status: http.StatusInternalServerError, Message: "internal error"})
}

func badRequest(c echo.Context, msg string) error {
	return writeJSON(c, Response{Status: http.StatusBadRequest, Message: msg})
}

// AuthJWTが入れたshop_id
func getShopIDFromContext(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxShopIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func unauthorized(c echo.Context) error {
	return writeJSON(c, Response{Status: http.StatusUnauthorized, Message: "unverified"})
}
