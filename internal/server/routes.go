package server

import (
	"net/http"

	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ルートに載せるもの
type Handlers struct {
	Auth       *handler.AuthHandler
	Shop       *handler.ShopHandler
	Storefront *handler.StorefrontHandler
	AuthJWT    echo.MiddlewareFunc
	Gatherer   prometheus.Gatherer
}

type liveResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, liveResponse{Status: http.StatusOK, Message: "storefront server is live"})
	})

	gatherer := h.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	g := e.Group("/api/shop")
	if h.Auth != nil {
		h.Auth.RegisterRoutes(g)
	}
	if h.Shop != nil {
		h.Shop.RegisterRoutes(g, h.AuthJWT)
	}
	if h.Storefront != nil {
		h.Storefront.RegisterRoutes(g)
	}
}
