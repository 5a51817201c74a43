package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 購入者向けの公開API（認証なし）
type StorefrontHandler struct {
	uc *usecase.StorefrontUsecase
}

// DI
func NewStorefrontHandler(uc *usecase.StorefrontUsecase) *StorefrontHandler {
	return &StorefrontHandler{uc: uc}
}

type storeRequest struct {
	Store string `json:"store"`
}

type createOrderRequest struct {
	Fullname  string `json:"fullname"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Pincode   string `json:"pincode"`
	State     string `json:"state"`
	ProductID string `json:"productId"`
}

func (h *StorefrontHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/shop-data", h.shopData)
	g.POST("/shop-products", h.shopProducts)
	g.POST("/create-order", h.createOrder)
}

func (h *StorefrontHandler) shopData(c echo.Context) error {
	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	s, err := h.uc.PublicShop(c.Request().Context(), req.Store)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, Response{Status: http.StatusOK, Data: s})
}

func (h *StorefrontHandler) shopProducts(c echo.Context) error {
	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	items, err := h.uc.PublicProducts(c.Request().Context(), req.Store)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, Response{Status: http.StatusOK, Data: items})
}

func (h *StorefrontHandler) createOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	o, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		Fullname:  req.Fullname,
		Phone:     req.Phone,
		Address:   req.Address,
		Pincode:   req.Pincode,
		State:     req.State,
		ProductID: req.ProductID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, Response{Status: http.StatusOK, Message: "Order created successfully", Order: o})
}
