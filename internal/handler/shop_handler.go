package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// オーナー用（Bearer必須）
type ShopHandler struct {
	shops    *usecase.ShopUsecase
	products *usecase.ProductUsecase
	orders   *usecase.OrderUsecase
}

// DI
func NewShopHandler(
	shops *usecase.ShopUsecase,
	products *usecase.ProductUsecase,
	orders *usecase.OrderUsecase,
) *ShopHandler {
	return &ShopHandler{shops: shops, products: products, orders: orders}
}

type updateNameRequest struct {
	NewShopName string `json:"newShopName"`
}

type toggleRequest struct {
	ProductID string `json:"productId"`
}

func (h *ShopHandler) RegisterRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.POST("/data", h.data, auth)
	g.POST("/update-name", h.updateName, auth)
	g.POST("/add-product", h.addProduct, auth)
	g.POST("/products", h.listProducts, auth)
	g.POST("/product-listunlist", h.toggleProduct, auth)
	g.POST("/update-image", h.updateImage, auth)
	g.POST("/orders", h.listOrders, auth)
}

func (h *ShopHandler) data(c echo.Context) error {
	shopID, ok := getShopIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	p, err := h.shops.Profile(c.Request().Context(), shopID)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, Response{Status: http.StatusOK, Data: p})
}

func (h *ShopHandler) updateName(c echo.Context) error {
	shopID, ok := getShopIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req updateNameRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.shops.Rename(c.Request().Context(), shopID, req.NewShopName); err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, Response{Status: http.StatusOK, Message: "Updation successful"})
}

// multipart: title, description, price, image|file
func (h *ShopHandler) addProduct(c echo.Context) error {
	shopID, ok := getShopIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	img, closeImg, err := imageFromForm(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	defer closeImg()

	p, err := h.products.AddProduct(c.Request().Context(), shopID, usecase.AddProductInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Image:       img,
	})
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, Response{Status: http.StatusOK, Message: "Product added successfully.", Data: p})
}

func (h *ShopHandler) listProducts(c echo.Context) error {
	shopID, ok := getShopIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	items, err := h.products.ListMyProducts(c.Request().Context(), shopID)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, Response{Status: http.StatusOK, Data: items})
}

func (h *ShopHandler) toggleProduct(c echo.Context) error {
	shopID, ok := getShopIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req toggleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	p, err := h.products.ToggleAvailability(c.Request().Context(), shopID, req.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, Response{Status: http.StatusOK, Message: "Updation successful", Data: p})
}

func (h *ShopHandler) updateImage(c echo.Context) error {
	shopID, ok := getShopIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	img, closeImg, err := imageFromForm(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	defer closeImg()

	p, err := h.shops.UpdateImage(c.Request().Context(), shopID, img)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, Response{Status: http.StatusOK, Message: "Profile updated successfully", Data: p})
}

func (h *ShopHandler) listOrders(c echo.Context) error {
	shopID, ok := getShopIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	items, err := h.orders.ListShopOrders(c.Request().Context(), shopID)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, Response{Status: http.StatusOK, Data: items})
}
