package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /auth（emailでショップを引く or 作る）
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type authRequest struct {
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/auth", h.auth)
}

func (h *AuthHandler) auth(c echo.Context) error {
	var req authRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.Authenticate(c.Request().Context(), usecase.AuthInput{
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeJSON(c, Response{
		Status:  http.StatusOK,
		Token:   out.Token,
		Message: "Authentication successful",
	})
}
