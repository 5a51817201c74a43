package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/infra/token"
	"storefront/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================
// レスポンス確認用
// =====================

type mwErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type mwOKResponse struct {
	ShopID string `json:"shop_id"`
}

// =====================
// helper
// =====================

const testSecret = "test-secret"

func mustMakeJWT(t *testing.T, secret string, claims jwt.MapClaims, method jwt.SigningMethod) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newProtectedEcho() *echo.Echo {
	e := echo.New()
	e.POST("/protected", func(c echo.Context) error {
		id, _ := c.Get(middleware.CtxShopIDKey).(string)
		return c.JSON(http.StatusOK, mwOKResponse{ShopID: id})
	}, middleware.AuthJWT(token.NewJWTManager(testSecret)))
	return e
}

func runRequest(t *testing.T, e *echo.Echo, method string, path string, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeMWError(t *testing.T, rec *httptest.ResponseRecorder) mwErrorResponse {
	t.Helper()
	var r mwErrorResponse
	_ = json.NewDecoder(rec.Body).Decode(&r)
	return r
}

// =====================
// AuthJWT
// =====================

func TestMiddleware_AuthJWT_NoHeader(t *testing.T) {
	rec := runRequest(t, newProtectedEcho(), http.MethodPost, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeMWError(t, rec)
	assert.Equal(t, http.StatusUnauthorized, body.Status)
	assert.Equal(t, "authorization header is missing", body.Message)
}

func TestMiddleware_AuthJWT_BearerMissing(t *testing.T) {
	for _, h := range []string{"Bearer", "Bearer   ", "Token abc.def.ghi"} {
		rec := runRequest(t, newProtectedEcho(), http.MethodPost, "/protected", h)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, h)
		assert.Equal(t, "bearer token is missing", decodeMWError(t, rec).Message, h)
	}
}

// 署名違い
func TestMiddleware_AuthJWT_BadSignature(t *testing.T) {
	raw := mustMakeJWT(t, "wrong-secret", jwt.MapClaims{"id": "shop-1"}, jwt.SigningMethodHS256)

	rec := runRequest(t, newProtectedEcho(), http.MethodPost, "/protected", "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token", decodeMWError(t, rec).Message)
}

// アルゴリズム違い（HS512）
func TestMiddleware_AuthJWT_WrongAlg(t *testing.T) {
	raw := mustMakeJWT(t, testSecret, jwt.MapClaims{"id": "shop-1"}, jwt.SigningMethodHS512)

	rec := runRequest(t, newProtectedEcho(), http.MethodPost, "/protected", "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token", decodeMWError(t, rec).Message)
}

// idがない
func TestMiddleware_AuthJWT_MissingShopID(t *testing.T) {
	raw := mustMakeJWT(t, testSecret, jwt.MapClaims{"sub": "shop-1"}, jwt.SigningMethodHS256)

	rec := runRequest(t, newProtectedEcho(), http.MethodPost, "/protected", "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// 正常：ctxにshop_idが入る
func TestMiddleware_AuthJWT_Success_SetsContext(t *testing.T) {
	raw, err := token.NewJWTManager(testSecret).Issue("8f14e45f-ceea-467f-a0e6-4b2d2f1c3a11", time.Now())
	require.NoError(t, err)

	rec := runRequest(t, newProtectedEcho(), http.MethodPost, "/protected", "bearer "+raw)
	require.Equal(t, http.StatusOK, rec.Code)

	var body mwOKResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "8f14e45f-ceea-467f-a0e6-4b2d2f1c3a11", body.ShopID)
}
