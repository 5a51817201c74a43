package usecase_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ShopRepoMock struct{ mock.Mock }

func (m *ShopRepoMock) Create(ctx context.Context, shop *model.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *ShopRepoMock) FindByID(ctx context.Context, id string) (model.Shop, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Shop)
	return s, args.Error(1)
}

func (m *ShopRepoMock) FindByEmail(ctx context.Context, email string) (model.Shop, error) {
	args := m.Called(ctx, email)
	s, _ := args.Get(0).(model.Shop)
	return s, args.Error(1)
}

func (m *ShopRepoMock) FindByName(ctx context.Context, shopName string) (model.Shop, error) {
	args := m.Called(ctx, shopName)
	s, _ := args.Get(0).(model.Shop)
	return s, args.Error(1)
}

func (m *ShopRepoMock) UpdateName(ctx context.Context, id string, shopName string) error {
	args := m.Called(ctx, id, shopName)
	return args.Error(0)
}

func (m *ShopRepoMock) UpdateImage(ctx context.Context, id string, imageURL *string) error {
	args := m.Called(ctx, id, imageURL)
	return args.Error(0)
}

var _ repo.ShopRepository = (*ShopRepoMock)(nil)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	if fn, ok := args.Get(0).(func(context.Context, model.Product) model.Product); ok {
		return fn(ctx, p), args.Error(1)
	}
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByIDForShare(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ListByShopID(ctx context.Context, shopID string, availableOnly bool) ([]model.Product, error) {
	args := m.Called(ctx, shopID, availableOnly)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ToggleAvailability(ctx context.Context, shopID string, productID string) (model.Product, error) {
	args := m.Called(ctx, shopID, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

var _ repo.ProductRepository = (*ProductRepoMock)(nil)

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, o model.Order) (model.Order, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *OrderRepoMock) ListByShopID(ctx context.Context, shopID string) ([]model.Order, error) {
	args := m.Called(ctx, shopID)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

var _ repo.OrderRepository = (*OrderRepoMock)(nil)

// Txはそのままfnを呼ぶだけ
type txReposStub struct {
	orders   repo.OrderRepository
	products repo.ProductRepository
}

func (r *txReposStub) Orders() repo.OrderRepository     { return r.orders }
func (r *txReposStub) Products() repo.ProductRepository { return r.products }

type TxManagerStub struct {
	repos *txReposStub
	calls int
}

func (tm *TxManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	tm.calls++
	return fn(tm.repos)
}

type StorageMock struct {
	mock.Mock
	baseURL string
}

func newStorageMock() *StorageMock {
	return &StorageMock{baseURL: "https://cdn.test/"}
}

func (m *StorageMock) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *StorageMock) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *StorageMock) KeyFromURL(rawURL string) (string, bool) {
	if !strings.HasPrefix(rawURL, m.baseURL) {
		return "", false
	}
	return strings.TrimPrefix(rawURL, m.baseURL), true
}

var _ usecase.ObjectStorage = (*StorageMock)(nil)

type IssuerMock struct{ mock.Mock }

func (m *IssuerMock) Issue(shopID string, now time.Time) (string, error) {
	args := m.Called(shopID, now)
	return args.String(0), args.Error(1)
}

// =====================
// helper
// =====================

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// id-1, id-2, ...
type seqIDGen struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDGen) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func assertHTTPError(t *testing.T, err error, wantStatus int, wantMsg string) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if !assert.True(t, ok, "want *HTTPError, got %v", err) {
		return
	}
	assert.Equal(t, wantStatus, he.Status)
	if wantMsg != "" {
		assert.Equal(t, wantMsg, he.Message)
	}
}

func strPtr(s string) *string { return &s }

func pngUpload(size int64) *usecase.ImageUpload {
	return &usecase.ImageUpload{
		Body:        strings.NewReader("png"),
		Size:        size,
		ContentType: "image/png",
	}
}

const (
	productUUID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	otherUUID   = "9b2e0c1a-3c4f-4d1b-8e6a-1f2d3c4b5a69"
)
