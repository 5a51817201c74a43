package server_test

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// =====================
// インメモリのストア（1つのmutexで全部守る）
// =====================

type memStore struct {
	mu       sync.Mutex
	shops    map[string]model.Shop
	products map[string]model.Product
	orders   []model.Order
}

func newMemStore() *memStore {
	return &memStore{
		shops:    map[string]model.Shop{},
		products: map[string]model.Product{},
	}
}

type memShops struct{ s *memStore }

func (r memShops) Create(ctx context.Context, shop *model.Shop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.shops {
		if x.ShopName == shop.ShopName {
			return repo.ErrShopNameTaken
		}
		if x.Email == shop.Email {
			return repo.ErrEmailTaken
		}
	}
	r.s.shops[shop.ID] = *shop
	return nil
}

func (r memShops) FindByID(ctx context.Context, id string) (model.Shop, error) {
	return r.find(func(x model.Shop) bool { return x.ID == id })
}

func (r memShops) FindByEmail(ctx context.Context, email string) (model.Shop, error) {
	return r.find(func(x model.Shop) bool { return x.Email == email })
}

func (r memShops) FindByName(ctx context.Context, name string) (model.Shop, error) {
	return r.find(func(x model.Shop) bool { return x.ShopName == name })
}

func (r memShops) UpdateName(ctx context.Context, id string, name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.shops {
		if x.ShopName == name && x.ID != id {
			return repo.ErrShopNameTaken
		}
	}
	x, ok := r.s.shops[id]
	if !ok {
		return repo.ErrNotFound
	}
	x.ShopName = name
	r.s.shops[id] = x
	return nil
}

func (r memShops) UpdateImage(ctx context.Context, id string, url *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.shops[id]
	if !ok {
		return repo.ErrNotFound
	}
	x.Image = url
	r.s.shops[id] = x
	return nil
}

func (r memShops) find(match func(model.Shop) bool) (model.Shop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.shops {
		if match(x) {
			return x, nil
		}
	}
	return model.Shop{}, repo.ErrNotFound
}

type memProducts struct{ s *memStore }

func (r memProducts) Create(ctx context.Context, p model.Product) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = p
	return p, nil
}

func (r memProducts) FindByID(ctx context.Context, id string) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (r memProducts) FindByIDForShare(ctx context.Context, id string) (model.Product, error) {
	return r.FindByID(ctx, id)
}

func (r memProducts) ListByShopID(ctx context.Context, shopID string, availableOnly bool) ([]model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Product{}
	for _, p := range r.s.products {
		if p.ShopID == shopID && (!availableOnly || p.Available) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memProducts) ToggleAvailability(ctx context.Context, shopID string, productID string) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[productID]
	if !ok || p.ShopID != shopID {
		return model.Product{}, repo.ErrNotFound
	}
	p.Available = !p.Available
	r.s.products[productID] = p
	return p, nil
}

type memOrders struct{ s *memStore }

func (r memOrders) Create(ctx context.Context, o model.Order) (model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders = append(r.s.orders, o)
	return o, nil
}

func (r memOrders) ListByShopID(ctx context.Context, shopID string) ([]model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Order{}
	for i := len(r.s.orders) - 1; i >= 0; i-- {
		o := r.s.orders[i]
		if o.ShopID != shopID {
			continue
		}
		if p, ok := r.s.products[o.ProductID]; ok {
			o.Product = &model.Product{ID: p.ID, Title: p.Title}
		}
		out = append(out, o)
	}
	return out, nil
}

type memTx struct{ s *memStore }

func (tm memTx) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(memTxRepos{s: tm.s})
}

type memTxRepos struct{ s *memStore }

func (r memTxRepos) Orders() repo.OrderRepository     { return memOrders{s: r.s} }
func (r memTxRepos) Products() repo.ProductRepository { return memProducts{s: r.s} }

// アップロードされたキーを覚えるだけ
type memObjects struct {
	mu      sync.Mutex
	objects map[string]string
}

const objectBase = "https://cdn.test/"

func (m *memObjects) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = string(b)
	return objectBase + key, nil
}

func (m *memObjects) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memObjects) KeyFromURL(rawURL string) (string, bool) {
	if !strings.HasPrefix(rawURL, objectBase) {
		return "", false
	}
	return strings.TrimPrefix(rawURL, objectBase), true
}
