package usecase_test

import (
	"context"
	"sort"
	"sync"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// =====================
// インメモリ実装（性質テスト用）
// =====================

type memShopRepo struct {
	mu    sync.Mutex
	shops map[string]model.Shop
}

func newMemShopRepo() *memShopRepo {
	return &memShopRepo{shops: map[string]model.Shop{}}
}

func (r *memShopRepo) Create(ctx context.Context, shop *model.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shops {
		if s.ShopName == shop.ShopName {
			return repo.ErrShopNameTaken
		}
		if s.Email == shop.Email {
			return repo.ErrEmailTaken
		}
	}
	r.shops[shop.ID] = *shop
	return nil
}

func (r *memShopRepo) FindByID(ctx context.Context, id string) (model.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shops[id]
	if !ok {
		return model.Shop{}, repo.ErrNotFound
	}
	return s, nil
}

func (r *memShopRepo) FindByEmail(ctx context.Context, email string) (model.Shop, error) {
	return r.find(func(s model.Shop) bool { return s.Email == email })
}

func (r *memShopRepo) FindByName(ctx context.Context, shopName string) (model.Shop, error) {
	return r.find(func(s model.Shop) bool { return s.ShopName == shopName })
}

func (r *memShopRepo) UpdateName(ctx context.Context, id string, shopName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shops {
		if s.ShopName == shopName && s.ID != id {
			return repo.ErrShopNameTaken
		}
	}
	s, ok := r.shops[id]
	if !ok {
		return repo.ErrNotFound
	}
	s.ShopName = shopName
	r.shops[id] = s
	return nil
}

func (r *memShopRepo) UpdateImage(ctx context.Context, id string, imageURL *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shops[id]
	if !ok {
		return repo.ErrNotFound
	}
	s.Image = imageURL
	r.shops[id] = s
	return nil
}

func (r *memShopRepo) find(match func(model.Shop) bool) (model.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shops {
		if match(s) {
			return s, nil
		}
	}
	return model.Shop{}, repo.ErrNotFound
}

type memProductRepo struct {
	mu       sync.Mutex
	products map[string]model.Product
}

func newMemProductRepo(items ...model.Product) *memProductRepo {
	r := &memProductRepo{products: map[string]model.Product{}}
	for _, p := range items {
		r.products[p.ID] = p
	}
	return r
}

func (r *memProductRepo) Create(ctx context.Context, p model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return p, nil
}

func (r *memProductRepo) FindByID(ctx context.Context, id string) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *memProductRepo) FindByIDForShare(ctx context.Context, id string) (model.Product, error) {
	return r.FindByID(ctx, id)
}

func (r *memProductRepo) ListByShopID(ctx context.Context, shopID string, availableOnly bool) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Product{}
	for _, p := range r.products {
		if p.ShopID != shopID || (availableOnly && !p.Available) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memProductRepo) ToggleAvailability(ctx context.Context, shopID string, productID string) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok || p.ShopID != shopID {
		return model.Product{}, repo.ErrNotFound
	}
	p.Available = !p.Available
	r.products[productID] = p
	return p, nil
}

var (
	_ repo.ShopRepository    = (*memShopRepo)(nil)
	_ repo.ProductRepository = (*memProductRepo)(nil)
)
