package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)
	// Productを一緒に読み込む。新しい順
	ListByShopID(ctx context.Context, shopID string) ([]model.Order, error)
}
