package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	Create(ctx context.Context, p model.Product) (model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	// ショップの商品を新しい順で返す。availableOnly なら公開中のみ
	ListByShopID(ctx context.Context, shopID string, availableOnly bool) ([]model.Product, error)

	// available を反転して更新後の商品を返す（1回のUPDATE）
	// 他ショップの商品・存在しない商品は ErrNotFound
	ToggleAvailability(ctx context.Context, shopID string, productID string) (model.Product, error)

	// トランザクション内で共有ロック付き取得（注文作成用）
	FindByIDForShare(ctx context.Context, id string) (model.Product, error)
}
