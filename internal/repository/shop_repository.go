package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// ショップの保存・取得を約束
type ShopRepository interface {
	// 新規作成。名前・emailの重複は ErrShopNameTaken / ErrEmailTaken
	Create(ctx context.Context, shop *model.Shop) error
	FindByID(ctx context.Context, id string) (model.Shop, error)
	FindByEmail(ctx context.Context, email string) (model.Shop, error)
	// 名前は小文字で渡す
	FindByName(ctx context.Context, shopName string) (model.Shop, error)
	UpdateName(ctx context.Context, id string, shopName string) error
	UpdateImage(ctx context.Context, id string, imageURL *string) error
}
