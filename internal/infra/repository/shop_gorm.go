package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type ShopGormRepository struct {
	db *gorm.DB
}

// DI
func NewShopGormRepository(db *gorm.DB) *ShopGormRepository {
	return &ShopGormRepository{db: db}
}

var _ repo.ShopRepository = (*ShopGormRepository)(nil)

func (r *ShopGormRepository) Create(ctx context.Context, shop *model.Shop) error {
	return translateShopError(r.db.WithContext(ctx).Create(shop).Error)
}

func (r *ShopGormRepository) FindByID(ctx context.Context, id string) (model.Shop, error) {
	return r.findOne(ctx, "id = ?", id)
}

// emailでショップを1件取得
func (r *ShopGormRepository) FindByEmail(ctx context.Context, email string) (model.Shop, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *ShopGormRepository) FindByName(ctx context.Context, shopName string) (model.Shop, error) {
	return r.findOne(ctx, "shop_name = ?", shopName)
}

func (r *ShopGormRepository) UpdateName(ctx context.Context, id string, shopName string) error {
	res := r.db.WithContext(ctx).Model(&model.Shop{}).
		Where("id = ?", id).
		Update("shop_name", shopName)
	if res.Error != nil {
		return translateShopError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ShopGormRepository) UpdateImage(ctx context.Context, id string, imageURL *string) error {
	res := r.db.WithContext(ctx).Model(&model.Shop{}).
		Where("id = ?", id).
		Update("image", imageURL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ShopGormRepository) findOne(ctx context.Context, query string, arg string) (model.Shop, error) {
	var s model.Shop
	err := r.db.WithContext(ctx).Where(query, arg).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shop{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shop{}, err
	}
	return s, nil
}

// 制約名で重複の種類を分ける
func translateShopError(err error) error {
	if err == nil {
		return nil
	}
	name, ok := uniqueViolation(err)
	if !ok {
		return err
	}
	switch name {
	case model.ShopNameUniqueIndex:
		return repo.ErrShopNameTaken
	case model.ShopEmailUniqueIndex:
		return repo.ErrEmailTaken
	}
	return err
}
