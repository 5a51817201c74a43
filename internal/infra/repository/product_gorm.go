package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

var _ repo.ProductRepository = (*ProductGormRepository)(nil)

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, notFound(err)
}

// 共有ロック（FOR SHARE）。Tx内で使う
func (r *ProductGormRepository) FindByIDForShare(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("id = ?", id).
		First(&p).Error
	return p, notFound(err)
}

// ショップの商品一覧（新しい順）
func (r *ProductGormRepository) ListByShopID(ctx context.Context, shopID string, availableOnly bool) ([]model.Product, error) {
	products := []model.Product{}

	tx := r.db.WithContext(ctx).Where("shop_id = ?", shopID)
	if availableOnly {
		tx = tx.Where("available = ?", true)
	}

	if err := tx.Order("created_at desc").Order("id desc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// available = NOT available を1文で実行（読んでから書かない）
func (r *ProductGormRepository) ToggleAvailability(ctx context.Context, shopID string, productID string) (model.Product, error) {
	var p model.Product
	res := r.db.WithContext(ctx).Model(&p).
		Clauses(clause.Returning{}).
		Where("id = ? AND shop_id = ?", productID, shopID).
		Update("available", gorm.Expr("NOT available"))
	if res.Error != nil {
		return model.Product{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ErrNotFound
	}
	return err
}
