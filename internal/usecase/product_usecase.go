package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/validator"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	shops    repo.ShopRepository
	products repo.ProductRepository
	media    mediaStore
	idGen    IDGenerator
	log      zerolog.Logger
}

// DI
func NewProductUsecase(
	shops repo.ShopRepository,
	products repo.ProductRepository,
	storage ObjectStorage,
	idGen IDGenerator,
	log zerolog.Logger,
) *ProductUsecase {
	return &ProductUsecase{
		shops:    shops,
		products: products,
		media:    mediaStore{storage: storage, idGen: idGen},
		idGen:    idGen,
		log:      log,
	}
}

// /shop/add-product の入力（multipart）
type AddProductInput struct {
	Title       string
	Description string
	Price       string
	Image       *ImageUpload // 任意
}

func (u *ProductUsecase) AddProduct(ctx context.Context, shopID string, in AddProductInput) (model.Product, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "title required")
	}
	if err := validator.CheckLen("title", title, validator.MaxTitleLen); err != nil {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return model.Product{}, err
	}
	if in.Image != nil {
		if err := in.Image.Validate(); err != nil {
			return model.Product{}, err
		}
	}

	shop, err := u.shops.FindByID(ctx, shopID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusUnauthorized, "unverified")
	}
	if err != nil {
		return model.Product{}, errDB(err)
	}

	//画像は先にアップロード（失敗したら商品は作らない）
	var image *string
	if in.Image != nil {
		url, err := u.media.upload(ctx, shop.ShopName, "product", in.Image)
		if err != nil {
			return model.Product{}, err
		}
		image = &url
	}

	p, err := u.products.Create(ctx, model.Product{
		ID:          u.idGen.NewID(),
		ShopID:      shop.ID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		Image:       image,
		Available:   true,
	})
	if err != nil {
		u.discardUpload(ctx, image)
		return model.Product{}, errDB(err)
	}
	return p, nil
}

// 自分の商品一覧（非公開も含む、新しい順）
func (u *ProductUsecase) ListMyProducts(ctx context.Context, shopID string) ([]model.Product, error) {
	items, err := u.products.ListByShopID(ctx, shopID, false)
	if err != nil {
		return []model.Product{}, errDB(err)
	}
	return items, nil
}

// 公開/非公開の切り替え
func (u *ProductUsecase) ToggleAvailability(ctx context.Context, shopID string, productID string) (model.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "productId required")
	}
	if !validator.IsUUID(productID) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}

	p, err := u.products.ToggleAvailability(ctx, shopID, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, errDB(err)
	}
	return p, nil
}

// DB保存に失敗したときのアップロード済み画像の後始末
func (u *ProductUsecase) discardUpload(ctx context.Context, image *string) {
	if image == nil {
		return
	}
	key, ok := u.media.storage.KeyFromURL(*image)
	if !ok {
		return
	}
	if err := u.media.storage.Delete(ctx, key); err != nil {
		u.log.Error().Err(err).Str("key", key).Msg("discard uploaded product image failed")
	}
}

// numeric(12,2) に入る最大値
var maxPrice = decimal.RequireFromString("9999999999.99")

// 価格は0以上、小数2桁
func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, NewHTTPError(http.StatusBadRequest, "price required")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if d.IsNegative() {
		return decimal.Zero, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	d = d.Round(2)
	if d.GreaterThan(maxPrice) {
		return decimal.Zero, NewHTTPError(http.StatusBadRequest, "price must be <= 9999999999.99")
	}
	return d, nil
}
