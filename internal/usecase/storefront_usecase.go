package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/validator"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// 公開ページのショップ情報
type PublicShop struct {
	ID       string  `json:"id"`
	ShopName string  `json:"shopName"`
	Image    *string `json:"image"`
}

// 公開ページの商品（availableは出さない）
type PublicProduct struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       *string         `json:"image"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// 購入者の入力
type CreateOrderInput struct {
	Fullname  string
	Phone     string
	Address   string
	Pincode   string
	State     string
	ProductID string
}

// 認証なしの公開API（ショップ閲覧・注文）
type StorefrontUsecase struct {
	shops    repo.ShopRepository
	products repo.ProductRepository
	tx       repo.TransactionManager
	idGen    IDGenerator
	log      zerolog.Logger
}

// DI
func NewStorefrontUsecase(
	shops repo.ShopRepository,
	products repo.ProductRepository,
	tx repo.TransactionManager,
	idGen IDGenerator,
	log zerolog.Logger,
) *StorefrontUsecase {
	return &StorefrontUsecase{
		shops:    shops,
		products: products,
		tx:       tx,
		idGen:    idGen,
		log:      log,
	}
}

func (u *StorefrontUsecase) PublicShop(ctx context.Context, store string) (PublicShop, error) {
	s, err := u.findShop(ctx, store)
	if err != nil {
		return PublicShop{}, err
	}
	return PublicShop{ID: s.ID, ShopName: s.ShopName, Image: s.Image}, nil
}

// 公開中の商品だけ。知らないショップは404（他のショップの商品は返さない）
func (u *StorefrontUsecase) PublicProducts(ctx context.Context, store string) ([]PublicProduct, error) {
	s, err := u.findShop(ctx, store)
	if err != nil {
		return []PublicProduct{}, err
	}

	items, err := u.products.ListByShopID(ctx, s.ID, true)
	if err != nil {
		return []PublicProduct{}, errDB(err)
	}

	out := make([]PublicProduct, 0, len(items))
	for _, p := range items {
		if p.ShopID != s.ID || !p.Available {
			continue
		}
		out = append(out, PublicProduct{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Image:       p.Image,
			Price:       p.Price,
			CreatedAt:   p.CreatedAt,
		})
	}
	return out, nil
}

// CreateOrder は公開中の商品に対して注文を作る。
// 金額は注文時の価格をそのまま保存する。
func (u *StorefrontUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (model.Order, error) {
	f, err := validator.ValidateOrder(validator.OrderFields{
		Fullname:  in.Fullname,
		Phone:     in.Phone,
		Address:   in.Address,
		Pincode:   in.Pincode,
		State:     in.State,
		ProductID: in.ProductID,
	})
	var tooLong *validator.FieldTooLongError
	if errors.As(err, &tooLong) {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, tooLong.Error())
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "all fields are required")
	}
	if !validator.IsUUID(f.ProductID) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "product not found")
	}

	var out model.Order

	//商品の確認とINSERTは同じTx（共有ロックで公開状態の切り替えを待たせる）
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByIDForShare(ctx, f.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return errDB(err)
		}
		if !p.Available {
			return NewHTTPError(http.StatusBadRequest, "product is not available")
		}

		created, err := r.Orders().Create(ctx, model.Order{
			ID:        u.idGen.NewID(),
			ProductID: p.ID,
			ShopID:    p.ShopID,
			Fullname:  f.Fullname,
			Phone:     f.Phone,
			Address:   f.Address,
			Pincode:   f.Pincode,
			State:     f.State,
			Amount:    p.Price,
		})
		if err != nil {
			return errDB(err)
		}
		out = created
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return model.Order{}, err
		}
		return model.Order{}, errDB(err)
	}

	u.log.Info().Str("order_id", out.ID).Str("shop_id", out.ShopID).Msg("order created")
	return out, nil
}

func (u *StorefrontUsecase) findShop(ctx context.Context, store string) (model.Shop, error) {
	name := strings.ToLower(strings.TrimSpace(store))
	if name == "" {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "store required")
	}

	s, err := u.shops.FindByName(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Shop{}, NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return model.Shop{}, errDB(err)
	}
	return s, nil
}
