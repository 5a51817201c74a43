package usecase

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/repository"
	"storefront/internal/validator"

	"github.com/rs/zerolog"
)

// オーナー用のプロフィール
type ShopProfile struct {
	ShopName string  `json:"shopName"`
	Image    *string `json:"image"`
}

// ショップ自身の情報（名前・画像）
type ShopUsecase struct {
	shops repository.ShopRepository
	media mediaStore
	log   zerolog.Logger
}

// DI
func NewShopUsecase(
	shops repository.ShopRepository,
	storage ObjectStorage,
	idGen IDGenerator,
	log zerolog.Logger,
) *ShopUsecase {
	return &ShopUsecase{
		shops: shops,
		media: mediaStore{storage: storage, idGen: idGen},
		log:   log,
	}
}

func (u *ShopUsecase) Profile(ctx context.Context, shopID string) (ShopProfile, error) {
	s, err := u.shops.FindByID(ctx, shopID)
	if errors.Is(err, repository.ErrNotFound) {
		return ShopProfile{}, NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return ShopProfile{}, errDB(err)
	}
	return ShopProfile{ShopName: s.ShopName, Image: s.Image}, nil
}

// Rename は名前を変える。他のショップが使っていれば409。
func (u *ShopUsecase) Rename(ctx context.Context, shopID string, newName string) error {
	name, err := validator.NormalizeShopName(newName)
	if err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid shop name")
	}

	existing, err := u.shops.FindByName(ctx, name)
	if err == nil {
		if existing.ID == shopID {
			//今の名前と同じ
			return nil
		}
		return NewHTTPError(http.StatusConflict, "a shop with the same name already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return errDB(err)
	}

	err = u.shops.UpdateName(ctx, shopID, name)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrShopNameTaken):
		return NewHTTPError(http.StatusConflict, "a shop with the same name already exists")
	case errors.Is(err, repository.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "shop not found")
	default:
		return errDB(err)
	}
}

// UpdateImage はプロフィール画像を差し替える。
// 画像なしなら何も変えない。前の画像（自分のバケットのもの）は先に消す。
func (u *ShopUsecase) UpdateImage(ctx context.Context, shopID string, img *ImageUpload) (ShopProfile, error) {
	s, err := u.shops.FindByID(ctx, shopID)
	if errors.Is(err, repository.ErrNotFound) {
		return ShopProfile{}, NewHTTPError(http.StatusUnauthorized, "unverified")
	}
	if err != nil {
		return ShopProfile{}, errDB(err)
	}

	if img == nil {
		return ShopProfile{ShopName: s.ShopName, Image: s.Image}, nil
	}
	if err := img.Validate(); err != nil {
		return ShopProfile{}, err
	}

	//前の画像を削除（失敗してもログだけ）
	if key, ok := u.media.storage.KeyFromURL(s.ImageURL()); ok {
		if err := u.media.storage.Delete(ctx, key); err != nil {
			u.log.Error().Err(err).Str("shop_id", shopID).Str("key", key).Msg("delete previous profile image failed")
		}
	}

	url, err := u.media.upload(ctx, s.ShopName, "profile", img)
	if err != nil {
		return ShopProfile{}, err
	}

	if err := u.shops.UpdateImage(ctx, shopID, &url); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ShopProfile{}, NewHTTPError(http.StatusUnauthorized, "unverified")
		}
		return ShopProfile{}, errDB(err)
	}

	return ShopProfile{ShopName: s.ShopName, Image: &url}, nil
}
