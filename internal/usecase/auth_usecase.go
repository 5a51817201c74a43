package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
	"storefront/internal/validator"

	"github.com/rs/zerolog"
)

// 名前が衝突したときのリトライ上限（サフィックス付き）
const maxShopNameRetries = 10

const (
	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixLength   = 6
)

// 衝突時に付けるランダム文字列
type SuffixFunc func() (string, error)

// /auth の入力（上流のIDプロバイダが確認したemail）
type AuthInput struct {
	Email    string
	PhotoURL string
}

type AuthOutput struct {
	Token    string
	ShopID   string
	ShopName string
	Created  bool
}

// emailからショップを引く、なければ作る。
// パスワードはない（emailを渡した呼び出し元を信頼する）。
type AuthUsecase struct {
	shops  repository.ShopRepository
	issuer TokenIssuer
	idGen  IDGenerator
	clock  Clock
	suffix SuffixFunc
	log    zerolog.Logger
}

// DI
func NewAuthUsecase(
	shops repository.ShopRepository,
	issuer TokenIssuer,
	idGen IDGenerator,
	clock Clock,
	log zerolog.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		shops:  shops,
		issuer: issuer,
		idGen:  idGen,
		clock:  clock,
		suffix: RandomSuffix,
		log:    log,
	}
}

// テスト用にサフィックス生成を差し替える
func (u *AuthUsecase) WithSuffixFunc(f SuffixFunc) *AuthUsecase {
	u.suffix = f
	return u
}

func (u *AuthUsecase) Authenticate(ctx context.Context, in AuthInput) (AuthOutput, error) {
	email, err := validator.NormalizeEmail(in.Email)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	created := false
	shop, err := u.shops.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		shop, created, err = u.createShop(ctx, email, in.PhotoURL)
	}
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return AuthOutput{}, err
		}
		return AuthOutput{}, errDB(err)
	}

	token, err := u.issuer.Issue(shop.ID, u.clock.Now())
	if err != nil {
		return AuthOutput{}, WrapHTTPError(http.StatusInternalServerError, "internal error", err)
	}

	return AuthOutput{
		Token:    token,
		ShopID:   shop.ID,
		ShopName: shop.ShopName,
		Created:  created,
	}, nil
}

// 名前はローカル部→衝突したら "<base>_xxxxxx" を最大10回
func (u *AuthUsecase) createShop(ctx context.Context, email string, photoURL string) (model.Shop, bool, error) {
	base := validator.BaseShopName(email)

	var image *string
	if p := strings.TrimSpace(photoURL); p != "" {
		image = &p
	}

	for attempt := 0; attempt <= maxShopNameRetries; attempt++ {
		name := base
		if attempt > 0 {
			s, err := u.suffix()
			if err != nil {
				return model.Shop{}, false, WrapHTTPError(http.StatusInternalServerError, "internal error", err)
			}
			name = base + "_" + s
		}

		//使われているか確認
		_, err := u.shops.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return model.Shop{}, false, err
		}

		shop := model.Shop{
			ID:       u.idGen.NewID(),
			ShopName: name,
			Email:    email,
			Image:    image,
		}
		err = u.shops.Create(ctx, &shop)
		switch {
		case err == nil:
			u.log.Info().Str("shop_id", shop.ID).Str("shop_name", name).Msg("shop created")
			return shop, true, nil
		case errors.Is(err, repository.ErrShopNameTaken):
			//確認とINSERTの間に取られた
			continue
		case errors.Is(err, repository.ErrEmailTaken):
			//同じemailの同時登録。先に作られた方を返す
			existing, ferr := u.shops.FindByEmail(ctx, email)
			return existing, false, ferr
		default:
			return model.Shop{}, false, err
		}
	}

	u.log.Warn().Str("base", base).Msg("shop name retries exhausted")
	return model.Shop{}, false, NewHTTPError(http.StatusInternalServerError, "unable to generate unique shop name")
}

// RandomSuffix は英小文字+数字6文字
func RandomSuffix() (string, error) {
	b := make([]byte, suffixLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = suffixAlphabet[int(b[i])%len(suffixAlphabet)]
	}
	return string(b), nil
}
