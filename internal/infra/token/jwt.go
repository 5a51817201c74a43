package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ショップIDを入れるclaim名
const ClaimShopID = "id"

var ErrInvalidToken = errors.New("invalid token")

// HS256のセッショントークン。
// 有効期限・リフレッシュはなし（発行したら無期限）。
type JWTManager struct {
	secret []byte
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: []byte(secret)}
}

// Issue はショップIDを埋め込んだトークンを発行する。
func (m *JWTManager) Issue(shopID string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		ClaimShopID: shopID,
		"iat":       now.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse は署名を検証してショップIDを返す。
func (m *JWTManager) Parse(raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || tok == nil || !tok.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	shopID, ok := claims[ClaimShopID].(string)
	if !ok || shopID == "" {
		return "", ErrInvalidToken
	}
	return shopID, nil
}
