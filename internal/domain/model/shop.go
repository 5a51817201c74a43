package model

import "time"

// ショップ（出店者アカウント）
// shop_name は小文字で全体ユニーク、email はログインキー。
type Shop struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	ShopName  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_shops_shop_name" json:"shopName"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_shops_email" json:"-"`
	Image     *string   `gorm:"type:text" json:"image"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}

// 制約名（一意制約違反の判定に使う）
const (
	ShopNameUniqueIndex  = "idx_shops_shop_name"
	ShopEmailUniqueIndex = "idx_shops_email"
)

// 画像URL（未設定なら空文字）
func (s Shop) ImageURL() string {
	if s.Image == nil {
		return ""
	}
	return *s.Image
}
