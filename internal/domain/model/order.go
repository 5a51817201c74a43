package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 匿名の購入者が作る注文。作成後は読み取りのみ。
// Amount は注文時点の商品価格（スナップショット）。
type Order struct {
	ID        string          `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID string          `gorm:"type:uuid;not null;index" json:"productId"`
	ShopID    string          `gorm:"type:uuid;not null;index" json:"shopId"`
	Fullname  string          `gorm:"type:varchar(255);not null" json:"fullname"`
	Phone     string          `gorm:"type:varchar(30);not null" json:"phone"`
	Address   string          `gorm:"type:text;not null" json:"address"`
	Pincode   string          `gorm:"type:varchar(20);not null" json:"pincode"`
	State     string          `gorm:"type:varchar(100);not null" json:"state"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	CreatedAt time.Time       `gorm:"not null;index;autoCreateTime" json:"createdAt"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
}
