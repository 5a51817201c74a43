package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderProductOutput struct {
	Title string `json:"title"`
}

type OrderOutput struct {
	ID        string             `json:"id"`
	Fullname  string             `json:"fullname"`
	Phone     string             `json:"phone"`
	Address   string             `json:"address"`
	Pincode   string             `json:"pincode"`
	State     string             `json:"state"`
	Amount    decimal.Decimal    `json:"amount"`
	CreatedAt time.Time          `json:"createdAt"`
	Product   OrderProductOutput `json:"product"`
}

// オーナーが受けた注文を見る
type OrderUsecase struct {
	orders repo.OrderRepository
}

func NewOrderUsecase(orders repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{orders: orders}
}

// 新しい順
func (u *OrderUsecase) ListShopOrders(ctx context.Context, shopID string) ([]OrderOutput, error) {
	orders, err := u.orders.ListByShopID(ctx, shopID)
	if err != nil {
		return []OrderOutput{}, errDB(err)
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, toOrderOutput(o))
	}
	return outs, nil
}

func toOrderOutput(o model.Order) OrderOutput {
	out := OrderOutput{
		ID:        o.ID,
		Fullname:  o.Fullname,
		Phone:     o.Phone,
		Address:   o.Address,
		Pincode:   o.Pincode,
		State:     o.State,
		Amount:    o.Amount,
		CreatedAt: o.CreatedAt,
	}
	if o.Product != nil {
		out.Product.Title = o.Product.Title
	}
	return out
}
