package helpers

import (
	"github.com/shopspring/decimal"

	"github.com/zsmartex/mocktrade/services/order_service"
)

type CreateOrderParams struct {
	Instrument string              `json:"instrument" form:"instrument" validate:"required"`
	Side       string              `json:"side" form:"side" validate:"required"`
	Qty        int64               `json:"qty" form:"qty" validate:"required|min:1"`
	Price      decimal.NullDecimal `json:"price" form:"price"`
	Type       string              `json:"type" form:"type" validate:"required"`
	TIF        string              `json:"tif" form:"tif" validate:"required"`
	Trader     string              `json:"trader" form:"trader" validate:"required"`
	Account    string              `json:"account" form:"account" validate:"required"`
}

func (p CreateOrderParams) Messages() map[string]string {
	return VaildateMessage("order")
}

// Check covers the rules the struct tags can't express.
func (p CreateOrderParams) Check(err_src *Errors) {
	if p.Price.Valid && p.Price.Decimal.IsNegative() {
		err_src.Add("order.non_positive_price")
	}
}

func (p CreateOrderParams) ToInput() order_service.CreateOrderInput {
	return order_service.CreateOrderInput{
		Instrument: p.Instrument,
		Side:       p.Side,
		Qty:        p.Qty,
		Price:      p.Price,
		Type:       p.Type,
		TIF:        p.TIF,
		Trader:     p.Trader,
		Account:    p.Account,
	}
}

type UpdateStatusParams struct {
	Status string `json:"status" form:"status" query:"status" validate:"required"`
}

func (p UpdateStatusParams) Messages() map[string]string {
	return VaildateMessage("order")
}
