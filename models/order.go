package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"github.com/zsmartex/mocktrade/controllers/entities"
	"github.com/zsmartex/mocktrade/types"
)

type Order struct {
	ID           string              `json:"id" gorm:"column:order_id;primaryKey;type:varchar(36)"`
	InstrumentID string              `json:"instrument_id" gorm:"not null"`
	Side         types.OrderSide     `json:"side" gorm:"not null"`
	Qty          int64               `json:"qty" gorm:"not null"`
	LimitPrice   decimal.NullDecimal `json:"limit_price" gorm:"type:numeric(32,16)"`
	Type         types.OrderType     `json:"type" gorm:"not null"`
	TIF          types.TimeInForce   `json:"tif" gorm:"column:tif;not null"`
	TraderID     string              `json:"trader_id" gorm:"index"`
	AccountID    string              `json:"account_id"`
	Status       types.OrderStatus   `json:"status" gorm:"index;not null"`
	CreatedAt    time.Time           `json:"created_at" gorm:"not null"`
	FilledAt     null.Time           `json:"filled_at"`
}

func (Order) TableName() string {
	return "order_hdr"
}

func (o *Order) IsFilled() bool {
	return o.Status == types.OrderStatusFilled
}

func (o *Order) IsCancelled() bool {
	return o.Status == types.OrderStatusCancelled
}

func (o *Order) ToJSON() entities.OrderEntity {
	var filledAt *string
	if o.FilledAt.Valid {
		s := types.FormatTimestamp(o.FilledAt.Time)
		filledAt = &s
	}

	return entities.OrderEntity{
		ID:         o.ID,
		Instrument: o.InstrumentID,
		Side:       o.Side,
		Qty:        o.Qty,
		Price:      floatOrNil(o.LimitPrice),
		Type:       o.Type,
		TIF:        o.TIF,
		Trader:     o.TraderID,
		Account:    o.AccountID,
		Status:     o.Status,
		CreatedAt:  types.FormatTimestamp(o.CreatedAt),
		FilledAt:   filledAt,
	}
}

func (o *Order) ToStatusJSON() entities.OrderStatusEntity {
	return entities.OrderStatusEntity{
		ID:     o.ID,
		Status: o.Status,
	}
}

// ToFillJSON renders filled_at as "" when the order carries no fill time.
func (o *Order) ToFillJSON() entities.OrderFillEntity {
	var filledAt string
	if o.FilledAt.Valid {
		filledAt = types.FormatTimestamp(o.FilledAt.Time)
	}

	return entities.OrderFillEntity{
		ID:       o.ID,
		Status:   o.Status,
		FilledAt: filledAt,
	}
}
