package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"github.com/zsmartex/mocktrade/controllers/entities"
	"github.com/zsmartex/mocktrade/types"
)

type Trade struct {
	ID           string            `json:"id" gorm:"column:trade_id;primaryKey;type:varchar(36)"`
	OrderID      null.String       `json:"order_id" gorm:"index"`
	InstrumentID string            `json:"instrument_id" gorm:"not null"`
	Side         types.OrderSide   `json:"side" gorm:"not null"`
	Qty          int64             `json:"qty" gorm:"not null"`
	Price        decimal.Decimal   `json:"price" gorm:"type:numeric(32,16);not null"`
	TraderID     null.String       `json:"trader_id"`
	ExecTime     time.Time         `json:"exec_time" gorm:"not null"`
	BrokerID     string            `json:"broker_id" gorm:"not null"`
	AccountID    string            `json:"account_id" gorm:"index;not null"`
	Status       types.TradeStatus `json:"status" gorm:"index;not null"`
	CreatedAt    time.Time         `json:"created_at" gorm:"not null"`
}

func (Trade) TableName() string {
	return "trade_hdr"
}

func (t *Trade) IsCancelled() bool {
	return t.Status == types.TradeStatusCancelled
}

func (t *Trade) ToJSON() entities.TradeEntity {
	return entities.TradeEntity{
		ID:         t.ID,
		OrderID:    t.OrderID.Ptr(),
		Instrument: t.InstrumentID,
		Side:       t.Side,
		Qty:        t.Qty,
		Price:      floatOrNil(decimal.NewNullDecimal(t.Price)),
		Trader:     t.TraderID.Ptr(),
		Broker:     t.BrokerID,
		Account:    t.AccountID,
		Status:     t.Status,
		ExecTime:   types.FormatTimestamp(t.ExecTime),
		CreatedAt:  types.FormatTimestamp(t.CreatedAt),
	}
}

func (t *Trade) ToStatusJSON() entities.TradeStatusEntity {
	return entities.TradeStatusEntity{
		ID:     t.ID,
		Status: t.Status,
	}
}
