package helpers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zsmartex/mocktrade/services/trade_service"
	"github.com/zsmartex/mocktrade/types"
)

// CreateTradeParams accepts the column names instrument_id, broker_id,
// account_id and trader_id as aliases of the wire names.
type CreateTradeParams struct {
	OrderID      string              `json:"order_id" form:"order_id"`
	Instrument   string              `json:"instrument" form:"instrument" validate:"required"`
	InstrumentID string              `json:"instrument_id" form:"instrument_id"`
	Side         string              `json:"side" form:"side" validate:"required"`
	Qty          int64               `json:"qty" form:"qty" validate:"required|min:1"`
	Price        decimal.NullDecimal `json:"price" form:"price"`
	Trader       string              `json:"trader" form:"trader"`
	TraderID     string              `json:"trader_id" form:"trader_id"`
	ExecTime     string              `json:"exec_time" form:"exec_time" validate:"ValidateExecTime"`
	Broker       string              `json:"broker" form:"broker" validate:"required"`
	BrokerID     string              `json:"broker_id" form:"broker_id"`
	Account      string              `json:"account" form:"account" validate:"required"`
	AccountID    string              `json:"account_id" form:"account_id"`
}

func (p CreateTradeParams) Messages() map[string]string {
	ms := VaildateMessage("trade")
	ms["ValidateExecTime"] = "trade.invalid_exec_time"

	return ms
}

func (p CreateTradeParams) ValidateExecTime(val string) bool {
	_, err := types.ParseTimestamp(val)

	return err == nil
}

// Normalize folds the alias keys into the wire-name fields. Run it before
// validating.
func (p *CreateTradeParams) Normalize() {
	if len(p.Instrument) == 0 {
		p.Instrument = p.InstrumentID
	}

	if len(p.Trader) == 0 {
		p.Trader = p.TraderID
	}

	if len(p.Broker) == 0 {
		p.Broker = p.BrokerID
	}

	if len(p.Account) == 0 {
		p.Account = p.AccountID
	}
}

func (p CreateTradeParams) Check(err_src *Errors) {
	if !p.Price.Valid {
		err_src.Add("trade.invalid_price")
	} else if p.Price.Decimal.IsNegative() {
		err_src.Add("trade.non_positive_price")
	}
}

func (p CreateTradeParams) ToInput() trade_service.CreateTradeInput {
	var execTime time.Time
	if len(p.ExecTime) > 0 {
		execTime, _ = types.ParseTimestamp(p.ExecTime)
	}

	return trade_service.CreateTradeInput{
		OrderID:    p.OrderID,
		Instrument: p.Instrument,
		Side:       p.Side,
		Qty:        p.Qty,
		Price:      p.Price.Decimal,
		Trader:     p.Trader,
		ExecTime:   execTime,
		Broker:     p.Broker,
		Account:    p.Account,
	}
}
