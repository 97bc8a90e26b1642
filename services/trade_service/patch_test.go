package trade_service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null"

	"github.com/zsmartex/mocktrade/models"
)

func patchTrade() *models.Trade {
	return &models.Trade{
		ID:           "trd-1",
		OrderID:      null.StringFrom("ord-1"),
		InstrumentID: "AAPL",
		Side:         "BUY",
		Qty:          100,
		Price:        decimal.RequireFromString("189.5"),
		TraderID:     null.StringFrom("T1"),
		ExecTime:     now,
		BrokerID:     "BRK1",
		AccountID:    "ACC1",
		Status:       "BOOKED",
		CreatedAt:    now,
	}
}

func TestPatchApply(t *testing.T) {
	trade := patchTrade()

	err := Patch{
		"order_id":  "",
		"side":      "sell",
		"qty":       json.Number("25"),
		"price":     "188.75",
		"exec_time": "2024-03-01T10:00:00Z",
		"broker":    "BRK2",
	}.Apply(trade)
	require.NoError(t, err)

	assert.False(t, trade.OrderID.Valid)
	assert.Equal(t, "SELL", trade.Side)
	assert.Equal(t, int64(25), trade.Qty)
	assert.True(t, decimal.RequireFromString("188.75").Equal(trade.Price))
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), trade.ExecTime)
	assert.Equal(t, "BRK2", trade.BrokerID)
	assert.Equal(t, "trd-1", trade.ID)
	assert.Equal(t, now, trade.CreatedAt)
}

func TestPatchApplyRejects(t *testing.T) {
	for field, patch := range map[string]Patch{
		"qty":                   {"qty": 1.5},
		"zero qty":              {"qty": float64(0)},
		"price":                 {"price": "cheap"},
		"negative price":        {"price": -5.0},
		"negative price string": {"price": "-0.01"},
		"side":                  {"side": 1},
		"instrument":            {"instrument": ""},
		"exec_time":             {"exec_time": "noon"},
		"trader":                {"trader": true},
		"status":                {"status": nil},
	} {
		err := patch.Apply(patchTrade())
		assert.Error(t, err, field)
	}
}

func TestPatchApplyRejectedPriceLeavesTradeUntouched(t *testing.T) {
	trade := patchTrade()

	err := Patch{"price": -5.0}.Apply(trade)
	require.Error(t, err)
	assert.Equal(t, "trade.invalid_price", err.Error())
	assert.True(t, decimal.RequireFromString("189.5").Equal(trade.Price))

	require.NoError(t, Patch{"price": 0}.Apply(trade))
	assert.True(t, trade.Price.IsZero())
}

func TestAmendableKeys(t *testing.T) {
	keys := AmendableKeys()

	assert.Contains(t, keys, "instrument_id")
	assert.Contains(t, keys, "trader")
	assert.Contains(t, keys, "status")
	assert.NotContains(t, keys, "id")
	assert.NotContains(t, keys, "created_at")
}
