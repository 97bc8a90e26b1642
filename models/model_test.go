package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null"
)

var est = time.FixedZone("EST", -5*60*60)

func TestOrderToJSONRendersUTC(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	order := &Order{
		ID:        "ord-1",
		Status:    "FILLED",
		CreatedAt: at.In(est),
		FilledAt:  null.TimeFrom(at.Add(time.Second).In(est)),
	}

	json := order.ToJSON()
	assert.Equal(t, "2024-03-01 09:30:00", json.CreatedAt)
	require.NotNil(t, json.FilledAt)
	assert.Equal(t, "2024-03-01 09:30:01", *json.FilledAt)

	assert.Equal(t, "2024-03-01 09:30:01", order.ToFillJSON().FilledAt)
}

func TestTradeToJSONRendersUTC(t *testing.T) {
	at := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)

	trade := &Trade{
		ID:        "trd-1",
		Price:     decimal.NewFromInt(10),
		ExecTime:  at.In(est),
		CreatedAt: at.In(time.FixedZone("JST", 9*60*60)),
	}

	json := trade.ToJSON()
	assert.Equal(t, "2024-03-01 23:00:00", json.ExecTime)
	assert.Equal(t, "2024-03-01 23:00:00", json.CreatedAt)
	assert.Nil(t, json.OrderID)
}

func TestPriceRendering(t *testing.T) {
	assert.Nil(t, floatOrNil(decimal.NullDecimal{}))
	assert.Nil(t, floatOrNil(decimal.NewNullDecimal(decimal.Zero)))

	price := floatOrNil(decimal.NewNullDecimal(decimal.RequireFromString("189.5")))
	require.NotNil(t, price)
	assert.Equal(t, 189.5, *price)
}
