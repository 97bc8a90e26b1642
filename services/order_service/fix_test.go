package order_service

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsmartex/mocktrade/models"
	"github.com/zsmartex/mocktrade/repositories"
	"github.com/zsmartex/mocktrade/services"
)

func fixOrder() *models.Order {
	return &models.Order{
		ID:           "ord-1",
		InstrumentID: "AAPL",
		Side:         "BUY",
		Qty:          100,
		LimitPrice:   decimal.NewNullDecimal(decimal.RequireFromString("189.5")),
		Type:         "LIMIT",
		TIF:          "DAY",
		TraderID:     "T1",
		AccountID:    "ACC1",
		Status:       "NEW",
		CreatedAt:    time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

func fixTags(message string) map[string]string {
	tags := make(map[string]string)
	for _, field := range strings.Split(strings.TrimSuffix(message, fixSOH), fixSOH) {
		parts := strings.SplitN(field, "=", 2)
		tags[parts[0]] = parts[1]
	}

	return tags
}

func TestBuildNewOrderSingle(t *testing.T) {
	message := BuildNewOrderSingle(fixOrder(), "20240301-09:31:00.000")

	require.True(t, strings.HasPrefix(message, "8=FIX.4.4"+fixSOH+"9="))
	require.True(t, strings.HasSuffix(message, fixSOH))

	tags := fixTags(message)
	assert.Equal(t, "D", tags["35"])
	assert.Equal(t, "T1", tags["49"])
	assert.Equal(t, "ACC1", tags["56"])
	assert.Equal(t, "20240301-09:31:00.000", tags["52"])
	assert.Equal(t, "ord-1", tags["11"])
	assert.Equal(t, "AAPL", tags["55"])
	assert.Equal(t, "1", tags["54"])
	assert.Equal(t, "100", tags["38"])
	assert.Equal(t, "2", tags["40"])
	assert.Equal(t, "189.5", tags["44"])
	assert.Equal(t, "0", tags["59"])
	assert.Equal(t, "20240301-09:30:00.000", tags["60"])
	assert.Equal(t, "0", tags["39"])
}

func TestBuildNewOrderSingleFraming(t *testing.T) {
	message := BuildNewOrderSingle(fixOrder(), "20240301-09:31:00.000")

	// BodyLength counts from the first byte after 9=...| up to the checksum.
	bodyStart := strings.Index(message, fixSOH+"35=") + 1
	checksumStart := strings.LastIndex(message, fixSOH+"10=") + 1
	length, err := strconv.Atoi(fixTags(message)["9"])
	require.NoError(t, err)
	assert.Equal(t, checksumStart-bodyStart, length)

	var sum int
	for i := 0; i < checksumStart; i++ {
		sum += int(message[i])
	}
	assert.Equal(t, sum%256, mustAtoi(t, fixTags(message)["10"]))
	assert.Len(t, fixTags(message)["10"], 3)
}

func TestBuildNewOrderSingleOmitsMarketPrice(t *testing.T) {
	order := fixOrder()
	order.Type = "MARKET"
	order.Side = "SELL"
	order.TIF = "IOC"
	order.Status = "FILLED"
	order.LimitPrice = decimal.NullDecimal{}

	tags := fixTags(BuildNewOrderSingle(order, "20240301-09:31:00.000"))

	_, hasPrice := tags["44"]
	assert.False(t, hasPrice)
	assert.Equal(t, "1", tags["40"])
	assert.Equal(t, "2", tags["54"])
	assert.Equal(t, "3", tags["59"])
	assert.Equal(t, "2", tags["39"])
}

func TestDropCopy(t *testing.T) {
	ctx := context.Background()
	orders := repositories.NewMemoryOrderRepository()
	require.NoError(t, orders.Insert(ctx, fixOrder()))

	service := NewOrderService(orders)
	service.Clock = services.FixedClock(time.Date(2024, 3, 1, 9, 31, 0, 0, time.UTC))

	result, err := service.DropCopy(ctx, "ord-1")
	require.NoError(t, err)

	assert.Equal(t, "ord-1", result.ID)
	assert.NotContains(t, result.FIX, fixSOH)
	assert.True(t, strings.HasPrefix(result.FIX, "8=FIX.4.4|9="))
	assert.Contains(t, result.FIX, "|52=20240301-09:31:00.000|")
}

func mustAtoi(t *testing.T, s string) int {
	n, err := strconv.Atoi(s)
	require.NoError(t, err)

	return n
}
