package events

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsmartex/mocktrade/models"
)

var at = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

type publisherFunc func(Event) error

func (f publisherFunc) Publish(event Event) error {
	return f(event)
}

type point struct {
	name   string
	tags   map[string]string
	fields map[string]interface{}
	at     time.Time
}

type pointRecorder struct {
	points []point
}

func (r *pointRecorder) WritePoint(name string, tags map[string]string, fields map[string]interface{}, at time.Time) error {
	r.points = append(r.points, point{name, tags, fields, at})

	return nil
}

func TestMulti(t *testing.T) {
	failure := errors.New("broker down")
	delivered := 0

	multi := Multi{
		publisherFunc(func(Event) error { return failure }),
		publisherFunc(func(Event) error { delivered++; return nil }),
	}

	assert.Equal(t, failure, multi.Publish(Event{Kind: OrderCreated}))
	assert.Equal(t, 1, delivered)

	assert.NoError(t, Multi{}.Publish(Event{Kind: OrderCreated}))
}

func TestEmit(t *testing.T) {
	Emit(nil, Event{Kind: OrderCreated})
	Emit(Nop, Event{Kind: OrderCreated})

	called := false
	Emit(publisherFunc(func(Event) error {
		called = true
		return errors.New("broker down")
	}), Event{Kind: OrderCreated})

	assert.True(t, called)
}

func TestInfluxPublisher(t *testing.T) {
	writer := &pointRecorder{}
	publisher := NewInfluxPublisher(writer)

	trade := &models.Trade{
		ID:           "trd-1",
		InstrumentID: "AAPL",
		Side:         "BUY",
		Qty:          100,
		Price:        decimal.RequireFromString("189.5"),
		ExecTime:     at,
		BrokerID:     "BRK1",
		AccountID:    "ACC1",
		Status:       "BOOKED",
		CreatedAt:    at,
	}

	require.NoError(t, publisher.Publish(ForTrade(TradeBooked, trade, at)))
	require.NoError(t, publisher.Publish(ForOrder(OrderCreated, &models.Order{ID: "ord-1", Status: "NEW", CreatedAt: at}, at)))

	require.Len(t, writer.points, 1)

	p := writer.points[0]
	assert.Equal(t, "trade_events", p.name)
	assert.Equal(t, map[string]string{"kind": "trade.booked", "status": "BOOKED", "instrument": "AAPL"}, p.tags)
	assert.Equal(t, "trd-1", p.fields["id"])
	assert.Equal(t, int64(100), p.fields["qty"])
	assert.Equal(t, 189.5, p.fields["price"])
	assert.Equal(t, at, p.at)
}

func TestForOrder(t *testing.T) {
	order := &models.Order{
		ID:           "ord-1",
		InstrumentID: "AAPL",
		Qty:          5,
		Status:       "NEW",
		CreatedAt:    at,
	}

	event := ForOrder(OrderCreated, order, at)

	assert.Equal(t, "order.created", event.Kind)
	assert.Equal(t, "ord-1", event.ID)
	assert.Equal(t, "AAPL", event.Instrument)
	assert.Equal(t, int64(5), event.Qty)
	assert.Nil(t, event.Price)
	assert.Equal(t, order.ToJSON(), event.Record)
}
