package events

import (
	"time"

	"github.com/zsmartex/mocktrade/config"
)

type Kind = string

var (
	OrderCreated       Kind = "order.created"
	OrderStatusUpdated Kind = "order.status_updated"
	OrderFilled        Kind = "order.filled"
	TradeBooked        Kind = "trade.booked"
	TradeAmended       Kind = "trade.amended"
	TradeCancelled     Kind = "trade.cancelled"
)

// Event describes a committed lifecycle change. Record is the wire entity of
// the affected order or trade.
type Event struct {
	Kind       Kind        `json:"kind"`
	ID         string      `json:"id"`
	Status     string      `json:"status"`
	Instrument string      `json:"instrument"`
	Qty        int64       `json:"qty"`
	Price      *float64    `json:"price"`
	Record     interface{} `json:"record"`
	At         time.Time   `json:"at"`
}

// Publisher delivers events after the storage commit. Delivery is best
// effort: a failed publish never undoes or fails the operation.
type Publisher interface {
	Publish(event Event) error
}

type nop struct{}

func (nop) Publish(Event) error { return nil }

var Nop Publisher = nop{}

type Multi []Publisher

func (m Multi) Publish(event Event) error {
	var first error
	for _, p := range m {
		if err := p.Publish(event); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// Emit publishes and logs a failed delivery instead of returning it.
func Emit(p Publisher, event Event) {
	if p == nil {
		return
	}

	if err := p.Publish(event); err != nil {
		config.Logger.WithError(err).WithField("kind", event.Kind).WithField("id", event.ID).Warn("Failed to publish event")
	}
}
