package events

import (
	"strings"
	"time"
)

// PointWriter is the slice of the InfluxDB client the publishers and jobs use.
type PointWriter interface {
	WritePoint(name string, tags map[string]string, fields map[string]interface{}, at time.Time) error
}

// InfluxPublisher records a trade_events point per trade event and ignores
// order events.
type InfluxPublisher struct {
	writer PointWriter
}

func NewInfluxPublisher(writer PointWriter) *InfluxPublisher {
	return &InfluxPublisher{writer: writer}
}

func (p *InfluxPublisher) Publish(event Event) error {
	if !strings.HasPrefix(event.Kind, "trade.") {
		return nil
	}

	tags := map[string]string{
		"kind":       event.Kind,
		"status":     event.Status,
		"instrument": event.Instrument,
	}
	fields := map[string]interface{}{
		"id":  event.ID,
		"qty": event.Qty,
	}
	if event.Price != nil {
		fields["price"] = *event.Price
	}

	return p.writer.WritePoint("trade_events", tags, fields, event.At)
}
