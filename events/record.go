package events

import (
	"time"

	"github.com/zsmartex/mocktrade/models"
)

func ForOrder(kind Kind, order *models.Order, at time.Time) Event {
	record := order.ToJSON()

	return Event{
		Kind:       kind,
		ID:         order.ID,
		Status:     order.Status,
		Instrument: order.InstrumentID,
		Qty:        order.Qty,
		Price:      record.Price,
		Record:     record,
		At:         at,
	}
}

func ForTrade(kind Kind, trade *models.Trade, at time.Time) Event {
	record := trade.ToJSON()

	return Event{
		Kind:       kind,
		ID:         trade.ID,
		Status:     trade.Status,
		Instrument: trade.InstrumentID,
		Qty:        trade.Qty,
		Price:      record.Price,
		Record:     record,
		At:         at,
	}
}
