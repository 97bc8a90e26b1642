package trade_service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"github.com/zsmartex/mocktrade/controllers/entities"
	"github.com/zsmartex/mocktrade/events"
	"github.com/zsmartex/mocktrade/models"
	"github.com/zsmartex/mocktrade/repositories"
	"github.com/zsmartex/mocktrade/services"
	"github.com/zsmartex/mocktrade/types"
)

// CreateTradeInput leaves OrderID and Trader empty when absent; a zero
// ExecTime means "now".
type CreateTradeInput struct {
	OrderID    string
	Instrument string
	Side       string
	Qty        int64
	Price      decimal.Decimal
	Trader     string
	ExecTime   time.Time
	Broker     string
	Account    string
}

type TradeService struct {
	Trades repositories.TradeRepository
	Clock  services.Clock
	Policy services.StatusPolicy
	Events events.Publisher
}

func NewTradeService(trades repositories.TradeRepository) *TradeService {
	return &TradeService{
		Trades: trades,
		Clock:  services.SystemClock,
		Policy: services.AllowAll,
		Events: events.Nop,
	}
}

func (s *TradeService) now() time.Time {
	return s.Clock.Now().UTC()
}

func (s *TradeService) CreateTrade(ctx context.Context, input CreateTradeInput) (entities.TradeEntity, error) {
	now := s.now()

	execTime := input.ExecTime
	if execTime.IsZero() {
		execTime = now
	}

	trade := &models.Trade{
		ID:           uuid.NewString(),
		OrderID:      null.NewString(input.OrderID, len(input.OrderID) > 0),
		InstrumentID: input.Instrument,
		Side:         strings.ToUpper(input.Side),
		Qty:          input.Qty,
		Price:        input.Price,
		TraderID:     null.NewString(input.Trader, len(input.Trader) > 0),
		ExecTime:     execTime.UTC(),
		BrokerID:     input.Broker,
		AccountID:    input.Account,
		Status:       types.TradeStatusBooked,
		CreatedAt:    now,
	}

	if err := s.Trades.Insert(ctx, trade); err != nil {
		return entities.TradeEntity{}, err
	}

	events.Emit(s.Events, events.ForTrade(events.TradeBooked, trade, now))

	return trade.ToJSON(), nil
}

func (s *TradeService) ListTrades(ctx context.Context, filter repositories.TradeFilter) ([]entities.TradeEntity, error) {
	trades, err := s.Trades.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	trades_json := make([]entities.TradeEntity, 0, len(trades))
	for _, trade := range trades {
		trades_json = append(trades_json, trade.ToJSON())
	}

	return trades_json, nil
}

// AmendTrade applies the amendable keys of patch in one write. Unknown keys,
// including id and created_at, are ignored. A value of the wrong type fails
// the whole amendment with an InvalidFieldError.
func (s *TradeService) AmendTrade(ctx context.Context, id string, patch Patch) (entities.TradeStatusEntity, error) {
	trade, err := s.Trades.Update(ctx, id, func(trade *models.Trade) error {
		previous := trade.Status

		if err := patch.Apply(trade); err != nil {
			return err
		}

		if trade.Status != previous {
			return s.Policy.Allow(services.EntityTrade, previous, trade.Status)
		}

		return nil
	})
	if err != nil {
		return entities.TradeStatusEntity{}, services.TranslateError(err)
	}

	events.Emit(s.Events, events.ForTrade(events.TradeAmended, trade, s.now()))

	return trade.ToStatusJSON(), nil
}

func (s *TradeService) UpdateTradeStatus(ctx context.Context, id string, status string) (entities.TradeStatusEntity, error) {
	trade, err := s.Trades.Update(ctx, id, func(trade *models.Trade) error {
		if err := s.Policy.Allow(services.EntityTrade, trade.Status, status); err != nil {
			return err
		}

		trade.Status = status

		return nil
	})
	if err != nil {
		return entities.TradeStatusEntity{}, services.TranslateError(err)
	}

	kind := events.TradeAmended
	if trade.IsCancelled() {
		kind = events.TradeCancelled
	}
	events.Emit(s.Events, events.ForTrade(kind, trade, s.now()))

	return trade.ToStatusJSON(), nil
}

func (s *TradeService) CancelTrade(ctx context.Context, id string) (entities.TradeStatusEntity, error) {
	return s.UpdateTradeStatus(ctx, id, types.TradeStatusCancelled)
}
