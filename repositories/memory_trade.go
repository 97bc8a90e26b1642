package repositories

import (
	"context"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/zsmartex/mocktrade/models"
)

type MemoryTradeRepository struct {
	mu     sync.RWMutex
	trades *linkedhashmap.Map
}

func NewMemoryTradeRepository() *MemoryTradeRepository {
	return &MemoryTradeRepository{
		trades: linkedhashmap.New(),
	}
}

func (r *MemoryTradeRepository) Get(ctx context.Context, id string) (*models.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, found := r.trades.Get(id)
	if !found {
		return nil, ErrRecordNotFound
	}

	trade := *value.(*models.Trade)

	return &trade, nil
}

func (r *MemoryTradeRepository) Insert(ctx context.Context, trade *models.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.trades.Get(trade.ID); found {
		return ErrDuplicateKey
	}

	stored := *trade
	r.trades.Put(trade.ID, &stored)

	return nil
}

func (r *MemoryTradeRepository) Update(ctx context.Context, id string, mutate func(trade *models.Trade) error) (*models.Trade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	value, found := r.trades.Get(id)
	if !found {
		return nil, ErrRecordNotFound
	}

	trade := *value.(*models.Trade)
	if err := mutate(&trade); err != nil {
		return nil, err
	}

	stored := trade
	r.trades.Put(id, &stored)

	return &trade, nil
}

func (r *MemoryTradeRepository) List(ctx context.Context, filter TradeFilter) ([]*models.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trades := make([]*models.Trade, 0, r.trades.Size())

	it := r.trades.Iterator()
	for it.Next() {
		trade := *it.Value().(*models.Trade)

		if len(filter.Instrument) > 0 && !containsFold(trade.InstrumentID, filter.Instrument) {
			continue
		}

		if len(filter.Account) > 0 && !containsFold(trade.AccountID, filter.Account) {
			continue
		}

		if len(filter.Status) > 0 && trade.Status != filter.Status {
			continue
		}

		trades = append(trades, &trade)
	}

	return trades, nil
}

func (r *MemoryTradeRepository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := make(map[string]int64)
	for _, value := range r.trades.Values() {
		totals[value.(*models.Trade).Status]++
	}

	return sortedCounts(totals), nil
}
