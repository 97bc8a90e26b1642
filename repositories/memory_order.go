package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/zsmartex/mocktrade/models"
)

// MemoryOrderRepository keeps orders in insertion order, which is the order
// List reports them in. Records are copied in and out so callers never share
// memory with the store.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders *linkedhashmap.Map
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: linkedhashmap.New(),
	}
}

func (r *MemoryOrderRepository) Get(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, found := r.orders.Get(id)
	if !found {
		return nil, ErrRecordNotFound
	}

	order := *value.(*models.Order)

	return &order, nil
}

func (r *MemoryOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.orders.Get(order.ID); found {
		return ErrDuplicateKey
	}

	stored := *order
	r.orders.Put(order.ID, &stored)

	return nil
}

func (r *MemoryOrderRepository) Update(ctx context.Context, id string, mutate func(order *models.Order) error) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	value, found := r.orders.Get(id)
	if !found {
		return nil, ErrRecordNotFound
	}

	order := *value.(*models.Order)
	if err := mutate(&order); err != nil {
		return nil, err
	}

	stored := order
	r.orders.Put(id, &stored)

	return &order, nil
}

func (r *MemoryOrderRepository) List(ctx context.Context, filter OrderFilter) ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*models.Order, 0, r.orders.Size())

	it := r.orders.Iterator()
	for it.Next() {
		order := *it.Value().(*models.Order)

		if len(filter.Instrument) > 0 && !containsFold(order.InstrumentID, filter.Instrument) {
			continue
		}

		if len(filter.Trader) > 0 && !containsFold(order.TraderID, filter.Trader) {
			continue
		}

		if len(filter.Status) > 0 && order.Status != filter.Status {
			continue
		}

		if !filter.CreatedOn.IsZero() && !sameDay(order.CreatedAt, filter.CreatedOn) {
			continue
		}

		orders = append(orders, &order)
	}

	return orders, nil
}

func (r *MemoryOrderRepository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := make(map[string]int64)
	for _, value := range r.orders.Values() {
		totals[value.(*models.Order).Status]++
	}

	return sortedCounts(totals), nil
}

func sortedCounts(totals map[string]int64) []StatusCount {
	counts := make([]StatusCount, 0, len(totals))
	for status, total := range totals {
		counts = append(counts, StatusCount{Status: status, Total: total})
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Status < counts[j].Status
	})

	return counts
}
