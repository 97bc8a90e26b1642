package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/zsmartex/mocktrade/models"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
)

var (
	_ OrderRepository = (*GormOrderRepository)(nil)
	_ OrderRepository = (*MemoryOrderRepository)(nil)
	_ TradeRepository = (*GormTradeRepository)(nil)
	_ TradeRepository = (*MemoryTradeRepository)(nil)
)

// OrderFilter narrows List; zero fields match everything. Instrument and
// Trader match any value containing them, ignoring case; Status is exact.
type OrderFilter struct {
	Instrument string
	Trader     string
	Status     string
	// CreatedOn matches orders created on that UTC calendar day.
	CreatedOn time.Time
}

// TradeFilter narrows List the same way: Instrument and Account are
// case-insensitive substrings, Status is exact.
type TradeFilter struct {
	Instrument string
	Account    string
	Status     string
}

// StatusCount is one row of a per-status tally.
type StatusCount struct {
	Status string
	Total  int64
}

// OrderRepository is the storage collaborator for orders. Update runs mutate
// against the current record and persists the result as one atomic write;
// it returns ErrRecordNotFound without calling mutate when id is absent.
type OrderRepository interface {
	Get(ctx context.Context, id string) (*models.Order, error)
	Insert(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, id string, mutate func(order *models.Order) error) (*models.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*models.Order, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}

type TradeRepository interface {
	Get(ctx context.Context, id string) (*models.Trade, error)
	Insert(ctx context.Context, trade *models.Trade) error
	Update(ctx context.Context, id string, mutate func(trade *models.Trade) error) (*models.Trade, error)
	List(ctx context.Context, filter TradeFilter) ([]*models.Trade, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return startOfDay(a).Equal(startOfDay(b))
}

func containsFold(value, term string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// likePattern wraps term for an ILIKE substring match.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
