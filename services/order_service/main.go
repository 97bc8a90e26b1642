package order_service

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

type CreateOrderInput struct {
	Instrument string
	Side       string
	Qty        int64
	Price      decimal.NullDecimal
	Type       string
	TIF        string
	Trader     string
	Account    string
}

// OrderService records order lifecycle changes. It keeps no state of its own;
// every call goes through Orders.
type OrderService struct {
	Orders repositories.OrderRepository
	Clock  services.Clock
	Policy services.StatusPolicy
	Events events.Publisher
}

func NewOrderService(orders repositories.OrderRepository) *OrderService {
	return &OrderService{
		Orders: orders,
		Clock:  services.SystemClock,
		Policy: services.AllowAll,
		Events: events.Nop,
	}
}

func (s *OrderService) now() time.Time {
	return s.Clock.Now().UTC()
}

// CreateOrder stores a NEW order. side, type and tif are uppercased and kept
// otherwise as given.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (entities.OrderEntity, error) {
	now := s.now()

	order := &models.Order{
		ID:           uuid.NewString(),
		InstrumentID: input.Instrument,
		Side:         strings.ToUpper(input.Side),
		Qty:          input.Qty,
		LimitPrice:   input.Price,
		Type:         strings.ToUpper(input.Type),
		TIF:          strings.ToUpper(input.TIF),
		TraderID:     input.Trader,
		AccountID:    input.Account,
		Status:       types.OrderStatusNew,
		CreatedAt:    now,
	}

	if err := s.Orders.Insert(ctx, order); err != nil {
		return entities.OrderEntity{}, err
	}

	events.Emit(s.Events, events.ForOrder(events.OrderCreated, order, now))

	return order.ToJSON(), nil
}

func (s *OrderService) ListOrders(ctx context.Context, filter repositories.OrderFilter) ([]entities.OrderEntity, error) {
	orders, err := s.Orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	orders_json := make([]entities.OrderEntity, 0, len(orders))
	for _, order := range orders {
		orders_json = append(orders_json, order.ToJSON())
	}

	return orders_json, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (entities.OrderEntity, error) {
	order, err := s.Orders.Get(ctx, id)
	if err != nil {
		return entities.OrderEntity{}, services.TranslateError(err)
	}

	return order.ToJSON(), nil
}

// UpdateOrderStatus overwrites the status with whatever the policy lets
// through; the default policy lets everything through.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status string) (entities.OrderStatusEntity, error) {
	order, err := s.Orders.Update(ctx, id, func(order *models.Order) error {
		if err := s.Policy.Allow(services.EntityOrder, order.Status, status); err != nil {
			return err
		}

		order.Status = status

		return nil
	})
	if err != nil {
		return entities.OrderStatusEntity{}, services.TranslateError(err)
	}

	events.Emit(s.Events, events.ForOrder(events.OrderStatusUpdated, order, s.now()))

	return order.ToStatusJSON(), nil
}

func (s *OrderService) CancelOrder(ctx context.Context, id string) (entities.OrderStatusEntity, error) {
	return s.UpdateOrderStatus(ctx, id, types.OrderStatusCancelled)
}

// SimulateFill marks the order FILLED and stamps filled_at, whatever the
// prior status was.
func (s *OrderService) SimulateFill(ctx context.Context, id string) (entities.OrderFillEntity, error) {
	now := s.now()

	order, err := s.Orders.Update(ctx, id, func(order *models.Order) error {
		if err := s.Policy.Allow(services.EntityOrder, order.Status, types.OrderStatusFilled); err != nil {
			return err
		}

		order.Status = types.OrderStatusFilled
		order.FilledAt = null.TimeFrom(now)

		return nil
	})
	if err != nil {
		return entities.OrderFillEntity{}, services.TranslateError(err)
	}

	events.Emit(s.Events, events.ForOrder(events.OrderFilled, order, now))

	return order.ToFillJSON(), nil
}
