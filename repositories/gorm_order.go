package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zsmartex/mocktrade/models"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Get(ctx context.Context, id string) (*models.Order, error) {
	var order *models.Order

	result := r.db.WithContext(ctx).Where("order_id = ?", id).First(&order)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	} else if result.Error != nil {
		return nil, result.Error
	}

	return order, nil
}

func (r *GormOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *GormOrderRepository) Update(ctx context.Context, id string, mutate func(order *models.Order) error) (*models.Order, error) {
	var order *models.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("order_id = ?", id).First(&order)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		} else if result.Error != nil {
			return result.Error
		}

		if err := mutate(order); err != nil {
			return err
		}

		return tx.Save(order).Error
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *GormOrderRepository) List(ctx context.Context, filter OrderFilter) ([]*models.Order, error) {
	orders := make([]*models.Order, 0)

	tx := r.db.WithContext(ctx)

	if len(filter.Instrument) > 0 {
		tx = tx.Where("instrument_id ILIKE ?", likePattern(filter.Instrument))
	}

	if len(filter.Trader) > 0 {
		tx = tx.Where("trader_id ILIKE ?", likePattern(filter.Trader))
	}

	if len(filter.Status) > 0 {
		tx = tx.Where("status = ?", filter.Status)
	}

	if !filter.CreatedOn.IsZero() {
		start := startOfDay(filter.CreatedOn)
		tx = tx.Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1))
	}

	if err := tx.Order("created_at").Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *GormOrderRepository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	counts := make([]StatusCount, 0)

	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Order("status").
		Find(&counts).Error

	return counts, err
}
