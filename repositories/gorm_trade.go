package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zsmartex/mocktrade/models"
)

type GormTradeRepository struct {
	db *gorm.DB
}

func NewGormTradeRepository(db *gorm.DB) *GormTradeRepository {
	return &GormTradeRepository{db: db}
}

func (r *GormTradeRepository) Get(ctx context.Context, id string) (*models.Trade, error) {
	var trade *models.Trade

	result := r.db.WithContext(ctx).Where("trade_id = ?", id).First(&trade)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	} else if result.Error != nil {
		return nil, result.Error
	}

	return trade, nil
}

func (r *GormTradeRepository) Insert(ctx context.Context, trade *models.Trade) error {
	return r.db.WithContext(ctx).Create(trade).Error
}

func (r *GormTradeRepository) Update(ctx context.Context, id string, mutate func(trade *models.Trade) error) (*models.Trade, error) {
	var trade *models.Trade

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("trade_id = ?", id).First(&trade)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		} else if result.Error != nil {
			return result.Error
		}

		if err := mutate(trade); err != nil {
			return err
		}

		return tx.Save(trade).Error
	})

	if err != nil {
		return nil, err
	}

	return trade, nil
}

func (r *GormTradeRepository) List(ctx context.Context, filter TradeFilter) ([]*models.Trade, error) {
	trades := make([]*models.Trade, 0)

	tx := r.db.WithContext(ctx)

	if len(filter.Instrument) > 0 {
		tx = tx.Where("instrument_id ILIKE ?", likePattern(filter.Instrument))
	}

	if len(filter.Account) > 0 {
		tx = tx.Where("account_id ILIKE ?", likePattern(filter.Account))
	}

	if len(filter.Status) > 0 {
		tx = tx.Where("status = ?", filter.Status)
	}

	if err := tx.Order("created_at").Find(&trades).Error; err != nil {
		return nil, err
	}

	return trades, nil
}

func (r *GormTradeRepository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	counts := make([]StatusCount, 0)

	err := r.db.WithContext(ctx).
		Model(&models.Trade{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Order("status").
		Find(&counts).Error

	return counts, err
}
