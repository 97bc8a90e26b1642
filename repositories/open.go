package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// Open returns the repository pair for driver: "postgres" needs db, "memory"
// ignores it.
func Open(driver string, db *gorm.DB) (OrderRepository, TradeRepository, error) {
	switch driver {
	case "postgres":
		if db == nil {
			return nil, nil, errors.New("postgres driver requires a database connection")
		}

		return NewGormOrderRepository(db), NewGormTradeRepository(db), nil
	case "memory":
		return NewMemoryOrderRepository(), NewMemoryTradeRepository(), nil
	default:
		return nil, nil, ErrUnknownDriver
	}
}
