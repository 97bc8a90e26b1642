package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Order{}, &Trade{})
}

// floatOrNil renders a price for the wire; absent and zero prices are null.
func floatOrNil(price decimal.NullDecimal) *float64 {
	if !price.Valid || price.Decimal.IsZero() {
		return nil
	}

	f, _ := price.Decimal.Float64()

	return &f
}
