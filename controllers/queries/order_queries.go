package queries

import (
	"time"

	"github.com/zsmartex/mocktrade/controllers/helpers"
	"github.com/zsmartex/mocktrade/repositories"
)

const DateLayout = "2006-01-02"

type OrderFilters struct {
	Instrument string `query:"instrument"`
	Trader     string `query:"trader"`
	Status     string `query:"status"`
	Date       string `query:"date" validate:"ValidateDate"`
}

func (t OrderFilters) ValidateDate(val string) bool {
	_, err := time.Parse(DateLayout, val)

	return err == nil
}

func (t OrderFilters) Messages() map[string]string {
	ms := helpers.VaildateMessage("order")
	ms["ValidateDate"] = "order.invalid_date"

	return ms
}

func (t OrderFilters) ToFilter() repositories.OrderFilter {
	filter := repositories.OrderFilter{
		Instrument: t.Instrument,
		Trader:     t.Trader,
		Status:     t.Status,
	}

	if day, err := time.Parse(DateLayout, t.Date); err == nil {
		filter.CreatedOn = day
	}

	return filter
}
