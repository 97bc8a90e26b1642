package queries

import (
	"github.com/zsmartex/mocktrade/repositories"
)

type TradeFilters struct {
	Instrument string `query:"instrument"`
	Account    string `query:"account"`
	Status     string `query:"status"`
}

func (t TradeFilters) ToFilter() repositories.TradeFilter {
	return repositories.TradeFilter{
		Instrument: t.Instrument,
		Account:    t.Account,
		Status:     t.Status,
	}
}
