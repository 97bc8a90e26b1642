package trade_service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"github.com/zsmartex/mocktrade/models"
	"github.com/zsmartex/mocktrade/services"
	"github.com/zsmartex/mocktrade/types"
)

// Patch is a field-level amendment keyed by wire name or column name.
type Patch map[string]interface{}

type amendableField struct {
	name  string
	keys  []string
	apply func(trade *models.Trade, value interface{}) bool
}

// amendableFields is the allow-list. Within a field, later keys win, so the
// wire name overrides its column alias when both are sent.
var amendableFields = []amendableField{
	{"order_id", []string{"order_id"}, func(t *models.Trade, v interface{}) bool {
		return setNullString(&t.OrderID, v)
	}},
	{"instrument", []string{"instrument_id", "instrument"}, func(t *models.Trade, v interface{}) bool {
		return setString(&t.InstrumentID, v)
	}},
	{"side", []string{"side"}, func(t *models.Trade, v interface{}) bool {
		if !setString(&t.Side, v) {
			return false
		}
		t.Side = strings.ToUpper(t.Side)
		return true
	}},
	{"qty", []string{"qty"}, func(t *models.Trade, v interface{}) bool {
		qty, ok := toInt64(v)
		if !ok || qty <= 0 {
			return false
		}
		t.Qty = qty
		return true
	}},
	{"price", []string{"price"}, func(t *models.Trade, v interface{}) bool {
		price, ok := toDecimal(v)
		if !ok || price.IsNegative() {
			return false
		}
		t.Price = price
		return true
	}},
	{"trader", []string{"trader_id", "trader"}, func(t *models.Trade, v interface{}) bool {
		return setNullString(&t.TraderID, v)
	}},
	{"exec_time", []string{"exec_time"}, func(t *models.Trade, v interface{}) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		execTime, err := types.ParseTimestamp(s)
		if err != nil {
			return false
		}
		t.ExecTime = execTime
		return true
	}},
	{"broker", []string{"broker_id", "broker"}, func(t *models.Trade, v interface{}) bool {
		return setString(&t.BrokerID, v)
	}},
	{"account", []string{"account_id", "account"}, func(t *models.Trade, v interface{}) bool {
		return setString(&t.AccountID, v)
	}},
	{"status", []string{"status"}, func(t *models.Trade, v interface{}) bool {
		return setString(&t.Status, v)
	}},
}

// Apply writes every amendable key present in p onto trade.
func (p Patch) Apply(trade *models.Trade) error {
	for _, field := range amendableFields {
		for _, key := range field.keys {
			value, present := p[key]
			if !present {
				continue
			}

			if !field.apply(trade, value) {
				return &services.InvalidFieldError{Entity: services.EntityTrade, Field: field.name}
			}
		}
	}

	return nil
}

// AmendableKeys lists every key Apply recognizes.
func AmendableKeys() []string {
	keys := make([]string, 0, len(amendableFields)+4)
	for _, field := range amendableFields {
		keys = append(keys, field.keys...)
	}

	return keys
}

func setString(dst *string, v interface{}) bool {
	s, ok := v.(string)
	if !ok || len(s) == 0 {
		return false
	}

	*dst = s

	return true
}

func setNullString(dst *null.String, v interface{}) bool {
	switch s := v.(type) {
	case nil:
		*dst = null.String{}
	case string:
		*dst = null.NewString(s, len(s) > 0)
	default:
		return false
	}

	return true
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}

	return 0, false
}

func toDecimal(v interface{}) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n), true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(n)
		return d, err == nil
	}

	return decimal.Zero, false
}
