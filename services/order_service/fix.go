package order_service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zsmartex/mocktrade/controllers/entities"
	"github.com/zsmartex/mocktrade/models"
	"github.com/zsmartex/mocktrade/services"
	"github.com/zsmartex/mocktrade/types"
)

const (
	fixBeginString    = "FIX.4.4"
	fixTimeLayout     = "20060102-15:04:05.000"
	fixSOH            = "\x01"
	fixDisplayDelim   = "|"
	fixNewOrderSingle = "D"
)

type fixField struct {
	tag   int
	value string
}

// DropCopy renders the order as a FIX 4.4 NewOrderSingle with `|` in place
// of SOH.
func (s *OrderService) DropCopy(ctx context.Context, id string) (entities.DropCopyEntity, error) {
	order, err := s.Orders.Get(ctx, id)
	if err != nil {
		return entities.DropCopyEntity{}, services.TranslateError(err)
	}

	message := BuildNewOrderSingle(order, s.now().Format(fixTimeLayout))

	return entities.DropCopyEntity{
		ID:  order.ID,
		FIX: strings.ReplaceAll(message, fixSOH, fixDisplayDelim),
	}, nil
}

// BuildNewOrderSingle returns the SOH-delimited message, with BodyLength (9)
// and CheckSum (10) computed over the encoded bytes.
func BuildNewOrderSingle(order *models.Order, sendingTime string) string {
	fields := []fixField{
		{35, fixNewOrderSingle},
		{49, order.TraderID},
		{56, order.AccountID},
		{34, "1"},
		{52, sendingTime},
		{11, order.ID},
		{55, order.InstrumentID},
		{54, fixSide(order.Side)},
		{38, strconv.FormatInt(order.Qty, 10)},
		{40, fixOrdType(order.Type)},
	}

	if order.LimitPrice.Valid && !order.LimitPrice.Decimal.IsZero() {
		fields = append(fields, fixField{44, order.LimitPrice.Decimal.String()})
	}

	status := fixOrdStatus(order.Status)
	fields = append(fields,
		fixField{59, fixTimeInForce(order.TIF)},
		fixField{21, "1"},
		fixField{60, order.CreatedAt.UTC().Format(fixTimeLayout)},
		fixField{150, status},
		fixField{39, status},
	)

	var body strings.Builder
	for _, field := range fields {
		body.WriteString(strconv.Itoa(field.tag))
		body.WriteString("=")
		body.WriteString(field.value)
		body.WriteString(fixSOH)
	}

	head := "8=" + fixBeginString + fixSOH + "9=" + strconv.Itoa(body.Len()) + fixSOH
	message := head + body.String()

	return message + "10=" + fixChecksum(message) + fixSOH
}

func fixChecksum(message string) string {
	var sum int
	for i := 0; i < len(message); i++ {
		sum += int(message[i])
	}

	return fmt.Sprintf("%03d", sum%256)
}

func fixSide(side string) string {
	if side == types.SideBuy {
		return "1"
	}

	return "2"
}

func fixOrdType(ordType string) string {
	switch ordType {
	case types.TypeLimit:
		return "2"
	case "STOP":
		return "3"
	case "STOP_LIMIT":
		return "4"
	default:
		return "1"
	}
}

func fixTimeInForce(tif string) string {
	switch tif {
	case types.TimeInForceGTC:
		return "1"
	case types.TimeInForceIOC:
		return "3"
	case "FOK":
		return "4"
	default:
		return "0"
	}
}

func fixOrdStatus(status string) string {
	switch status {
	case types.OrderStatusNew:
		return "0"
	case types.OrderStatusFilled:
		return "2"
	default:
		return "4"
	}
}
