package types

type OrderSide = string

var (
	SideBuy  OrderSide = "BUY"
	SideSell OrderSide = "SELL"
)

type OrderType = string

var (
	TypeMarket OrderType = "MARKET"
	TypeLimit  OrderType = "LIMIT"
)

type TimeInForce = string

var (
	TimeInForceDay TimeInForce = "DAY"
	TimeInForceGTC TimeInForce = "GTC"
	TimeInForceIOC TimeInForce = "IOC"
)

// OrderStatus is an open set: callers may write any value.
type OrderStatus = string

var (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusFilled    OrderStatus = "FILLED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// TradeStatus is an open set: amendments may write any value.
type TradeStatus = string

var (
	TradeStatusBooked    TradeStatus = "BOOKED"
	TradeStatusCancelled TradeStatus = "CANCELLED"
)
