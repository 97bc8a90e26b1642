package entities

type TradeEntity struct {
	ID         string   `json:"id"`
	OrderID    *string  `json:"order_id"`
	Instrument string   `json:"instrument"`
	Side       string   `json:"side"`
	Qty        int64    `json:"qty"`
	Price      *float64 `json:"price"`
	Trader     *string  `json:"trader"`
	Broker     string   `json:"broker"`
	Account    string   `json:"account"`
	Status     string   `json:"status"`
	ExecTime   string   `json:"exec_time"`
	CreatedAt  string   `json:"created_at"`
}

type TradeStatusEntity struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
