package entities

type OrderEntity struct {
	ID         string   `json:"id"`
	Instrument string   `json:"instrument"`
	Side       string   `json:"side"`
	Qty        int64    `json:"qty"`
	Price      *float64 `json:"price"`
	Type       string   `json:"type"`
	TIF        string   `json:"tif"`
	Trader     string   `json:"trader"`
	Account    string   `json:"account"`
	Status     string   `json:"status"`
	CreatedAt  string   `json:"created_at"`
	FilledAt   *string  `json:"filled_at"`
}

type OrderStatusEntity struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type OrderFillEntity struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	FilledAt string `json:"filled_at"`
}

type DropCopyEntity struct {
	ID  string `json:"id"`
	FIX string `json:"fix"`
}
