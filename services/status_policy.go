package services

import (
	"fmt"

	"github.com/zsmartex/mocktrade/types"
)

// StatusPolicy decides whether an entity may move from one status to another.
type StatusPolicy interface {
	Allow(entity, from, to string) error
}

type allowAll struct{}

func (allowAll) Allow(entity, from, to string) error {
	return nil
}

// AllowAll accepts every status, from every prior status.
var AllowAll StatusPolicy = allowAll{}

type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s can't move from %s to %s", e.Entity, e.From, e.To)
}

// TransitionGraph allows only the listed moves. Writing the current status
// again is always allowed; entities missing from the graph are unrestricted.
type TransitionGraph map[string]map[string][]string

func (g TransitionGraph) Allow(entity, from, to string) error {
	edges, ok := g[entity]
	if !ok || from == to {
		return nil
	}

	for _, next := range edges[from] {
		if next == to {
			return nil
		}
	}

	return &TransitionError{Entity: entity, From: from, To: to}
}

const (
	EntityOrder = "order"
	EntityTrade = "trade"
)

// StrictTransitions is the conventional lifecycle: NEW orders fill or cancel,
// BOOKED trades cancel, terminal states stay put.
var StrictTransitions = TransitionGraph{
	EntityOrder: {
		types.OrderStatusNew: {types.OrderStatusFilled, types.OrderStatusCancelled},
	},
	EntityTrade: {
		types.TradeStatusBooked: {types.TradeStatusCancelled},
	},
}

func NewStatusPolicy(name string) StatusPolicy {
	switch name {
	case "strict":
		return StrictTransitions
	default:
		return AllowAll
	}
}
