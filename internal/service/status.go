package service

import (
	"slices"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

// TransitionGuard decides which order status changes are legal.
type TransitionGuard struct {
	allowed  map[entities.OrderStatus][]entities.OrderStatus
	terminal map[entities.OrderStatus]bool
}

func NewTransitionGuard(allowed map[entities.OrderStatus][]entities.OrderStatus, terminal ...entities.OrderStatus) TransitionGuard {
	g := TransitionGuard{
		allowed:  make(map[entities.OrderStatus][]entities.OrderStatus, len(allowed)),
		terminal: make(map[entities.OrderStatus]bool, len(terminal)),
	}
	for from, to := range allowed {
		g.allowed[from] = slices.Clone(to)
	}
	for _, s := range terminal {
		g.terminal[s] = true
	}
	return g
}

func DefaultTransitionGuard() TransitionGuard {
	return NewTransitionGuard(
		map[entities.OrderStatus][]entities.OrderStatus{
			entities.StatusCreated: {entities.StatusPaid, entities.StatusCancelled},
			entities.StatusPaid:    {entities.StatusShipped, entities.StatusCancelled, entities.StatusRefunded},
			entities.StatusShipped: {entities.StatusDelivered},
		},
		entities.StatusDelivered, entities.StatusCancelled, entities.StatusRefunded,
	)
}

// Check returns nil when the order may move from one status to another.
// Staying in the same status is always accepted.
func (g TransitionGuard) Check(orderID string, from, to entities.OrderStatus) error {
	if !g.Known(from) || !g.Known(to) {
		return entities.InvalidStatusTransition(from, to)
	}
	if from == to {
		return nil
	}
	if g.terminal[from] {
		return entities.OrderAlreadyProcessed(orderID)
	}
	if !slices.Contains(g.allowed[from], to) {
		return entities.InvalidStatusTransition(from, to)
	}
	return nil
}

// Known reports whether s takes part in the transition table.
func (g TransitionGuard) Known(s entities.OrderStatus) bool {
	if g.terminal[s] {
		return true
	}
	if _, ok := g.allowed[s]; ok {
		return true
	}
	for _, to := range g.allowed {
		if slices.Contains(to, s) {
			return true
		}
	}
	return false
}

func (g TransitionGuard) IsTerminal(s entities.OrderStatus) bool {
	return g.terminal[s]
}
