package order

import (
	"fmt"

	"github.com/wellywell/storeflow/internal/types"
)

// ValidationError is returned before any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type OrderNotFoundError struct {
	OrderID int64
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("Order %d is not loaded", e.OrderID)
}

type IllegalTransitionError struct {
	OrderID int64
	Action  Action
	Status  types.Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("Cannot %s order %d in status %s", e.Action, e.OrderID, e.Status)
}
