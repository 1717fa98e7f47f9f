package commands

import (
	"errors"
	"math"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrEvaluateStockAlertsCommandIsNotConstructed = errors.New(
		"EvaluateStockAlertsCommand must be created via NewEvaluateStockAlertsCommand constructor",
	)
)

// EvaluateStockAlertsCommand triggers a sweep over the stock ledger,
// re-deriving each entry's alert status from the configured min/max
// thresholds. Run periodically by the scheduler.
type EvaluateStockAlertsCommand struct { //nolint:recvcheck //using for validation
	minQuantity int
	maxQuantity int

	guard guard.ConstructorGuard
}

// NewEvaluateStockAlertsCommand creates a command to re-derive stock alerts
// against the given thresholds.
func NewEvaluateStockAlertsCommand(minQuantity, maxQuantity int) (EvaluateStockAlertsCommand, error) {
	if minQuantity < 0 || maxQuantity < minQuantity {
		return EvaluateStockAlertsCommand{},
			errs.NewValueIsOutOfRangeError("maxQuantity", maxQuantity, minQuantity, math.MaxInt)
	}

	return EvaluateStockAlertsCommand{
		minQuantity: minQuantity,
		maxQuantity: maxQuantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EvaluateStockAlertsCommand) Validate() error {
	return c.guard.Validate(ErrEvaluateStockAlertsCommandIsNotConstructed)
}

// MinQuantity returns the lower alert threshold.
func (c EvaluateStockAlertsCommand) MinQuantity() int { return c.minQuantity }

// MaxQuantity returns the upper alert threshold.
func (c EvaluateStockAlertsCommand) MaxQuantity() int { return c.maxQuantity }
