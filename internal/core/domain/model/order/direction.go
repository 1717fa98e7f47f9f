package order

import (
	"warehouse/internal/pkg/errs"
)

// Direction distinguishes inbound (receiving) orders from outbound
// (shipping) orders. The zero value is invalid so uninitialized
// directions are caught by Validate.
type Direction int

const (
	// DirectionUnknown is the invalid zero value.
	DirectionUnknown Direction = iota

	// Inbound marks a receiving order: goods arrive, are inspected and
	// put away into storage slots.
	Inbound

	// Outbound marks a shipping order: goods are picked, inspected and
	// dispatched.
	Outbound
)

func getDirectionStrings() map[Direction]string {
	return map[Direction]string{
		Inbound:  "Inbound",
		Outbound: "Outbound",
	}
}

// Validate checks that the Direction is Inbound or Outbound.
func (d Direction) Validate() error {
	if _, ok := getDirectionStrings()[d]; !ok {
		return errs.NewValueIsInvalidError("direction")
	}
	return nil
}

// String returns the human-readable name of the direction.
func (d Direction) String() string {
	if str, ok := getDirectionStrings()[d]; ok {
		return str
	}
	return "Unknown"
}
