package location

import (
	"warehouse/internal/pkg/errs"
)

// SlotStatus is the live availability state of a storage slot as reported
// by master data. Only free slots may be selected into an allocation draft;
// the authoritative check happens again at commit time.
type SlotStatus int

const (
	// SlotStatusUnknown is the invalid zero value.
	SlotStatusUnknown SlotStatus = iota

	// SlotFree marks a slot available for reservation.
	SlotFree

	// SlotOccupied marks a slot holding stock.
	SlotOccupied

	// SlotDisabled marks a slot taken out of service.
	SlotDisabled
)

func getSlotStatusStrings() map[SlotStatus]string {
	return map[SlotStatus]string{
		SlotFree:     "Free",
		SlotOccupied: "Occupied",
		SlotDisabled: "Disabled",
	}
}

// Validate checks that the SlotStatus carries one of the defined values.
func (s SlotStatus) Validate() error {
	if _, ok := getSlotStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("slotStatus")
	}
	return nil
}

// String returns the human-readable name of the slot status.
func (s SlotStatus) String() string {
	if str, ok := getSlotStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
