package inspection

import (
	"warehouse/internal/pkg/errs"
)

// Type classifies what an inspection record covers: inbound receiving,
// outbound shipping, or a standalone stock check.
type Type int

const (
	// TypeUnknown is the invalid zero value.
	TypeUnknown Type = iota

	// TypeInbound covers receiving inspections tied to an inbound order.
	TypeInbound

	// TypeOutbound covers shipping inspections tied to an outbound order.
	TypeOutbound

	// TypeStock covers standalone stock-taking inspections.
	TypeStock
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeInbound:  "Inbound",
		TypeOutbound: "Outbound",
		TypeStock:    "Stock",
	}
}

// Validate checks that the Type carries one of the defined values.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidError("inspectionType")
	}
	return nil
}

// String returns the human-readable name of the inspection type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// ItemQuality is the per-item quality determination. Unset until the
// worksheet verdict for the item is finalized.
type ItemQuality int

const (
	// QualityUnset means no finalized verdict exists for the item.
	QualityUnset ItemQuality = iota

	// Qualified means the inspector approved the item.
	Qualified

	// Unqualified means the inspector rejected the item.
	Unqualified
)

func getItemQualityStrings() map[ItemQuality]string {
	return map[ItemQuality]string{
		QualityUnset: "Unset",
		Qualified:    "Qualified",
		Unqualified:  "Unqualified",
	}
}

// Validate checks that the ItemQuality carries one of the defined values.
func (q ItemQuality) Validate() error {
	if _, ok := getItemQualityStrings()[q]; !ok {
		return errs.NewValueIsInvalidError("itemQuality")
	}
	return nil
}

// String returns the human-readable name of the item quality.
func (q ItemQuality) String() string {
	if str, ok := getItemQualityStrings()[q]; ok {
		return str
	}
	return "Unknown"
}

// ReceiveStatus tracks putaway progress of a finalized inspection item.
type ReceiveStatus int

const (
	// NotShelved means putaway has not started for the item.
	NotShelved ReceiveStatus = iota

	// Shelving means putaway is in progress.
	Shelving

	// Shelved means the item is fully placed into storage slots.
	Shelved
)

func getReceiveStatusStrings() map[ReceiveStatus]string {
	return map[ReceiveStatus]string{
		NotShelved: "NotShelved",
		Shelving:   "Shelving",
		Shelved:    "Shelved",
	}
}

// Validate checks that the ReceiveStatus carries one of the defined values.
func (r ReceiveStatus) Validate() error {
	if _, ok := getReceiveStatusStrings()[r]; !ok {
		return errs.NewValueIsInvalidError("receiveStatus")
	}
	return nil
}

// String returns the human-readable name of the receive status.
func (r ReceiveStatus) String() string {
	if str, ok := getReceiveStatusStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
