package order

import (
	"warehouse/internal/pkg/errs"
)

// QualityStatus represents the order-level inspection outcome aggregated
// from per-item verdicts. It is NotInspected until the inspection record
// for the order is finalized.
//
// The numeric values are part of the wire and storage contract.
type QualityStatus int

const (
	// NotInspected means no finalized inspection exists for the order.
	NotInspected QualityStatus = 0

	// QualityPassed means every item verdict was approved.
	QualityPassed QualityStatus = 1

	// QualityFailed means every item verdict was rejected.
	QualityFailed QualityStatus = 2

	// PartialException means the item verdicts were mixed.
	PartialException QualityStatus = 3
)

func getQualityStatusStrings() map[QualityStatus]string {
	return map[QualityStatus]string{
		NotInspected:     "NotInspected",
		QualityPassed:    "Passed",
		QualityFailed:    "Failed",
		PartialException: "PartialException",
	}
}

// Validate checks that the QualityStatus carries one of the defined values.
func (q QualityStatus) Validate() error {
	if _, ok := getQualityStatusStrings()[q]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("qualityStatus",
			errs.NewValueIsOutOfRangeError("qualityStatus", int(q), int(NotInspected), int(PartialException)))
	}
	return nil
}

// String returns the human-readable name of the quality status.
func (q QualityStatus) String() string {
	if str, ok := getQualityStatusStrings()[q]; ok {
		return str
	}
	return "Unknown"
}
