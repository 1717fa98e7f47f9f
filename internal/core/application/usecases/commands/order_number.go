package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"warehouse/internal/core/domain/model/order"
)

// generateOrderNo produces a human-facing order number such as
// "WHI-20260901-3F2A1B9C" for inbound or "WHO-..." for outbound orders.
// The random suffix keeps numbers unique without a sequence table.
func generateOrderNo(direction order.Direction, at time.Time) string {
	prefix := "WHI"
	if direction == order.Outbound {
		prefix = "WHO"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", prefix, at.UTC().Format("20060102"), suffix)
}

// generateInspectionNo produces an inspection record number such as
// "INS-20260901-3F2A1B9C".
func generateInspectionNo(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("INS-%s-%s", at.UTC().Format("20060102"), suffix)
}
