package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/inspection"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

func newTestItems(t *testing.T, n int) []commands.ItemInput {
	t.Helper()
	items := make([]commands.ItemInput, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, commands.ItemInput{
			ProductID:        kernel.NewUUID(),
			BatchNumber:      "B-2026-001",
			ExpectedQuantity: 10,
			Price:            250,
			AreaID:           kernel.NewUUID(),
		})
	}
	return items
}

func newTestOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "B-2026-001", 10, 250, kernel.NewUUID())
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "WHI-20260901-AB12CD34", order.Inbound,
		"purchase", kernel.NewUUID(), []*order.Item{item}, "")
	require.NoError(t, err)

	switch status {
	case order.Approved:
		require.NoError(t, o.Approve(kernel.NewUUID()))
	case order.InProgress:
		require.NoError(t, o.Approve(kernel.NewUUID()))
		require.NoError(t, o.StartProcessing(kernel.NewUUID()))
	case order.Completed:
		require.NoError(t, o.Approve(kernel.NewUUID()))
		require.NoError(t, o.StartProcessing(kernel.NewUUID()))
		require.NoError(t, o.Complete())
	case order.Cancelled:
		require.NoError(t, o.Cancel("test cancellation"))
	case order.PendingReview, order.Rejected:
	}
	return o
}

func newTestRecord(t *testing.T, o *order.Order) *inspection.Record {
	t.Helper()

	worksheet, err := inspection.NewWorksheet(o)
	require.NoError(t, err)

	rec, err := inspection.NewRecord(kernel.NewUUID(), "INS-20260901-AB12CD34",
		inspection.TypeInbound, o.ID(), kernel.NewUUID(), worksheet)
	require.NoError(t, err)
	return rec
}

func recordAllVerdicts(t *testing.T, rec *inspection.Record, qualified int) {
	t.Helper()
	for _, key := range rec.Worksheet().Keys() {
		expected, _ := rec.Worksheet().ExpectedQuantity(key)
		require.NoError(t, rec.RecordVerdict(key, inspection.Verdict{
			ActualQuantity:    expected,
			QualifiedQuantity: qualified,
			Approved:          qualified == expected,
		}))
	}
}
