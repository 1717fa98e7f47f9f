package order_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidItem(t *testing.T, expectedQuantity int, price int64) *order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), "B-2026-001", expectedQuantity, price, kernel.NewUUID())
	require.NoError(t, err)
	require.NotNil(t, item)
	return item
}

func createValidOrder(t *testing.T, items ...*order.Item) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []*order.Item{createValidItem(t, 10, 250)}
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), "WHI-20260901-0001", order.Inbound, "purchase",
		kernel.NewUUID(), items, "")
	require.NoError(t, err)
	require.NotNil(t, o)
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validCreator := kernel.NewUUID()

	t.Run("should create order with valid parameters", func(t *testing.T) {
		first, err := order.NewItem(
			kernel.NewUUID(), kernel.NewUUID(), "B-2026-001", 10, 250, kernel.NewUUID())
		require.NoError(t, err)
		second, err := order.NewItem(
			kernel.NewUUID(), kernel.NewUUID(), "B-2026-002", 4, 1000, kernel.NewUUID())
		require.NoError(t, err)

		o, err := order.NewOrder(
			validID, "WHI-20260901-0001", order.Inbound, "purchase",
			validCreator, []*order.Item{first, second}, "spot check")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "WHI-20260901-0001", o.OrderNo())
		assert.Equal(t, order.Inbound, o.Direction())
		assert.Equal(t, order.PendingReview, o.Status())
		assert.Equal(t, order.NotInspected, o.QualityStatus())
		assert.Nil(t, o.ApproverID())
		assert.Nil(t, o.InspectorID())
		assert.Equal(t, "spot check", o.Remark())

		// Totals derive from the lines: 10*250 + 4*1000.
		assert.Equal(t, int64(6500), o.TotalAmount())
		assert.Equal(t, 14, o.TotalQuantity())
	})

	t.Run("should return error for empty order number", func(t *testing.T) {
		items := []*order.Item{createValidItem(t, 1, 1)}

		o, err := order.NewOrder(validID, "", order.Inbound, "purchase", validCreator, items, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error for unknown direction", func(t *testing.T) {
		items := []*order.Item{createValidItem(t, 1, 1)}

		o, err := order.NewOrder(
			validID, "WHI-20260901-0001", order.DirectionUnknown, "purchase", validCreator, items, "")

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should return error for empty items", func(t *testing.T) {
		o, err := order.NewOrder(
			validID, "WHI-20260901-0001", order.Inbound, "purchase", validCreator, nil, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error for duplicate product and batch", func(t *testing.T) {
		productID := kernel.NewUUID()
		first, err := order.NewItem(
			kernel.NewUUID(), productID, "B-2026-001", 10, 250, kernel.NewUUID())
		require.NoError(t, err)
		second, err := order.NewItem(
			kernel.NewUUID(), productID, "B-2026-001", 5, 250, kernel.NewUUID())
		require.NoError(t, err)

		o, err := order.NewOrder(
			validID, "WHI-20260901-0001", order.Inbound, "purchase",
			validCreator, []*order.Item{first, second}, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Approve(t *testing.T) {
	t.Run("should approve pending order and record reviewer", func(t *testing.T) {
		o := createValidOrder(t)
		approverID := kernel.NewUUID()

		err := o.Approve(approverID)

		require.NoError(t, err)
		assert.Equal(t, order.Approved, o.Status())
		require.NotNil(t, o.ApproverID())
		assert.True(t, o.ApproverID().IsEqual(approverID))
	})

	t.Run("should fail from any state but pending review", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.Approve(kernel.NewUUID()))

		err := o.Approve(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Approved, o.Status())
	})
}

func TestOrder_Reject(t *testing.T) {
	t.Run("should reject pending order with reason", func(t *testing.T) {
		o := createValidOrder(t)
		approverID := kernel.NewUUID()

		err := o.Reject(approverID, "supplier mismatch")

		require.NoError(t, err)
		assert.Equal(t, order.Rejected, o.Status())
		assert.Equal(t, "supplier mismatch", o.Reason())
		require.NotNil(t, o.ApproverID())
		assert.True(t, o.ApproverID().IsEqual(approverID))
	})

	t.Run("should require a reason", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.Reject(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrReasonIsRequired)
		assert.Equal(t, order.PendingReview, o.Status())
	})

	t.Run("should fail once approved", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.Approve(kernel.NewUUID()))

		err := o.Reject(kernel.NewUUID(), "too late")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_StartProcessing(t *testing.T) {
	t.Run("should move approved order to in progress", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.Approve(kernel.NewUUID()))
		inspectorID := kernel.NewUUID()

		err := o.StartProcessing(inspectorID)

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, o.Status())
		require.NotNil(t, o.InspectorID())
		assert.True(t, o.InspectorID().IsEqual(inspectorID))
	})

	t.Run("should fail from pending review", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.StartProcessing(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.PendingReview, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel from pending review, approved and in progress", func(t *testing.T) {
		pending := createValidOrder(t)
		require.NoError(t, pending.Cancel("changed plans"))
		assert.Equal(t, order.Cancelled, pending.Status())
		assert.Equal(t, "changed plans", pending.Reason())

		approved := createValidOrder(t)
		require.NoError(t, approved.Approve(kernel.NewUUID()))
		require.NoError(t, approved.Cancel("changed plans"))
		assert.Equal(t, order.Cancelled, approved.Status())

		inProgress := createValidOrder(t)
		require.NoError(t, inProgress.Approve(kernel.NewUUID()))
		require.NoError(t, inProgress.StartProcessing(kernel.NewUUID()))
		require.NoError(t, inProgress.Cancel("changed plans"))
		assert.Equal(t, order.Cancelled, inProgress.Status())
	})

	t.Run("should require a reason", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.Cancel("")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrReasonIsRequired)
		assert.Equal(t, order.PendingReview, o.Status())
	})

	t.Run("should fail from terminal states", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.Approve(kernel.NewUUID()))
		require.NoError(t, o.StartProcessing(kernel.NewUUID()))
		require.NoError(t, o.Complete())

		err := o.Cancel("too late")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("should complete an in-progress order", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.Approve(kernel.NewUUID()))
		require.NoError(t, o.StartProcessing(kernel.NewUUID()))

		err := o.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("should fail before processing started", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.Approve(kernel.NewUUID()))

		err := o.Complete()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Approved, o.Status())
	})
}

func TestOrder_ApplyInspectionOutcome(t *testing.T) {
	t.Run("should record outcome while in progress", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.Approve(kernel.NewUUID()))
		require.NoError(t, o.StartProcessing(kernel.NewUUID()))

		err := o.ApplyInspectionOutcome(order.PartialException)

		require.NoError(t, err)
		assert.Equal(t, order.PartialException, o.QualityStatus())
	})

	t.Run("should fail once the order left in progress", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.Cancel("withdrawn"))

		err := o.ApplyInspectionOutcome(order.QualityPassed)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.NotInspected, o.QualityStatus())
	})
}

func TestOrder_ItemByKey(t *testing.T) {
	productID := kernel.NewUUID()
	item, err := order.NewItem(
		kernel.NewUUID(), productID, "B-2026-001", 10, 250, kernel.NewUUID())
	require.NoError(t, err)
	o := createValidOrder(t, item)

	t.Run("should find the line by product and batch", func(t *testing.T) {
		found, err := o.ItemByKey(productID, "B-2026-001")

		require.NoError(t, err)
		assert.True(t, found.IsEqual(item))
	})

	t.Run("should return not found for an unknown batch", func(t *testing.T) {
		found, err := o.ItemByKey(productID, "B-2026-999")

		require.Error(t, err)
		assert.Nil(t, found)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore full state", func(t *testing.T) {
		o := createValidOrder(t)
		approverID := kernel.NewUUID()
		inspectorID := kernel.NewUUID()

		restored, err := order.RestoreOrder(
			o.ID(), o.OrderNo(), o.Direction(), o.OrderType(), o.CreatorID(),
			&approverID, &inspectorID, order.InProgress, order.QualityPassed,
			o.Items(), o.Remark(), "", o.CreatedAt(), o.UpdatedAt())

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, restored.Status())
		assert.Equal(t, order.QualityPassed, restored.QualityStatus())
		assert.True(t, restored.ApproverID().IsEqual(approverID))
		assert.True(t, restored.InspectorID().IsEqual(inspectorID))
	})

	t.Run("should reject an unknown status value", func(t *testing.T) {
		o := createValidOrder(t)

		restored, err := order.RestoreOrder(
			o.ID(), o.OrderNo(), o.Direction(), o.OrderType(), o.CreatorID(),
			nil, nil, order.Status(42), order.NotInspected,
			o.Items(), "", "", o.CreatedAt(), o.UpdatedAt())

		require.Error(t, err)
		assert.Nil(t, restored)
	})
}
