package inspection_test

import (
	"testing"

	"warehouse/internal/core/domain/model/inspection"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createTwoLineOrder(t *testing.T) (*order.Order, inspection.ItemKey, inspection.ItemKey) {
	t.Helper()
	firstProduct := kernel.NewUUID()
	secondProduct := kernel.NewUUID()

	first, err := order.NewItem(
		kernel.NewUUID(), firstProduct, "B-2026-001", 10, 250, kernel.NewUUID())
	require.NoError(t, err)
	second, err := order.NewItem(
		kernel.NewUUID(), secondProduct, "B-2026-002", 5, 400, kernel.NewUUID())
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "WHI-20260901-0001", order.Inbound, "purchase",
		kernel.NewUUID(), []*order.Item{first, second}, "")
	require.NoError(t, err)

	firstKey, err := inspection.NewItemKey(firstProduct, "B-2026-001")
	require.NoError(t, err)
	secondKey, err := inspection.NewItemKey(secondProduct, "B-2026-002")
	require.NoError(t, err)
	return o, firstKey, secondKey
}

func createOpenRecord(t *testing.T) (*inspection.Record, inspection.ItemKey, inspection.ItemKey) {
	t.Helper()
	o, firstKey, secondKey := createTwoLineOrder(t)
	ws, err := inspection.NewWorksheet(o)
	require.NoError(t, err)

	rec, err := inspection.NewRecord(
		kernel.NewUUID(), "INS-20260901-0001", inspection.TypeInbound,
		o.ID(), kernel.NewUUID(), ws)
	require.NoError(t, err)
	return rec, firstKey, secondKey
}

func TestNewRecord(t *testing.T) {
	t.Run("should create open record over the worksheet", func(t *testing.T) {
		rec, _, _ := createOpenRecord(t)

		require.NoError(t, rec.Validate())
		assert.False(t, rec.IsFinalized())
		assert.Equal(t, order.NotInspected, rec.Status())
		assert.Empty(t, rec.Items())
		assert.Nil(t, rec.FinalizedAt())

		done, total := rec.Progress()
		assert.Equal(t, 0, done)
		assert.Equal(t, 2, total)
	})

	t.Run("should return error for empty inspection number", func(t *testing.T) {
		o, _, _ := createTwoLineOrder(t)
		ws, err := inspection.NewWorksheet(o)
		require.NoError(t, err)

		rec, err := inspection.NewRecord(
			kernel.NewUUID(), "", inspection.TypeInbound, o.ID(), kernel.NewUUID(), ws)

		require.Error(t, err)
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRecord_RecordVerdict(t *testing.T) {
	t.Run("should store and overwrite verdicts", func(t *testing.T) {
		rec, firstKey, _ := createOpenRecord(t)

		err := rec.RecordVerdict(firstKey, inspection.Verdict{
			ActualQuantity: 10, QualifiedQuantity: 10, Approved: true})
		require.NoError(t, err)

		// Re-editing replaces the live entry instead of appending.
		err = rec.RecordVerdict(firstKey, inspection.Verdict{
			ActualQuantity: 9, QualifiedQuantity: 8, Approved: true, Remark: "one unit dented"})
		require.NoError(t, err)

		v, ok := rec.Worksheet().Verdict(firstKey)
		require.True(t, ok)
		assert.Equal(t, 9, v.ActualQuantity)
		assert.Equal(t, 8, v.QualifiedQuantity)
		assert.Equal(t, 1, v.UnqualifiedQuantity())

		done, total := rec.Progress()
		assert.Equal(t, 1, done)
		assert.Equal(t, 2, total)
	})

	t.Run("should reject quantities beyond the expected", func(t *testing.T) {
		rec, firstKey, _ := createOpenRecord(t)

		err := rec.RecordVerdict(firstKey, inspection.Verdict{
			ActualQuantity: 11, QualifiedQuantity: 11, Approved: true})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		_, ok := rec.Worksheet().Verdict(firstKey)
		assert.False(t, ok)
	})

	t.Run("should reject qualified above actual", func(t *testing.T) {
		rec, firstKey, _ := createOpenRecord(t)

		err := rec.RecordVerdict(firstKey, inspection.Verdict{
			ActualQuantity: 5, QualifiedQuantity: 6, Approved: true})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject an unregistered key", func(t *testing.T) {
		rec, _, _ := createOpenRecord(t)
		unknown, err := inspection.NewItemKey(kernel.NewUUID(), "B-2026-999")
		require.NoError(t, err)

		err = rec.RecordVerdict(unknown, inspection.Verdict{ActualQuantity: 1, QualifiedQuantity: 1})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRecord_Finalize(t *testing.T) {
	t.Run("should fail while verdicts are missing", func(t *testing.T) {
		rec, firstKey, _ := createOpenRecord(t)
		require.NoError(t, rec.RecordVerdict(firstKey, inspection.Verdict{
			ActualQuantity: 10, QualifiedQuantity: 10, Approved: true}))

		status, err := rec.Finalize(kernel.NewUUID)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIncomplete)
		assert.False(t, rec.IsFinalized())
		assert.Equal(t, order.NotInspected, status)

		var incomplete *errs.IncompleteError
		require.ErrorAs(t, err, &incomplete)
		assert.Equal(t, 1, incomplete.Done)
		assert.Equal(t, 2, incomplete.Total)
	})

	t.Run("should emit result lines and seal the record", func(t *testing.T) {
		rec, firstKey, secondKey := createOpenRecord(t)
		require.NoError(t, rec.RecordVerdict(firstKey, inspection.Verdict{
			ActualQuantity: 10, QualifiedQuantity: 8, Approved: true}))
		require.NoError(t, rec.RecordVerdict(secondKey, inspection.Verdict{
			ActualQuantity: 5, QualifiedQuantity: 0, Approved: false, Remark: "water damage"}))

		status, err := rec.Finalize(kernel.NewUUID)

		require.NoError(t, err)
		assert.Equal(t, order.PartialException, status)
		assert.True(t, rec.IsFinalized())
		require.NotNil(t, rec.FinalizedAt())
		require.Len(t, rec.Items(), 2)

		first, err := rec.ItemByKey(firstKey)
		require.NoError(t, err)
		assert.Equal(t, inspection.Qualified, first.Quality())
		assert.Equal(t, 10, first.InspectionQuantity())
		assert.Equal(t, 8, first.QualifiedQuantity())
		assert.Equal(t, 2, first.UnqualifiedQuantity())
		assert.Equal(t, inspection.NotShelved, first.ReceiveStatus())

		second, err := rec.ItemByKey(secondKey)
		require.NoError(t, err)
		assert.Equal(t, inspection.Unqualified, second.Quality())
		assert.Equal(t, "water damage", second.Remark())
	})

	t.Run("should refuse to finalize twice", func(t *testing.T) {
		rec, firstKey, secondKey := createOpenRecord(t)
		require.NoError(t, rec.RecordVerdict(firstKey, inspection.Verdict{
			ActualQuantity: 10, QualifiedQuantity: 10, Approved: true}))
		require.NoError(t, rec.RecordVerdict(secondKey, inspection.Verdict{
			ActualQuantity: 5, QualifiedQuantity: 5, Approved: true}))
		_, err := rec.Finalize(kernel.NewUUID)
		require.NoError(t, err)

		_, err = rec.Finalize(kernel.NewUUID)
		require.ErrorIs(t, err, inspection.ErrRecordFinalized)

		err = rec.RecordVerdict(firstKey, inspection.Verdict{
			ActualQuantity: 1, QualifiedQuantity: 1, Approved: true})
		require.ErrorIs(t, err, inspection.ErrRecordFinalized)
	})

	t.Run("should aggregate all approved to passed and all rejected to failed", func(t *testing.T) {
		passed, firstKey, secondKey := createOpenRecord(t)
		require.NoError(t, passed.RecordVerdict(firstKey, inspection.Verdict{
			ActualQuantity: 10, QualifiedQuantity: 10, Approved: true}))
		require.NoError(t, passed.RecordVerdict(secondKey, inspection.Verdict{
			ActualQuantity: 5, QualifiedQuantity: 5, Approved: true}))
		status, err := passed.Finalize(kernel.NewUUID)
		require.NoError(t, err)
		assert.Equal(t, order.QualityPassed, status)

		failed, firstKey, secondKey := createOpenRecord(t)
		require.NoError(t, failed.RecordVerdict(firstKey, inspection.Verdict{
			ActualQuantity: 10, QualifiedQuantity: 0, Approved: false}))
		require.NoError(t, failed.RecordVerdict(secondKey, inspection.Verdict{
			ActualQuantity: 5, QualifiedQuantity: 0, Approved: false}))
		status, err = failed.Finalize(kernel.NewUUID)
		require.NoError(t, err)
		assert.Equal(t, order.QualityFailed, status)
	})
}

func TestRecord_Shelving(t *testing.T) {
	finalizedRecord := func(t *testing.T) (*inspection.Record, inspection.ItemKey, inspection.ItemKey) {
		t.Helper()
		rec, firstKey, secondKey := createOpenRecord(t)
		require.NoError(t, rec.RecordVerdict(firstKey, inspection.Verdict{
			ActualQuantity: 10, QualifiedQuantity: 10, Approved: true}))
		require.NoError(t, rec.RecordVerdict(secondKey, inspection.Verdict{
			ActualQuantity: 5, QualifiedQuantity: 5, Approved: true}))
		_, err := rec.Finalize(kernel.NewUUID)
		require.NoError(t, err)
		return rec, firstKey, secondKey
	}

	t.Run("should walk not shelved, shelving, shelved", func(t *testing.T) {
		rec, firstKey, _ := finalizedRecord(t)
		item, err := rec.ItemByKey(firstKey)
		require.NoError(t, err)

		require.NoError(t, item.StartShelving("A1-01,A1-02"))
		assert.Equal(t, inspection.Shelving, item.ReceiveStatus())
		assert.Equal(t, "A1-01,A1-02", item.LocationCode())

		require.NoError(t, item.FinishShelving())
		assert.True(t, item.IsShelved())
	})

	t.Run("should reject shelving transitions out of order", func(t *testing.T) {
		rec, firstKey, _ := finalizedRecord(t)
		item, err := rec.ItemByKey(firstKey)
		require.NoError(t, err)

		require.ErrorIs(t, item.FinishShelving(), errs.ErrInvalidTransition)

		require.NoError(t, item.StartShelving("A1-01"))
		require.ErrorIs(t, item.StartShelving("A1-02"), errs.ErrInvalidTransition)
	})

	t.Run("should gate completion on qualified lines only", func(t *testing.T) {
		rec, firstKey, secondKey := createOpenRecord(t)
		require.NoError(t, rec.RecordVerdict(firstKey, inspection.Verdict{
			ActualQuantity: 10, QualifiedQuantity: 10, Approved: true}))
		require.NoError(t, rec.RecordVerdict(secondKey, inspection.Verdict{
			ActualQuantity: 5, QualifiedQuantity: 0, Approved: false}))
		_, err := rec.Finalize(kernel.NewUUID)
		require.NoError(t, err)

		assert.False(t, rec.AllShelved())

		// The rejected line has no qualified units and never shelves.
		item, err := rec.ItemByKey(firstKey)
		require.NoError(t, err)
		require.NoError(t, item.StartShelving("A1-01"))
		require.NoError(t, item.FinishShelving())

		assert.True(t, rec.AllShelved())
	})

	t.Run("should refuse item lookup before finalize", func(t *testing.T) {
		rec, firstKey, _ := createOpenRecord(t)

		item, err := rec.ItemByKey(firstKey)

		require.ErrorIs(t, err, inspection.ErrRecordNotFinalized)
		assert.Nil(t, item)
	})
}
