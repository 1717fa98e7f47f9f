package location_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDraft(t *testing.T) *location.Draft {
	t.Helper()
	draft, err := location.NewDraft(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, draft.Validate())
	return draft
}

func TestDraft_AddRemoveRows(t *testing.T) {
	t.Run("should append rows and report their index", func(t *testing.T) {
		draft := createDraft(t)

		assert.Equal(t, 0, draft.AddRow())
		assert.Equal(t, 1, draft.AddRow())
		assert.Len(t, draft.Rows(), 2)
	})

	t.Run("should remove a row preserving order", func(t *testing.T) {
		draft := createDraft(t)
		draft.AddRow()
		draft.AddRow()
		shelfID := kernel.NewUUID()
		require.NoError(t, draft.AssignShelf(1, shelfID))

		require.NoError(t, draft.RemoveRow(0))

		require.Len(t, draft.Rows(), 1)
		require.NotNil(t, draft.Rows()[0].ShelfID())
		assert.True(t, draft.Rows()[0].ShelfID().IsEqual(shelfID))
	})

	t.Run("should reject out-of-range indexes", func(t *testing.T) {
		draft := createDraft(t)
		draft.AddRow()

		assert.ErrorIs(t, draft.RemoveRow(1), location.ErrRowOutOfRange)
		assert.ErrorIs(t, draft.RemoveRow(-1), location.ErrRowOutOfRange)
		assert.ErrorIs(t, draft.AssignShelf(1, kernel.NewUUID()), location.ErrRowOutOfRange)
		assert.ErrorIs(t, draft.ClearRow(5), location.ErrRowOutOfRange)
	})
}

func TestDraft_AssignShelf(t *testing.T) {
	t.Run("should assign a shelf and clear prior storages", func(t *testing.T) {
		draft := createDraft(t)
		row := draft.AddRow()
		require.NoError(t, draft.AssignShelf(row, kernel.NewUUID()))
		require.NoError(t, draft.ReplaceStorages(row, []kernel.UUID{kernel.NewUUID()}))

		replacement := kernel.NewUUID()
		require.NoError(t, draft.AssignShelf(row, replacement))

		assert.True(t, draft.Rows()[row].ShelfID().IsEqual(replacement))
		assert.Empty(t, draft.Rows()[row].StorageIDs())
		assert.False(t, draft.Rows()[row].IsComplete())
	})

	t.Run("should reject a shelf already used by another row", func(t *testing.T) {
		draft := createDraft(t)
		first := draft.AddRow()
		second := draft.AddRow()
		shelfID := kernel.NewUUID()
		require.NoError(t, draft.AssignShelf(first, shelfID))

		err := draft.AssignShelf(second, shelfID)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, draft.Rows()[second].ShelfID())
	})

	t.Run("should allow reusing a shelf after its row was cleared", func(t *testing.T) {
		draft := createDraft(t)
		first := draft.AddRow()
		second := draft.AddRow()
		shelfID := kernel.NewUUID()
		require.NoError(t, draft.AssignShelf(first, shelfID))
		require.NoError(t, draft.ClearRow(first))

		require.NoError(t, draft.AssignShelf(second, shelfID))
	})
}

func TestDraft_ReplaceStorages(t *testing.T) {
	t.Run("should require a shelf before storages", func(t *testing.T) {
		draft := createDraft(t)
		row := draft.AddRow()

		err := draft.ReplaceStorages(row, []kernel.UUID{kernel.NewUUID()})

		assert.ErrorIs(t, err, location.ErrShelfNotAssigned)
	})

	t.Run("should overwrite the selection", func(t *testing.T) {
		draft := createDraft(t)
		row := draft.AddRow()
		require.NoError(t, draft.AssignShelf(row, kernel.NewUUID()))
		require.NoError(t, draft.ReplaceStorages(row, []kernel.UUID{kernel.NewUUID()}))

		replacement := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
		require.NoError(t, draft.ReplaceStorages(row, replacement))

		assert.Equal(t, replacement, draft.Rows()[row].StorageIDs())
		assert.True(t, draft.Rows()[row].IsComplete())
	})

	t.Run("should reject duplicate slot ids", func(t *testing.T) {
		draft := createDraft(t)
		row := draft.AddRow()
		require.NoError(t, draft.AssignShelf(row, kernel.NewUUID()))
		slot := kernel.NewUUID()

		err := draft.ReplaceStorages(row, []kernel.UUID{slot, slot})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Empty(t, draft.Rows()[row].StorageIDs())
	})

	t.Run("should reject an empty selection", func(t *testing.T) {
		draft := createDraft(t)
		row := draft.AddRow()
		require.NoError(t, draft.AssignShelf(row, kernel.NewUUID()))

		err := draft.ReplaceStorages(row, nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
