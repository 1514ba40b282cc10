package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError(t *testing.T) {
	t.Parallel()

	t.Run("formats message with wrapped error", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection reset")
		err := NewStoreError("vehicle", "update", "exec failed", cause)

		assert.Equal(t, "update operation on vehicle failed: exec failed: connection reset",
			err.Error())
	})

	t.Run("formats message without wrapped error", func(t *testing.T) {
		t.Parallel()
		err := NewStoreError("administrator", "create", "insert failed", nil)

		assert.Equal(t, "create operation on administrator failed: insert failed", err.Error())
	})

	t.Run("unwraps to the original error", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection reset")
		err := NewStoreError("vehicle", "delete", "exec failed", cause)

		assert.ErrorIs(t, err, cause)
	})

	t.Run("sentinels survive wrapping", func(t *testing.T) {
		t.Parallel()
		err := NewStoreError("administrator", "get", "scan failed", ErrAdministratorNotFound)

		assert.ErrorIs(t, err, ErrAdministratorNotFound)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	t.Run("not found helpers", func(t *testing.T) {
		t.Parallel()
		assert.True(t, IsNotFoundError(ErrNotFound))
		assert.True(t, IsNotFoundError(ErrAdministratorNotFound))
		assert.True(t, IsNotFoundError(ErrVehicleNotFound))
		assert.True(t, IsNotFoundError(NewStoreError("vehicle", "get", "missing", ErrVehicleNotFound)))
		assert.False(t, IsNotFoundError(ErrDuplicate))
		assert.False(t, IsNotFoundError(errors.New("other")))
	})

	t.Run("duplicate helpers", func(t *testing.T) {
		t.Parallel()
		assert.True(t, IsDuplicateError(ErrDuplicate))
		assert.True(t, IsDuplicateError(ErrEmailExists))
		assert.True(t, IsDuplicateError(NewStoreError("administrator", "create", "conflict", ErrEmailExists)))
		assert.False(t, IsDuplicateError(ErrNotFound))
	})
}
