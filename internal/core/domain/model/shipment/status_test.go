package shipment_test

import (
	"fmt"
	"testing"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(shipment.StatusUnknown))
		assert.Equal(t, 1, int(shipment.StatusInProgress))
		assert.Equal(t, 2, int(shipment.StatusCompleted))
		assert.Equal(t, 3, int(shipment.StatusReturned))
		assert.Equal(t, 4, int(shipment.StatusCancelled))
		assert.Equal(t, 5, int(shipment.StatusFailed))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := []shipment.Status{
			shipment.StatusUnknown,
			shipment.StatusInProgress,
			shipment.StatusCompleted,
			shipment.StatusReturned,
			shipment.StatusCancelled,
			shipment.StatusFailed,
		}

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []shipment.Status{
			shipment.StatusInProgress,
			shipment.StatusCompleted,
			shipment.StatusReturned,
			shipment.StatusCancelled,
			shipment.StatusFailed,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject the Unknown status value", func(t *testing.T) {
		err := shipment.StatusUnknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []shipment.Status{
			shipment.Status(-1),
			shipment.Status(6),
			shipment.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should render known statuses", func(t *testing.T) {
		assert.Equal(t, "In progress", shipment.StatusInProgress.String())
		assert.Equal(t, "Completed", shipment.StatusCompleted.String())
		assert.Equal(t, "Returned", shipment.StatusReturned.String())
		assert.Equal(t, "Cancelled", shipment.StatusCancelled.String())
		assert.Equal(t, "Failed", shipment.StatusFailed.String())
	})

	t.Run("should render invalid statuses as Unknown", func(t *testing.T) {
		assert.Equal(t, "Unknown", shipment.StatusUnknown.String())
		assert.Equal(t, "Unknown", shipment.Status(42).String())
	})
}

func TestStatus_IsFinal(t *testing.T) {
	assert.True(t, shipment.StatusCompleted.IsFinal())
	assert.True(t, shipment.StatusCancelled.IsFinal())
	assert.False(t, shipment.StatusInProgress.IsFinal())
	assert.False(t, shipment.StatusReturned.IsFinal())
	assert.False(t, shipment.StatusFailed.IsFinal())
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from in progress", func(t *testing.T) {
		newStatus, err := shipment.StatusInProgress.Cancel()

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusCancelled, newStatus)
	})

	t.Run("should cancel from failed", func(t *testing.T) {
		newStatus, err := shipment.StatusFailed.Cancel()

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusCancelled, newStatus)
	})

	t.Run("should reject cancelling terminal or invalid states", func(t *testing.T) {
		for _, status := range []shipment.Status{
			shipment.StatusCompleted,
			shipment.StatusReturned,
			shipment.StatusCancelled,
			shipment.StatusUnknown,
		} {
			t.Run(fmt.Sprintf("from %s", status.String()), func(t *testing.T) {
				_, err := status.Cancel()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "not a valid status to cancel")
			})
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should complete from in progress", func(t *testing.T) {
		newStatus, err := shipment.StatusInProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusCompleted, newStatus)
	})

	t.Run("should reject completing from other states", func(t *testing.T) {
		for _, status := range []shipment.Status{
			shipment.StatusCompleted,
			shipment.StatusReturned,
			shipment.StatusCancelled,
			shipment.StatusFailed,
			shipment.StatusUnknown,
		} {
			_, err := status.Complete()
			require.Error(t, err)
		}
	})
}

func TestStatus_Fail(t *testing.T) {
	t.Run("should fail from in progress", func(t *testing.T) {
		newStatus, err := shipment.StatusInProgress.Fail()

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusFailed, newStatus)
	})

	t.Run("should reject failing from other states", func(t *testing.T) {
		for _, status := range []shipment.Status{
			shipment.StatusCompleted,
			shipment.StatusCancelled,
			shipment.StatusUnknown,
		} {
			_, err := status.Fail()
			require.Error(t, err)
		}
	})
}

func TestStatus_Return(t *testing.T) {
	t.Run("should return from completed", func(t *testing.T) {
		newStatus, err := shipment.StatusCompleted.Return()

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusReturned, newStatus)
	})

	t.Run("should reject returning from other states", func(t *testing.T) {
		for _, status := range []shipment.Status{
			shipment.StatusInProgress,
			shipment.StatusCancelled,
			shipment.StatusFailed,
			shipment.StatusUnknown,
		} {
			_, err := status.Return()
			require.Error(t, err)
		}
	})
}
