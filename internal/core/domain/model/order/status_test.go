package order_test

import (
	"testing"

	"receipts/internal/core/domain/model/order"
	"receipts/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		s, err := order.StatusFromString("pending")
		require.NoError(t, err)
		assert.Equal(t, order.Pending, s)

		s, err = order.StatusFromString("delivered")
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, s)
	})

	t.Run("invalid statuses", func(t *testing.T) {
		for _, raw := range []string{"", "PENDING", "shipped", "entregue"} {
			_, err := order.StatusFromString(raw)
			require.Error(t, err, "status %q should be rejected", raw)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.Delivered.Validate())
	require.Error(t, order.Status("unknown").Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "delivered", order.Delivered.String())
}
