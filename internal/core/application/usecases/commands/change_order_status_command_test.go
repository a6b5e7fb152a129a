package commands_test

import (
	"testing"
	"time"

	"receipts/internal/core/application/usecases/commands"
	"receipts/internal/core/domain/model/kernel"
	"receipts/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_Success(t *testing.T) {
	cmd, err := commands.NewChangeOrderStatusCommand(mustOrderID(t, "ORD1"), order.Delivered, time.Now())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, "ORD1", cmd.OrderID().String())
	require.Equal(t, order.Delivered, cmd.NewStatus())
}

func TestNewChangeOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.OrderID{}, order.Delivered, time.Now())
	require.Error(t, err)
}

func TestNewChangeOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(mustOrderID(t, "ORD1"), order.Status("shipped"), time.Now())
	require.Error(t, err)
}

func TestNewChangeOrderStatusCommand_ZeroChangedAt(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(mustOrderID(t, "ORD1"), order.Delivered, time.Time{})
	require.Error(t, err)
}

func TestChangeOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ChangeOrderStatusCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
