package commands_test

import (
	"testing"

	"servicetrack/internal/core/application/usecases/commands"
	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	actor := staffActor(t)
	cmd, err := commands.NewCreateOrderCommand(id, "  Siti  ", "Asus laptop", "  no power  ", actor)
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(id))
	assert.Equal(t, "Siti", cmd.CustomerName())
	assert.Equal(t, "Asus laptop", cmd.Item())
	assert.Equal(t, "no power", cmd.Complaint())
	assert.Same(t, actor, cmd.Actor())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_NilActorAllowed(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Siti", "Asus laptop", "", nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.Actor())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "Siti", "Asus laptop", "", staffActor(t))
	require.Error(t, err)
}

func TestNewCreateOrderCommand_BlankCustomerName(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "   ", "Asus laptop", "", staffActor(t))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_BlankItem(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Siti", "", "", staffActor(t))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
