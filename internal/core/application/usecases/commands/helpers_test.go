package commands_test

import (
	"testing"

	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func buildDriver(t *testing.T, id kernel.UUID) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(id, "Rajesh Kumar", "KA-01-AB-1234")
	require.NoError(t, err)
	return d
}

func buildOrder(t *testing.T, id kernel.UUID, cents int64, payment order.PaymentMethod) *order.Order {
	t.Helper()

	amount, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	o, err := order.NewOrder(id, "Asha Rao", "+91 98450 12345",
		"14 MG Road, Bengaluru", amount, payment)
	require.NoError(t, err)
	return o
}

func buildDeliveredOrder(t *testing.T, id kernel.UUID, driverID kernel.UUID, cents int64) *order.Order {
	t.Helper()

	o := buildOrder(t, id, cents, order.CashOnDelivery)
	require.NoError(t, o.Assign(driverID))
	require.NoError(t, o.Advance(order.Assigned))
	require.NoError(t, o.Advance(order.PickedUp))
	require.NoError(t, o.Advance(order.InTransit))
	return o
}

func buildCollection(t *testing.T, driverID kernel.UUID, orderIDs []kernel.UUID, cents int64) *cash.Collection {
	t.Helper()

	amount, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	c, err := cash.NewCollection(kernel.NewUUID(), driverID, orderIDs, amount, "")
	require.NoError(t, err)
	return c
}
