package cash_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollection(t *testing.T, orderCount int) *cash.Collection {
	t.Helper()

	orderIDs := make([]kernel.UUID, 0, orderCount)
	for range orderCount {
		orderIDs = append(orderIDs, kernel.NewUUID())
	}
	amount, err := kernel.NewMoney(int64(orderCount) * 50000)
	require.NoError(t, err)

	c, err := cash.NewCollection(kernel.NewUUID(), kernel.NewUUID(), orderIDs, amount, "evening shift")
	require.NoError(t, err)
	return c
}

func TestNewCollection(t *testing.T) {
	t.Run("submits_pending_collection", func(t *testing.T) {
		c := newTestCollection(t, 2)

		require.NoError(t, c.Validate())
		assert.Equal(t, cash.StatusPending, c.Status())
		assert.True(t, c.IsActive())
		assert.Len(t, c.Orders(), 2)
		assert.Equal(t, "evening shift", c.Notes())
		assert.Nil(t, c.ApprovedBy())
		assert.Nil(t, c.ApprovedAt())
		assert.False(t, c.SubmittedAt().IsZero())
	})

	t.Run("rejects_empty_order_list", func(t *testing.T) {
		amount, _ := kernel.NewMoney(100)

		_, err := cash.NewCollection(kernel.NewUUID(), kernel.NewUUID(), nil, amount, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_duplicate_order_reference", func(t *testing.T) {
		orderID := kernel.NewUUID()
		amount, _ := kernel.NewMoney(100)

		_, err := cash.NewCollection(kernel.NewUUID(), kernel.NewUUID(),
			[]kernel.UUID{orderID, orderID}, amount, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_zero_amount", func(t *testing.T) {
		_, err := cash.NewCollection(kernel.NewUUID(), kernel.NewUUID(),
			[]kernel.UUID{kernel.NewUUID()}, kernel.ZeroMoney(), "")

		require.ErrorIs(t, err, cash.ErrAmountMustBePositive)
	})
}

func TestCollection_Approve(t *testing.T) {
	t.Run("pending_collection_records_approver", func(t *testing.T) {
		c := newTestCollection(t, 1)

		require.NoError(t, c.Approve("ops-manager"))

		assert.Equal(t, cash.StatusApproved, c.Status())
		assert.True(t, c.IsActive())
		require.NotNil(t, c.ApprovedBy())
		assert.Equal(t, "ops-manager", *c.ApprovedBy())
		require.NotNil(t, c.ApprovedAt())
	})

	t.Run("requires_approver_identity", func(t *testing.T) {
		c := newTestCollection(t, 1)

		require.ErrorIs(t, c.Approve(""), cash.ErrApproverIsRequired)
		assert.Equal(t, cash.StatusPending, c.Status())
	})

	t.Run("approved_collection_cannot_be_approved_again", func(t *testing.T) {
		c := newTestCollection(t, 1)
		require.NoError(t, c.Approve("ops-manager"))

		err := c.Approve("ops-manager")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("rejected_collection_cannot_be_approved", func(t *testing.T) {
		c := newTestCollection(t, 1)
		require.NoError(t, c.Reject())

		err := c.Approve("ops-manager")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestCollection_Reject(t *testing.T) {
	t.Run("pending_collection_releases_its_orders", func(t *testing.T) {
		c := newTestCollection(t, 1)

		require.NoError(t, c.Reject())

		assert.Equal(t, cash.StatusRejected, c.Status())
		assert.False(t, c.IsActive())
		assert.Nil(t, c.ApprovedBy())
	})

	t.Run("approved_collection_cannot_be_rejected", func(t *testing.T) {
		c := newTestCollection(t, 1)
		require.NoError(t, c.Approve("ops-manager"))

		require.ErrorIs(t, c.Reject(), errs.ErrInvalidTransition)
	})
}

func TestCollection_Covers(t *testing.T) {
	orderID := kernel.NewUUID()
	amount, _ := kernel.NewMoney(100)
	c, err := cash.NewCollection(kernel.NewUUID(), kernel.NewUUID(),
		[]kernel.UUID{orderID}, amount, "")
	require.NoError(t, err)

	assert.True(t, c.Covers(orderID))
	assert.False(t, c.Covers(kernel.NewUUID()))
}

func TestRestoreCollection(t *testing.T) {
	t.Run("round_trips_an_approved_collection", func(t *testing.T) {
		amount, _ := kernel.NewMoney(75000)
		submittedAt := time.Now().UTC().Add(-time.Hour)
		approvedAt := time.Now().UTC()
		approvedBy := "ops-manager"

		c, err := cash.RestoreCollection(kernel.NewUUID(), kernel.NewUUID(),
			[]kernel.UUID{kernel.NewUUID()}, amount, cash.StatusApproved,
			"note", submittedAt, &approvedBy, &approvedAt)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, cash.StatusApproved, c.Status())
		assert.Equal(t, submittedAt, c.SubmittedAt())
		assert.Equal(t, approvedBy, *c.ApprovedBy())
	})

	t.Run("rejects_approved_without_approval_fields", func(t *testing.T) {
		amount, _ := kernel.NewMoney(75000)

		_, err := cash.RestoreCollection(kernel.NewUUID(), kernel.NewUUID(),
			[]kernel.UUID{kernel.NewUUID()}, amount, cash.StatusApproved,
			"", time.Now().UTC(), nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_pending_with_approval_fields", func(t *testing.T) {
		amount, _ := kernel.NewMoney(75000)
		approvedAt := time.Now().UTC()
		approvedBy := "ops-manager"

		_, err := cash.RestoreCollection(kernel.NewUUID(), kernel.NewUUID(),
			[]kernel.UUID{kernel.NewUUID()}, amount, cash.StatusPending,
			"", time.Now().UTC(), &approvedBy, &approvedAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCollection_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var c cash.Collection

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, cash.ErrCollectionIsNotConstructed, err)
	})
}

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    cash.Status
		wantErr bool
	}{
		{name: "pending", input: "pending", want: cash.StatusPending},
		{name: "approved", input: "approved", want: cash.StatusApproved},
		{name: "rejected", input: "rejected", want: cash.StatusRejected},
		{name: "unknown_is_invalid", input: "unknown", wantErr: true},
		{name: "garbage_is_invalid", input: "settled", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cash.StatusFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}
