package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusShipping, false},
		{StatusPending, StatusDelivered, false},

		{StatusConfirmed, StatusShipping, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusDelivered, false},
		{StatusConfirmed, StatusPending, false},

		{StatusShipping, StatusDelivered, true},
		{StatusShipping, StatusCancelled, false},

		{StatusDelivered, StatusReturned, true},
		{StatusDelivered, StatusCancelled, false},

		// Terminal states go nowhere.
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusReturned, StatusDelivered, false},
		{StatusReturned, StatusPending, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestAddressSnapshotValidate(t *testing.T) {
	full := AddressSnapshot{
		RecipientName: "Nguyen Van A",
		Phone:         "0901234567",
		Street:        "123 Le Loi",
		Ward:          "Ben Nghe",
		District:      "District 1",
		Province:      "Ho Chi Minh",
	}
	assert.NoError(t, full.Validate())

	// Ward is optional.
	noWard := full
	noWard.Ward = ""
	assert.NoError(t, noWard.Validate())

	missingPhone := full
	missingPhone.Phone = ""
	assert.Error(t, missingPhone.Validate())

	missingRecipient := full
	missingRecipient.RecipientName = ""
	assert.Error(t, missingRecipient.Validate())

	missingProvince := full
	missingProvince.Province = ""
	assert.Error(t, missingProvince.Validate())
}
