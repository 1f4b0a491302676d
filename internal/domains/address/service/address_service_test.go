package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/domains/address/model"
)

type fakeAddressRepo struct {
	addresses map[uuid.UUID]*model.Address
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: make(map[uuid.UUID]*model.Address)}
}

func (f *fakeAddressRepo) Create(_ context.Context, addr *model.Address) (*model.Address, error) {
	created := *addr
	created.ID = uuid.New()

	first := true
	for _, a := range f.addresses {
		if a.UserID == addr.UserID {
			first = false
			break
		}
	}
	created.IsDefault = first
	created.IsBilling = first

	f.addresses[created.ID] = &created
	return &created, nil
}

func (f *fakeAddressRepo) GetByID(_ context.Context, userID, addressID uuid.UUID) (*model.Address, error) {
	a, ok := f.addresses[addressID]
	if !ok || a.UserID != userID {
		return nil, nil
	}
	return a, nil
}

func (f *fakeAddressRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Address, error) {
	var out []model.Address
	for _, a := range f.addresses {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAddressRepo) Update(_ context.Context, addr *model.Address) (*model.Address, error) {
	existing, ok := f.addresses[addr.ID]
	if !ok || existing.UserID != addr.UserID {
		return nil, model.NewAddressNotFound(addr.ID.String())
	}
	flags := [2]bool{existing.IsDefault, existing.IsBilling}
	*existing = *addr
	existing.IsDefault, existing.IsBilling = flags[0], flags[1]
	return existing, nil
}

func (f *fakeAddressRepo) SetDefaultShipping(_ context.Context, userID, addressID uuid.UUID) error {
	for _, a := range f.addresses {
		if a.UserID == userID {
			a.IsDefault = a.ID == addressID
		}
	}
	return nil
}

func (f *fakeAddressRepo) SetDefaultBilling(_ context.Context, userID, addressID uuid.UUID) error {
	for _, a := range f.addresses {
		if a.UserID == userID {
			a.IsBilling = a.ID == addressID
		}
	}
	return nil
}

func (f *fakeAddressRepo) Delete(_ context.Context, userID, addressID uuid.UUID) error {
	a, ok := f.addresses[addressID]
	if !ok || a.UserID != userID {
		return model.NewAddressNotFound(addressID.String())
	}
	delete(f.addresses, addressID)
	return nil
}

func validRequest() *model.CreateAddressRequest {
	return &model.CreateAddressRequest{
		RecipientName: "Nguyen Van A",
		Phone:         "0901234567",
		Street:        "123 Le Loi",
		Ward:          "Ben Nghe",
		District:      "District 1",
		Province:      "Ho Chi Minh",
	}
}

func TestFirstAddressClaimsBothFlags(t *testing.T) {
	svc := NewAddressService(newFakeAddressRepo())
	userID := uuid.New()

	first, err := svc.AddAddress(context.Background(), userID, validRequest())
	require.NoError(t, err)
	assert.True(t, first.IsDefault)
	assert.True(t, first.IsBilling)

	second, err := svc.AddAddress(context.Background(), userID, validRequest())
	require.NoError(t, err)
	assert.False(t, second.IsDefault)
	assert.False(t, second.IsBilling)
}

func TestFlagsMoveIndependently(t *testing.T) {
	repo := newFakeAddressRepo()
	svc := NewAddressService(repo)
	userID := uuid.New()

	first, err := svc.AddAddress(context.Background(), userID, validRequest())
	require.NoError(t, err)
	second, err := svc.AddAddress(context.Background(), userID, validRequest())
	require.NoError(t, err)

	// Move only billing to the second address; shipping stays put.
	require.NoError(t, svc.SetDefaultBilling(context.Background(), userID, second.ID))

	addresses, err := svc.ListAddresses(context.Background(), userID)
	require.NoError(t, err)

	var defaults, billings int
	for _, a := range addresses {
		if a.IsDefault {
			defaults++
			assert.Equal(t, first.ID, a.ID)
		}
		if a.IsBilling {
			billings++
			assert.Equal(t, second.ID, a.ID)
		}
	}
	assert.Equal(t, 1, defaults)
	assert.Equal(t, 1, billings)
}

func TestAtMostOneDefaultAfterRepeatedMoves(t *testing.T) {
	repo := newFakeAddressRepo()
	svc := NewAddressService(repo)
	userID := uuid.New()

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		a, err := svc.AddAddress(context.Background(), userID, validRequest())
		require.NoError(t, err)
		ids = append(ids, a.ID)
	}

	for _, id := range ids {
		require.NoError(t, svc.SetDefaultShipping(context.Background(), userID, id))

		addresses, err := svc.ListAddresses(context.Background(), userID)
		require.NoError(t, err)

		defaults := 0
		for _, a := range addresses {
			if a.IsDefault {
				defaults++
			}
		}
		assert.Equal(t, 1, defaults)
	}
}

func TestDeleteDefaultLeavesNoDefault(t *testing.T) {
	repo := newFakeAddressRepo()
	svc := NewAddressService(repo)
	userID := uuid.New()

	first, err := svc.AddAddress(context.Background(), userID, validRequest())
	require.NoError(t, err)
	_, err = svc.AddAddress(context.Background(), userID, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAddress(context.Background(), userID, first.ID))

	addresses, err := svc.ListAddresses(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.False(t, addresses[0].IsDefault, "no address is promoted after deleting the default")
}

func TestSetDefaultRejectsForeignAddress(t *testing.T) {
	repo := newFakeAddressRepo()
	svc := NewAddressService(repo)

	owner := uuid.New()
	addr, err := svc.AddAddress(context.Background(), owner, validRequest())
	require.NoError(t, err)

	err = svc.SetDefaultShipping(context.Background(), uuid.New(), addr.ID)
	var addrErr *model.AddressError
	require.ErrorAs(t, err, &addrErr)
	assert.Equal(t, "ADDRESS_NOT_FOUND", addrErr.Code)
}

func TestUpdateAddressKeepsFlags(t *testing.T) {
	repo := newFakeAddressRepo()
	svc := NewAddressService(repo)
	userID := uuid.New()

	addr, err := svc.AddAddress(context.Background(), userID, validRequest())
	require.NoError(t, err)
	require.True(t, addr.IsDefault)

	newStreet := "456 Hai Ba Trung"
	updated, err := svc.UpdateAddress(context.Background(), userID, addr.ID, &model.UpdateAddressRequest{
		Street: &newStreet,
	})
	require.NoError(t, err)
	assert.Equal(t, newStreet, updated.Street)
	assert.True(t, updated.IsDefault)
	assert.True(t, updated.IsBilling)
}
