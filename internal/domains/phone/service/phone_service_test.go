package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/domains/phone/model"
)

type fakePhoneRepo struct {
	phones          map[uuid.UUID]*model.Phone
	setDefaultCalls int
}

func newFakePhoneRepo() *fakePhoneRepo {
	return &fakePhoneRepo{phones: make(map[uuid.UUID]*model.Phone)}
}

func (f *fakePhoneRepo) Create(_ context.Context, phone *model.Phone) (*model.Phone, error) {
	for _, p := range f.phones {
		if p.Number == phone.Number {
			return nil, model.ErrDuplicateNumber
		}
	}

	created := *phone
	created.ID = uuid.New()
	created.IsDefault = !f.hasAny(phone.UserID)
	f.phones[created.ID] = &created
	return &created, nil
}

func (f *fakePhoneRepo) hasAny(userID uuid.UUID) bool {
	for _, p := range f.phones {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

func (f *fakePhoneRepo) GetByID(_ context.Context, userID, phoneID uuid.UUID) (*model.Phone, error) {
	p, ok := f.phones[phoneID]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	return p, nil
}

func (f *fakePhoneRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Phone, error) {
	var out []model.Phone
	for _, p := range f.phones {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePhoneRepo) SetDefault(_ context.Context, userID, phoneID uuid.UUID) error {
	f.setDefaultCalls++
	for _, p := range f.phones {
		if p.UserID == userID {
			p.IsDefault = p.ID == phoneID
		}
	}
	return nil
}

func (f *fakePhoneRepo) Delete(_ context.Context, userID, phoneID uuid.UUID) error {
	p, ok := f.phones[phoneID]
	if !ok || p.UserID != userID {
		return model.NewPhoneNotFound(phoneID.String())
	}
	delete(f.phones, phoneID)
	return nil
}

func TestAddPhoneNormalizesNumber(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := NewPhoneService(repo)
	userID := uuid.New()

	created, err := svc.AddPhone(context.Background(), userID, &model.CreatePhoneRequest{
		Number: "090 123-45.67",
	})
	require.NoError(t, err)
	assert.Equal(t, "0901234567", created.Number)
}

func TestAddPhoneRejectsInvalidNumber(t *testing.T) {
	svc := NewPhoneService(newFakePhoneRepo())

	_, err := svc.AddPhone(context.Background(), uuid.New(), &model.CreatePhoneRequest{
		Number: "12345",
	})
	assert.Error(t, err)
}

func TestFirstPhoneBecomesDefault(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := NewPhoneService(repo)
	userID := uuid.New()

	first, err := svc.AddPhone(context.Background(), userID, &model.CreatePhoneRequest{Number: "0901234567"})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := svc.AddPhone(context.Background(), userID, &model.CreatePhoneRequest{Number: "0907654321"})
	require.NoError(t, err)
	assert.False(t, second.IsDefault)
}

func TestSetDefaultPhoneIsIdempotent(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := NewPhoneService(repo)
	userID := uuid.New()

	phone, err := svc.AddPhone(context.Background(), userID, &model.CreatePhoneRequest{Number: "0901234567"})
	require.NoError(t, err)
	require.True(t, phone.IsDefault)

	// Already default: no write issued.
	require.NoError(t, svc.SetDefaultPhone(context.Background(), userID, phone.ID))
	assert.Zero(t, repo.setDefaultCalls)
}

func TestSetDefaultPhoneMovesFlag(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := NewPhoneService(repo)
	userID := uuid.New()

	_, err := svc.AddPhone(context.Background(), userID, &model.CreatePhoneRequest{Number: "0901234567"})
	require.NoError(t, err)
	second, err := svc.AddPhone(context.Background(), userID, &model.CreatePhoneRequest{Number: "0907654321"})
	require.NoError(t, err)

	require.NoError(t, svc.SetDefaultPhone(context.Background(), userID, second.ID))

	phones, err := svc.ListPhones(context.Background(), userID)
	require.NoError(t, err)

	defaults := 0
	for _, p := range phones {
		if p.IsDefault {
			defaults++
			assert.Equal(t, second.ID, p.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestSetDefaultPhoneOfOtherUserNotFound(t *testing.T) {
	repo := newFakePhoneRepo()
	svc := NewPhoneService(repo)

	owner := uuid.New()
	phone, err := svc.AddPhone(context.Background(), owner, &model.CreatePhoneRequest{Number: "0901234567"})
	require.NoError(t, err)

	err = svc.SetDefaultPhone(context.Background(), uuid.New(), phone.ID)
	var phoneErr *model.PhoneError
	require.ErrorAs(t, err, &phoneErr)
	assert.Equal(t, "PHONE_NOT_FOUND", phoneErr.Code)
}
