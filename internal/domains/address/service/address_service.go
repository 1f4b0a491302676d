package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/domains/address/model"
	"storefront-backend/internal/domains/address/repository"
)

type addressService struct {
	repo repository.RepositoryInterface
}

func NewAddressService(repo repository.RepositoryInterface) ServiceInterface {
	return &addressService{repo: repo}
}

func (s *addressService) AddAddress(ctx context.Context, userID uuid.UUID, req *model.CreateAddressRequest) (*model.Address, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	addr := &model.Address{
		UserID:        userID,
		RecipientName: strings.TrimSpace(req.RecipientName),
		Phone:         strings.TrimSpace(req.Phone),
		Street:        strings.TrimSpace(req.Street),
		Ward:          strings.TrimSpace(req.Ward),
		District:      strings.TrimSpace(req.District),
		Province:      strings.TrimSpace(req.Province),
	}

	created, err := s.repo.Create(ctx, addr)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("user_id", userID.String()).
		Str("address_id", created.ID.String()).
		Bool("is_default", created.IsDefault).
		Msg("Address added")

	return created, nil
}

func (s *addressService) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*model.Address, error) {
	addr, err := s.repo.GetByID(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}
	if addr == nil {
		return nil, model.NewAddressNotFound(addressID.String())
	}
	return addr, nil
}

func (s *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, req *model.UpdateAddressRequest) (*model.Address, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	addr, err := s.GetAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	req.Apply(addr)
	return s.repo.Update(ctx, addr)
}

func (s *addressService) SetDefaultShipping(ctx context.Context, userID, addressID uuid.UUID) error {
	addr, err := s.GetAddress(ctx, userID, addressID)
	if err != nil {
		return err
	}
	if addr.IsDefault {
		return nil
	}
	return s.repo.SetDefaultShipping(ctx, userID, addressID)
}

func (s *addressService) SetDefaultBilling(ctx context.Context, userID, addressID uuid.UUID) error {
	addr, err := s.GetAddress(ctx, userID, addressID)
	if err != nil {
		return err
	}
	if addr.IsBilling {
		return nil
	}
	return s.repo.SetDefaultBilling(ctx, userID, addressID)
}

func (s *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	return s.repo.Delete(ctx, userID, addressID)
}
