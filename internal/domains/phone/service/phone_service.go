package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/domains/phone/model"
	"storefront-backend/internal/domains/phone/repository"
)

type phoneService struct {
	repo repository.RepositoryInterface
}

func NewPhoneService(repo repository.RepositoryInterface) ServiceInterface {
	return &phoneService{repo: repo}
}

func (s *phoneService) AddPhone(ctx context.Context, userID uuid.UUID, req *model.CreatePhoneRequest) (*model.Phone, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	phone := &model.Phone{
		UserID: userID,
		Number: model.NormalizePhoneNumber(req.Number),
		Label:  req.Label,
	}

	created, err := s.repo.Create(ctx, phone)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("user_id", userID.String()).
		Str("phone_id", created.ID.String()).
		Bool("is_default", created.IsDefault).
		Msg("Phone added")

	return created, nil
}

func (s *phoneService) ListPhones(ctx context.Context, userID uuid.UUID) ([]model.Phone, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *phoneService) SetDefaultPhone(ctx context.Context, userID, phoneID uuid.UUID) error {
	phone, err := s.repo.GetByID(ctx, userID, phoneID)
	if err != nil {
		return err
	}
	if phone == nil {
		return model.NewPhoneNotFound(phoneID.String())
	}
	if phone.IsDefault {
		return nil
	}
	return s.repo.SetDefault(ctx, userID, phoneID)
}

func (s *phoneService) DeletePhone(ctx context.Context, userID, phoneID uuid.UUID) error {
	return s.repo.Delete(ctx, userID, phoneID)
}
