package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"storefront-backend/internal/domains/promotion/service"
)

// DeactivateExpiredHandler runs the scheduled sweep that turns off
// promotions whose validity window has closed.
type DeactivateExpiredHandler struct {
	service service.ServiceInterface
}

func NewDeactivateExpiredHandler(s service.ServiceInterface) *DeactivateExpiredHandler {
	return &DeactivateExpiredHandler{service: s}
}

func (h *DeactivateExpiredHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	if _, err := h.service.DeactivateExpiredPromotions(ctx); err != nil {
		return fmt.Errorf("deactivate expired promotions: %w", err)
	}
	return nil
}
