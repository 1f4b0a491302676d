package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"storefront-backend/internal/domains/cart/service"
)

// PurgeStaleHandler runs the scheduled cleanup of carts abandoned past the
// retention window.
type PurgeStaleHandler struct {
	service service.ServiceInterface
}

func NewPurgeStaleHandler(s service.ServiceInterface) *PurgeStaleHandler {
	return &PurgeStaleHandler{service: s}
}

func (h *PurgeStaleHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	if _, err := h.service.PurgeStaleCarts(ctx); err != nil {
		return fmt.Errorf("purge stale carts: %w", err)
	}
	return nil
}
