package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/infrastructure/sms"
	"storefront-backend/internal/shared"
)

// SendConfirmationHandler delivers the order-confirmation SMS enqueued at
// checkout.
type SendConfirmationHandler struct {
	sms sms.Sender
}

func NewSendConfirmationHandler(sender sms.Sender) *SendConfirmationHandler {
	return &SendConfirmationHandler{sms: sender}
}

func (h *SendConfirmationHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.OrderConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// Malformed payload will never succeed; skip retries.
		return fmt.Errorf("unmarshal confirmation payload: %v: %w", err, asynq.SkipRetry)
	}

	message := fmt.Sprintf("Hi %s, your order %s has been received. Total: %s VND.",
		payload.RecipientName, payload.OrderNumber, payload.TotalFinal)

	messageID, err := h.sms.SendSMS(ctx, payload.Phone, message)
	if err != nil {
		return fmt.Errorf("send confirmation sms for order %s: %w", payload.OrderID, err)
	}

	log.Info().
		Str("order_id", payload.OrderID).
		Str("message_id", messageID).
		Msg("Order confirmation sent")
	return nil
}
