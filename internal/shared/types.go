package shared

// Asynq queue names
const (
	QueueDefault   = "default"
	QueueOrders    = "orders"
	QueuePromotion = "promotion"
	QueueCart      = "cart"
)

// Asynq task type names
const (
	TypeSendOrderConfirmation   = "order:send_confirmation"
	TypeDeactivateExpiredPromos = "promotion:deactivate_expired"
	TypePurgeStaleCarts         = "cart:purge_stale"
)

// OrderConfirmationPayload is the payload for TypeSendOrderConfirmation.
type OrderConfirmationPayload struct {
	OrderID       string `json:"orderId"`
	OrderNumber   string `json:"orderNumber"`
	RecipientName string `json:"recipientName"`
	Phone         string `json:"phone"`
	TotalFinal    string `json:"totalFinal"`
}
