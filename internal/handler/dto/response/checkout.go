package response

import (
	"booking-checkout/internal/usecase/commands"
)

type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		URL:       r.URL,
		SessionID: r.SessionID,
	}
}

type WebhookResponse struct {
	Received bool   `json:"received"`
	Status   string `json:"status"`
}

func FromFulfillmentResult(r *commands.FulfillmentResult) *WebhookResponse {
	return &WebhookResponse{
		Received: true,
		Status:   string(r.Outcome),
	}
}
