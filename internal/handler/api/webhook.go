package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	resdto "booking-checkout/internal/handler/dto/response"
	"booking-checkout/internal/handler/httperr"
	"booking-checkout/internal/pkg/stripesig"
	"booking-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
)

// EventVerifier authenticates a raw webhook body against its signature header.
type EventVerifier interface {
	ConstructEvent(payload []byte, header string) (*stripe.Event, error)
}

type WebhookHandler struct {
	verifier     EventVerifier
	fulfillment  commands.FulfillmentCommands
	maxBodyBytes int64
}

func NewWebhookHandler(verifier EventVerifier, fulfillment commands.FulfillmentCommands, maxBodyBytes int64) *WebhookHandler {
	return &WebhookHandler{
		verifier:     verifier,
		fulfillment:  fulfillment,
		maxBodyBytes: maxBodyBytes,
	}
}

// @Summary Stripe webhook
// @Description Receive a signed payment provider event and fulfill completed checkouts
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "t=<unix>,v1=<hex hmac>"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	// The signature covers the exact bytes sent, so the body must not be bound or re-encoded.
	body := c.Request.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}
	payload, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Payload too large", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	event, err := h.verifier.ConstructEvent(payload, c.GetHeader(stripesig.SignatureHeader))
	if err != nil {
		slog.Warn("rejected webhook delivery",
			"client_ip", c.ClientIP(),
			"reason", err.Error())
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Webhook signature verification failed", nil)
		return
	}

	result, err := h.fulfillment.HandleEvent(c.Request.Context(), event)
	if err != nil {
		// 5xx makes the provider redeliver the event
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Webhook processing failed", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFulfillmentResult(result))
}
