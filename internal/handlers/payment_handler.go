package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httpresp"
	ucPayment "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/payment"
)

type PaymentHandler struct {
	checkout *ucPayment.CreateCheckout
	webhook  *ucPayment.ProcessWebhook
}

func NewPaymentHandler(
	checkout *ucPayment.CreateCheckout,
	webhook *ucPayment.ProcessWebhook,
) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, webhook: webhook}
}

// --------- Requests ---------

type CheckoutRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`
}

// webhookBody is the part of a MercadoPago notification the handler reads.
type webhookBody struct {
	Type string `json:"type"`
	Data struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// --------- Handlers ---------

func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	url, err := h.checkout.Execute(c.Request.Context(), actor(c).ID, req.ServiceID)
	if err != nil {
		httperr.Handle(c, err, "failed_to_create_checkout")
		return
	}
	httpresp.OK(c, gin.H{"url": url})
}

// Webhook reads the raw body; the notification id may arrive in the body
// or in the "type"/"data.id" query parameters.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request data.")
		return
	}

	var body webhookBody
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid request data.")
			return
		}
	}

	in := ucPayment.WebhookInput{
		Type:      body.Type,
		DataID:    rawID(body.Data.ID),
		Signature: c.GetHeader("x-signature"),
		RequestID: c.GetHeader("x-request-id"),
	}
	if in.Type == "" {
		in.Type = c.Query("type")
	}
	if in.DataID == "" {
		in.DataID = c.Query("data.id")
	}

	if err := h.webhook.Execute(c.Request.Context(), in); err != nil {
		httperr.Handle(c, err, "failed_to_process_webhook")
		return
	}
	c.Status(http.StatusOK)
}

// rawID accepts the id as a JSON string or number.
func rawID(v json.RawMessage) string {
	if len(v) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String()
	}
	return ""
}
