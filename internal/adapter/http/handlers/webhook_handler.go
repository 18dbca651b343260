package handlers

import (
	"errors"
	"log"
	"net/http"

	response "donations_core/internal/adapter/http/dto/response"
	"donations_core/internal/usecase"
	"donations_core/pkg"

	"github.com/gin-gonic/gin"
)

const maxWebhookBodyBytes = 1 << 20

// WebhookHandler hands provider notifications to the reconciler untouched.

type WebhookHandler struct {
	reconciler usecase.IWebhookReconciler
}

func NewWebhookHandler(r usecase.IWebhookReconciler) *WebhookHandler {
	return &WebhookHandler{reconciler: r}
}

// Receive reads the raw body byte for byte; signatures are computed over it.
// @Summary      Provider webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        provider  path      string  true  "stripe or paypal"
// @Success      200       {object}  response.WebhookAckResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /webhooks/{provider} [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	provider := c.Param("provider")
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)

	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[donation][webhook][handler] read body failed provider=%s err=%v", provider, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ack, err := h.reconciler.Handle(c.Request.Context(), provider, raw, c.Request.Header)
	if err != nil {
		log.Printf("[donation][webhook][handler] rejected provider=%s err=%v", provider, err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWebhookAck(ack))
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWebhookProviderUnknown):
		return pkg.NewDomainErrorSimple("WEBHOOK_PROVIDER_UNKNOWN", "Unknown webhook provider", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSignatureVerification):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMalformedWebhook):
		return pkg.NewDomainErrorSimple("MALFORMED_WEBHOOK", "Malformed webhook payload", http.StatusBadRequest)
	default:
		// Non-2xx makes the provider retry later.
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
