package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	request "donations_core/internal/adapter/http/dto/request"
	response "donations_core/internal/adapter/http/dto/response"
	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase"
	"donations_core/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidDonationPayload = pkg.NewDomainErrorSimple("INVALID_DONATION_INPUT", "Invalid donation payload", http.StatusBadRequest)
)

// DonationHandler exposes the payment gateways and donation queries.

type DonationHandler struct {
	usecase usecase.IDonationUseCase
}

func NewDonationHandler(uc usecase.IDonationUseCase) *DonationHandler {
	return &DonationHandler{usecase: uc}
}

// CreateIntent starts a donation with the gateway named in the path.
// @Summary      Create donation intent
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        method   path      string                          true  "stripe, paypal, mercadopago or bank_transfer"
// @Param        payload  body      request.DonationIntentRequest   true  "Donation"
// @Success      201      {object}  response.PaymentResultResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      402      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /donations/{method}/intents [post]
func (h *DonationHandler) CreateIntent(c *gin.Context) {
	method := c.Param("method")
	var payload request.DonationIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[donation][handler] create intent invalid payload method=%s err=%v", method, err)
		c.JSON(errInvalidDonationPayload.HTTPStatus, errInvalidDonationPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CreateIntent(c.Request.Context(), entities.PaymentMethod(method), payload.ToIntent(method))
	if err != nil {
		log.Printf("[donation][handler] create intent failed method=%s err=%v", method, err)
		appErr := mapDonationPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[donation][handler] create intent success method=%s donation_id=%s reference=%s status=%s", method, result.DonationID, result.Reference, result.Status)

	c.JSON(http.StatusCreated, response.FromPaymentResult(result))
}

// Capture finalizes a provider reference: a PayPal order id or a Stripe
// PaymentIntent id after 3-D Secure.
// @Summary      Capture a provider reference
// @Tags         donations
// @Produce      json
// @Param        method     path      string  true  "Payment method"
// @Param        reference  path      string  true  "Provider order or intent id"
// @Success      200        {object}  response.PaymentResultResponse
// @Failure      402        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Router       /donations/{method}/captures/{reference} [post]
func (h *DonationHandler) Capture(c *gin.Context) {
	h.capture(c, c.Param("method"), c.Param("reference"))
}

// Return handles the provider redirect after approval or 3-D Secure. Stripe
// appends ?payment_intent=, PayPal appends ?token= (the order id).
// @Summary      Provider return URL
// @Tags         donations
// @Produce      json
// @Param        method          path   string  true   "Payment method"
// @Param        payment_intent  query  string  false  "Stripe PaymentIntent id"
// @Param        token           query  string  false  "PayPal order id"
// @Success      200  {object}  response.PaymentResultResponse
// @Router       /returns/{method} [get]
func (h *DonationHandler) Return(c *gin.Context) {
	reference := c.Query("payment_intent")
	if reference == "" {
		reference = c.Query("token")
	}
	h.capture(c, c.Param("method"), reference)
}

func (h *DonationHandler) capture(c *gin.Context, method, reference string) {
	log.Printf("[donation][handler] capture start method=%s reference=%s", method, reference)

	result, err := h.usecase.Capture(c.Request.Context(), entities.PaymentMethod(method), reference)
	if err != nil {
		log.Printf("[donation][handler] capture failed method=%s reference=%s err=%v", method, reference, err)
		appErr := mapDonationPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[donation][handler] capture success method=%s donation_id=%s status=%s", method, result.DonationID, result.Status)

	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// ProcessPayment drives an existing donation. The body is optional and donor
// fields are not required here; the stored donation supplies them.
// @Summary      Process payment for an existing donation
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        method       path      string  true  "Payment method"
// @Param        donation_id  path      string  true  "Donation id"
// @Success      200          {object}  response.PaymentResultResponse
// @Failure      409          {object}  pkg.HTTPError
// @Router       /donations/{method}/payments/{donation_id} [post]
func (h *DonationHandler) ProcessPayment(c *gin.Context) {
	method := c.Param("method")
	donationID := c.Param("donation_id")

	var payload request.DonationIntentRequest
	if err := c.ShouldBindWith(&payload, binding.JSON); err != nil && !errors.Is(err, io.EOF) {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			c.JSON(errInvalidDonationPayload.HTTPStatus, errInvalidDonationPayload.ToHTTPError())
			return
		}
	}

	result, err := h.usecase.ProcessPayment(c.Request.Context(), entities.PaymentMethod(method), payload.ToIntent(method), donationID)
	if err != nil {
		log.Printf("[donation][handler] process payment failed method=%s donation_id=%s err=%v", method, donationID, err)
		appErr := mapDonationPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// GetDonation godoc
// @Summary      Get donation
// @Tags         donations
// @Produce      json
// @Param        id   path      string  true  "Donation id"
// @Success      200  {object}  response.DonationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /donations/{id} [get]
func (h *DonationHandler) GetDonation(c *gin.Context) {
	d, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDonationPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDonation(d))
}

// GetHistory lists the event history of a donation. Id "0" holds provider
// failures that never produced a donation.
// @Summary      Donation event history
// @Tags         donations
// @Produce      json
// @Param        id     path   string  true   "Donation id"
// @Param        order  query  string  false  "ASC or DESC"
// @Param        limit  query  int     false  "Max rows"
// @Success      200    {array}  response.HistoryEntryResponse
// @Router       /donations/{id}/history [get]
func (h *DonationHandler) GetHistory(c *gin.Context) {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
			return
		}
		limit = n
	}
	order := entities.HistoryOrder(strings.ToUpper(strings.TrimSpace(c.Query("order"))))

	rows, err := h.usecase.History(c.Request.Context(), c.Param("id"), order, limit)
	if err != nil {
		appErr := mapDonationPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHistory(rows))
}

func mapDonationPaymentError(err error) *pkg.AppError {
	var validationErr *entities.ValidationError
	var failedErr *usecase.PaymentFailedError
	var providerErr *entities.ProviderAPIError

	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("INVALID_DONATION_INPUT", validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDonationID), errors.Is(err, usecase.ErrInvalidReference):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_AVAILABLE", "Payment method not available", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOperationNotSupported):
		return pkg.NewDomainErrorSimple("OPERATION_NOT_SUPPORTED", "Operation not supported by this payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProviderNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrDonationNotFound):
		return pkg.NewDomainErrorSimple("DONATION_NOT_FOUND", "Donation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPendingOrderNotFound):
		return pkg.NewDomainErrorSimple("PENDING_ORDER_NOT_FOUND", "Order expired or unknown, please start again", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDonationMethodMismatch):
		return pkg.NewDomainErrorSimple("DONATION_METHOD_MISMATCH", "Donation belongs to another payment method", http.StatusConflict)
	case errors.Is(err, usecase.ErrCampaignNotFound):
		return pkg.NewDomainErrorSimple("CAMPAIGN_NOT_FOUND", "Campaign not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCampaignNotActive):
		return pkg.NewDomainErrorSimple("CAMPAIGN_NOT_ACTIVE", "Campaign is not accepting donations", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Donation can no longer be processed", http.StatusConflict)
	case errors.As(err, &failedErr):
		msg := failedErr.Message
		if msg == "" {
			msg = failedErr.Reason.Error()
		}
		return pkg.NewDomainError("PAYMENT_FAILED", msg, err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrTokenUnavailable):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment failed, please try again", err, http.StatusBadGateway)
	case errors.As(err, &providerErr):
		if providerErr.HTTPStatus >= 400 && providerErr.HTTPStatus < 500 && providerErr.HTTPStatus != http.StatusUnauthorized {
			return pkg.NewDomainError("PAYMENT_FAILED", providerErr.UserMessage(), err, http.StatusPaymentRequired)
		}
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment failed, please try again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
