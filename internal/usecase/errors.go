package usecase

import (
	"errors"

	"donations_core/internal/domain/entities"
)

var (
	ErrDonationNotFound       = errors.New("donation not found")
	ErrInvalidDonationID      = errors.New("invalid donation id")
	ErrGatewayNotFound        = errors.New("payment gateway not found")
	ErrOperationNotSupported  = errors.New("operation not supported by payment gateway")
	ErrPendingOrderNotFound   = errors.New("pending order expired or unknown reference")
	ErrInvalidReference       = errors.New("invalid provider reference")
	ErrPaymentDeclined        = errors.New("payment method declined")
	ErrPaymentCanceled        = errors.New("payment was canceled")
	ErrPaymentNotProcessed    = errors.New("payment could not be processed")
	ErrPaymentNotCompleted    = errors.New("payment was not completed by the provider")
	ErrDonationMethodMismatch = errors.New("donation belongs to another payment method")
	ErrWebhookProviderUnknown = errors.New("unknown webhook provider")
	ErrMalformedWebhook       = errors.New("malformed webhook payload")
	ErrCampaignNotFound       = errors.New("campaign not found")
	ErrCampaignNotActive      = errors.New("campaign not accepting donations")
	ErrInvalidCampaignID      = errors.New("invalid campaign id")
	ErrInvalidCampaignGoal    = errors.New("invalid campaign goal")
	ErrInvalidCampaignTitle   = errors.New("invalid campaign title")
)

// Aliases of the domain taxonomy so callers of this package can match with errors.Is.
var (
	ErrProviderNotConfigured   = entities.ErrProviderNotConfigured
	ErrSignatureVerification   = entities.ErrSignatureVerification
	ErrTokenUnavailable        = entities.ErrTokenUnavailable
	ErrInvalidStatusTransition = entities.ErrInvalidStatusTransition
)

// PaymentFailedError wraps a provider-reported failure of an existing
// donation. Reason is one of the payment sentinels above; Message carries
// the provider's own text.
type PaymentFailedError struct {
	DonationID string
	Reason     error
	Message    string
}

func (e *PaymentFailedError) Error() string {
	if e.Message != "" {
		return e.Reason.Error() + ": " + e.Message
	}
	return e.Reason.Error()
}

func (e *PaymentFailedError) Unwrap() error { return e.Reason }
