package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStatusTransition is the state error returned when a donation is
	// asked to leave its status along an edge the lifecycle does not allow.
	ErrInvalidStatusTransition = errors.New("invalid donation status transition")
	ErrProviderNotConfigured   = errors.New("payment provider not configured")
	ErrSignatureVerification   = errors.New("webhook signature verification failed")
	ErrTokenUnavailable        = errors.New("access token unavailable")
)

// ValidationError reports a bad or missing donation field. It never reaches a provider.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ProviderAPIError is a network or HTTP failure talking to a payment provider.
type ProviderAPIError struct {
	Provider   PaymentMethod
	HTTPStatus int
	Code       string
	Message    string
	Err        error
}

func (e *ProviderAPIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("%s api error: status=%d code=%s message=%s", e.Provider, e.HTTPStatus, e.Code, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%s api error: status=%d message=%s", e.Provider, e.HTTPStatus, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s api error: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s api error: status=%d", e.Provider, e.HTTPStatus)
}

func (e *ProviderAPIError) Unwrap() error { return e.Err }

// UserMessage is the text safe to show to a donor.
func (e *ProviderAPIError) UserMessage() string {
	if e.Message != "" && e.HTTPStatus >= 400 && e.HTTPStatus < 500 {
		return e.Message
	}
	return "Payment failed, please try again"
}
