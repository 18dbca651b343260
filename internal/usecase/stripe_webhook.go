package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"
)

const stripeSignatureHeader = "Stripe-Signature"

type StripeWebhookSource struct {
	client          interfaces.IStripeClient
	secret          string
	allowUnverified bool
}

var _ interfaces.IWebhookSource = (*StripeWebhookSource)(nil)

func NewStripeWebhookSource(client interfaces.IStripeClient, secret string, allowUnverified bool) *StripeWebhookSource {
	return &StripeWebhookSource{client: client, secret: strings.TrimSpace(secret), allowUnverified: allowUnverified}
}

func (s *StripeWebhookSource) Provider() entities.PaymentMethod { return entities.PaymentMethodStripe }

func (s *StripeWebhookSource) Verify(_ context.Context, raw []byte, headers http.Header) error {
	if s.secret == "" || s.client == nil {
		log.Printf("[donation][webhook][stripe] WARNING webhook secret not configured; signature not checked")
		if s.allowUnverified {
			return nil
		}
		return fmt.Errorf("%w: stripe webhook secret not configured", ErrSignatureVerification)
	}
	sig := headers.Get(stripeSignatureHeader)
	if sig == "" {
		return fmt.Errorf("%w: missing %s header", ErrSignatureVerification, stripeSignatureHeader)
	}
	if err := s.client.VerifyWebhookSignature(raw, sig, s.secret); err != nil {
		return fmt.Errorf("%w: %v", ErrSignatureVerification, err)
	}
	return nil
}

type stripeWebhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID               string `json:"id"`
			PaymentIntent    string `json:"payment_intent"`
			LastPaymentError *struct {
				Message string `json:"message"`
			} `json:"last_payment_error"`
			CancellationReason string            `json:"cancellation_reason"`
			Amount             int64             `json:"amount"`
			AmountRefunded     int64             `json:"amount_refunded"`
			Refunded           bool              `json:"refunded"`
			Metadata           map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

func (s *StripeWebhookSource) Parse(raw []byte) (entities.WebhookNotification, error) {
	var evt stripeWebhookEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		return entities.WebhookNotification{}, err
	}
	if evt.Type == "" {
		return entities.WebhookNotification{}, fmt.Errorf("missing event type")
	}

	obj := evt.Data.Object
	n := entities.WebhookNotification{
		Provider:   entities.PaymentMethodStripe,
		EventID:    evt.ID,
		EventType:  evt.Type,
		Outcome:    entities.WebhookOutcomeIgnored,
		DonationID: strings.TrimSpace(obj.Metadata["donation_id"]),
		Raw:        json.RawMessage(raw),
	}

	switch evt.Type {
	case "payment_intent.succeeded":
		n.Outcome, n.TransactionID = entities.WebhookOutcomeCompleted, obj.ID
	case "payment_intent.payment_failed":
		n.Outcome, n.TransactionID = entities.WebhookOutcomeFailed, obj.ID
		n.ErrorDetail = ErrPaymentDeclined.Error()
		if obj.LastPaymentError != nil && obj.LastPaymentError.Message != "" {
			n.ErrorDetail = obj.LastPaymentError.Message
		}
	case "payment_intent.canceled":
		n.Outcome, n.TransactionID = entities.WebhookOutcomeFailed, obj.ID
		n.ErrorDetail = ErrPaymentCanceled.Error()
		if obj.CancellationReason != "" {
			n.ErrorDetail += ": " + obj.CancellationReason
		}
	case "charge.refunded":
		// Donations store the PaymentIntent id, not the charge id.
		n.TransactionID = obj.PaymentIntent
		if obj.Refunded || (obj.Amount > 0 && obj.AmountRefunded >= obj.Amount) {
			n.Outcome = entities.WebhookOutcomeRefunded
		} else {
			log.Printf("[donation][webhook][stripe] partial refund ignored charge=%s amount=%d amount_refunded=%d", obj.ID, obj.Amount, obj.AmountRefunded)
		}
	}
	return n, nil
}
