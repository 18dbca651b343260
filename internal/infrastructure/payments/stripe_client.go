package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
	"github.com/stripe/stripe-go/v74/webhook"
)

// StripeClient talks to the PaymentIntents API through stripe-go.
type StripeClient struct {
	api *client.API
}

var _ interfaces.IStripeClient = (*StripeClient)(nil)

func NewStripeClient(secretKey string, timeout time.Duration) *StripeClient {
	return newStripeClient(secretKey, &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: timeout},
		MaxNetworkRetries: stripe.Int64(2),
	})
}

func newStripeClient(secretKey string, cfg *stripe.BackendConfig) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, cfg),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, cfg),
	})
	log.Printf("[payment][stripe] client initialized")
	return &StripeClient{api: api}
}

func (c *StripeClient) CreateAndConfirmIntent(ctx context.Context, req interfaces.StripeIntentRequest) (interfaces.StripeIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.AmountMinor),
		Currency:           stripe.String(req.Currency),
		PaymentMethod:      stripe.String(req.PaymentMethodID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Confirm:            stripe.Bool(true),
	}
	if req.ReturnURL != "" {
		params.ReturnURL = stripe.String(req.ReturnURL)
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if req.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(req.ReceiptEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	params.Context = ctx

	log.Printf("[payment][stripe] create intent start amount_minor=%d currency=%s", req.AmountMinor, req.Currency)
	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		mapped := mapStripeError(err)
		log.Printf("[payment][stripe] create intent failed err=%v", mapped)
		return interfaces.StripeIntent{}, mapped
	}
	log.Printf("[payment][stripe] create intent success payment_intent=%s status=%s", pi.ID, pi.Status)
	return toStripeIntent(pi), nil
}

func (c *StripeClient) RetrieveIntent(ctx context.Context, id string) (interfaces.StripeIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := c.api.PaymentIntents.Get(id, params)
	if err != nil {
		mapped := mapStripeError(err)
		log.Printf("[payment][stripe] retrieve intent failed payment_intent=%s err=%v", id, mapped)
		return interfaces.StripeIntent{}, mapped
	}
	return toStripeIntent(pi), nil
}

// VerifyWebhookSignature checks the Stripe-Signature header over the exact
// raw body with the default five minute tolerance.
func (c *StripeClient) VerifyWebhookSignature(raw []byte, signatureHeader, secret string) error {
	return webhook.ValidatePayload(raw, signatureHeader, secret)
}

func toStripeIntent(pi *stripe.PaymentIntent) interfaces.StripeIntent {
	out := interfaces.StripeIntent{
		ID:           pi.ID,
		Status:       string(pi.Status),
		ClientSecret: pi.ClientSecret,
	}
	if pi.LastPaymentError != nil {
		out.LastError = pi.LastPaymentError.Msg
	}
	if pi.LastResponse != nil && len(pi.LastResponse.RawJSON) > 0 {
		out.Raw = json.RawMessage(pi.LastResponse.RawJSON)
	} else if b, err := json.Marshal(pi); err == nil {
		out.Raw = b
	}
	return out
}

func mapStripeError(err error) error {
	var serr *stripe.Error
	if errors.As(err, &serr) {
		code := string(serr.Code)
		if serr.DeclineCode != "" {
			code = string(serr.DeclineCode)
		}
		return &entities.ProviderAPIError{
			Provider:   entities.PaymentMethodStripe,
			HTTPStatus: serr.HTTPStatusCode,
			Code:       code,
			Message:    serr.Msg,
			Err:        err,
		}
	}
	return &entities.ProviderAPIError{Provider: entities.PaymentMethodStripe, Err: err}
}
