package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"donations_core/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IPaymentGateway is the capability every payment provider adapter exposes.
//
//   - CreateIntent turns a donation intent into a provider payment object.
//   - Capture finalizes a provider reference (PayPal order, Stripe 3DS continuation).
//   - ProcessPayment drives an already-created donation through its state machine.
//
// Operations a provider has no use for return usecase.ErrOperationNotSupported.
type IPaymentGateway interface {
	ID() entities.PaymentMethod
	CreateIntent(ctx context.Context, in entities.DonationIntent) (entities.PaymentResult, error)
	Capture(ctx context.Context, reference string) (entities.PaymentResult, error)
	ProcessPayment(ctx context.Context, in entities.DonationIntent, donationID string) (entities.PaymentResult, error)
}

// IWebhookSource verifies and parses one provider's notifications. Verify
// runs against the exact raw bytes; Parse is only called after Verify succeeds.
type IWebhookSource interface {
	Provider() entities.PaymentMethod
	Verify(ctx context.Context, raw []byte, headers http.Header) error
	Parse(raw []byte) (entities.WebhookNotification, error)
}

// ITokenFetcher performs a client-credentials exchange against a provider.
type ITokenFetcher interface {
	FetchToken(ctx context.Context, mode string, creds entities.ProviderCredentials) (token string, expiresIn time.Duration, err error)
}

// StripeIntentRequest is the input for creating and confirming a PaymentIntent.
type StripeIntentRequest struct {
	AmountMinor     int64
	Currency        string
	PaymentMethodID string
	ReturnURL       string
	Description     string
	ReceiptEmail    string
	Metadata        map[string]string
	IdempotencyKey  string
}

// StripeIntent is the subset of a PaymentIntent the gateway reads.
type StripeIntent struct {
	ID           string
	Status       string
	ClientSecret string
	LastError    string
	Raw          json.RawMessage
}

// IStripeClient wraps the Stripe API.
type IStripeClient interface {
	CreateAndConfirmIntent(ctx context.Context, req StripeIntentRequest) (StripeIntent, error)
	RetrieveIntent(ctx context.Context, id string) (StripeIntent, error)
	VerifyWebhookSignature(raw []byte, signatureHeader, secret string) error
}

// PayPalOrderRequest is the input for the Orders API v2 create call.
type PayPalOrderRequest struct {
	Amount      string
	Currency    string
	Description string
	CustomID    string
	ReturnURL   string
	CancelURL   string
	RequestID   string
}

// PayPalOrder is the subset of a created order the gateway reads.
type PayPalOrder struct {
	ID          string
	Status      string
	ApprovalURL string
	Raw         json.RawMessage
}

// PayPalCapture is the result of capturing an order.
type PayPalCapture struct {
	OrderID       string
	Status        string
	CaptureID     string
	CaptureStatus string
	Raw           json.RawMessage
}

// PayPalWebhookVerification carries the transmission headers PayPal signs.
type PayPalWebhookVerification struct {
	TransmissionID   string
	TransmissionTime string
	CertURL          string
	AuthAlgo         string
	TransmissionSig  string
	WebhookID        string
	WebhookEvent     json.RawMessage
}

// IPayPalClient wraps the PayPal REST API. Calls take a bearer token
// obtained through the Access Token Cache.
type IPayPalClient interface {
	Mode() string
	Credentials() entities.ProviderCredentials
	CreateOrder(ctx context.Context, accessToken string, req PayPalOrderRequest) (PayPalOrder, error)
	CaptureOrder(ctx context.Context, accessToken, orderID string) (PayPalCapture, error)
	VerifyWebhookSignature(ctx context.Context, accessToken string, req PayPalWebhookVerification) (bool, error)
}

// MercadoPagoPaymentRequest is a card charge for one donation. DonationID
// travels as the payment's external_reference.
type MercadoPagoPaymentRequest struct {
	DonationID      string
	Amount          decimal.Decimal
	CardToken       string
	PaymentMethodID string
	Description     string
	PayerEmail      string
}

// MercadoPagoPayment is the subset of a payment the gateway reads.
type MercadoPagoPayment struct {
	ID                string
	Status            string
	StatusDetail      string
	ExternalReference string
	Raw               json.RawMessage
}

// IMercadoPagoClient abstracts the Mercado Pago payments API.
type IMercadoPagoClient interface {
	CreatePayment(ctx context.Context, req MercadoPagoPaymentRequest) (MercadoPagoPayment, error)
	GetPayment(ctx context.Context, paymentID string) (MercadoPagoPayment, error)
}
