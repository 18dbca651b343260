package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DonationIntent is what a donor submits before any provider is contacted.
//
// PaymentToken carries the provider-side instrument: a Stripe PaymentMethod
// id or a Mercado Pago card token. PayPal and bank transfer ignore it.
type DonationIntent struct {
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency" validate:"omitempty,len=3,alpha"`
	DonorName       string          `json:"donor_name" validate:"required,max=200"`
	DonorEmail      string          `json:"donor_email" validate:"required,email,max=254"`
	CampaignID      string          `json:"campaign_id,omitempty" validate:"max=64"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	PaymentToken    string          `json:"payment_token,omitempty" validate:"max=255"`
	PaymentMethodID string          `json:"payment_method_id,omitempty" validate:"max=64"`
	ReturnURL       string          `json:"return_url,omitempty" validate:"omitempty,url"`
}

// PaymentResult is returned by every gateway operation.
type PaymentResult struct {
	DonationID     string         `json:"donation_id,omitempty"`
	TransactionID  string         `json:"transaction_id,omitempty"`
	Reference      string         `json:"reference,omitempty"`
	Status         DonationStatus `json:"status,omitempty"`
	RequiresAction bool           `json:"requires_action,omitempty"`
	ClientSecret   string         `json:"client_secret,omitempty"`
	Processing     bool           `json:"processing,omitempty"`
	ApprovalURL    string         `json:"approval_url,omitempty"`
	Instructions   string         `json:"instructions,omitempty"`
	Message        string         `json:"message,omitempty"`
}

// PendingOrder is the transient association between a provider order id
// and the intent needed to materialize the donation once captured.
type PendingOrder struct {
	Provider  PaymentMethod  `json:"provider"`
	OrderID   string         `json:"order_id"`
	Intent    DonationIntent `json:"intent"`
	CreatedAt time.Time      `json:"created_at"`

	// Set when the provider captured the order but the donation could not
	// be stored; the next Capture finalizes without calling the provider.
	CaptureID  string `json:"capture_id,omitempty"`
	CaptureRaw []byte `json:"capture_raw,omitempty"`
}

// AccessToken is a cached OAuth bearer token.
type AccessToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ProviderCredentials are the client-credentials pair for an OAuth provider.
type ProviderCredentials struct {
	ClientID     string
	ClientSecret string
}

// WebhookOutcome is the provider-neutral meaning of a webhook event.
type WebhookOutcome string

const (
	WebhookOutcomeCompleted WebhookOutcome = "completed"
	WebhookOutcomeFailed    WebhookOutcome = "failed"
	WebhookOutcomeRefunded  WebhookOutcome = "refunded"
	WebhookOutcomeIgnored   WebhookOutcome = "ignored"
)

// WebhookNotification is a verified, parsed provider notification.
type WebhookNotification struct {
	Provider      PaymentMethod
	EventID       string
	EventType     string
	Outcome       WebhookOutcome
	TransactionID string
	// DonationID is the donation the provider echoed back in its metadata,
	// used when no donation carries TransactionID yet.
	DonationID  string
	ErrorDetail string
	Raw         json.RawMessage
}

// WebhookAck is the reconciler's answer to the provider.
type WebhookAck struct {
	Received   bool   `json:"received"`
	EventType  string `json:"event_type,omitempty"`
	DonationID string `json:"donation_id,omitempty"`
	Action     string `json:"action"`
}
