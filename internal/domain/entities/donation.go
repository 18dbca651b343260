package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DonationStatus represents the lifecycle of a donation.
//
// Allowed transitions:
//   - pending    -> processing | completed | failed | cancelled
//   - processing -> completed | failed | cancelled
//   - completed  -> refunded
//
// A transition to the current status is a no-op, never an error.

type DonationStatus string

const (
	DonationStatusPending    DonationStatus = "pending"
	DonationStatusProcessing DonationStatus = "processing"
	DonationStatusCompleted  DonationStatus = "completed"
	DonationStatusFailed     DonationStatus = "failed"
	DonationStatusCancelled  DonationStatus = "cancelled"
	DonationStatusRefunded   DonationStatus = "refunded"
)

var donationTransitions = map[DonationStatus][]DonationStatus{
	DonationStatusPending:    {DonationStatusProcessing, DonationStatusCompleted, DonationStatusFailed, DonationStatusCancelled},
	DonationStatusProcessing: {DonationStatusCompleted, DonationStatusFailed, DonationStatusCancelled},
	DonationStatusCompleted:  {DonationStatusRefunded},
}

// CanTransition reports whether the status graph has an edge from -> to.
func CanTransition(from, to DonationStatus) bool {
	for _, next := range donationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PreviousStatuses returns every status that may legally move to `to`.
func PreviousStatuses(to DonationStatus) []DonationStatus {
	var out []DonationStatus
	for from, nexts := range donationTransitions {
		for _, next := range nexts {
			if next == to {
				out = append(out, from)
			}
		}
	}
	return out
}

func (s DonationStatus) IsValid() bool {
	switch s {
	case DonationStatusPending, DonationStatusProcessing, DonationStatusCompleted,
		DonationStatusFailed, DonationStatusCancelled, DonationStatusRefunded:
		return true
	}
	return false
}

// IsTerminal reports statuses no gateway flow may leave. Refunds are driven
// from completed only, so completed is not terminal.
func (s DonationStatus) IsTerminal() bool {
	switch s {
	case DonationStatusFailed, DonationStatusCancelled, DonationStatusRefunded:
		return true
	}
	return false
}

// PaymentMethod identifies the gateway that processes a donation.
type PaymentMethod string

const (
	PaymentMethodStripe       PaymentMethod = "stripe"
	PaymentMethodPayPal       PaymentMethod = "paypal"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodMercadoPago  PaymentMethod = "mercadopago"
)

// UnassociatedDonationID is the history key used for provider failures that
// happen before a donation record exists.
const UnassociatedDonationID = "0"

// Donation is the donation record persisted by the Donation Store.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (transaction_id-index): transaction_id
//
// RawPayload keeps the last provider body (JSON) for audit.

type Donation struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	DonorName     string          `json:"donor_name"`
	DonorEmail    string          `json:"donor_email"`
	CampaignID    string          `json:"campaign_id,omitempty"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        DonationStatus  `json:"status"`
	TransactionID string          `json:"transaction_id,omitempty"`
	RawPayload    json.RawMessage `json:"raw_payload,omitempty"`
	PaymentError  string          `json:"payment_error,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// DonationMeta holds the mutable, non-status fields of a donation. Empty
// fields are left untouched by the store.
type DonationMeta struct {
	TransactionID string
	RawPayload    json.RawMessage
	PaymentError  string
}

func (m DonationMeta) IsEmpty() bool {
	return m.TransactionID == "" && len(m.RawPayload) == 0 && m.PaymentError == ""
}
