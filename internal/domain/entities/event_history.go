package entities

import (
	"encoding/json"
	"time"
)

// History event slugs written by the gateways and the webhook reconciler.
const (
	EventPaymentPending        = "payment_pending"
	EventPaymentProcessing     = "payment_processing"
	EventPaymentRequiresAction = "payment_requires_action"
	EventPaymentSucceeded      = "payment_succeeded"
	EventPaymentFailed         = "payment_failed"
	EventPaymentCancelled      = "payment_cancelled"
	EventPaymentRefunded       = "payment_refunded"
	EventOrderCreated          = "order_created"
	EventCaptureNotRecorded    = "capture_not_recorded"
)

// Metadata sources.
const (
	SourceSync    = "sync"
	SourceWebhook = "webhook"
)

// HistoryEntry is one append-only row of the donation event history.
//
// Storage model (DynamoDB):
//   - PK: donation_id
//   - SK: sk (created_at#id), so a query returns entries in creation order.

type HistoryEntry struct {
	ID         string          `json:"id"`
	DonationID string          `json:"donation_id"`
	Event      string          `json:"event"`
	Status     string          `json:"status"`
	Note       string          `json:"note,omitempty"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// HistoryOrder is the sort direction for history reads.
type HistoryOrder string

const (
	HistoryOrderAsc  HistoryOrder = "ASC"
	HistoryOrderDesc HistoryOrder = "DESC"
)
