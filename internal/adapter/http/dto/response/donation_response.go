package response

import (
	"encoding/json"
	"time"

	"donations_core/internal/domain/entities"
)

type PaymentResultResponse struct {
	Success        bool   `json:"success"`
	DonationID     string `json:"donation_id,omitempty"`
	TransactionID  string `json:"transaction_id,omitempty"`
	Reference      string `json:"reference,omitempty"`
	Status         string `json:"status,omitempty"`
	RequiresAction bool   `json:"requires_action,omitempty"`
	ClientSecret   string `json:"client_secret,omitempty"`
	Processing     bool   `json:"processing,omitempty"`
	ApprovalURL    string `json:"approval_url,omitempty"`
	Instructions   string `json:"instructions,omitempty"`
	Message        string `json:"message,omitempty"`
}

func FromPaymentResult(r entities.PaymentResult) PaymentResultResponse {
	return PaymentResultResponse{
		Success:        r.Status != entities.DonationStatusFailed && r.Status != entities.DonationStatusCancelled,
		DonationID:     r.DonationID,
		TransactionID:  r.TransactionID,
		Reference:      r.Reference,
		Status:         string(r.Status),
		RequiresAction: r.RequiresAction,
		ClientSecret:   r.ClientSecret,
		Processing:     r.Processing,
		ApprovalURL:    r.ApprovalURL,
		Instructions:   r.Instructions,
		Message:        r.Message,
	}
}

// DonationResponse omits the raw provider payload; it is kept for audit only.
type DonationResponse struct {
	ID            string    `json:"id"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	DonorName     string    `json:"donor_name"`
	DonorEmail    string    `json:"donor_email"`
	CampaignID    string    `json:"campaign_id,omitempty"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id,omitempty"`
	PaymentError  string    `json:"payment_error,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromDonation(d entities.Donation) DonationResponse {
	return DonationResponse{
		ID:            d.ID,
		Amount:        d.Amount.StringFixed(2),
		Currency:      d.Currency,
		DonorName:     d.DonorName,
		DonorEmail:    d.DonorEmail,
		CampaignID:    d.CampaignID,
		PaymentMethod: string(d.PaymentMethod),
		Status:        string(d.Status),
		TransactionID: d.TransactionID,
		PaymentError:  d.PaymentError,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type HistoryEntryResponse struct {
	ID         string          `json:"id"`
	DonationID string          `json:"donation_id"`
	Event      string          `json:"event"`
	Status     string          `json:"status"`
	Note       string          `json:"note,omitempty"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func FromHistory(entries []entities.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{
			ID:         e.ID,
			DonationID: e.DonationID,
			Event:      e.Event,
			Status:     e.Status,
			Note:       e.Note,
			Metadata:   e.Metadata,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out
}

type WebhookAckResponse struct {
	Received   bool   `json:"received"`
	EventType  string `json:"event_type,omitempty"`
	DonationID string `json:"donation_id,omitempty"`
	Action     string `json:"action,omitempty"`
}

func FromWebhookAck(a entities.WebhookAck) WebhookAckResponse {
	return WebhookAckResponse{
		Received:   a.Received,
		EventType:  a.EventType,
		DonationID: a.DonationID,
		Action:     a.Action,
	}
}
