package request

import (
	"strings"

	"donations_core/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DonationIntentRequest is the body of POST /donations/:method/intents and
// /donations/:method/payments/:donation_id. amount accepts a JSON number or
// a decimal string.
type DonationIntentRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	DonorName       string          `json:"donor_name" binding:"required"`
	DonorEmail      string          `json:"donor_email" binding:"required"`
	CampaignID      string          `json:"campaign_id"`
	PaymentToken    string          `json:"payment_token"`
	PaymentMethodID string          `json:"payment_method_id"`
	ReturnURL       string          `json:"return_url"`
}

func (r DonationIntentRequest) ToIntent(method string) entities.DonationIntent {
	return entities.DonationIntent{
		Amount:          r.Amount,
		Currency:        strings.TrimSpace(r.Currency),
		DonorName:       r.DonorName,
		DonorEmail:      r.DonorEmail,
		CampaignID:      strings.TrimSpace(r.CampaignID),
		PaymentMethod:   entities.PaymentMethod(strings.ToLower(strings.TrimSpace(method))),
		PaymentToken:    strings.TrimSpace(r.PaymentToken),
		PaymentMethodID: strings.TrimSpace(r.PaymentMethodID),
		ReturnURL:       strings.TrimSpace(r.ReturnURL),
	}
}
