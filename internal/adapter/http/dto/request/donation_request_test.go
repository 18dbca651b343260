package request

import (
	"encoding/json"
	"testing"

	"donations_core/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestDonationIntentRequest_ToIntent(t *testing.T) {
	t.Run("numeric and string amounts", func(t *testing.T) {
		for _, body := range []string{
			`{"amount":25.5,"donor_name":"Ada","donor_email":"a@b.com"}`,
			`{"amount":"25.50","donor_name":"Ada","donor_email":"a@b.com"}`,
		} {
			var req DonationIntentRequest
			if err := json.Unmarshal([]byte(body), &req); err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
			if !req.Amount.Equal(decimal.RequireFromString("25.5")) {
				t.Fatalf("unexpected amount %s", req.Amount)
			}
		}
	})

	t.Run("maps and trims", func(t *testing.T) {
		req := DonationIntentRequest{
			Amount:          decimal.NewFromInt(10),
			Currency:        " usd ",
			DonorName:       "Ada",
			DonorEmail:      "a@b.com",
			CampaignID:      " c-1 ",
			PaymentMethodID: " pm_1 ",
		}
		in := req.ToIntent(" Stripe ")
		if in.PaymentMethod != entities.PaymentMethodStripe {
			t.Fatalf("expected stripe, got %s", in.PaymentMethod)
		}
		if in.Currency != "usd" || in.CampaignID != "c-1" || in.PaymentMethodID != "pm_1" {
			t.Fatalf("unexpected intent %+v", in)
		}
	})
}
