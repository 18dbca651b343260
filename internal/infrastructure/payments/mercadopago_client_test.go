package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"donations_core/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func TestNewMercadoPagoClient(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		if _, err := NewMercadoPagoClient("", false); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		c, err := NewMercadoPagoClient("", true)
		if err != nil || c == nil || !c.mockMode {
			t.Fatalf("expected mock client, got %+v err=%v", c, err)
		}
	})
}

func TestMercadoPagoClient_Mock(t *testing.T) {
	c, _ := NewMercadoPagoClient("", true)
	req := interfaces.MercadoPagoPaymentRequest{
		DonationID:      "don-1",
		Amount:          decimal.RequireFromString("25.50"),
		CardToken:       "tok-visa",
		PaymentMethodID: "visa",
	}

	t.Run("donation id is the external reference", func(t *testing.T) {
		p, err := c.CreatePayment(context.Background(), req)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if p.ID == "" || p.Status != "approved" || p.ExternalReference != "don-1" {
			t.Fatalf("unexpected payment %+v", p)
		}
		var body map[string]any
		if err := json.Unmarshal(p.Raw, &body); err != nil {
			t.Fatalf("expected json response, got %v", err)
		}
		if body["external_reference"] != "don-1" || body["transaction_amount"] != 25.5 {
			t.Fatalf("unexpected response %v", body)
		}

		got, err := c.GetPayment(context.Background(), p.ID)
		if err != nil || got.Status != "approved" || got.ExternalReference != "don-1" {
			t.Fatalf("unexpected get %+v err=%v", got, err)
		}
	})

	t.Run("status follows the card token", func(t *testing.T) {
		tests := []struct {
			token  string
			status string
		}{
			{"tok-rejected", "rejected"},
			{"tok-pending", "in_process"},
		}
		for _, tt := range tests {
			r := req
			r.CardToken = tt.token
			p, err := c.CreatePayment(context.Background(), r)
			if err != nil || p.Status != tt.status {
				t.Fatalf("token=%s expected %s, got %+v err=%v", tt.token, tt.status, p, err)
			}
		}
	})

	t.Run("unknown payment", func(t *testing.T) {
		if _, err := c.GetPayment(context.Background(), "404"); !errors.Is(err, ErrMercadoPagoPaymentNotFound) {
			t.Fatalf("expected ErrMercadoPagoPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentRequest(t *testing.T) {
	got := paymentRequest(interfaces.MercadoPagoPaymentRequest{
		DonationID:      "don-7",
		Amount:          decimal.RequireFromString("10.00"),
		CardToken:       "tok",
		PaymentMethodID: "master",
		Description:     "Donation don-7",
		PayerEmail:      "a@b.com",
	})
	if got.ExternalReference != "don-7" || got.TransactionAmount != 10 || got.Installments != 1 || got.Token != "tok" {
		t.Fatalf("unexpected request %+v", got)
	}
	if got.Payer == nil || got.Payer.Email != "a@b.com" || got.Metadata["donation_id"] != "don-7" {
		t.Fatalf("unexpected payer or metadata %+v", got)
	}
}

func TestMercadoPagoClient_NotConfigured(t *testing.T) {
	var c *MercadoPagoClient
	if _, err := c.CreatePayment(context.Background(), interfaces.MercadoPagoPaymentRequest{}); !errors.Is(err, ErrMercadoPagoClientNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoClientNotConfigured, got %v", err)
	}
	if _, err := (&MercadoPagoClient{}).GetPayment(context.Background(), "1"); !errors.Is(err, ErrMercadoPagoClientNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoClientNotConfigured, got %v", err)
	}
}
