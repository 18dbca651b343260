package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"donations_core/internal/domain/entities"
)

var bankReferencePattern = regexp.MustCompile(`^[0-9A-F]{8}-\d+$`)

func TestBankTransferGateway_ProcessPayment(t *testing.T) {
	t.Run("25.00 from a@b.com stays pending with one history row", func(t *testing.T) {
		h := newHarness()
		g := NewBankTransferGateway(h.donations, h.lifecycle, h.validator, "IBAN DE00 0000")
		g.now = func() time.Time { return time.Unix(1767225600, 0) }

		res, err := g.CreateIntent(context.Background(), validIntent())
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if res.Status != entities.DonationStatusPending {
			t.Fatalf("expected pending, got %s", res.Status)
		}
		if !bankReferencePattern.MatchString(res.Reference) {
			t.Fatalf("unexpected reference %q", res.Reference)
		}
		if res.Instructions != "IBAN DE00 0000" {
			t.Fatalf("unexpected instructions %q", res.Instructions)
		}

		d, _ := h.donations.GetByID(context.Background(), res.DonationID)
		if d.Status != entities.DonationStatusPending || d.TransactionID != res.Reference {
			t.Fatalf("unexpected donation: %+v", d)
		}
		if d.Amount.StringFixed(2) != "25.00" || d.DonorEmail != "a@b.com" {
			t.Fatalf("unexpected donation fields: %+v", d)
		}

		rows := h.history.forDonation(d.ID)
		if len(rows) != 1 || rows[0].Event != entities.EventPaymentPending || rows[0].Status != "pending" {
			t.Fatalf("expected one payment_pending row, got %+v", rows)
		}
	})

	t.Run("repeat call keeps the reference", func(t *testing.T) {
		h := newHarness()
		g := NewBankTransferGateway(h.donations, h.lifecycle, h.validator, "")
		seedDonation(h, "don-1", entities.PaymentMethodBankTransfer, entities.DonationStatusPending, "")

		first, err := g.ProcessPayment(context.Background(), entities.DonationIntent{}, "don-1")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		second, err := g.ProcessPayment(context.Background(), entities.DonationIntent{}, "don-1")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if first.Reference != second.Reference {
			t.Fatalf("expected stable reference, got %q and %q", first.Reference, second.Reference)
		}
		if n := len(h.history.forDonation("don-1")); n != 1 {
			t.Fatalf("expected 1 history row, got %d", n)
		}
	})

	t.Run("not pending", func(t *testing.T) {
		h := newHarness()
		g := NewBankTransferGateway(h.donations, h.lifecycle, h.validator, "")
		seedDonation(h, "don-2", entities.PaymentMethodBankTransfer, entities.DonationStatusCompleted, "REF")

		_, err := g.ProcessPayment(context.Background(), entities.DonationIntent{}, "don-2")
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("donation not found", func(t *testing.T) {
		h := newHarness()
		g := NewBankTransferGateway(h.donations, h.lifecycle, h.validator, "")

		_, err := g.ProcessPayment(context.Background(), entities.DonationIntent{}, "missing")
		if !errors.Is(err, ErrDonationNotFound) {
			t.Fatalf("expected ErrDonationNotFound, got %v", err)
		}
	})

	t.Run("capture is unsupported", func(t *testing.T) {
		h := newHarness()
		g := NewBankTransferGateway(h.donations, h.lifecycle, h.validator, "")

		if _, err := g.Capture(context.Background(), "REF"); !errors.Is(err, ErrOperationNotSupported) {
			t.Fatalf("expected ErrOperationNotSupported, got %v", err)
		}
	})
}
