package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"donations_core/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func sampleDonation(id string) entities.Donation {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return entities.Donation{
		ID:            id,
		Amount:        decimal.RequireFromString("25.50"),
		Currency:      "USD",
		DonorName:     "Ada Lovelace",
		DonorEmail:    "ada@example.com",
		PaymentMethod: entities.PaymentMethodStripe,
		Status:        entities.DonationStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestDonationDynamoRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewDonationDynamoRepository(newFakeDynamo())

	if _, err := repo.Create(ctx, sampleDonation("don-1")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	t.Run("round trip", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "don-1")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !got.Amount.Equal(decimal.RequireFromString("25.5")) || got.Status != entities.DonationStatusPending {
			t.Fatalf("unexpected donation %+v", got)
		}
		if got.DonorEmail != "ada@example.com" || got.PaymentMethod != entities.PaymentMethodStripe || got.CreatedAt.IsZero() {
			t.Fatalf("unexpected donation %+v", got)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := repo.Create(ctx, sampleDonation("don-1"))
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			t.Fatalf("expected ConditionalCheckFailedException, got %v", err)
		}
	})

	t.Run("missing returns zero value", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero value, got %+v err=%v", got, err)
		}
	})
}

func TestDonationDynamoRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("allowed edge", func(t *testing.T) {
		repo := NewDonationDynamoRepository(newFakeDynamo())
		_, _ = repo.Create(ctx, sampleDonation("don-1"))

		changed, err := repo.UpdateStatus(ctx, "don-1", entities.DonationStatusCompleted)
		if err != nil || !changed {
			t.Fatalf("expected change, got changed=%v err=%v", changed, err)
		}
		got, _ := repo.GetByID(ctx, "don-1")
		if got.Status != entities.DonationStatusCompleted {
			t.Fatalf("expected completed, got %s", got.Status)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewDonationDynamoRepository(fake)
		_, _ = repo.Create(ctx, sampleDonation("don-1"))

		changed, err := repo.UpdateStatus(ctx, "don-1", entities.DonationStatusPending)
		if err != nil || changed {
			t.Fatalf("expected no-op, got changed=%v err=%v", changed, err)
		}
		if len(fake.updates) != 0 {
			t.Fatalf("expected no writes, got %d", len(fake.updates))
		}
	})

	t.Run("disallowed edge", func(t *testing.T) {
		repo := NewDonationDynamoRepository(newFakeDynamo())
		d := sampleDonation("don-1")
		d.Status = entities.DonationStatusFailed
		_, _ = repo.Create(ctx, d)

		_, err := repo.UpdateStatus(ctx, "don-1", entities.DonationStatusCompleted)
		if !errors.Is(err, entities.ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("missing donation", func(t *testing.T) {
		repo := NewDonationDynamoRepository(newFakeDynamo())
		changed, err := repo.UpdateStatus(ctx, "nope", entities.DonationStatusCompleted)
		if err != nil || changed {
			t.Fatalf("expected (false, nil), got changed=%v err=%v", changed, err)
		}
	})

	t.Run("lost race is retried", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewDonationDynamoRepository(fake)
		_, _ = repo.Create(ctx, sampleDonation("don-1"))
		fake.updateErrs = []error{&types.ConditionalCheckFailedException{Message: aws.String("race")}}

		changed, err := repo.UpdateStatus(ctx, "don-1", entities.DonationStatusProcessing)
		if err != nil || !changed {
			t.Fatalf("expected change after retry, got changed=%v err=%v", changed, err)
		}
		if len(fake.updates) != 2 {
			t.Fatalf("expected 2 attempts, got %d", len(fake.updates))
		}
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewDonationDynamoRepository(fake)
		_, _ = repo.Create(ctx, sampleDonation("don-1"))
		conflict := &types.ConditionalCheckFailedException{Message: aws.String("race")}
		fake.updateErrs = []error{conflict, conflict, conflict}

		if _, err := repo.UpdateStatus(ctx, "don-1", entities.DonationStatusProcessing); err == nil {
			t.Fatalf("expected error after %d conflicts", maxStatusUpdateAttempts)
		}
	})

	t.Run("store error", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := NewDonationDynamoRepository(fake)
		_, _ = repo.Create(ctx, sampleDonation("don-1"))
		fake.updateErrs = []error{errors.New("throttled")}

		if _, err := repo.UpdateStatus(ctx, "don-1", entities.DonationStatusProcessing); err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled, got %v", err)
		}
	})
}

func TestDonationDynamoRepository_MetaAndLookup(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	repo := NewDonationDynamoRepository(fake)
	_, _ = repo.Create(ctx, sampleDonation("don-1"))

	t.Run("empty meta writes nothing", func(t *testing.T) {
		if err := repo.UpdateMeta(ctx, "don-1", entities.DonationMeta{}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(fake.updates) != 0 {
			t.Fatalf("expected no writes, got %d", len(fake.updates))
		}
	})

	t.Run("partial meta keeps other fields", func(t *testing.T) {
		if err := repo.UpdateMeta(ctx, "don-1", entities.DonationMeta{TransactionID: "pi_1", RawPayload: []byte(`{"id":"pi_1"}`)}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if err := repo.UpdateMeta(ctx, "don-1", entities.DonationMeta{PaymentError: "card declined"}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		got, _ := repo.GetByID(ctx, "don-1")
		if got.TransactionID != "pi_1" || string(got.RawPayload) != `{"id":"pi_1"}` || got.PaymentError != "card declined" {
			t.Fatalf("unexpected donation %+v", got)
		}
	})

	t.Run("find by transaction id", func(t *testing.T) {
		got, err := repo.FindByTransactionID(ctx, "pi_1")
		if err != nil || got.ID != "don-1" {
			t.Fatalf("expected don-1, got %+v err=%v", got, err)
		}
		got, err = repo.FindByTransactionID(ctx, "pi_unknown")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero value, got %+v err=%v", got, err)
		}
		got, err = repo.FindByTransactionID(ctx, "")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero value for empty id, got %+v err=%v", got, err)
		}
	})

	t.Run("meta on missing donation", func(t *testing.T) {
		err := repo.UpdateMeta(ctx, "nope", entities.DonationMeta{TransactionID: "x"})
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			t.Fatalf("expected ConditionalCheckFailedException, got %v", err)
		}
	})
}
