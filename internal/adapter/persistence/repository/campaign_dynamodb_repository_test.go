package repository

import (
	"context"
	"testing"
	"time"

	"donations_core/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestCampaignDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignDynamoRepository(newFakeDynamo())
	now := time.Now().UTC()

	_, err := repo.Create(ctx, entities.Campaign{
		ID:        "c-1",
		Title:     "Roof repair",
		Goal:      decimal.NewFromInt(5000),
		Raised:    decimal.Zero,
		Currency:  "USD",
		Status:    entities.CampaignStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	t.Run("get", func(t *testing.T) {
		c, err := repo.GetByID(ctx, "c-1")
		if err != nil || c.Title != "Roof repair" || !c.Goal.Equal(decimal.NewFromInt(5000)) {
			t.Fatalf("unexpected campaign %+v err=%v", c, err)
		}
	})

	t.Run("add and subtract raised", func(t *testing.T) {
		if _, err := repo.AddRaised(ctx, "c-1", decimal.RequireFromString("25.50")); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		c, err := repo.AddRaised(ctx, "c-1", decimal.RequireFromString("-10"))
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !c.Raised.Equal(decimal.RequireFromString("15.5")) {
			t.Fatalf("expected raised 15.5, got %s", c.Raised)
		}
	})

	t.Run("close", func(t *testing.T) {
		c, err := repo.UpdateStatusByID(ctx, "c-1", entities.CampaignStatusClosed)
		if err != nil || c.Status != entities.CampaignStatusClosed {
			t.Fatalf("unexpected campaign %+v err=%v", c, err)
		}
	})

	t.Run("missing campaign returns zero value", func(t *testing.T) {
		c, err := repo.AddRaised(ctx, "nope", decimal.NewFromInt(1))
		if err != nil || c.ID != "" {
			t.Fatalf("expected zero value, got %+v err=%v", c, err)
		}
	})
}
