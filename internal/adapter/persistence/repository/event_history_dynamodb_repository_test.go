package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"donations_core/internal/domain/entities"
)

func TestEventHistoryDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEventHistoryDynamoRepository(newFakeDynamo())
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	events := []string{entities.EventPaymentPending, entities.EventPaymentProcessing, entities.EventPaymentSucceeded}
	for i, ev := range events {
		err := repo.Append(ctx, entities.HistoryEntry{
			ID:         "h-" + ev,
			DonationID: "don-1",
			Event:      ev,
			Status:     "completed",
			Metadata:   json.RawMessage(`{"source":"sync"}`),
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}
	_ = repo.Append(ctx, entities.HistoryEntry{ID: "h-other", DonationID: "don-2", Event: entities.EventPaymentFailed, CreatedAt: base})

	t.Run("ascending", func(t *testing.T) {
		rows, err := repo.ListByDonationID(ctx, "don-1", entities.HistoryOrderAsc, 50)
		if err != nil || len(rows) != 3 {
			t.Fatalf("unexpected rows %+v err=%v", rows, err)
		}
		if rows[0].Event != entities.EventPaymentPending || rows[2].Event != entities.EventPaymentSucceeded {
			t.Fatalf("unexpected order %+v", rows)
		}
		if string(rows[0].Metadata) != `{"source":"sync"}` {
			t.Fatalf("unexpected metadata %s", rows[0].Metadata)
		}
	})

	t.Run("descending with limit", func(t *testing.T) {
		rows, err := repo.ListByDonationID(ctx, "don-1", entities.HistoryOrderDesc, 2)
		if err != nil || len(rows) != 2 {
			t.Fatalf("unexpected rows %+v err=%v", rows, err)
		}
		if rows[0].Event != entities.EventPaymentSucceeded {
			t.Fatalf("expected newest first, got %s", rows[0].Event)
		}
	})

	t.Run("unknown donation", func(t *testing.T) {
		rows, err := repo.ListByDonationID(ctx, "nope", entities.HistoryOrderAsc, 50)
		if err != nil || len(rows) != 0 {
			t.Fatalf("expected no rows, got %+v err=%v", rows, err)
		}
	})
}
