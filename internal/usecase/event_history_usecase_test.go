package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"donations_core/internal/domain/entities"
	mock_interfaces "donations_core/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEventHistoryRecorder_Add(t *testing.T) {
	t.Run("truncates and encodes metadata", func(t *testing.T) {
		repo := &memHistoryRepo{}
		r := NewEventHistoryRecorder(repo)

		err := r.Add(context.Background(), "don-1", strings.Repeat("e", 80), strings.Repeat("s", 30), "note", map[string]any{"gateway": "stripe"})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}

		if len(repo.entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(repo.entries))
		}
		e := repo.entries[0]
		if len(e.Event) != 50 || len(e.Status) != 20 {
			t.Fatalf("unexpected truncation: event=%d status=%d", len(e.Event), len(e.Status))
		}
		var meta map[string]string
		if err := json.Unmarshal(e.Metadata, &meta); err != nil || meta["gateway"] != "stripe" {
			t.Fatalf("unexpected metadata: %s err=%v", e.Metadata, err)
		}
		if e.ID == "" || e.CreatedAt.IsZero() {
			t.Fatalf("expected id and timestamp")
		}
	})

	t.Run("empty donation id is unassociated", func(t *testing.T) {
		repo := &memHistoryRepo{}
		r := NewEventHistoryRecorder(repo)

		_ = r.Add(context.Background(), " ", entities.EventPaymentFailed, "failed", "", nil)
		if repo.entries[0].DonationID != entities.UnassociatedDonationID {
			t.Fatalf("expected unassociated id, got %q", repo.entries[0].DonationID)
		}
		if repo.entries[0].Metadata != nil {
			t.Fatalf("expected no metadata")
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEventHistoryRepository(ctrl)
		r := NewEventHistoryRecorder(repo)

		repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		if err := r.Add(context.Background(), "don-1", "x", "y", "", nil); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEventHistoryRecorder_GetByDonation(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		r := NewEventHistoryRecorder(nil)
		if _, err := r.GetByDonation(context.Background(), "", "", 0); !errors.Is(err, ErrInvalidDonationID) {
			t.Fatalf("expected ErrInvalidDonationID, got %v", err)
		}
	})

	t.Run("defaults to newest first and limit 50", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEventHistoryRepository(ctrl)
		r := NewEventHistoryRecorder(repo)

		repo.EXPECT().ListByDonationID(gomock.Any(), "don-1", entities.HistoryOrderDesc, 50).Return(nil, nil)

		if _, err := r.GetByDonation(context.Background(), "don-1", "", 0); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("ascending order and capped limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEventHistoryRepository(ctrl)
		r := NewEventHistoryRecorder(repo)

		repo.EXPECT().ListByDonationID(gomock.Any(), "don-1", entities.HistoryOrderAsc, 500).Return(nil, nil)

		if _, err := r.GetByDonation(context.Background(), "don-1", "asc", 10000); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("returns entries in requested order", func(t *testing.T) {
		repo := &memHistoryRepo{}
		r := NewEventHistoryRecorder(repo)
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		step := 0
		r.now = func() time.Time { step++; return base.Add(time.Duration(step) * time.Second) }

		_ = r.Add(context.Background(), "don-1", "first", "pending", "", nil)
		_ = r.Add(context.Background(), "don-1", "second", "completed", "", nil)

		out, err := r.GetByDonation(context.Background(), "don-1", entities.HistoryOrderDesc, 0)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(out) != 2 || out[0].Event != "second" {
			t.Fatalf("expected newest first, got %+v", out)
		}
	})
}
