package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	maxHistoryEventLen  = 50
	maxHistoryStatusLen = 20
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// IEventHistoryRecorder is the audit trail every gateway and the reconciler write to.
type IEventHistoryRecorder interface {
	Add(ctx context.Context, donationID, event, status, note string, metadata map[string]any) error
	GetByDonation(ctx context.Context, donationID string, order entities.HistoryOrder, limit int) ([]entities.HistoryEntry, error)
}

type EventHistoryRecorder struct {
	repo interfaces.IEventHistoryRepository
	now  func() time.Time
}

var _ IEventHistoryRecorder = (*EventHistoryRecorder)(nil)

func NewEventHistoryRecorder(repo interfaces.IEventHistoryRepository) *EventHistoryRecorder {
	return &EventHistoryRecorder{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (r *EventHistoryRecorder) Add(ctx context.Context, donationID, event, status, note string, metadata map[string]any) error {
	entry := entities.HistoryEntry{
		ID:         uuid.NewString(),
		DonationID: strings.TrimSpace(donationID),
		Event:      truncate(strings.TrimSpace(event), maxHistoryEventLen),
		Status:     truncate(strings.TrimSpace(status), maxHistoryStatusLen),
		Note:       note,
		CreatedAt:  r.now(),
	}
	if entry.DonationID == "" {
		entry.DonationID = entities.UnassociatedDonationID
	}
	if len(metadata) > 0 {
		b, err := json.Marshal(metadata)
		if err != nil {
			log.Printf("[donation][history] metadata marshal failed donation_id=%s event=%s err=%v", entry.DonationID, entry.Event, err)
		} else {
			entry.Metadata = b
		}
	}

	if err := r.repo.Append(ctx, entry); err != nil {
		log.Printf("[donation][history] append failed donation_id=%s event=%s err=%v", entry.DonationID, entry.Event, err)
		return err
	}
	return nil
}

func (r *EventHistoryRecorder) GetByDonation(ctx context.Context, donationID string, order entities.HistoryOrder, limit int) ([]entities.HistoryEntry, error) {
	donationID = strings.TrimSpace(donationID)
	if donationID == "" {
		return nil, ErrInvalidDonationID
	}
	switch strings.ToUpper(string(order)) {
	case string(entities.HistoryOrderAsc):
		order = entities.HistoryOrderAsc
	default:
		order = entities.HistoryOrderDesc
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return r.repo.ListByDonationID(ctx, donationID, order, limit)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
