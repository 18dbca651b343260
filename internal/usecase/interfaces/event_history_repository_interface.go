package interfaces

import (
	"context"
	"donations_core/internal/domain/entities"
)

// IEventHistoryRepository is the append-only store behind the Event History Recorder.
type IEventHistoryRepository interface {
	Append(ctx context.Context, e entities.HistoryEntry) error
	ListByDonationID(ctx context.Context, donationID string, order entities.HistoryOrder, limit int) ([]entities.HistoryEntry, error)
}
