package interfaces

import (
	"context"
	"donations_core/internal/domain/entities"
)

// IDonationRepository abstracts the Donation Store.
//
// Lookups return a zero-value Donation (empty ID) when nothing matches.
// UpdateStatus is a compare-and-swap on the current status:
//   - same status        -> (false, nil)
//   - disallowed edge    -> (false, entities.ErrInvalidStatusTransition)
//   - lost a race        -> re-evaluated against the winner's status

type IDonationRepository interface {
	Create(ctx context.Context, d entities.Donation) (entities.Donation, error)
	GetByID(ctx context.Context, id string) (entities.Donation, error)
	UpdateStatus(ctx context.Context, id string, status entities.DonationStatus) (bool, error)
	UpdateMeta(ctx context.Context, id string, meta entities.DonationMeta) error
	FindByTransactionID(ctx context.Context, transactionID string) (entities.Donation, error)
}
