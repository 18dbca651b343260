package interfaces

import (
	"context"
	"donations_core/internal/domain/entities"
)

// IEventPublisher dispatches typed donation lifecycle events.
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.DonationEvent)
}
