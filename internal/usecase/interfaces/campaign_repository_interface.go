package interfaces

import (
	"context"
	"donations_core/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ICampaignRepository abstracts DynamoDB persistence for Campaign.
//
// The donation core must be able to:
//   - check a campaign accepts donations before contacting a provider
//   - close a campaign
//   - move the raised total when a donation completes or is refunded

type ICampaignRepository interface {
	Create(ctx context.Context, c entities.Campaign) (entities.Campaign, error)
	GetByID(ctx context.Context, id string) (entities.Campaign, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.CampaignStatus) (entities.Campaign, error)
	AddRaised(ctx context.Context, id string, delta decimal.Decimal) (entities.Campaign, error)
}
