package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ICampaignUseCase exposes campaign operations.
//
//   - POST /campaigns             => Create()
//   - PATCH /campaigns/{id}/close => Close()
//   - completed / refunded events => ApplyDonation()

type ICampaignUseCase interface {
	Create(ctx context.Context, title string, goal decimal.Decimal, currency string) (entities.Campaign, error)
	GetByID(ctx context.Context, id string) (entities.Campaign, error)
	Close(ctx context.Context, id string) (entities.Campaign, error)
	ApplyDonation(ctx context.Context, campaignID string, delta decimal.Decimal) (entities.Campaign, error)
	OnDonationEvent(ctx context.Context, evt entities.DonationEvent) error
}

type CampaignUseCase struct {
	repo            interfaces.ICampaignRepository
	defaultCurrency string
}

var _ ICampaignUseCase = (*CampaignUseCase)(nil)

func NewCampaignUseCase(repo interfaces.ICampaignRepository, defaultCurrency string) *CampaignUseCase {
	if strings.TrimSpace(defaultCurrency) == "" {
		defaultCurrency = "USD"
	}
	return &CampaignUseCase{repo: repo, defaultCurrency: strings.ToUpper(defaultCurrency)}
}

func (u *CampaignUseCase) Create(ctx context.Context, title string, goal decimal.Decimal, currency string) (entities.Campaign, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > 200 {
		return entities.Campaign{}, ErrInvalidCampaignTitle
	}
	if !goal.IsPositive() {
		return entities.Campaign{}, ErrInvalidCampaignGoal
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = u.defaultCurrency
	}

	now := time.Now().UTC()
	c := entities.Campaign{
		ID:        uuid.NewString(),
		Title:     title,
		Goal:      goal.Round(2),
		Raised:    decimal.Zero,
		Currency:  currency,
		Status:    entities.CampaignStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, c)
}

func (u *CampaignUseCase) GetByID(ctx context.Context, id string) (entities.Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Campaign{}, ErrInvalidCampaignID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Campaign{}, err
	}
	if c.ID == "" {
		return entities.Campaign{}, ErrCampaignNotFound
	}
	return c, nil
}

func (u *CampaignUseCase) Close(ctx context.Context, id string) (entities.Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Campaign{}, ErrInvalidCampaignID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, entities.CampaignStatusClosed)
	if err != nil {
		return entities.Campaign{}, err
	}
	if updated.ID == "" {
		return entities.Campaign{}, ErrCampaignNotFound
	}
	return updated, nil
}

// ApplyDonation moves the raised total. Closed campaigns still accept
// adjustments so late refunds are reflected.
func (u *CampaignUseCase) ApplyDonation(ctx context.Context, campaignID string, delta decimal.Decimal) (entities.Campaign, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return entities.Campaign{}, ErrInvalidCampaignID
	}
	if delta.IsZero() {
		return u.GetByID(ctx, campaignID)
	}

	updated, err := u.repo.AddRaised(ctx, campaignID, delta)
	if err != nil {
		return entities.Campaign{}, err
	}
	if updated.ID == "" {
		return entities.Campaign{}, ErrCampaignNotFound
	}
	return updated, nil
}

// OnDonationEvent projects completed and refunded donations onto their campaign.
func (u *CampaignUseCase) OnDonationEvent(ctx context.Context, evt entities.DonationEvent) error {
	d := evt.Donation
	if d.CampaignID == "" {
		return nil
	}

	var delta decimal.Decimal
	switch evt.Kind {
	case entities.DonationEventCompleted:
		delta = d.Amount
	case entities.DonationEventRefunded:
		delta = d.Amount.Neg()
	default:
		return nil
	}

	c, err := u.ApplyDonation(ctx, d.CampaignID, delta)
	if err != nil {
		log.Printf("[donation][campaign] raised update failed campaign_id=%s donation_id=%s err=%v", d.CampaignID, d.ID, err)
		return err
	}
	log.Printf("[donation][campaign] raised updated campaign_id=%s donation_id=%s delta=%s raised=%s", c.ID, d.ID, delta.StringFixed(2), c.Raised.StringFixed(2))
	return nil
}
