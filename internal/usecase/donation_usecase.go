package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IDonationUseCase exposes the read side of donations and routes payment
// operations to the gateway registered for a payment method.
type IDonationUseCase interface {
	CreateIntent(ctx context.Context, method entities.PaymentMethod, in entities.DonationIntent) (entities.PaymentResult, error)
	Capture(ctx context.Context, method entities.PaymentMethod, reference string) (entities.PaymentResult, error)
	ProcessPayment(ctx context.Context, method entities.PaymentMethod, in entities.DonationIntent, donationID string) (entities.PaymentResult, error)
	GetByID(ctx context.Context, id string) (entities.Donation, error)
	History(ctx context.Context, id string, order entities.HistoryOrder, limit int) ([]entities.HistoryEntry, error)
}

type DonationUseCase struct {
	registry *GatewayRegistry
	repo     interfaces.IDonationRepository
	history  IEventHistoryRecorder
}

var _ IDonationUseCase = (*DonationUseCase)(nil)

func NewDonationUseCase(registry *GatewayRegistry, repo interfaces.IDonationRepository, history IEventHistoryRecorder) *DonationUseCase {
	return &DonationUseCase{registry: registry, repo: repo, history: history}
}

func (u *DonationUseCase) CreateIntent(ctx context.Context, method entities.PaymentMethod, in entities.DonationIntent) (entities.PaymentResult, error) {
	g, err := u.registry.Get(method)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	in.PaymentMethod = g.ID()
	return g.CreateIntent(ctx, in)
}

func (u *DonationUseCase) Capture(ctx context.Context, method entities.PaymentMethod, reference string) (entities.PaymentResult, error) {
	g, err := u.registry.Get(method)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.PaymentResult{}, ErrInvalidReference
	}
	return g.Capture(ctx, reference)
}

func (u *DonationUseCase) ProcessPayment(ctx context.Context, method entities.PaymentMethod, in entities.DonationIntent, donationID string) (entities.PaymentResult, error) {
	g, err := u.registry.Get(method)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	donationID = strings.TrimSpace(donationID)
	if donationID == "" {
		return entities.PaymentResult{}, ErrInvalidDonationID
	}
	in.PaymentMethod = g.ID()
	return g.ProcessPayment(ctx, in, donationID)
}

func (u *DonationUseCase) GetByID(ctx context.Context, id string) (entities.Donation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Donation{}, ErrInvalidDonationID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Donation{}, err
	}
	if d.ID == "" {
		return entities.Donation{}, ErrDonationNotFound
	}
	return d, nil
}

func (u *DonationUseCase) History(ctx context.Context, id string, order entities.HistoryOrder, limit int) ([]entities.HistoryEntry, error) {
	if _, err := u.GetByID(ctx, id); err != nil && !(errors.Is(err, ErrDonationNotFound) && strings.TrimSpace(id) == entities.UnassociatedDonationID) {
		return nil, err
	}
	return u.history.GetByDonation(ctx, id, order, limit)
}

// newDonation builds the pending record for a validated intent.
func newDonation(in entities.DonationIntent, method entities.PaymentMethod) entities.Donation {
	now := time.Now().UTC()
	return entities.Donation{
		ID:            uuid.NewString(),
		Amount:        in.Amount.Round(2),
		Currency:      in.Currency,
		DonorName:     in.DonorName,
		DonorEmail:    in.DonorEmail,
		CampaignID:    in.CampaignID,
		PaymentMethod: method,
		Status:        entities.DonationStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// loadDonationFor fetches a donation and checks it belongs to the gateway.
func loadDonationFor(ctx context.Context, repo interfaces.IDonationRepository, id string, method entities.PaymentMethod) (entities.Donation, error) {
	d, err := repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Donation{}, err
	}
	if d.ID == "" {
		return entities.Donation{}, ErrDonationNotFound
	}
	if d.PaymentMethod != method {
		log.Printf("[donation][%s] payment method mismatch donation_id=%s method=%s", method, d.ID, d.PaymentMethod)
		return entities.Donation{}, ErrDonationMethodMismatch
	}
	return d, nil
}
