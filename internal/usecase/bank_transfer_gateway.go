package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// BankTransferGateway records the donation as pending and hands the donor a
// reference to quote on the transfer. Completion is a manual status change.
type BankTransferGateway struct {
	repo         interfaces.IDonationRepository
	lifecycle    *DonationLifecycle
	validator    *IntentValidator
	instructions string
	now          func() time.Time
}

var _ interfaces.IPaymentGateway = (*BankTransferGateway)(nil)

func NewBankTransferGateway(repo interfaces.IDonationRepository, lifecycle *DonationLifecycle, validator *IntentValidator, instructions string) *BankTransferGateway {
	return &BankTransferGateway{
		repo:         repo,
		lifecycle:    lifecycle,
		validator:    validator,
		instructions: instructions,
		now:          time.Now,
	}
}

func (g *BankTransferGateway) ID() entities.PaymentMethod { return entities.PaymentMethodBankTransfer }

func (g *BankTransferGateway) CreateIntent(ctx context.Context, in entities.DonationIntent) (entities.PaymentResult, error) {
	in, err := g.validator.Normalize(ctx, in)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	created, err := g.repo.Create(ctx, newDonation(in, entities.PaymentMethodBankTransfer))
	if err != nil {
		log.Printf("[donation][bank_transfer] donation create failed err=%v", err)
		return entities.PaymentResult{}, err
	}
	log.Printf("[donation][bank_transfer] donation created donation_id=%s amount=%s", created.ID, created.Amount.StringFixed(2))
	return g.ProcessPayment(ctx, in, created.ID)
}

// ProcessPayment issues the transfer reference. Calling it again for a
// donation that already has one returns the same reference.
func (g *BankTransferGateway) ProcessPayment(ctx context.Context, _ entities.DonationIntent, donationID string) (entities.PaymentResult, error) {
	d, err := loadDonationFor(ctx, g.repo, donationID, entities.PaymentMethodBankTransfer)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if d.Status != entities.DonationStatusPending {
		log.Printf("[donation][bank_transfer] donation not pending donation_id=%s status=%s", d.ID, d.Status)
		return entities.PaymentResult{DonationID: d.ID, Status: d.Status}, ErrInvalidStatusTransition
	}
	if d.TransactionID != "" {
		return g.result(d), nil
	}

	ref := g.reference()
	if err := g.repo.UpdateMeta(ctx, d.ID, entities.DonationMeta{TransactionID: ref}); err != nil {
		log.Printf("[donation][bank_transfer] reference store failed donation_id=%s err=%v", d.ID, err)
		return entities.PaymentResult{}, err
	}
	d.TransactionID = ref

	g.lifecycle.Record(ctx, d, TransitionInput{
		Event:         entities.EventPaymentPending,
		Note:          "Awaiting bank transfer " + ref,
		Source:        entities.SourceSync,
		Gateway:       entities.PaymentMethodBankTransfer,
		TransactionID: ref,
	})
	log.Printf("[donation][bank_transfer] awaiting transfer donation_id=%s reference=%s", d.ID, ref)
	return g.result(d), nil
}

func (g *BankTransferGateway) Capture(context.Context, string) (entities.PaymentResult, error) {
	return entities.PaymentResult{}, ErrOperationNotSupported
}

func (g *BankTransferGateway) result(d entities.Donation) entities.PaymentResult {
	return entities.PaymentResult{
		DonationID:    d.ID,
		TransactionID: d.TransactionID,
		Reference:     d.TransactionID,
		Status:        entities.DonationStatusPending,
		Instructions:  g.instructions,
		Message:       "Please use reference " + d.TransactionID + " on your transfer",
	}
}

// reference returns {8 uppercase hex}-{unix timestamp}.
func (g *BankTransferGateway) reference() string {
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%d", random, g.now().Unix())
}
