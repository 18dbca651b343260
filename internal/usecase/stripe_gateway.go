package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Stripe PaymentIntent statuses.
const (
	stripeStatusSucceeded             = "succeeded"
	stripeStatusRequiresAction        = "requires_action"
	stripeStatusRequiresSourceAction  = "requires_source_action"
	stripeStatusRequiresPaymentMethod = "requires_payment_method"
	stripeStatusRequiresSource        = "requires_source"
	stripeStatusProcessing            = "processing"
	stripeStatusCanceled              = "canceled"
)

var zeroDecimalCurrencies = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true, "JPY": true, "KMF": true, "KRW": true, "MGA": true,
	"PYG": true, "RWF": true, "UGX": true, "VND": true, "VUV": true, "XAF": true, "XOF": true, "XPF": true,
}

// StripeGateway confirms PaymentIntents synchronously and finishes 3D Secure
// flows through Capture(payment_intent_id).
type StripeGateway struct {
	client    interfaces.IStripeClient
	repo      interfaces.IDonationRepository
	lifecycle *DonationLifecycle
	validator *IntentValidator
	returnURL string
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(client interfaces.IStripeClient, repo interfaces.IDonationRepository, lifecycle *DonationLifecycle, validator *IntentValidator, returnURL string) *StripeGateway {
	return &StripeGateway{client: client, repo: repo, lifecycle: lifecycle, validator: validator, returnURL: returnURL}
}

func (g *StripeGateway) ID() entities.PaymentMethod { return entities.PaymentMethodStripe }

func (g *StripeGateway) CreateIntent(ctx context.Context, in entities.DonationIntent) (entities.PaymentResult, error) {
	if g.client == nil {
		return entities.PaymentResult{}, ErrProviderNotConfigured
	}
	in, err := g.validator.Normalize(ctx, in)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if stripePaymentMethod(in) == "" {
		return entities.PaymentResult{}, &entities.ValidationError{Field: "payment_token", Message: "stripe payment method is required"}
	}

	created, err := g.repo.Create(ctx, newDonation(in, entities.PaymentMethodStripe))
	if err != nil {
		log.Printf("[donation][stripe] donation create failed err=%v", err)
		return entities.PaymentResult{}, err
	}
	log.Printf("[donation][stripe] donation created donation_id=%s amount=%s currency=%s", created.ID, created.Amount.StringFixed(2), created.Currency)

	return g.ProcessPayment(ctx, in, created.ID)
}

func (g *StripeGateway) ProcessPayment(ctx context.Context, in entities.DonationIntent, donationID string) (entities.PaymentResult, error) {
	if g.client == nil {
		return entities.PaymentResult{}, ErrProviderNotConfigured
	}
	d, err := loadDonationFor(ctx, g.repo, donationID, entities.PaymentMethodStripe)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if d.Status == entities.DonationStatusCompleted {
		log.Printf("[donation][stripe] already completed donation_id=%s", d.ID)
		return completedResult(d), nil
	}
	if d.Status.IsTerminal() {
		return entities.PaymentResult{DonationID: d.ID, Status: d.Status}, ErrInvalidStatusTransition
	}
	pm := stripePaymentMethod(in)
	if pm == "" {
		return entities.PaymentResult{}, &entities.ValidationError{Field: "payment_token", Message: "stripe payment method is required"}
	}

	returnURL := firstNonEmpty(in.ReturnURL, g.returnURL)
	req := interfaces.StripeIntentRequest{
		AmountMinor:     toMinorUnits(d.Amount, d.Currency),
		Currency:        strings.ToLower(d.Currency),
		PaymentMethodID: pm,
		ReturnURL:       returnURL,
		Description:     "Donation " + d.ID,
		ReceiptEmail:    d.DonorEmail,
		Metadata:        map[string]string{"donation_id": d.ID, "campaign_id": d.CampaignID},
		IdempotencyKey:  "donation-" + d.ID,
	}

	log.Printf("[donation][stripe] create intent start donation_id=%s amount_minor=%d", d.ID, req.AmountMinor)
	intent, err := g.client.CreateAndConfirmIntent(ctx, req)
	if err != nil {
		log.Printf("[donation][stripe] create intent failed donation_id=%s err=%v", d.ID, err)
		if outcomeUnknown(err) {
			// Stripe may still confirm the intent; its webhook carries metadata.donation_id.
			_, _, _ = g.lifecycle.Transition(ctx, d.ID, entities.DonationStatusProcessing, TransitionInput{
				Event:   entities.EventPaymentProcessing,
				Note:    "Payment outcome unknown, awaiting provider confirmation",
				Source:  entities.SourceSync,
				Gateway: entities.PaymentMethodStripe,
			})
			return entities.PaymentResult{DonationID: d.ID, Status: entities.DonationStatusProcessing, Processing: true, Message: providerMessage(err)}, err
		}
		msg := providerMessage(err)
		_, _, _ = g.lifecycle.Transition(ctx, d.ID, entities.DonationStatusFailed, TransitionInput{
			Event:        entities.EventPaymentFailed,
			Note:         msg,
			Source:       entities.SourceSync,
			Gateway:      entities.PaymentMethodStripe,
			PaymentError: msg,
		})
		return entities.PaymentResult{DonationID: d.ID, Status: entities.DonationStatusFailed, Message: msg}, err
	}
	log.Printf("[donation][stripe] create intent success donation_id=%s payment_intent=%s status=%s", d.ID, intent.ID, intent.Status)

	// Persist the reference first so a webhook racing this request can find the donation.
	if err := g.repo.UpdateMeta(ctx, d.ID, entities.DonationMeta{TransactionID: intent.ID, RawPayload: intent.Raw}); err != nil {
		log.Printf("[donation][stripe] transaction id store failed donation_id=%s err=%v", d.ID, err)
	}
	return g.applyIntent(ctx, d.ID, intent)
}

// Capture finishes a payment after 3D Secure. Re-running it for a completed
// donation returns success without new history.
func (g *StripeGateway) Capture(ctx context.Context, reference string) (entities.PaymentResult, error) {
	if g.client == nil {
		return entities.PaymentResult{}, ErrProviderNotConfigured
	}
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.PaymentResult{}, ErrInvalidReference
	}

	intent, err := g.client.RetrieveIntent(ctx, reference)
	if err != nil {
		log.Printf("[donation][stripe] retrieve intent failed payment_intent=%s err=%v", reference, err)
		return entities.PaymentResult{}, err
	}
	d, err := g.repo.FindByTransactionID(ctx, intent.ID)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if d.ID == "" {
		log.Printf("[donation][stripe] no donation for payment_intent=%s", intent.ID)
		return entities.PaymentResult{}, ErrDonationNotFound
	}
	log.Printf("[donation][stripe] confirm start donation_id=%s payment_intent=%s status=%s", d.ID, intent.ID, intent.Status)
	return g.applyIntent(ctx, d.ID, intent)
}

func (g *StripeGateway) applyIntent(ctx context.Context, donationID string, intent interfaces.StripeIntent) (entities.PaymentResult, error) {
	in := TransitionInput{
		Source:        entities.SourceSync,
		Gateway:       entities.PaymentMethodStripe,
		TransactionID: intent.ID,
		RawPayload:    intent.Raw,
		Metadata:      map[string]any{"provider_status": intent.Status},
	}

	switch intent.Status {
	case stripeStatusSucceeded:
		in.Event = entities.EventPaymentSucceeded
		in.Note = "Payment completed via Stripe"
		d, err := g.transition(ctx, donationID, entities.DonationStatusCompleted, in)
		if err != nil {
			return entities.PaymentResult{}, err
		}
		if d.Status != entities.DonationStatusCompleted {
			return entities.PaymentResult{DonationID: d.ID, TransactionID: intent.ID, Status: d.Status}, ErrInvalidStatusTransition
		}
		return completedResult(d), nil

	case stripeStatusRequiresAction, stripeStatusRequiresSourceAction:
		in.Event = entities.EventPaymentRequiresAction
		in.Note = "Additional authentication required"
		d, err := g.transition(ctx, donationID, entities.DonationStatusProcessing, in)
		if err != nil {
			return entities.PaymentResult{}, err
		}
		return entities.PaymentResult{
			DonationID:     d.ID,
			TransactionID:  intent.ID,
			Reference:      intent.ID,
			Status:         d.Status,
			RequiresAction: true,
			ClientSecret:   intent.ClientSecret,
		}, nil

	case stripeStatusProcessing:
		in.Event = entities.EventPaymentProcessing
		in.Note = "Payment is processing"
		d, err := g.transition(ctx, donationID, entities.DonationStatusProcessing, in)
		if err != nil {
			return entities.PaymentResult{}, err
		}
		return entities.PaymentResult{DonationID: d.ID, TransactionID: intent.ID, Reference: intent.ID, Status: d.Status, Processing: true}, nil

	case stripeStatusRequiresPaymentMethod, stripeStatusRequiresSource:
		return g.fail(ctx, donationID, intent, in, ErrPaymentDeclined)
	case stripeStatusCanceled:
		return g.fail(ctx, donationID, intent, in, ErrPaymentCanceled)
	default:
		return g.fail(ctx, donationID, intent, in, ErrPaymentNotProcessed)
	}
}

func (g *StripeGateway) fail(ctx context.Context, donationID string, intent interfaces.StripeIntent, in TransitionInput, reason error) (entities.PaymentResult, error) {
	msg := firstNonEmpty(intent.LastError, reason.Error())
	in.Event = entities.EventPaymentFailed
	in.Note = msg
	in.PaymentError = msg
	d, err := g.transition(ctx, donationID, entities.DonationStatusFailed, in)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if d.Status == entities.DonationStatusCompleted {
		// A webhook already settled it; the late failure report is stale.
		return completedResult(d), nil
	}
	return entities.PaymentResult{DonationID: d.ID, TransactionID: intent.ID, Status: d.Status, Message: msg},
		&PaymentFailedError{DonationID: d.ID, Reason: reason, Message: intent.LastError}
}

// transition swallows state errors: the returned donation carries whatever
// status won.
func (g *StripeGateway) transition(ctx context.Context, donationID string, to entities.DonationStatus, in TransitionInput) (entities.Donation, error) {
	d, _, err := g.lifecycle.Transition(ctx, donationID, to, in)
	if err != nil && !errors.Is(err, ErrInvalidStatusTransition) {
		return entities.Donation{}, err
	}
	return d, nil
}

func stripePaymentMethod(in entities.DonationIntent) string {
	return firstNonEmpty(strings.TrimSpace(in.PaymentToken), strings.TrimSpace(in.PaymentMethodID))
}

func completedResult(d entities.Donation) entities.PaymentResult {
	return entities.PaymentResult{
		DonationID:    d.ID,
		TransactionID: d.TransactionID,
		Reference:     d.TransactionID,
		Status:        entities.DonationStatusCompleted,
		Message:       "Thank you for your donation",
	}
}

// toMinorUnits converts an amount to the provider's smallest currency unit.
func toMinorUnits(amount decimal.Decimal, currency string) int64 {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return amount.Round(0).IntPart()
	}
	return amount.Shift(2).Round(0).IntPart()
}

// outcomeUnknown reports a provider call that got no answer, so the charge
// may or may not exist.
func outcomeUnknown(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var apiErr *entities.ProviderAPIError
	return errors.As(err, &apiErr) && apiErr.HTTPStatus == 0 && apiErr.Code == ""
}

func providerMessage(err error) string {
	var apiErr *entities.ProviderAPIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return "Payment failed, please try again"
}
