package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"
)

// MercadoPagoGateway charges a card token through the payments API and maps
// the returned status onto the donation.
type MercadoPagoGateway struct {
	client    interfaces.IMercadoPagoClient
	repo      interfaces.IDonationRepository
	lifecycle *DonationLifecycle
	validator *IntentValidator
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(client interfaces.IMercadoPagoClient, repo interfaces.IDonationRepository, lifecycle *DonationLifecycle, validator *IntentValidator) *MercadoPagoGateway {
	return &MercadoPagoGateway{client: client, repo: repo, lifecycle: lifecycle, validator: validator}
}

func (g *MercadoPagoGateway) ID() entities.PaymentMethod { return entities.PaymentMethodMercadoPago }

func (g *MercadoPagoGateway) CreateIntent(ctx context.Context, in entities.DonationIntent) (entities.PaymentResult, error) {
	if g.client == nil {
		return entities.PaymentResult{}, ErrProviderNotConfigured
	}
	in, err := g.validator.Normalize(ctx, in)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if strings.TrimSpace(in.PaymentMethodID) == "" {
		return entities.PaymentResult{}, &entities.ValidationError{Field: "payment_method_id", Message: "payment_method_id is required"}
	}

	created, err := g.repo.Create(ctx, newDonation(in, entities.PaymentMethodMercadoPago))
	if err != nil {
		log.Printf("[donation][mercadopago] donation create failed err=%v", err)
		return entities.PaymentResult{}, err
	}
	return g.ProcessPayment(ctx, in, created.ID)
}

func (g *MercadoPagoGateway) ProcessPayment(ctx context.Context, in entities.DonationIntent, donationID string) (entities.PaymentResult, error) {
	if g.client == nil {
		return entities.PaymentResult{}, ErrProviderNotConfigured
	}
	d, err := loadDonationFor(ctx, g.repo, donationID, entities.PaymentMethodMercadoPago)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if d.Status == entities.DonationStatusCompleted {
		return completedResult(d), nil
	}
	if d.Status.IsTerminal() {
		return entities.PaymentResult{DonationID: d.ID, Status: d.Status}, ErrInvalidStatusTransition
	}

	log.Printf("[donation][mercadopago] create payment start donation_id=%s amount=%s", d.ID, d.Amount.StringFixed(2))
	p, err := g.client.CreatePayment(ctx, mercadoPagoRequest(d, in))
	if err != nil {
		err = mapMercadoPagoError(err)
		msg := providerMessage(err)
		log.Printf("[donation][mercadopago] create payment failed donation_id=%s err=%v", d.ID, err)
		_, _, _ = g.lifecycle.Transition(ctx, d.ID, entities.DonationStatusFailed, TransitionInput{
			Event:        entities.EventPaymentFailed,
			Note:         msg,
			Source:       entities.SourceSync,
			Gateway:      entities.PaymentMethodMercadoPago,
			PaymentError: msg,
		})
		return entities.PaymentResult{DonationID: d.ID, Status: entities.DonationStatusFailed, Message: msg}, err
	}
	log.Printf("[donation][mercadopago] create payment success donation_id=%s provider_payment_id=%s provider_status=%s", d.ID, p.ID, p.Status)

	if err := g.repo.UpdateMeta(ctx, d.ID, entities.DonationMeta{TransactionID: p.ID, RawPayload: p.Raw}); err != nil {
		log.Printf("[donation][mercadopago] transaction id store failed donation_id=%s err=%v", d.ID, err)
	}
	return g.apply(ctx, d.ID, p)
}

// Capture re-reads a payment and re-applies its status.
func (g *MercadoPagoGateway) Capture(ctx context.Context, reference string) (entities.PaymentResult, error) {
	if g.client == nil {
		return entities.PaymentResult{}, ErrProviderNotConfigured
	}
	paymentID := strings.TrimSpace(reference)
	if paymentID == "" {
		return entities.PaymentResult{}, ErrInvalidReference
	}

	p, err := g.client.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[donation][mercadopago] get payment failed provider_payment_id=%s err=%v", paymentID, err)
		return entities.PaymentResult{}, mapMercadoPagoError(err)
	}
	d, err := g.repo.FindByTransactionID(ctx, paymentID)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if d.ID == "" && p.ExternalReference != "" {
		// The payment may have been created without its id being stored.
		d, err = loadDonationFor(ctx, g.repo, p.ExternalReference, entities.PaymentMethodMercadoPago)
		if err != nil && !errors.Is(err, ErrDonationNotFound) {
			return entities.PaymentResult{}, err
		}
	}
	if d.ID == "" {
		return entities.PaymentResult{}, ErrDonationNotFound
	}
	return g.apply(ctx, d.ID, p)
}

func (g *MercadoPagoGateway) apply(ctx context.Context, donationID string, p interfaces.MercadoPagoPayment) (entities.PaymentResult, error) {
	paymentID := p.ID
	in := TransitionInput{
		Source:        entities.SourceSync,
		Gateway:       entities.PaymentMethodMercadoPago,
		TransactionID: paymentID,
		RawPayload:    p.Raw,
		Metadata:      map[string]any{"provider_status": p.Status, "status_detail": p.StatusDetail},
	}

	var to entities.DonationStatus
	var reason error
	switch strings.ToLower(p.Status) {
	case "approved":
		to, in.Event, in.Note = entities.DonationStatusCompleted, entities.EventPaymentSucceeded, "Payment completed via Mercado Pago"
	case "in_process", "pending", "authorized":
		to, in.Event, in.Note = entities.DonationStatusProcessing, entities.EventPaymentProcessing, "Payment is processing"
	case "cancelled":
		to, in.Event, in.Note = entities.DonationStatusCancelled, entities.EventPaymentCancelled, ErrPaymentCanceled.Error()
		reason = ErrPaymentCanceled
	case "refunded", "charged_back":
		to, in.Event, in.Note = entities.DonationStatusRefunded, entities.EventPaymentRefunded, "Payment refunded"
	case "rejected":
		to, in.Event, in.Note = entities.DonationStatusFailed, entities.EventPaymentFailed, ErrPaymentDeclined.Error()
		reason = ErrPaymentDeclined
	default:
		to, in.Event, in.Note = entities.DonationStatusFailed, entities.EventPaymentFailed, ErrPaymentNotProcessed.Error()
		reason = ErrPaymentNotProcessed
	}
	if reason != nil {
		in.PaymentError = in.Note
	}

	d, _, err := g.lifecycle.Transition(ctx, donationID, to, in)
	if err != nil && !errors.Is(err, ErrInvalidStatusTransition) {
		return entities.PaymentResult{}, err
	}

	switch d.Status {
	case entities.DonationStatusCompleted:
		res := completedResult(d)
		res.TransactionID = paymentID
		res.Reference = paymentID
		return res, nil
	case entities.DonationStatusProcessing:
		return entities.PaymentResult{DonationID: d.ID, TransactionID: paymentID, Reference: paymentID, Status: d.Status, Processing: true}, nil
	}
	if reason == nil {
		return entities.PaymentResult{DonationID: d.ID, TransactionID: paymentID, Reference: paymentID, Status: d.Status}, nil
	}
	return entities.PaymentResult{DonationID: d.ID, TransactionID: paymentID, Status: d.Status, Message: reason.Error()},
		&PaymentFailedError{DonationID: d.ID, Reason: reason}
}

func mercadoPagoRequest(d entities.Donation, in entities.DonationIntent) interfaces.MercadoPagoPaymentRequest {
	return interfaces.MercadoPagoPaymentRequest{
		DonationID:      d.ID,
		Amount:          d.Amount,
		CardToken:       strings.TrimSpace(in.PaymentToken),
		PaymentMethodID: strings.TrimSpace(in.PaymentMethodID),
		Description:     fmt.Sprintf("Donation %s", d.ID),
		PayerEmail:      d.DonorEmail,
	}
}

// mapMercadoPagoError turns the SDK's text errors into a ProviderAPIError.
func mapMercadoPagoError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *entities.ProviderAPIError
	if errors.As(err, &apiErr) {
		return err
	}
	out := &entities.ProviderAPIError{Provider: entities.PaymentMethodMercadoPago, HTTPStatus: http.StatusBadGateway, Err: err}
	switch {
	case isGatewayCustomerNotFound(err):
		out.HTTPStatus, out.Code, out.Message = http.StatusNotFound, "2002", "customer not found"
	case isGatewayInvalidUsers(err):
		out.HTTPStatus, out.Code, out.Message = http.StatusBadRequest, "2034", "invalid users involved"
	case isGatewayUnauthorized(err):
		out.HTTPStatus, out.Code = http.StatusUnauthorized, "unauthorized"
	case isGatewayBadRequest(err):
		out.HTTPStatus, out.Code, out.Message = http.StatusBadRequest, "bad_request", "payment details were rejected"
	}
	return out
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
