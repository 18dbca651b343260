package usecase

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const paypalStatusCompleted = "COMPLETED"

// PayPalGateway runs the two-phase Orders v2 flow: CreateIntent opens an
// order and remembers the intent; Capture consumes that association once and
// only then materializes the donation.
type PayPalGateway struct {
	client    interfaces.IPayPalClient
	tokens    IAccessTokenCache
	orders    *PendingOrderStore
	repo      interfaces.IDonationRepository
	lifecycle *DonationLifecycle
	history   IEventHistoryRecorder
	validator *IntentValidator
	returnURL string
	cancelURL string
}

var _ interfaces.IPaymentGateway = (*PayPalGateway)(nil)

type PayPalGatewayDeps struct {
	Client    interfaces.IPayPalClient
	Tokens    IAccessTokenCache
	Orders    *PendingOrderStore
	Repo      interfaces.IDonationRepository
	Lifecycle *DonationLifecycle
	History   IEventHistoryRecorder
	Validator *IntentValidator
	ReturnURL string
	CancelURL string
}

func NewPayPalGateway(d PayPalGatewayDeps) *PayPalGateway {
	return &PayPalGateway{
		client:    d.Client,
		tokens:    d.Tokens,
		orders:    d.Orders,
		repo:      d.Repo,
		lifecycle: d.Lifecycle,
		history:   d.History,
		validator: d.Validator,
		returnURL: d.ReturnURL,
		cancelURL: d.CancelURL,
	}
}

func (g *PayPalGateway) ID() entities.PaymentMethod { return entities.PaymentMethodPayPal }

func (g *PayPalGateway) CreateIntent(ctx context.Context, in entities.DonationIntent) (entities.PaymentResult, error) {
	in, err := g.validator.Normalize(ctx, in)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if g.client == nil {
		return entities.PaymentResult{}, ErrProviderNotConfigured
	}

	token, err := g.token(ctx)
	if err != nil {
		return entities.PaymentResult{}, err
	}

	req := interfaces.PayPalOrderRequest{
		Amount:      in.Amount.StringFixed(2),
		Currency:    in.Currency,
		Description: orderDescription(in),
		CustomID:    in.CampaignID,
		ReturnURL:   firstNonEmpty(in.ReturnURL, g.returnURL),
		CancelURL:   g.cancelURL,
		RequestID:   uuid.NewString(),
	}
	log.Printf("[donation][paypal] create order start amount=%s currency=%s", req.Amount, req.Currency)
	order, err := g.client.CreateOrder(ctx, token, req)
	if err != nil {
		g.invalidateOn401(ctx, err)
		log.Printf("[donation][paypal] create order failed err=%v", err)
		return entities.PaymentResult{Message: providerMessage(err)}, err
	}
	log.Printf("[donation][paypal] create order success order_id=%s status=%s", order.ID, order.Status)

	pending := entities.PendingOrder{
		Provider:  entities.PaymentMethodPayPal,
		OrderID:   order.ID,
		Intent:    in,
		CreatedAt: time.Now().UTC(),
	}
	if err := g.orders.Save(ctx, pending); err != nil {
		log.Printf("[donation][paypal] pending order save failed order_id=%s err=%v", order.ID, err)
		return entities.PaymentResult{}, err
	}

	if g.history != nil {
		_ = g.history.Add(ctx, entities.UnassociatedDonationID, entities.EventOrderCreated, string(entities.DonationStatusPending),
			"PayPal order created", map[string]any{"gateway": string(entities.PaymentMethodPayPal), "order_id": order.ID, "source": entities.SourceSync})
	}

	return entities.PaymentResult{
		Reference:   order.ID,
		Status:      entities.DonationStatusPending,
		ApprovalURL: order.ApprovalURL,
	}, nil
}

// Capture finalizes an approved order. The pending association is consumed
// up front so concurrent captures of one order cannot both run. It is
// restored when no money moved (token failure) and kept, with the capture
// id, when the provider captured but the donation could not be stored.
func (g *PayPalGateway) Capture(ctx context.Context, reference string) (entities.PaymentResult, error) {
	orderID := strings.TrimSpace(reference)
	if orderID == "" {
		return entities.PaymentResult{}, ErrInvalidReference
	}
	if g.client == nil {
		return entities.PaymentResult{}, ErrProviderNotConfigured
	}

	pending, err := g.orders.Take(ctx, entities.PaymentMethodPayPal, orderID)
	if err != nil {
		log.Printf("[donation][paypal] capture without pending order order_id=%s err=%v", orderID, err)
		return entities.PaymentResult{}, err
	}

	var capture interfaces.PayPalCapture
	if pending.CaptureID != "" {
		log.Printf("[donation][paypal] capture resume order_id=%s capture_id=%s", orderID, pending.CaptureID)
		capture = interfaces.PayPalCapture{
			OrderID:       orderID,
			Status:        paypalStatusCompleted,
			CaptureID:     pending.CaptureID,
			CaptureStatus: paypalStatusCompleted,
			Raw:           pending.CaptureRaw,
		}
	} else {
		token, err := g.token(ctx)
		if err != nil {
			g.restoreOrder(ctx, pending)
			return entities.PaymentResult{}, err
		}

		log.Printf("[donation][paypal] capture start order_id=%s", orderID)
		capture, err = g.client.CaptureOrder(ctx, token, orderID)
		if err != nil {
			g.invalidateOn401(ctx, err)
			msg := providerMessage(err)
			log.Printf("[donation][paypal] capture failed order_id=%s err=%v", orderID, err)
			g.recordFailure(ctx, orderID, "", msg)
			return entities.PaymentResult{Reference: orderID, Status: entities.DonationStatusFailed, Message: msg}, err
		}

		if capture.Status != paypalStatusCompleted || capture.CaptureID == "" ||
			(capture.CaptureStatus != "" && capture.CaptureStatus != paypalStatusCompleted) {
			log.Printf("[donation][paypal] capture not completed order_id=%s status=%s capture_status=%s", orderID, capture.Status, capture.CaptureStatus)
			g.recordFailure(ctx, orderID, capture.CaptureID, ErrPaymentNotCompleted.Error())
			return entities.PaymentResult{Reference: orderID, Status: entities.DonationStatusFailed},
				&PaymentFailedError{DonationID: entities.UnassociatedDonationID, Reason: ErrPaymentNotCompleted, Message: firstNonEmpty(capture.CaptureStatus, capture.Status)}
		}
	}

	d, err := g.repo.FindByTransactionID(ctx, capture.CaptureID)
	if err != nil {
		g.holdCapture(ctx, pending, capture, err)
		return entities.PaymentResult{}, err
	}
	switch {
	case d.ID == "":
		// The capture id is stored on create so a retry or the capture
		// webhook finds this row even if the transition below fails.
		d = newDonation(pending.Intent, entities.PaymentMethodPayPal)
		d.TransactionID = capture.CaptureID
		if d, err = g.repo.Create(ctx, d); err != nil {
			log.Printf("[donation][paypal] donation create failed order_id=%s capture_id=%s err=%v", orderID, capture.CaptureID, err)
			g.holdCapture(ctx, pending, capture, err)
			return entities.PaymentResult{}, err
		}
	case d.Status == entities.DonationStatusCompleted:
		log.Printf("[donation][paypal] capture already recorded order_id=%s donation_id=%s", orderID, d.ID)
		return completedResult(d), nil
	}

	final, _, err := g.lifecycle.Transition(ctx, d.ID, entities.DonationStatusCompleted, TransitionInput{
		Event:         entities.EventPaymentSucceeded,
		Note:          "Payment completed via PayPal",
		Source:        entities.SourceSync,
		Gateway:       entities.PaymentMethodPayPal,
		TransactionID: capture.CaptureID,
		RawPayload:    capture.Raw,
		Metadata:      map[string]any{"order_id": orderID},
	})
	if err != nil && !errors.Is(err, ErrInvalidStatusTransition) {
		g.holdCapture(ctx, pending, capture, err)
		return entities.PaymentResult{}, err
	}
	log.Printf("[donation][paypal] capture success order_id=%s donation_id=%s capture_id=%s", orderID, final.ID, capture.CaptureID)

	res := completedResult(final)
	res.TransactionID = capture.CaptureID
	res.Reference = orderID
	return res, nil
}

func (g *PayPalGateway) restoreOrder(ctx context.Context, pending entities.PendingOrder) {
	if err := g.orders.Save(ctx, pending); err != nil {
		log.Printf("[donation][paypal] pending order restore failed order_id=%s err=%v", pending.OrderID, err)
	}
}

// holdCapture keeps a captured order retryable after a store failure and
// records the capture so it can be reconciled by hand.
func (g *PayPalGateway) holdCapture(ctx context.Context, pending entities.PendingOrder, capture interfaces.PayPalCapture, cause error) {
	log.Printf("[donation][paypal] capture not recorded order_id=%s capture_id=%s err=%v", pending.OrderID, capture.CaptureID, cause)
	pending.CaptureID = capture.CaptureID
	pending.CaptureRaw = capture.Raw
	g.restoreOrder(ctx, pending)

	if g.history == nil {
		return
	}
	_ = g.history.Add(ctx, entities.UnassociatedDonationID, entities.EventCaptureNotRecorded, string(entities.DonationStatusCompleted),
		cause.Error(), map[string]any{
			"gateway":        string(entities.PaymentMethodPayPal),
			"source":         entities.SourceSync,
			"order_id":       pending.OrderID,
			"transaction_id": capture.CaptureID,
		})
}

func (g *PayPalGateway) ProcessPayment(context.Context, entities.DonationIntent, string) (entities.PaymentResult, error) {
	return entities.PaymentResult{}, ErrOperationNotSupported
}

func (g *PayPalGateway) token(ctx context.Context) (string, error) {
	return g.tokens.GetToken(ctx, entities.PaymentMethodPayPal, g.client.Mode(), g.client.Credentials())
}

func (g *PayPalGateway) invalidateOn401(ctx context.Context, err error) {
	var apiErr *entities.ProviderAPIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatus == http.StatusUnauthorized {
		if iErr := g.tokens.Invalidate(ctx, entities.PaymentMethodPayPal, g.client.Mode(), g.client.Credentials()); iErr != nil {
			log.Printf("[donation][paypal] token invalidate failed err=%v", iErr)
		}
	}
}

// recordFailure writes the failed capture against the unassociated donation id.
func (g *PayPalGateway) recordFailure(ctx context.Context, orderID, captureID, msg string) {
	if g.history == nil {
		return
	}
	meta := map[string]any{
		"gateway":  string(entities.PaymentMethodPayPal),
		"source":   entities.SourceSync,
		"order_id": orderID,
	}
	if captureID != "" {
		meta["transaction_id"] = captureID
	}
	_ = g.history.Add(ctx, entities.UnassociatedDonationID, entities.EventPaymentFailed, string(entities.DonationStatusFailed), msg, meta)
}

func orderDescription(in entities.DonationIntent) string {
	if in.CampaignID != "" {
		return "Donation to campaign " + in.CampaignID
	}
	return "Donation"
}
