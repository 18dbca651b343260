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

// Webhook ack actions.
const (
	WebhookActionTransitioned = "transitioned"
	WebhookActionNoop         = "noop"
	WebhookActionIgnored      = "ignored"
)

type IWebhookReconciler interface {
	Handle(ctx context.Context, provider string, raw []byte, headers http.Header) (entities.WebhookAck, error)
}

// WebhookReconciler verifies provider notifications and replays them as
// status transitions. Only signature and infrastructure failures are returned
// as errors; anything the core cannot act on is acknowledged so the provider
// stops retrying.
type WebhookReconciler struct {
	sources   map[entities.PaymentMethod]interfaces.IWebhookSource
	repo      interfaces.IDonationRepository
	lifecycle *DonationLifecycle
}

var _ IWebhookReconciler = (*WebhookReconciler)(nil)

func NewWebhookReconciler(repo interfaces.IDonationRepository, lifecycle *DonationLifecycle, sources ...interfaces.IWebhookSource) *WebhookReconciler {
	m := make(map[entities.PaymentMethod]interfaces.IWebhookSource, len(sources))
	for _, s := range sources {
		if s != nil {
			m[s.Provider()] = s
		}
	}
	return &WebhookReconciler{sources: m, repo: repo, lifecycle: lifecycle}
}

func (r *WebhookReconciler) Handle(ctx context.Context, provider string, raw []byte, headers http.Header) (entities.WebhookAck, error) {
	method := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(provider)))
	src, ok := r.sources[method]
	if !ok {
		log.Printf("[donation][webhook] unknown provider=%q", provider)
		return entities.WebhookAck{}, ErrWebhookProviderUnknown
	}
	if len(raw) == 0 {
		return entities.WebhookAck{}, ErrMalformedWebhook
	}

	if err := src.Verify(ctx, raw, headers); err != nil {
		log.Printf("[donation][webhook] verification failed provider=%s err=%v", method, err)
		return entities.WebhookAck{}, err
	}

	n, err := src.Parse(raw)
	if err != nil {
		log.Printf("[donation][webhook] parse failed provider=%s err=%v", method, err)
		return entities.WebhookAck{}, fmt.Errorf("%w: %v", ErrMalformedWebhook, err)
	}
	log.Printf("[donation][webhook] received provider=%s event_id=%s event_type=%s outcome=%s transaction_id=%s", method, n.EventID, n.EventType, n.Outcome, n.TransactionID)

	ack := entities.WebhookAck{Received: true, EventType: n.EventType, Action: WebhookActionIgnored}

	to, event, note, ok := webhookTransition(n)
	if !ok {
		log.Printf("[donation][webhook] unhandled event provider=%s event_type=%s", method, n.EventType)
		return ack, nil
	}
	if n.TransactionID == "" && n.DonationID == "" {
		log.Printf("[donation][webhook] no transaction id provider=%s event_type=%s", method, n.EventType)
		return ack, nil
	}

	d, err := r.lookup(ctx, method, n)
	if err != nil {
		log.Printf("[donation][webhook] lookup failed provider=%s transaction_id=%s err=%v", method, n.TransactionID, err)
		return entities.WebhookAck{}, err
	}
	if d.ID == "" {
		log.Printf("[donation][webhook] no donation for provider=%s transaction_id=%s donation_id=%s", method, n.TransactionID, n.DonationID)
		return ack, nil
	}
	ack.DonationID = d.ID

	_, changed, err := r.lifecycle.Transition(ctx, d.ID, to, TransitionInput{
		Event:         event,
		Note:          note,
		Source:        entities.SourceWebhook,
		Gateway:       method,
		TransactionID: n.TransactionID,
		RawPayload:    n.Raw,
		PaymentError:  n.ErrorDetail,
		Metadata:      map[string]any{"event_id": n.EventID, "event_type": n.EventType},
	})
	switch {
	case errors.Is(err, ErrInvalidStatusTransition):
		ack.Action = WebhookActionNoop
		return ack, nil
	case err != nil:
		return entities.WebhookAck{}, err
	case changed:
		ack.Action = WebhookActionTransitioned
	default:
		ack.Action = WebhookActionNoop
		meta := entities.DonationMeta{RawPayload: n.Raw}
		if d.TransactionID == "" {
			meta.TransactionID = n.TransactionID
		}
		if !meta.IsEmpty() {
			if err := r.repo.UpdateMeta(ctx, d.ID, meta); err != nil {
				log.Printf("[donation][webhook] raw payload store failed donation_id=%s err=%v", d.ID, err)
			}
		}
	}
	return ack, nil
}

// lookup finds the donation by provider transaction id, then by the donation
// id the provider echoed back. The second path covers payments whose id was
// never stored because the creating call timed out.
func (r *WebhookReconciler) lookup(ctx context.Context, method entities.PaymentMethod, n entities.WebhookNotification) (entities.Donation, error) {
	if n.TransactionID != "" {
		d, err := r.repo.FindByTransactionID(ctx, n.TransactionID)
		if err != nil || d.ID != "" {
			return d, err
		}
	}
	if n.DonationID == "" {
		return entities.Donation{}, nil
	}
	d, err := r.repo.GetByID(ctx, n.DonationID)
	if err != nil {
		return entities.Donation{}, err
	}
	if d.ID == "" || d.PaymentMethod != method {
		return entities.Donation{}, nil
	}
	if d.TransactionID != "" && n.TransactionID != "" && d.TransactionID != n.TransactionID {
		log.Printf("[donation][webhook] transaction mismatch donation_id=%s stored=%s event=%s", d.ID, d.TransactionID, n.TransactionID)
		return entities.Donation{}, nil
	}
	log.Printf("[donation][webhook] resolved by metadata donation_id=%s transaction_id=%s", d.ID, n.TransactionID)
	return d, nil
}

func webhookTransition(n entities.WebhookNotification) (entities.DonationStatus, string, string, bool) {
	switch n.Outcome {
	case entities.WebhookOutcomeCompleted:
		return entities.DonationStatusCompleted, entities.EventPaymentSucceeded, "Payment confirmed by " + n.EventType, true
	case entities.WebhookOutcomeFailed:
		return entities.DonationStatusFailed, entities.EventPaymentFailed, firstNonEmpty(n.ErrorDetail, "Payment failed: "+n.EventType), true
	case entities.WebhookOutcomeRefunded:
		return entities.DonationStatusRefunded, entities.EventPaymentRefunded, "Payment refunded", true
	}
	return "", "", "", false
}
