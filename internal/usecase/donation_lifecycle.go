package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"
)

// TransitionInput describes the side effects attached to a status transition.
type TransitionInput struct {
	Event         string
	Note          string
	Source        string
	Gateway       entities.PaymentMethod
	TransactionID string
	RawPayload    json.RawMessage
	PaymentError  string
	Metadata      map[string]any
}

// DonationLifecycle moves donations along the status graph. The store's
// compare-and-swap decides the single winner of concurrent finalizers
// (capture call, 3DS return, webhook); only the winner persists metadata,
// appends history and publishes the event.
type DonationLifecycle struct {
	repo      interfaces.IDonationRepository
	history   IEventHistoryRecorder
	publisher interfaces.IEventPublisher
	now       func() time.Time
}

func NewDonationLifecycle(repo interfaces.IDonationRepository, history IEventHistoryRecorder, publisher interfaces.IEventPublisher) *DonationLifecycle {
	return &DonationLifecycle{
		repo:      repo,
		history:   history,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Transition returns the donation as stored after the call and whether this
// call changed its status. A disallowed edge returns ErrInvalidStatusTransition
// together with the current record; callers treat it as a benign no-op.
func (l *DonationLifecycle) Transition(ctx context.Context, donationID string, to entities.DonationStatus, in TransitionInput) (entities.Donation, bool, error) {
	changed, err := l.repo.UpdateStatus(ctx, donationID, to)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidStatusTransition) {
			current, getErr := l.repo.GetByID(ctx, donationID)
			if getErr != nil {
				return entities.Donation{}, false, getErr
			}
			log.Printf("[donation][lifecycle] transition rejected donation_id=%s from=%s to=%s source=%s", donationID, current.Status, to, in.Source)
			return current, false, err
		}
		log.Printf("[donation][lifecycle] status update failed donation_id=%s to=%s err=%v", donationID, to, err)
		return entities.Donation{}, false, err
	}

	if !changed {
		current, err := l.repo.GetByID(ctx, donationID)
		if err != nil {
			return entities.Donation{}, false, err
		}
		log.Printf("[donation][lifecycle] transition no-op donation_id=%s status=%s source=%s", donationID, to, in.Source)
		return current, false, nil
	}

	meta := entities.DonationMeta{TransactionID: in.TransactionID, RawPayload: in.RawPayload, PaymentError: in.PaymentError}
	if !meta.IsEmpty() {
		if err := l.repo.UpdateMeta(ctx, donationID, meta); err != nil {
			log.Printf("[donation][lifecycle] meta update failed donation_id=%s err=%v", donationID, err)
		}
	}

	current, err := l.repo.GetByID(ctx, donationID)
	if err != nil {
		return entities.Donation{}, true, err
	}
	log.Printf("[donation][lifecycle] transitioned donation_id=%s to=%s source=%s transaction_id=%s", donationID, to, in.Source, current.TransactionID)

	l.record(ctx, current, in)
	return current, true, nil
}

// Record appends history and publishes the event for the donation's current
// status without changing it. Used where a flow starts in its final
// sync-side status (bank transfer stays pending).
func (l *DonationLifecycle) Record(ctx context.Context, d entities.Donation, in TransitionInput) {
	l.record(ctx, d, in)
}

func (l *DonationLifecycle) record(ctx context.Context, d entities.Donation, in TransitionInput) {
	metadata := map[string]any{
		"gateway": string(in.Gateway),
		"source":  in.Source,
	}
	if txID := firstNonEmpty(in.TransactionID, d.TransactionID); txID != "" {
		metadata["transaction_id"] = txID
	}
	for k, v := range in.Metadata {
		metadata[k] = v
	}

	if l.history != nil {
		// History failures are logged by the recorder; the transition already happened.
		_ = l.history.Add(ctx, d.ID, in.Event, string(d.Status), in.Note, metadata)
	}
	if l.publisher != nil {
		l.publisher.Publish(ctx, entities.DonationEvent{
			Kind:       entities.EventKindFor(d.Status),
			Donation:   d,
			Source:     in.Source,
			OccurredAt: l.now(),
		})
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
