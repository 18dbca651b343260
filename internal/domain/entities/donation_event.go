package entities

import "time"

// DonationEventKind names a typed lifecycle event published on the event bus.
type DonationEventKind string

const (
	DonationEventPending    DonationEventKind = "donation.pending"
	DonationEventProcessing DonationEventKind = "donation.processing"
	DonationEventCompleted  DonationEventKind = "donation.completed"
	DonationEventFailed     DonationEventKind = "donation.failed"
	DonationEventCancelled  DonationEventKind = "donation.cancelled"
	DonationEventRefunded   DonationEventKind = "donation.refunded"
)

// DonationEvent is published once per effective status transition.
type DonationEvent struct {
	Kind       DonationEventKind
	Donation   Donation
	Source     string
	OccurredAt time.Time
}

// EventKindFor maps a donation status to the event published when a donation enters it.
func EventKindFor(status DonationStatus) DonationEventKind {
	switch status {
	case DonationStatusProcessing:
		return DonationEventProcessing
	case DonationStatusCompleted:
		return DonationEventCompleted
	case DonationStatusFailed:
		return DonationEventFailed
	case DonationStatusCancelled:
		return DonationEventCancelled
	case DonationStatusRefunded:
		return DonationEventRefunded
	}
	return DonationEventPending
}
