package events

import (
	"context"
	"fmt"
	"log"
	"sync"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"
)

// Handler reacts to one donation lifecycle event.
type Handler func(ctx context.Context, evt entities.DonationEvent) error

// Bus dispatches donation events to subscribers synchronously, in
// subscription order. A failing or panicking subscriber is logged and does
// not stop the others or reach the publisher.
type Bus struct {
	mu       sync.RWMutex
	handlers []namedHandler
}

type namedHandler struct {
	name  string
	fn    Handler
	kinds map[entities.DonationEventKind]bool // nil: every kind
}

func (h namedHandler) wants(kind entities.DonationEventKind) bool {
	return h.kinds == nil || h.kinds[kind]
}

var _ interfaces.IEventPublisher = (*Bus)(nil)

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for the given kinds, or for every kind when none
// are given.
func (b *Bus) Subscribe(name string, fn Handler, kinds ...entities.DonationEventKind) {
	h := namedHandler{name: name, fn: fn}
	if len(kinds) > 0 {
		h.kinds = make(map[entities.DonationEventKind]bool, len(kinds))
		for _, kind := range kinds {
			h.kinds[kind] = true
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

func (b *Bus) Publish(ctx context.Context, evt entities.DonationEvent) {
	b.mu.RLock()
	subs := make([]namedHandler, 0, len(b.handlers))
	for _, h := range b.handlers {
		if h.wants(evt.Kind) {
			subs = append(subs, h)
		}
	}
	b.mu.RUnlock()

	for _, h := range subs {
		if err := b.dispatch(ctx, h, evt); err != nil {
			log.Printf("[donation][events] subscriber failed subscriber=%s kind=%s donation_id=%s err=%v", h.name, evt.Kind, evt.Donation.ID, err)
		}
	}
}

func (b *Bus) dispatch(ctx context.Context, h namedHandler, evt entities.DonationEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h.fn(ctx, evt)
}

// ReceiptLogger logs a line per completed or refunded donation. It stands in
// for a receipt mailer.
func ReceiptLogger(_ context.Context, evt entities.DonationEvent) error {
	d := evt.Donation
	switch evt.Kind {
	case entities.DonationEventCompleted:
		log.Printf("[donation][receipt] thank-you donation_id=%s amount=%s currency=%s gateway=%s source=%s", d.ID, d.Amount.StringFixed(2), d.Currency, d.PaymentMethod, evt.Source)
	case entities.DonationEventRefunded:
		log.Printf("[donation][receipt] refund-notice donation_id=%s amount=%s currency=%s gateway=%s", d.ID, d.Amount.StringFixed(2), d.Currency, d.PaymentMethod)
	}
	return nil
}
