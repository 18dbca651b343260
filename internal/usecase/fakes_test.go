package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"donations_core/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// memDonationRepo mirrors the DynamoDB repository's compare-and-swap semantics.
type memDonationRepo struct {
	mu   sync.Mutex
	rows map[string]entities.Donation
}

func newMemDonationRepo() *memDonationRepo {
	return &memDonationRepo{rows: map[string]entities.Donation{}}
}

func (r *memDonationRepo) Create(_ context.Context, d entities.Donation) (entities.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[d.ID] = d
	return d, nil
}

func (r *memDonationRepo) GetByID(_ context.Context, id string) (entities.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id], nil
}

func (r *memDonationRepo) UpdateStatus(_ context.Context, id string, status entities.DonationStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.rows[id]
	if !ok {
		return false, nil
	}
	if d.Status == status {
		return false, nil
	}
	if !entities.CanTransition(d.Status, status) {
		return false, entities.ErrInvalidStatusTransition
	}
	d.Status = status
	d.UpdatedAt = time.Now().UTC()
	r.rows[id] = d
	return true, nil
}

func (r *memDonationRepo) UpdateMeta(_ context.Context, id string, meta entities.DonationMeta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.rows[id]
	if meta.TransactionID != "" {
		d.TransactionID = meta.TransactionID
	}
	if len(meta.RawPayload) > 0 {
		d.RawPayload = meta.RawPayload
	}
	if meta.PaymentError != "" {
		d.PaymentError = meta.PaymentError
	}
	r.rows[id] = d
	return nil
}

func (r *memDonationRepo) FindByTransactionID(_ context.Context, transactionID string) (entities.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.rows {
		if d.TransactionID == transactionID {
			return d, nil
		}
	}
	return entities.Donation{}, nil
}

func (r *memDonationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type memHistoryRepo struct {
	mu      sync.Mutex
	entries []entities.HistoryEntry
}

func (r *memHistoryRepo) Append(_ context.Context, e entities.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *memHistoryRepo) ListByDonationID(_ context.Context, donationID string, order entities.HistoryOrder, limit int) ([]entities.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.HistoryEntry
	for _, e := range r.entries {
		if e.DonationID == donationID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if order == entities.HistoryOrderAsc {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memHistoryRepo) byEvent(donationID, event string) []entities.HistoryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.HistoryEntry
	for _, e := range r.entries {
		if e.DonationID == donationID && e.Event == event {
			out = append(out, e)
		}
	}
	return out
}

func (r *memHistoryRepo) forDonation(donationID string) []entities.HistoryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.HistoryEntry
	for _, e := range r.entries {
		if e.DonationID == donationID {
			out = append(out, e)
		}
	}
	return out
}

type memCacheItem struct {
	value     string
	expiresAt time.Time
}

type memCache struct {
	mu    sync.Mutex
	items map[string]memCacheItem
	now   func() time.Time
}

func newMemCache() *memCache {
	return &memCache{items: map[string]memCacheItem{}, now: time.Now}
}

func (c *memCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.items[key]
	if !ok || !c.now().Before(it.expiresAt) {
		return "", false, nil
	}
	return it.value, true, nil
}

func (c *memCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = memCacheItem{value: value, expiresAt: c.now().Add(ttl)}
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *memCache) Take(ctx context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.items[key]
	delete(c.items, key)
	if !ok || !c.now().Before(it.expiresAt) {
		return "", false, nil
	}
	return it.value, true, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entities.DonationEvent
}

func (p *recordingPublisher) Publish(_ context.Context, evt entities.DonationEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) kinds() []entities.DonationEventKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]entities.DonationEventKind, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Kind)
	}
	return out
}

// harness wires the lifecycle pieces over in-memory stores.
type harness struct {
	donations *memDonationRepo
	history   *memHistoryRepo
	cache     *memCache
	publisher *recordingPublisher
	recorder  *EventHistoryRecorder
	lifecycle *DonationLifecycle
	validator *IntentValidator
}

func newHarness() *harness {
	h := &harness{
		donations: newMemDonationRepo(),
		history:   &memHistoryRepo{},
		cache:     newMemCache(),
		publisher: &recordingPublisher{},
	}
	h.recorder = NewEventHistoryRecorder(h.history)
	h.lifecycle = NewDonationLifecycle(h.donations, h.recorder, h.publisher)
	h.validator = NewIntentValidator(nil, "USD")
	return h
}

func validIntent() entities.DonationIntent {
	return entities.DonationIntent{
		Amount:     decimal.RequireFromString("25.00"),
		DonorName:  "Ada Lovelace",
		DonorEmail: "a@b.com",
	}
}

func seedDonation(h *harness, id string, method entities.PaymentMethod, status entities.DonationStatus, txID string) entities.Donation {
	d := entities.Donation{
		ID:            id,
		Amount:        decimal.RequireFromString("25.00"),
		Currency:      "USD",
		DonorName:     "Ada Lovelace",
		DonorEmail:    "a@b.com",
		PaymentMethod: method,
		Status:        status,
		TransactionID: txID,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	_, _ = h.donations.Create(context.Background(), d)
	return d
}

// flakyDonationRepo fails the next Create calls with the queued errors.
type flakyDonationRepo struct {
	*memDonationRepo
	createErrs []error
}

func (r *flakyDonationRepo) Create(ctx context.Context, d entities.Donation) (entities.Donation, error) {
	if len(r.createErrs) > 0 {
		err := r.createErrs[0]
		r.createErrs = r.createErrs[1:]
		if err != nil {
			return entities.Donation{}, err
		}
	}
	return r.memDonationRepo.Create(ctx, d)
}
