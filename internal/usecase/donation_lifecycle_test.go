package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"donations_core/internal/domain/entities"
	mock_interfaces "donations_core/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDonationLifecycle_Transition(t *testing.T) {
	t.Run("changed writes meta history and event", func(t *testing.T) {
		h := newHarness()
		seedDonation(h, "don-1", entities.PaymentMethodStripe, entities.DonationStatusPending, "")

		d, changed, err := h.lifecycle.Transition(context.Background(), "don-1", entities.DonationStatusCompleted, TransitionInput{
			Event:         entities.EventPaymentSucceeded,
			Source:        entities.SourceSync,
			Gateway:       entities.PaymentMethodStripe,
			TransactionID: "pi_1",
			RawPayload:    []byte(`{"id":"pi_1"}`),
		})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, entities.DonationStatusCompleted, d.Status)
		assert.Equal(t, "pi_1", d.TransactionID)

		rows := h.history.forDonation("don-1")
		require.Len(t, rows, 1)
		assert.Equal(t, "completed", rows[0].Status)
		assert.JSONEq(t, `{"gateway":"stripe","source":"sync","transaction_id":"pi_1"}`, string(rows[0].Metadata))
		assert.Equal(t, []entities.DonationEventKind{entities.DonationEventCompleted}, h.publisher.kinds())
	})

	t.Run("same status is a silent no-op", func(t *testing.T) {
		h := newHarness()
		seedDonation(h, "don-1", entities.PaymentMethodStripe, entities.DonationStatusCompleted, "pi_1")

		_, changed, err := h.lifecycle.Transition(context.Background(), "don-1", entities.DonationStatusCompleted, TransitionInput{Event: entities.EventPaymentSucceeded})
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Empty(t, h.history.forDonation("don-1"))
		assert.Empty(t, h.publisher.kinds())
	})

	t.Run("disallowed edge returns state error and current record", func(t *testing.T) {
		h := newHarness()
		seedDonation(h, "don-1", entities.PaymentMethodStripe, entities.DonationStatusFailed, "pi_1")

		d, changed, err := h.lifecycle.Transition(context.Background(), "don-1", entities.DonationStatusCompleted, TransitionInput{})
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		assert.False(t, changed)
		assert.Equal(t, entities.DonationStatusFailed, d.Status)
		assert.Empty(t, h.history.forDonation("don-1"))
	})

	t.Run("concurrent finalizers produce one completion", func(t *testing.T) {
		h := newHarness()
		seedDonation(h, "don-1", entities.PaymentMethodPayPal, entities.DonationStatusPending, "CAP-1")

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _, _ = h.lifecycle.Transition(context.Background(), "don-1", entities.DonationStatusCompleted, TransitionInput{Event: entities.EventPaymentSucceeded})
			}()
		}
		wg.Wait()

		assert.Len(t, h.history.byEvent("don-1", entities.EventPaymentSucceeded), 1)
		assert.Equal(t, []entities.DonationEventKind{entities.DonationEventCompleted}, h.publisher.kinds())
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIDonationRepository(ctrl)
		l := NewDonationLifecycle(repo, nil, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "don-1", entities.DonationStatusCompleted).Return(false, errors.New("db"))

		_, _, err := l.Transition(context.Background(), "don-1", entities.DonationStatusCompleted, TransitionInput{})
		assert.EqualError(t, err, "db")
	})
}
