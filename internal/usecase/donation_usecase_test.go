package usecase

import (
	"context"
	"errors"
	"testing"

	"donations_core/internal/domain/entities"
	mock_interfaces "donations_core/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestGatewayRegistry(t *testing.T) {
	h := newHarness()
	bank := NewBankTransferGateway(h.donations, h.lifecycle, h.validator, "")
	reg := NewGatewayRegistry(bank, nil)

	g, err := reg.Get(" Bank_Transfer ")
	if err != nil || g.ID() != entities.PaymentMethodBankTransfer {
		t.Fatalf("expected bank transfer gateway, got %v err=%v", g, err)
	}
	if _, err := reg.Get("stripe"); !errors.Is(err, ErrGatewayNotFound) {
		t.Fatalf("expected ErrGatewayNotFound, got %v", err)
	}
	if methods := reg.Methods(); len(methods) != 1 || methods[0] != entities.PaymentMethodBankTransfer {
		t.Fatalf("unexpected methods %v", methods)
	}
}

func TestDonationUseCase_Routing(t *testing.T) {
	t.Run("create intent sets the method from the route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().ID().Return(entities.PaymentMethodStripe).AnyTimes()
		uc := NewDonationUseCase(NewGatewayRegistry(gw), nil, nil)

		gw.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.DonationIntent) (entities.PaymentResult, error) {
				if in.PaymentMethod != entities.PaymentMethodStripe {
					t.Fatalf("unexpected method %s", in.PaymentMethod)
				}
				return entities.PaymentResult{DonationID: "don-1"}, nil
			},
		)

		if _, err := uc.CreateIntent(context.Background(), "stripe", entities.DonationIntent{PaymentMethod: "paypal"}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		uc := NewDonationUseCase(NewGatewayRegistry(), nil, nil)
		if _, err := uc.Capture(context.Background(), "venmo", "ref"); !errors.Is(err, ErrGatewayNotFound) {
			t.Fatalf("expected ErrGatewayNotFound, got %v", err)
		}
	})

	t.Run("capture requires reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().ID().Return(entities.PaymentMethodPayPal).AnyTimes()
		uc := NewDonationUseCase(NewGatewayRegistry(gw), nil, nil)

		if _, err := uc.Capture(context.Background(), "paypal", "  "); !errors.Is(err, ErrInvalidReference) {
			t.Fatalf("expected ErrInvalidReference, got %v", err)
		}
	})

	t.Run("process payment requires donation id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().ID().Return(entities.PaymentMethodBankTransfer).AnyTimes()
		uc := NewDonationUseCase(NewGatewayRegistry(gw), nil, nil)

		if _, err := uc.ProcessPayment(context.Background(), "bank_transfer", entities.DonationIntent{}, ""); !errors.Is(err, ErrInvalidDonationID) {
			t.Fatalf("expected ErrInvalidDonationID, got %v", err)
		}
	})
}

func TestDonationUseCase_Queries(t *testing.T) {
	h := newHarness()
	uc := NewDonationUseCase(NewGatewayRegistry(), h.donations, h.recorder)
	seedDonation(h, "don-1", entities.PaymentMethodStripe, entities.DonationStatusPending, "")
	_ = h.recorder.Add(context.Background(), "don-1", entities.EventPaymentPending, "pending", "", nil)
	_ = h.recorder.Add(context.Background(), "0", entities.EventPaymentFailed, "failed", "", nil)

	t.Run("get by id", func(t *testing.T) {
		d, err := uc.GetByID(context.Background(), "don-1")
		if err != nil || d.ID != "don-1" {
			t.Fatalf("unexpected result %+v err=%v", d, err)
		}
		if _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrDonationNotFound) {
			t.Fatalf("expected ErrDonationNotFound, got %v", err)
		}
	})

	t.Run("history", func(t *testing.T) {
		rows, err := uc.History(context.Background(), "don-1", "", 0)
		if err != nil || len(rows) != 1 {
			t.Fatalf("unexpected history %+v err=%v", rows, err)
		}
		if _, err := uc.History(context.Background(), "missing", "", 0); !errors.Is(err, ErrDonationNotFound) {
			t.Fatalf("expected ErrDonationNotFound, got %v", err)
		}
	})

	t.Run("unassociated history is readable", func(t *testing.T) {
		rows, err := uc.History(context.Background(), "0", "", 0)
		if err != nil || len(rows) != 1 {
			t.Fatalf("unexpected history %+v err=%v", rows, err)
		}
	})
}
