package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"donations_core/internal/adapter/http/handlers/mocks"
	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_Receive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *WebhookHandler) *gin.Engine {
		r := gin.New()
		r.POST("/webhooks/:provider", h.Receive)
		return r
	}

	t.Run("passes raw body and headers through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockIWebhookReconciler(ctrl)
		r := newRouter(NewWebhookHandler(rec))

		raw := "{\"id\":\"evt_1\",  \"type\":\"payment_intent.succeeded\"}\n"
		rec.EXPECT().Handle(gomock.Any(), "stripe", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, body []byte, headers http.Header) (entities.WebhookAck, error) {
				if string(body) != raw {
					t.Fatalf("body was altered: %q", body)
				}
				if headers.Get("Stripe-Signature") != "t=1,v1=abc" {
					t.Fatalf("missing signature header")
				}
				return entities.WebhookAck{Received: true, EventType: "payment_intent.succeeded", DonationID: "don-1", Action: "transitioned"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewBufferString(raw))
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"received":true`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown provider", usecase.ErrWebhookProviderUnknown, http.StatusNotFound},
		{"bad signature", fmt.Errorf("%w: mismatch", usecase.ErrSignatureVerification), http.StatusBadRequest},
		{"malformed", usecase.ErrMalformedWebhook, http.StatusBadRequest},
		{"store failure", errors.New("dynamodb unavailable"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			rec := mocks.NewMockIWebhookReconciler(ctrl)
			r := newRouter(NewWebhookHandler(rec))

			rec.EXPECT().Handle(gomock.Any(), "paypal", gomock.Any(), gomock.Any()).Return(entities.WebhookAck{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/paypal", bytes.NewBufferString(`{}`))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("oversized body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mocks.NewMockIWebhookReconciler(ctrl)
		r := newRouter(NewWebhookHandler(rec))

		req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(make([]byte, maxWebhookBodyBytes+1)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
