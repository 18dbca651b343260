package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayPalClient(t *testing.T, handler http.HandlerFunc) *PayPalClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewPayPalClient("sandbox", entities.ProviderCredentials{ClientID: "id", ClientSecret: "secret"}, 5*time.Second)
	c.baseURL = srv.URL
	return c
}

func TestPayPalBaseURL(t *testing.T) {
	assert.Equal(t, PayPalLiveBaseURL, PayPalBaseURL("LIVE"))
	assert.Equal(t, PayPalSandboxBaseURL, PayPalBaseURL("sandbox"))
	assert.Equal(t, PayPalSandboxBaseURL, PayPalBaseURL(""))
}

func TestPayPalClient_CreateOrder(t *testing.T) {
	var got map[string]any
	c := newTestPayPalClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/checkout/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "req-1", r.Header.Get("PayPal-Request-Id"))
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ORDER-1","status":"CREATED","links":[{"href":"https://api/self","rel":"self"},{"href":"https://www.sandbox.paypal.com/checkoutnow?token=ORDER-1","rel":"approve"}]}`))
	})

	order, err := c.CreateOrder(context.Background(), "tok", interfaces.PayPalOrderRequest{
		Amount:    "25.00",
		Currency:  "USD",
		CustomID:  "c-1",
		ReturnURL: "https://example.org/return",
		RequestID: "req-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ORDER-1", order.ID)
	assert.Equal(t, "CREATED", order.Status)
	assert.Equal(t, "https://www.sandbox.paypal.com/checkoutnow?token=ORDER-1", order.ApprovalURL)

	assert.Equal(t, "CAPTURE", got["intent"])
	units := got["purchase_units"].([]any)
	unit := units[0].(map[string]any)
	assert.Equal(t, "c-1", unit["custom_id"])
	assert.Equal(t, map[string]any{"currency_code": "USD", "value": "25.00"}, unit["amount"])
}

func TestPayPalClient_CaptureOrder(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		c := newTestPayPalClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/checkout/orders/ORDER-1/capture", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"ORDER-1","status":"COMPLETED","purchase_units":[{"payments":{"captures":[{"id":"CAP-1","status":"COMPLETED"}]}}]}`))
		})

		capture, err := c.CaptureOrder(context.Background(), "tok", "ORDER-1")
		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", capture.Status)
		assert.Equal(t, "CAP-1", capture.CaptureID)
		assert.Equal(t, "COMPLETED", capture.CaptureStatus)
		assert.Contains(t, string(capture.Raw), "CAP-1")
	})

	t.Run("unprocessable maps detail issue", func(t *testing.T) {
		c := newTestPayPalClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"name":"UNPROCESSABLE_ENTITY","message":"The requested action could not be performed.","details":[{"issue":"INSTRUMENT_DECLINED","description":"The instrument presented was declined."}]}`))
		})

		_, err := c.CaptureOrder(context.Background(), "tok", "ORDER-1")
		var apiErr *entities.ProviderAPIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.HTTPStatus)
		assert.Equal(t, "INSTRUMENT_DECLINED", apiErr.Code)
		assert.Equal(t, "The instrument presented was declined.", apiErr.UserMessage())
	})

	t.Run("server error hides provider text", func(t *testing.T) {
		c := newTestPayPalClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"name":"INTERNAL_SERVER_ERROR","message":"boom"}`))
		})

		_, err := c.CaptureOrder(context.Background(), "tok", "ORDER-1")
		var apiErr *entities.ProviderAPIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Payment failed, please try again", apiErr.UserMessage())
	})

	t.Run("network failure", func(t *testing.T) {
		c := NewPayPalClient("sandbox", entities.ProviderCredentials{}, time.Second)
		c.baseURL = "http://127.0.0.1:1"
		_, err := c.CaptureOrder(context.Background(), "tok", "ORDER-1")
		var apiErr *entities.ProviderAPIError
		require.True(t, errors.As(err, &apiErr))
		assert.Zero(t, apiErr.HTTPStatus)
	})
}

func TestPayPalClient_VerifyWebhookSignature(t *testing.T) {
	for _, tc := range []struct {
		status string
		want   bool
	}{{"SUCCESS", true}, {"FAILURE", false}} {
		t.Run(tc.status, func(t *testing.T) {
			var got map[string]json.RawMessage
			c := newTestPayPalClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/notifications/verify-webhook-signature", r.URL.Path)
				body, _ := io.ReadAll(r.Body)
				_ = json.Unmarshal(body, &got)
				_, _ = w.Write([]byte(`{"verification_status":"` + tc.status + `"}`))
			})

			ok, err := c.VerifyWebhookSignature(context.Background(), "tok", interfaces.PayPalWebhookVerification{
				TransmissionID: "t-1",
				WebhookID:      "wh-1",
				WebhookEvent:   json.RawMessage(`{"id":"WH-1"}`),
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
			assert.JSONEq(t, `{"id":"WH-1"}`, string(got["webhook_event"]))
			assert.JSONEq(t, `"wh-1"`, string(got["webhook_id"]))
		})
	}
}
