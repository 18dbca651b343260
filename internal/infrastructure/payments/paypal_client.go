package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"
)

const (
	PayPalLiveBaseURL    = "https://api-m.paypal.com"
	PayPalSandboxBaseURL = "https://api-m.sandbox.paypal.com"

	maxPayPalResponseBytes = 1 << 20
)

// PayPalBaseURL returns the REST host for a mode; anything but "live" is sandbox.
func PayPalBaseURL(mode string) string {
	if strings.EqualFold(mode, "live") {
		return PayPalLiveBaseURL
	}
	return PayPalSandboxBaseURL
}

// PayPalClient calls the Orders v2 and webhook verification endpoints.
type PayPalClient struct {
	mode    string
	creds   entities.ProviderCredentials
	baseURL string
	http    *http.Client
}

var _ interfaces.IPayPalClient = (*PayPalClient)(nil)

func NewPayPalClient(mode string, creds entities.ProviderCredentials, timeout time.Duration) *PayPalClient {
	return &PayPalClient{
		mode:    mode,
		creds:   creds,
		baseURL: PayPalBaseURL(mode),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *PayPalClient) Mode() string                              { return c.mode }
func (c *PayPalClient) Credentials() entities.ProviderCredentials { return c.creds }

type paypalLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type paypalOrderResponse struct {
	ID            string       `json:"id"`
	Status        string       `json:"status"`
	Links         []paypalLink `json:"links"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

func (c *PayPalClient) CreateOrder(ctx context.Context, accessToken string, req interfaces.PayPalOrderRequest) (interfaces.PayPalOrder, error) {
	unit := map[string]any{
		"amount": map[string]string{
			"currency_code": req.Currency,
			"value":         req.Amount,
		},
	}
	if req.Description != "" {
		unit["description"] = req.Description
	}
	if req.CustomID != "" {
		unit["custom_id"] = req.CustomID
	}
	body := map[string]any{
		"intent":         "CAPTURE",
		"purchase_units": []any{unit},
	}
	appCtx := map[string]string{
		"shipping_preference": "NO_SHIPPING",
		"user_action":         "PAY_NOW",
	}
	if req.ReturnURL != "" {
		appCtx["return_url"] = req.ReturnURL
	}
	if req.CancelURL != "" {
		appCtx["cancel_url"] = req.CancelURL
	}
	body["application_context"] = appCtx

	headers := map[string]string{"Prefer": "return=representation"}
	if req.RequestID != "" {
		headers["PayPal-Request-Id"] = req.RequestID
	}

	log.Printf("[payment][paypal] create order start amount=%s currency=%s", req.Amount, req.Currency)
	raw, err := c.do(ctx, http.MethodPost, "/v2/checkout/orders", accessToken, body, headers)
	if err != nil {
		log.Printf("[payment][paypal] create order failed err=%v", err)
		return interfaces.PayPalOrder{}, err
	}

	var resp paypalOrderResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return interfaces.PayPalOrder{}, &entities.ProviderAPIError{Provider: entities.PaymentMethodPayPal, Message: "invalid order response", Err: err}
	}
	order := interfaces.PayPalOrder{ID: resp.ID, Status: resp.Status, Raw: raw}
	for _, l := range resp.Links {
		if l.Rel == "approve" || l.Rel == "payer-action" {
			order.ApprovalURL = l.Href
			break
		}
	}
	log.Printf("[payment][paypal] create order success order_id=%s status=%s", order.ID, order.Status)
	return order, nil
}

func (c *PayPalClient) CaptureOrder(ctx context.Context, accessToken, orderID string) (interfaces.PayPalCapture, error) {
	path := "/v2/checkout/orders/" + url.PathEscape(orderID) + "/capture"
	headers := map[string]string{
		"Prefer":            "return=representation",
		"PayPal-Request-Id": "capture-" + orderID,
	}

	log.Printf("[payment][paypal] capture start order_id=%s", orderID)
	raw, err := c.do(ctx, http.MethodPost, path, accessToken, struct{}{}, headers)
	if err != nil {
		log.Printf("[payment][paypal] capture failed order_id=%s err=%v", orderID, err)
		return interfaces.PayPalCapture{}, err
	}

	var resp paypalOrderResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return interfaces.PayPalCapture{}, &entities.ProviderAPIError{Provider: entities.PaymentMethodPayPal, Message: "invalid capture response", Err: err}
	}
	out := interfaces.PayPalCapture{OrderID: resp.ID, Status: resp.Status, Raw: raw}
	if len(resp.PurchaseUnits) > 0 && len(resp.PurchaseUnits[0].Payments.Captures) > 0 {
		capture := resp.PurchaseUnits[0].Payments.Captures[0]
		out.CaptureID = capture.ID
		out.CaptureStatus = capture.Status
	}
	log.Printf("[payment][paypal] capture done order_id=%s status=%s capture_id=%s capture_status=%s", orderID, out.Status, out.CaptureID, out.CaptureStatus)
	return out, nil
}

func (c *PayPalClient) VerifyWebhookSignature(ctx context.Context, accessToken string, req interfaces.PayPalWebhookVerification) (bool, error) {
	body := map[string]any{
		"auth_algo":         req.AuthAlgo,
		"cert_url":          req.CertURL,
		"transmission_id":   req.TransmissionID,
		"transmission_sig":  req.TransmissionSig,
		"transmission_time": req.TransmissionTime,
		"webhook_id":        req.WebhookID,
		"webhook_event":     req.WebhookEvent,
	}
	raw, err := c.do(ctx, http.MethodPost, "/v1/notifications/verify-webhook-signature", accessToken, body, nil)
	if err != nil {
		return false, err
	}
	var resp struct {
		VerificationStatus string `json:"verification_status"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return false, &entities.ProviderAPIError{Provider: entities.PaymentMethodPayPal, Message: "invalid verification response", Err: err}
	}
	return resp.VerificationStatus == "SUCCESS", nil
}

func (c *PayPalClient) do(ctx context.Context, method, path, accessToken string, body any, headers map[string]string) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &entities.ProviderAPIError{Provider: entities.PaymentMethodPayPal, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxPayPalResponseBytes))
	if err != nil {
		return nil, &entities.ProviderAPIError{Provider: entities.PaymentMethodPayPal, HTTPStatus: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parsePayPalError(resp.StatusCode, raw)
	}
	return raw, nil
}

// parsePayPalError reads both the REST error shape ({name, message, details})
// and the OAuth shape ({error, error_description}).
func parsePayPalError(status int, raw []byte) *entities.ProviderAPIError {
	var body struct {
		Name             string `json:"name"`
		Message          string `json:"message"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
		Details          []struct {
			Issue       string `json:"issue"`
			Description string `json:"description"`
		} `json:"details"`
	}
	_ = json.Unmarshal(raw, &body)

	out := &entities.ProviderAPIError{
		Provider:   entities.PaymentMethodPayPal,
		HTTPStatus: status,
		Code:       firstNonBlank(body.Name, body.Error),
		Message:    firstNonBlank(body.Message, body.ErrorDescription),
		Err:        fmt.Errorf("paypal http %d", status),
	}
	if len(body.Details) > 0 {
		out.Code = firstNonBlank(body.Details[0].Issue, out.Code)
		out.Message = firstNonBlank(body.Details[0].Description, out.Message)
	}
	return out
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
