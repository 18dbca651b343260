package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path"
	"strings"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"
)

// PayPal transmission headers covered by the webhook signature.
const (
	paypalHeaderTransmissionID   = "Paypal-Transmission-Id"
	paypalHeaderTransmissionTime = "Paypal-Transmission-Time"
	paypalHeaderCertURL          = "Paypal-Cert-Url"
	paypalHeaderAuthAlgo         = "Paypal-Auth-Algo"
	paypalHeaderTransmissionSig  = "Paypal-Transmission-Sig"
)

var paypalRefundParentPrefixes = []string{"/v2/payments/captures/", "/v1/payments/sale/"}

type PayPalWebhookSource struct {
	client          interfaces.IPayPalClient
	tokens          IAccessTokenCache
	webhookID       string
	allowUnverified bool
}

var _ interfaces.IWebhookSource = (*PayPalWebhookSource)(nil)

func NewPayPalWebhookSource(client interfaces.IPayPalClient, tokens IAccessTokenCache, webhookID string, allowUnverified bool) *PayPalWebhookSource {
	return &PayPalWebhookSource{client: client, tokens: tokens, webhookID: strings.TrimSpace(webhookID), allowUnverified: allowUnverified}
}

func (s *PayPalWebhookSource) Provider() entities.PaymentMethod { return entities.PaymentMethodPayPal }

// Verify checks the transmission headers and the certificate host locally,
// then asks PayPal's verify-webhook-signature API to confirm the signature.
func (s *PayPalWebhookSource) Verify(ctx context.Context, raw []byte, headers http.Header) error {
	if s.webhookID == "" || s.client == nil {
		log.Printf("[donation][webhook][paypal] WARNING webhook id not configured; signature not checked")
		if s.allowUnverified {
			return nil
		}
		return fmt.Errorf("%w: paypal webhook id not configured", ErrSignatureVerification)
	}

	req := interfaces.PayPalWebhookVerification{
		TransmissionID:   headers.Get(paypalHeaderTransmissionID),
		TransmissionTime: headers.Get(paypalHeaderTransmissionTime),
		CertURL:          headers.Get(paypalHeaderCertURL),
		AuthAlgo:         headers.Get(paypalHeaderAuthAlgo),
		TransmissionSig:  headers.Get(paypalHeaderTransmissionSig),
		WebhookID:        s.webhookID,
		WebhookEvent:     json.RawMessage(raw),
	}
	if req.TransmissionID == "" || req.TransmissionTime == "" || req.CertURL == "" || req.AuthAlgo == "" || req.TransmissionSig == "" {
		return fmt.Errorf("%w: missing transmission headers", ErrSignatureVerification)
	}
	if !isPayPalCertURL(req.CertURL) {
		return fmt.Errorf("%w: untrusted cert_url %q", ErrSignatureVerification, req.CertURL)
	}

	mode, creds := s.client.Mode(), s.client.Credentials()
	token, err := s.tokens.GetToken(ctx, entities.PaymentMethodPayPal, mode, creds)
	if err != nil {
		return err
	}
	ok, err := s.client.VerifyWebhookSignature(ctx, token, req)
	if err != nil {
		var apiErr *entities.ProviderAPIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatus == http.StatusUnauthorized {
			_ = s.tokens.Invalidate(ctx, entities.PaymentMethodPayPal, mode, creds)
		}
		return err
	}
	if !ok {
		return fmt.Errorf("%w: paypal rejected transmission %s", ErrSignatureVerification, req.TransmissionID)
	}
	return nil
}

type paypalLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

type paypalWebhookEvent struct {
	ID        string `json:"id"`
	EventType string `json:"event_type"`
	Resource  struct {
		ID            string `json:"id"`
		Status        string `json:"status"`
		StatusDetails struct {
			Reason string `json:"reason"`
		} `json:"status_details"`
		Links []paypalLink `json:"links"`
	} `json:"resource"`
}

func (s *PayPalWebhookSource) Parse(raw []byte) (entities.WebhookNotification, error) {
	var evt paypalWebhookEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		return entities.WebhookNotification{}, err
	}
	if evt.EventType == "" {
		return entities.WebhookNotification{}, fmt.Errorf("missing event_type")
	}

	n := entities.WebhookNotification{
		Provider:  entities.PaymentMethodPayPal,
		EventID:   evt.ID,
		EventType: evt.EventType,
		Outcome:   entities.WebhookOutcomeIgnored,
		Raw:       json.RawMessage(raw),
	}

	switch evt.EventType {
	case "PAYMENT.CAPTURE.COMPLETED":
		n.Outcome, n.TransactionID = entities.WebhookOutcomeCompleted, evt.Resource.ID
	case "PAYMENT.CAPTURE.DENIED", "PAYMENT.CAPTURE.DECLINED":
		n.Outcome, n.TransactionID = entities.WebhookOutcomeFailed, evt.Resource.ID
		n.ErrorDetail = firstNonEmpty(evt.Resource.StatusDetails.Reason, strings.ToLower(evt.Resource.Status), "capture denied")
	case "PAYMENT.CAPTURE.REFUNDED", "PAYMENT.SALE.REFUNDED":
		// The resource is the refund; the captured payment is its rel=up parent.
		n.Outcome, n.TransactionID = entities.WebhookOutcomeRefunded, refundParentID(evt.Resource.Links)
	}
	return n, nil
}

// refundParentID extracts the capture or sale id from the refund's rel=up link.
func refundParentID(links []paypalLink) string {
	for _, l := range links {
		if !strings.EqualFold(l.Rel, "up") {
			continue
		}
		u, err := url.Parse(l.Href)
		if err != nil {
			continue
		}
		for _, prefix := range paypalRefundParentPrefixes {
			if strings.HasPrefix(u.Path, prefix) {
				if id := path.Base(u.Path); id != "" && id != "." && id != "/" && strings.TrimPrefix(u.Path, prefix) == id {
					return id
				}
			}
		}
	}
	return ""
}

func isPayPalCertURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "https" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == "paypal.com" || strings.HasSuffix(host, ".paypal.com")
}
