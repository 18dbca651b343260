package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"donations_core/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoClientNotConfigured = errors.New("mercado pago client not configured")
var ErrMercadoPagoPaymentNotFound = errors.New("mercado pago payment not found")

// MercadoPagoClient wraps the Mercado Pago payments SDK. In mock mode
// payments are kept in memory and their status follows the card token.
type MercadoPagoClient struct {
	client   payment.Client
	mockMode bool

	mu       sync.Mutex
	payments map[string]interfaces.MercadoPagoPayment
}

var _ interfaces.IMercadoPagoClient = (*MercadoPagoClient)(nil)

func NewMercadoPagoClient(accessToken string, mockMode bool) (*MercadoPagoClient, error) {
	if mockMode {
		log.Printf("[payment][mercadopago] mock mode enabled")
		return &MercadoPagoClient{mockMode: true, payments: map[string]interfaces.MercadoPagoPayment{}}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][mercadopago] client initialized")

	return &MercadoPagoClient{client: payment.NewClient(cfg)}, nil
}

func (c *MercadoPagoClient) CreatePayment(ctx context.Context, req interfaces.MercadoPagoPaymentRequest) (interfaces.MercadoPagoPayment, error) {
	if c != nil && c.mockMode {
		return c.mockCreate(req)
	}
	if c == nil || c.client == nil {
		return interfaces.MercadoPagoPayment{}, ErrMercadoPagoClientNotConfigured
	}
	log.Printf("[payment][mercadopago] create start donation_id=%s amount=%s", req.DonationID, req.Amount.StringFixed(2))

	resp, err := c.client.Create(ctx, paymentRequest(req))
	if err != nil {
		log.Printf("[payment][mercadopago] sdk create failed donation_id=%s err=%v", req.DonationID, err)
		return interfaces.MercadoPagoPayment{}, err
	}
	out, err := fromSDKPayment(resp)
	if err != nil {
		return interfaces.MercadoPagoPayment{}, err
	}
	log.Printf("[payment][mercadopago] create success donation_id=%s provider_payment_id=%s provider_status=%s", req.DonationID, out.ID, out.Status)
	return out, nil
}

func (c *MercadoPagoClient) GetPayment(ctx context.Context, paymentID string) (interfaces.MercadoPagoPayment, error) {
	if c != nil && c.mockMode {
		c.mu.Lock()
		defer c.mu.Unlock()
		p, ok := c.payments[paymentID]
		if !ok {
			return interfaces.MercadoPagoPayment{}, fmt.Errorf("mercado pago payment %q: %w", paymentID, ErrMercadoPagoPaymentNotFound)
		}
		return p, nil
	}
	if c == nil || c.client == nil {
		return interfaces.MercadoPagoPayment{}, ErrMercadoPagoClientNotConfigured
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return interfaces.MercadoPagoPayment{}, fmt.Errorf("invalid mercado pago payment id %q: %w", paymentID, err)
	}
	resp, err := c.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][mercadopago] sdk get failed provider_payment_id=%s err=%v", paymentID, err)
		return interfaces.MercadoPagoPayment{}, err
	}
	return fromSDKPayment(resp)
}

func paymentRequest(req interfaces.MercadoPagoPaymentRequest) payment.Request {
	out := payment.Request{
		TransactionAmount: req.Amount.InexactFloat64(),
		Token:             req.CardToken,
		PaymentMethodID:   req.PaymentMethodID,
		Installments:      1,
		Description:       req.Description,
		ExternalReference: req.DonationID,
		Metadata:          map[string]any{"donation_id": req.DonationID},
	}
	if req.PayerEmail != "" {
		out.Payer = &payment.PayerRequest{Type: "customer", Email: req.PayerEmail}
	}
	return out
}

func fromSDKPayment(resp *payment.Response) (interfaces.MercadoPagoPayment, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.MercadoPagoPayment{}, err
	}
	return interfaces.MercadoPagoPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		ExternalReference: resp.ExternalReference,
		Raw:               raw,
	}, nil
}

// mockCreate answers from the card token: tokens containing "rejected" are
// declined, "pending" stays in process, anything else is approved.
func (c *MercadoPagoClient) mockCreate(req interfaces.MercadoPagoPaymentRequest) (interfaces.MercadoPagoPayment, error) {
	status, detail := "approved", "accredited"
	switch token := strings.ToLower(req.CardToken); {
	case strings.Contains(token, "rejected"):
		status, detail = "rejected", "cc_rejected_other_reason"
	case strings.Contains(token, "pending"):
		status, detail = "in_process", "pending_contingency"
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	raw, err := json.Marshal(map[string]any{
		"id":                 id,
		"status":             status,
		"status_detail":      detail,
		"external_reference": req.DonationID,
		"transaction_amount": req.Amount.InexactFloat64(),
		"payment_method_id":  req.PaymentMethodID,
		"metadata":           map[string]any{"donation_id": req.DonationID},
		"date_created":       time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return interfaces.MercadoPagoPayment{}, err
	}
	p := interfaces.MercadoPagoPayment{ID: id, Status: status, StatusDetail: detail, ExternalReference: req.DonationID, Raw: raw}

	c.mu.Lock()
	c.payments[id] = p
	c.mu.Unlock()

	log.Printf("[payment][mercadopago] mock create donation_id=%s provider_payment_id=%s provider_status=%s", req.DonationID, id, status)
	return p, nil
}
