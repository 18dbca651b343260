package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"

	PayPalModeSandbox = "sandbox"
	PayPalModeLive    = "live"
)

// Config is the process configuration read from the environment.
//
// Table names are read by the repositories themselves (DONATIONS_TABLE,
// DONATION_EVENTS_TABLE, CAMPAIGNS_TABLE).
type Config struct {
	Port            int
	DefaultCurrency string
	ProviderTimeout time.Duration

	CacheBackend  string
	CacheHost     string
	CachePort     string
	CachePassword string

	StripeSecretKey     string
	StripeWebhookSecret string
	StripeReturnURL     string

	PayPalMode         string
	PayPalClientID     string
	PayPalClientSecret string
	PayPalWebhookID    string
	PayPalReturnURL    string
	PayPalCancelURL    string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	BankTransferEnabled      bool
	BankTransferInstructions string

	WebhookAllowUnverified bool
}

func Load() Config {
	cfg := Config{
		Port:            getenvInt("PORT", 8080),
		DefaultCurrency: strings.ToUpper(getenvDefault("DEFAULT_CURRENCY", "USD")),
		ProviderTimeout: getenvDuration("PROVIDER_TIMEOUT", 30*time.Second),

		CacheBackend:  strings.ToLower(getenvDefault("CACHE_BACKEND", CacheBackendRedis)),
		CacheHost:     getenvDefault("CACHE_HOST", "localhost"),
		CachePort:     getenvDefault("CACHE_PORT", "6379"),
		CachePassword: os.Getenv("CACHE_PASSWORD"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		StripeReturnURL:     os.Getenv("STRIPE_RETURN_URL"),

		PayPalMode:         strings.ToLower(getenvDefault("PAYPAL_MODE", PayPalModeSandbox)),
		PayPalClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		PayPalClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
		PayPalWebhookID:    os.Getenv("PAYPAL_WEBHOOK_ID"),
		PayPalReturnURL:    os.Getenv("PAYPAL_RETURN_URL"),
		PayPalCancelURL:    os.Getenv("PAYPAL_CANCEL_URL"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     getenvBool("PAYMENT_GATEWAY_MOCK", false) || getenvBool("MERCADOPAGO_MOCK", false),

		BankTransferEnabled:      getenvBool("BANK_TRANSFER_ENABLED", true),
		BankTransferInstructions: os.Getenv("BANK_TRANSFER_INSTRUCTIONS"),

		WebhookAllowUnverified: getenvBool("WEBHOOK_ALLOW_UNVERIFIED", false),
	}

	if cfg.PayPalMode != PayPalModeLive && cfg.PayPalMode != PayPalModeSandbox {
		log.Printf("[config] unknown PAYPAL_MODE=%s, falling back to %s", cfg.PayPalMode, PayPalModeSandbox)
		cfg.PayPalMode = PayPalModeSandbox
	}
	return cfg
}

func (c Config) StripeEnabled() bool { return c.StripeSecretKey != "" }

func (c Config) PayPalEnabled() bool {
	return c.PayPalClientID != "" && c.PayPalClientSecret != ""
}

func (c Config) MercadoPagoEnabled() bool {
	return c.PaymentGatewayMock || c.MercadoPagoAccessToken != ""
}

func (c Config) CacheAddr() string { return c.CacheHost + ":" + c.CachePort }

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

// getenvDuration accepts Go durations ("45s") or plain seconds ("45").
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	log.Printf("[config] invalid %s=%q, using %s", key, v, def)
	return def
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "":
		return def
	case "1", "true", "yes", "on", "mock":
		return true
	default:
		return false
	}
}
