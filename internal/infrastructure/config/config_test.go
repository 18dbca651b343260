package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DEFAULT_CURRENCY", "PROVIDER_TIMEOUT", "CACHE_BACKEND", "PAYPAL_MODE", "BANK_TRANSFER_ENABLED", "WEBHOOK_ALLOW_UNVERIFIED", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "STRIPE_SECRET_KEY", "PAYPAL_CLIENT_ID", "PAYPAL_CLIENT_SECRET", "MERCADOPAGO_ACCESS_TOKEN"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.DefaultCurrency != "USD" || cfg.ProviderTimeout != 30*time.Second {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.CacheBackend != CacheBackendRedis || cfg.PayPalMode != PayPalModeSandbox {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if !cfg.BankTransferEnabled || cfg.WebhookAllowUnverified {
		t.Fatalf("unexpected flags %+v", cfg)
	}
	if cfg.StripeEnabled() || cfg.PayPalEnabled() || cfg.MercadoPagoEnabled() {
		t.Fatalf("expected providers disabled without credentials")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_CURRENCY", "eur")
	t.Setenv("PROVIDER_TIMEOUT", "45")
	t.Setenv("PAYPAL_MODE", "LIVE")
	t.Setenv("PAYPAL_CLIENT_ID", "id")
	t.Setenv("PAYPAL_CLIENT_SECRET", "secret")
	t.Setenv("WEBHOOK_ALLOW_UNVERIFIED", "true")
	t.Setenv("BANK_TRANSFER_ENABLED", "false")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "mock")
	t.Setenv("CACHE_HOST", "cache")
	t.Setenv("CACHE_PORT", "6380")

	cfg := Load()
	if cfg.Port != 9090 || cfg.DefaultCurrency != "EUR" || cfg.ProviderTimeout != 45*time.Second {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.PayPalMode != PayPalModeLive || !cfg.PayPalEnabled() {
		t.Fatalf("expected live paypal, got %+v", cfg)
	}
	if !cfg.WebhookAllowUnverified || cfg.BankTransferEnabled || !cfg.MercadoPagoEnabled() {
		t.Fatalf("unexpected flags %+v", cfg)
	}
	if cfg.CacheAddr() != "cache:6380" {
		t.Fatalf("expected cache:6380, got %s", cfg.CacheAddr())
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "abc")
	t.Setenv("PROVIDER_TIMEOUT", "-3s")
	t.Setenv("PAYPAL_MODE", "staging")

	cfg := Load()
	if cfg.Port != 8080 || cfg.ProviderTimeout != 30*time.Second || cfg.PayPalMode != PayPalModeSandbox {
		t.Fatalf("expected fallbacks, got %+v", cfg)
	}
}
