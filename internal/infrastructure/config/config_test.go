package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "JWT_TTL", "INVOICE_TAX_RATE", "WORKSHOP_CACHE_TTL", "REDIS_ADDR", "EVENTS_CHANNEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 0.21, cfg.InvoiceTaxRate)
	assert.Equal(t, 5*time.Minute, cfg.WorkshopCacheTTL)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, "tallerhub.events", cfg.EventsChannel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("INVOICE_TAX_RATE", "0.1")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 0.1, cfg.InvoiceTaxRate)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "abc")
	t.Setenv("JWT_TTL", "forever")
	t.Setenv("INVOICE_TAX_RATE", "-1")

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 0.21, cfg.InvoiceTaxRate)
}

func TestPaymentGatewayMockEnabled(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	assert.False(t, PaymentGatewayMockEnabled())

	t.Setenv("MERCADOPAGO_MOCK", "on")
	assert.True(t, PaymentGatewayMockEnabled())
}
