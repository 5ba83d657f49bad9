package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the runtime configuration of the API, read from the environment.
//
// Variables are loaded from .env by godotenv/autoload in main; real environment
// variables always win.
type Config struct {
	Port int

	JWTSecret string
	JWTTTL    time.Duration

	// InvoiceTaxRate is applied to quotations and invoices (0.21 = 21%).
	InvoiceTaxRate float64

	WorkshopCacheTTL time.Duration

	// RedisAddr enables the workflow event publisher when set.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	EventsChannel string

	MercadoPagoAccessToken string
}

func Load() Config {
	return Config{
		Port:                   getenvInt("PORT", 8080),
		JWTSecret:              getenvDefault("JWT_SECRET", "change-me-in-production"),
		JWTTTL:                 getenvDuration("JWT_TTL", 24*time.Hour),
		InvoiceTaxRate:         getenvFloat("INVOICE_TAX_RATE", 0.21),
		WorkshopCacheTTL:       getenvDuration("WORKSHOP_CACHE_TTL", 5*time.Minute),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getenvInt("REDIS_DB", 0),
		EventsChannel:          getenvDefault("EVENTS_CHANNEL", "tallerhub.events"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
	}
}

// PaymentGatewayMockEnabled reports whether payments should skip Mercado Pago.
func PaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

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
		log.Printf("[config] invalid int key=%s value=%q using default=%d", key, v, def)
		return def
	}
	return n
}

func getenvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		log.Printf("[config] invalid float key=%s value=%q using default=%v", key, v, def)
		return def
	}
	return f
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] invalid duration key=%s value=%q using default=%s", key, v, def)
		return def
	}
	return d
}
