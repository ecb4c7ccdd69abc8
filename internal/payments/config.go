package payments

import (
	"slices"
	"strings"
	"time"
)

type Environment string

const (
	Production Environment = "production"
	Sandbox    Environment = "sandbox"
)

const (
	ProductionBaseURL = "https://api.espay.id"
	SandboxBaseURL    = "https://sandbox-api.espay.id"

	QRISPath       = "/api/v1.0/qr/qr-mpm-generate"
	HostToHostPath = "/apimerchant/v1.0/debit/payment-host-to-host"
	PushToPayPath  = "/rest/digitalpay/pushtopay"
	InvoicePath    = "/rest/merchantpg/sendinvoice"
)

// Config holds the partner credentials. It is built once at startup and
// never modified afterwards.
type Config struct {
	Env     Environment
	BaseURL string // overrides the Env default when set

	SNAP      SNAPConfig
	PushToPay PushToPayConfig
	Invoice   InvoiceConfig
	Timeouts  Timeouts
}

// SNAPConfig covers the RSA-signed endpoints (QRIS MPM, host-to-host).
type SNAPConfig struct {
	PartnerID     string
	MerchantID    string
	SubMerchantID string
	ChannelID     string
	PrivateKeyPEM string
}

type PushToPayConfig struct {
	Username  string
	Password  string
	CommCode  string
	SecretKey string
}

type InvoiceConfig struct {
	CommCode     string
	SignatureKey string
}

type Timeouts struct {
	Connect time.Duration
	Read    time.Duration
	Request time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Connect: 30 * time.Second,
		Read:    60 * time.Second,
		Request: 90 * time.Second,
	}
}

func (c Config) Base() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.Env == Production || c.Env == "" {
		return ProductionBaseURL
	}
	return SandboxBaseURL
}

func (c Config) Endpoint(path string) string {
	return c.Base() + path
}

// Missing returns the environment variable names of absent SNAP values.
func (c SNAPConfig) Missing() []string {
	return missing(map[string]string{
		"ESPAY_PARTNER_ID":      c.PartnerID,
		"ESPAY_MERCHANT_ID":     c.MerchantID,
		"ESPAY_CHANNEL_ID":      c.ChannelID,
		"ESPAY_PRIVATE_KEY_PEM": c.PrivateKeyPEM,
	})
}

func (c PushToPayConfig) Missing() []string {
	return missing(map[string]string{
		"ESPAY_USERNAME":   c.Username,
		"ESPAY_PASSWORD":   c.Password,
		"ESPAY_COMM_CODE":  c.CommCode,
		"ESPAY_SECRET_KEY": c.SecretKey,
	})
}

func (c InvoiceConfig) Missing() []string {
	return missing(map[string]string{
		"ESPAY_VA_COMM_CODE":     c.CommCode,
		"ESPAY_VA_SIGNATURE_KEY": c.SignatureKey,
	})
}

func missing(values map[string]string) []string {
	var out []string
	for name, v := range values {
		if strings.TrimSpace(v) == "" {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}
