package payments

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ConfigFromEnv reads the ESPAY_* variables through lookup (os.LookupEnv in
// production). Only the channel id and timeouts have defaults.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	var errs []error
	duration := func(key string, fallback time.Duration) time.Duration {
		v := get(key)
		if v == "" {
			return fallback
		}
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			errs = append(errs, fmt.Errorf("%s: invalid duration %q", key, v))
			return fallback
		}
		return d
	}

	env := Production
	if v := strings.ToLower(get("ESPAY_ENV")); v != "" && v != string(Production) {
		env = Sandbox
	}

	channelID := get("ESPAY_CHANNEL_ID")
	if channelID == "" {
		channelID = "ESPAY"
	}

	// not trimmed: PEM line structure matters
	key, _ := lookup("ESPAY_PRIVATE_KEY_PEM")

	def := DefaultTimeouts()
	cfg := Config{
		Env:     env,
		BaseURL: get("ESPAY_BASE_URL"),
		SNAP: SNAPConfig{
			PartnerID:     get("ESPAY_PARTNER_ID"),
			MerchantID:    get("ESPAY_MERCHANT_ID"),
			SubMerchantID: get("ESPAY_SUB_MERCHANT_ID"),
			ChannelID:     channelID,
			PrivateKeyPEM: key,
		},
		PushToPay: PushToPayConfig{
			Username:  get("ESPAY_USERNAME"),
			Password:  get("ESPAY_PASSWORD"),
			CommCode:  get("ESPAY_COMM_CODE"),
			SecretKey: get("ESPAY_SECRET_KEY"),
		},
		Invoice: InvoiceConfig{
			CommCode:     get("ESPAY_VA_COMM_CODE"),
			SignatureKey: get("ESPAY_VA_SIGNATURE_KEY"),
		},
		Timeouts: Timeouts{
			Connect: duration("ESPAY_CONNECT_TIMEOUT", def.Connect),
			Read:    duration("ESPAY_READ_TIMEOUT", def.Read),
			Request: duration("ESPAY_REQUEST_TIMEOUT", def.Request),
		},
	}
	return cfg, errors.Join(errs...)
}
