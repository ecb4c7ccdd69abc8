package diag

import (
	"strings"

	"espaygw/internal/payments"
)

// Mask keeps at most the first four characters of a secret.
func Mask(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return ""
	case len(s) <= 4:
		return "***"
	default:
		return s[:4] + "***"
	}
}

type ConfigSummary struct {
	Environment string              `json:"environment"`
	BaseURL     string              `json:"base_url"`
	Endpoints   map[string]string   `json:"endpoints"`
	Products    map[string]bool     `json:"products"`
	Missing     map[string][]string `json:"missing,omitempty"`
	PartnerID   string              `json:"partner_id"`
	MerchantID  string              `json:"merchant_id"`
	ChannelID   string              `json:"channel_id"`
	PrivateKey  string              `json:"private_key"`
	Username    string              `json:"username"`
	Password    string              `json:"password"`
	CommCode    string              `json:"comm_code"`
	SecretKey   string              `json:"secret_key"`
	VACommCode  string              `json:"va_comm_code"`
	VASignature string              `json:"va_signature_key"`
	Timeouts    map[string]string   `json:"timeouts"`
}

// Summarize describes cfg with every secret masked. Identifiers the partner
// prints on its own dashboards are shown in full.
func Summarize(cfg payments.Config) ConfigSummary {
	env := string(cfg.Env)
	if env == "" {
		env = string(payments.Production)
	}

	missing := map[string][]string{}
	if m := cfg.SNAP.Missing(); len(m) > 0 {
		missing["snap"] = m
	}
	if m := cfg.PushToPay.Missing(); len(m) > 0 {
		missing[payments.ProductPushToPay] = m
	}
	if m := cfg.Invoice.Missing(); len(m) > 0 {
		missing[payments.ProductInvoice] = m
	}
	snapOK := len(cfg.SNAP.Missing()) == 0

	key := ""
	if strings.TrimSpace(cfg.SNAP.PrivateKeyPEM) != "" {
		key = "set"
	}

	return ConfigSummary{
		Environment: env,
		BaseURL:     cfg.Base(),
		Endpoints: map[string]string{
			payments.ProductQRIS:       cfg.Endpoint(payments.QRISPath),
			payments.ProductHostToHost: cfg.Endpoint(payments.HostToHostPath),
			payments.ProductPushToPay:  cfg.Endpoint(payments.PushToPayPath),
			payments.ProductInvoice:    cfg.Endpoint(payments.InvoicePath),
		},
		Products: map[string]bool{
			payments.ProductQRIS:       snapOK,
			payments.ProductHostToHost: snapOK,
			payments.ProductPushToPay:  len(cfg.PushToPay.Missing()) == 0,
			payments.ProductInvoice:    len(cfg.Invoice.Missing()) == 0,
		},
		Missing:     missing,
		PartnerID:   cfg.SNAP.PartnerID,
		MerchantID:  cfg.SNAP.MerchantID,
		ChannelID:   cfg.SNAP.ChannelID,
		PrivateKey:  key,
		Username:    cfg.PushToPay.Username,
		Password:    Mask(cfg.PushToPay.Password),
		CommCode:    cfg.PushToPay.CommCode,
		SecretKey:   Mask(cfg.PushToPay.SecretKey),
		VACommCode:  cfg.Invoice.CommCode,
		VASignature: Mask(cfg.Invoice.SignatureKey),
		Timeouts: map[string]string{
			"connect": cfg.Timeouts.Connect.String(),
			"read":    cfg.Timeouts.Read.String(),
			"request": cfg.Timeouts.Request.String(),
		},
	}
}
