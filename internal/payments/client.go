package payments

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"espaygw/internal/metrics"
	"espaygw/internal/signature"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client talks to the partner on behalf of one inbound request at a time.
// It holds only read-only state and is safe for concurrent use.
type Client struct {
	cfg        Config
	key        *rsa.PrivateKey
	dispatcher *Dispatcher
	logger     *zap.SugaredLogger
	now        func() time.Time
	newID      func() uuid.UUID
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the transport-tuned default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func WithIDSource(newID func() uuid.UUID) Option {
	return func(c *Client) { c.newID = newID }
}

// NewClient fails when a private key is configured but cannot be parsed.
// An absent key only disables the RSA-signed products.
func NewClient(cfg Config, logger *zap.SugaredLogger, opts ...Option) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	c := &Client{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(c)
	}

	if strings.TrimSpace(cfg.SNAP.PrivateKeyPEM) != "" {
		key, err := signature.ParsePrivateKey(cfg.SNAP.PrivateKeyPEM)
		if err != nil {
			return nil, fmt.Errorf("ESPAY_PRIVATE_KEY_PEM: %w", err)
		}
		c.key = key
	}

	c.dispatcher = NewDispatcher(cfg.Timeouts, c.httpClient, logger)
	return c, nil
}

func (c *Client) Config() Config { return c.cfg }

// Products reports which products have complete credentials.
func (c *Client) Products() map[string]bool {
	return map[string]bool{
		ProductQRIS:       c.requireSNAP(ProductQRIS) == nil,
		ProductHostToHost: c.requireSNAP(ProductHostToHost) == nil,
		ProductPushToPay:  len(c.cfg.PushToPay.Missing()) == 0,
		ProductInvoice:    len(c.cfg.Invoice.Missing()) == 0,
	}
}

func (c *Client) requireSNAP(product string) error {
	if names := c.cfg.SNAP.Missing(); len(names) > 0 {
		return missingConfig(product, names)
	}
	if c.key == nil {
		return configError(product, signature.ErrMissingKey)
	}
	return nil
}

// snapHeaders are shared by every RSA-signed request.
func (c *Client) snapHeaders(timestamp, sig string, now time.Time) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("X-TIMESTAMP", timestamp)
	h.Set("X-SIGNATURE", sig)
	h.Set("X-EXTERNAL-ID", ExternalID(now, c.newID()))
	h.Set("X-PARTNER-ID", c.cfg.SNAP.PartnerID)
	h.Set("CHANNEL-ID", c.cfg.SNAP.ChannelID)
	return h
}

func (c *Client) observe(product string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(KindOf(err))
		if outcome == "" {
			outcome = "internal"
		}
	}
	metrics.ObservePartnerCall(product, outcome, time.Since(start).Seconds())
}

// checkSNAPCode treats any responseCode not starting with "200" as a
// business failure, whatever the HTTP status.
func checkSNAPCode(product string, r *reply, code, message string) error {
	if code == "" {
		if !r.ok() {
			return r.unexpectedStatus(product)
		}
		return &Error{Kind: KindResponseFormat, Product: product, StatusCode: r.statusCode, Message: "response has no responseCode", Raw: string(r.body)}
	}
	if !strings.HasPrefix(code, "200") {
		return &Error{Kind: KindBusiness, Product: product, StatusCode: r.statusCode, Code: code, Message: message, Raw: string(r.body)}
	}
	return nil
}

// checkLegacyCode handles the error_code convention of the form APIs. Any
// code other than "0000" is a business failure. When codeRequired is false an
// absent code on a 2xx reply is accepted.
func checkLegacyCode(product string, r *reply, code, message string, codeRequired bool) error {
	if code != "" && code != "0000" {
		return &Error{Kind: KindBusiness, Product: product, StatusCode: r.statusCode, Code: code, Message: message, Raw: string(r.body)}
	}
	if !r.ok() {
		return r.unexpectedStatus(product)
	}
	if r.empty() {
		return &Error{Kind: KindResponseFormat, Product: product, StatusCode: r.statusCode, Message: "empty partner response", Raw: string(r.body)}
	}
	if code == "" && codeRequired {
		return &Error{Kind: KindResponseFormat, Product: product, StatusCode: r.statusCode, Message: "response has no error_code", Raw: string(r.body)}
	}
	return nil
}

func isKeyError(err error) bool {
	return errors.Is(err, signature.ErrMissingKey) || errors.Is(err, signature.ErrInvalidKey)
}
