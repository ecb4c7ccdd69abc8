package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// maxReplyBytes bounds how much of a partner body is read.
const maxReplyBytes = 4 << 20

// call is one outbound POST.
type call struct {
	product string
	path    string
	url     string
	header  http.Header
	body    []byte
}

type reply struct {
	statusCode int
	header     http.Header
	body       []byte
}

func (r *reply) ok() bool { return r.statusCode >= 200 && r.statusCode < 300 }

// Dispatcher performs exactly one POST per call and never retries.
type Dispatcher struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.SugaredLogger
}

func NewDispatcher(t Timeouts, hc *http.Client, logger *zap.SugaredLogger) *Dispatcher {
	if t.Connect <= 0 || t.Read <= 0 || t.Request <= 0 {
		def := DefaultTimeouts()
		if t.Connect <= 0 {
			t.Connect = def.Connect
		}
		if t.Read <= 0 {
			t.Read = def.Read
		}
		if t.Request <= 0 {
			t.Request = def.Request
		}
	}
	if hc == nil {
		hc = &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   t.Connect,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   t.Connect,
				ResponseHeaderTimeout: t.Read,
				MaxIdleConns:          20,
				IdleConnTimeout:       90 * time.Second,
				ForceAttemptHTTP2:     true,
			},
		}
	}
	// a redirected POST is either replayed (307/308) or turned into a GET
	noRedirect := *hc
	noRedirect.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Dispatcher{httpClient: &noRedirect, timeout: t.Request, logger: logger}
}

func (d *Dispatcher) post(ctx context.Context, c call) (*reply, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(c.body))
	if err != nil {
		return nil, configError(c.product, fmt.Errorf("build request: %w", err))
	}
	for k, vals := range c.header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := d.httpClient.Do(req)
	if err != nil {
		d.logger.Warnw("partner unreachable", "product", c.product, "path", c.path, "duration", time.Since(start), "error", err)
		return nil, &Error{Kind: KindTransport, Product: c.product, Message: "partner unreachable", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Product: c.product, StatusCode: resp.StatusCode, Message: "reading partner response", Err: err}
	}

	d.logger.Infow("partner call", "product", c.product, "path", c.path, "status", resp.StatusCode, "duration", time.Since(start))

	return &reply{statusCode: resp.StatusCode, header: resp.Header, body: raw}, nil
}

// decode classifies the HTTP outcome and unmarshals the body into out.
// Business codes inside the body are checked by the caller.
func (r *reply) decode(product string, out any) error {
	switch {
	case r.statusCode == http.StatusUnauthorized:
		return &Error{Kind: KindAuth, Product: product, StatusCode: r.statusCode, Message: "partner rejected credentials", Raw: string(r.body)}
	case r.statusCode >= 300 && r.statusCode < 400:
		msg := "partner redirected the request"
		if loc := r.header.Get("Location"); loc != "" {
			msg += " to " + loc
		}
		return &Error{Kind: KindUpstream, Product: product, StatusCode: r.statusCode, Message: msg, Raw: string(r.body)}
	case r.statusCode >= 500:
		return &Error{Kind: KindUpstream, Product: product, StatusCode: r.statusCode, Message: "partner error", Raw: string(r.body)}
	}

	if err := json.Unmarshal(r.body, out); err != nil {
		return &Error{Kind: KindResponseFormat, Product: product, StatusCode: r.statusCode, Message: "unexpected partner response", Raw: string(r.body), Err: err}
	}
	return nil
}

// empty reports a body that is null or an object with no members.
func (r *reply) empty() bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r.body, &fields); err != nil {
		return false
	}
	return len(fields) == 0
}

// unexpectedStatus reports a parsed non-2xx reply that carried no business code.
func (r *reply) unexpectedStatus(product string) error {
	return &Error{Kind: KindUpstream, Product: product, StatusCode: r.statusCode, Message: "unexpected partner status", Raw: string(r.body)}
}
