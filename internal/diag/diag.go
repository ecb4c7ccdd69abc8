// Package diag holds operator aids for checking connectivity and signing
// inputs without sending a payment.
package diag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultEgressURL = "https://api.ipify.org?format=json"

var ErrEmptyHost = errors.New("diag: host is required")

type Resolution struct {
	Host      string   `json:"host"`
	Addresses []string `json:"addresses"`
	Duration  string   `json:"duration"`
}

// Resolve looks host up with r, or the default resolver when r is nil. A
// full URL or a host:port pair is accepted and reduced to its host name.
func Resolve(ctx context.Context, r *net.Resolver, host string) (Resolution, error) {
	host = strings.TrimSpace(host)
	if strings.Contains(host, "://") {
		if u, err := url.Parse(host); err == nil {
			host = u.Hostname()
		}
	} else if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if host == "" {
		return Resolution{}, ErrEmptyHost
	}
	if r == nil {
		r = net.DefaultResolver
	}

	start := time.Now()
	addrs, err := r.LookupHost(ctx, host)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolve %s: %w", host, err)
	}
	return Resolution{Host: host, Addresses: addrs, Duration: time.Since(start).String()}, nil
}

type egressResponse struct {
	IP string `json:"ip"`
}

// EgressIP asks an echo service which address outbound calls leave from.
// Partners allow-list this address. The service may answer with JSON
// {"ip": "..."} or a bare address.
func EgressIP(ctx context.Context, hc *http.Client, endpoint string) (string, error) {
	if endpoint == "" {
		endpoint = DefaultEgressURL
	}
	if hc == nil {
		hc = &http.Client{Timeout: 8 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	res, err := hc.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return "", fmt.Errorf("egress lookup: %s", res.Status)
	}
	body, err := io.ReadAll(io.LimitReader(res.Body, 4096))
	if err != nil {
		return "", err
	}

	var out egressResponse
	if err := json.Unmarshal(body, &out); err == nil && out.IP != "" {
		return out.IP, nil
	}
	ip := strings.TrimSpace(string(body))
	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("egress lookup: unexpected body %q", ip)
	}
	return ip, nil
}
