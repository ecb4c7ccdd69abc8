package payments

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Kind classifies a failure so callers can map it to a response without
// inspecting messages.
type Kind string

const (
	KindConfiguration  Kind = "configuration"
	KindValidation     Kind = "validation"
	KindTransport      Kind = "transport"
	KindUpstream       Kind = "upstream"
	KindBusiness       Kind = "business"
	KindAuth           Kind = "auth"
	KindResponseFormat Kind = "response_format"
)

type Error struct {
	Kind    Kind
	Product string

	// StatusCode is the partner's HTTP status, zero when no response arrived.
	StatusCode int
	// Code is the partner's business code (responseCode / error_code).
	Code    string
	Message string
	// Raw is the partner's response body as received.
	Raw string
	// Fields carries per-field detail for validation failures.
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s error", e.Product, e.Kind)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " http=%d", e.StatusCode)
	}
	if e.Code != "" {
		fmt.Fprintf(&b, " code=%s", e.Code)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Timeout reports whether a transport failure was caused by a deadline.
func (e *Error) Timeout() bool {
	if e.Kind != KindTransport || e.Err == nil {
		return false
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(e.Err, &te) && te.Timeout()
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func configError(product string, err error) *Error {
	return &Error{Kind: KindConfiguration, Product: product, Message: "partner credentials are not usable", Err: err}
}

func missingConfig(product string, names []string) *Error {
	return &Error{
		Kind:    KindConfiguration,
		Product: product,
		Message: "missing configuration: " + strings.Join(names, ", "),
	}
}

func validationError(product string, fields map[string]string) *Error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return &Error{
		Kind:    KindValidation,
		Product: product,
		Message: "invalid request: " + strings.Join(keys, ", "),
		Fields:  fields,
	}
}
