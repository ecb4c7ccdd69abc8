package main

import (
	"errors"
	"net/http"

	"espaygw/internal/payments"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusNotFound, "not found")
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)

	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)

	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter)
}

type partnerErrorEnvelope struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Status    int               `json:"status"`
	ErrorType string            `json:"error_type"`
	Product   string            `json:"product,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	// partner detail, present once a reply was received
	PartnerStatus  int    `json:"partner_status,omitempty"`
	PartnerCode    string `json:"partner_code,omitempty"`
	PartnerMessage string `json:"partner_message,omitempty"`
	PartnerRaw     string `json:"partner_raw,omitempty"`
}

// statusForKind maps a failure kind to the status returned to the caller.
func statusForKind(perr *payments.Error) (int, string) {
	switch perr.Kind {
	case payments.KindConfiguration:
		return http.StatusInternalServerError, "configuration"
	case payments.KindValidation:
		return http.StatusBadRequest, "validation"
	case payments.KindTransport:
		if perr.Timeout() {
			return http.StatusGatewayTimeout, "transport"
		}
		return http.StatusBadGateway, "transport"
	case payments.KindUpstream:
		return http.StatusBadGateway, "upstream"
	case payments.KindBusiness:
		return http.StatusUnprocessableEntity, "business"
	case payments.KindAuth:
		return http.StatusBadGateway, "partner_auth"
	case payments.KindResponseFormat:
		return http.StatusBadGateway, "response_format"
	}
	return http.StatusInternalServerError, "internal"
}

// partnerErrorResponse reports a failure from the payments client with the
// partner's status and raw body so callers can diagnose without server logs.
func (app *application) partnerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var perr *payments.Error
	if !errors.As(err, &perr) {
		app.internalServerError(w, r, err)
		return
	}

	status, errorType := statusForKind(perr)
	logArgs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"product", perr.Product,
		"kind", perr.Kind,
		"partner_status", perr.StatusCode,
		"partner_code", perr.Code,
		"error", perr.Error(),
	}
	if status >= 500 {
		app.logger.Errorw("partner call failed", logArgs...)
	} else {
		app.logger.Warnw("partner call rejected", logArgs...)
	}

	message := perr.Message
	if message == "" {
		message = string(perr.Kind) + " error"
	}
	env := partnerErrorEnvelope{
		Success:       false,
		Message:       message,
		Status:        status,
		ErrorType:     errorType,
		Product:       perr.Product,
		Fields:        perr.Fields,
		PartnerStatus: perr.StatusCode,
		PartnerCode:   perr.Code,
		PartnerRaw:    perr.Raw,
	}
	if perr.Kind == payments.KindBusiness {
		env.PartnerMessage = perr.Message
	}
	writeJSON(w, status, env)
}

func (app *application) validationErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	fields := validationFields(err)
	if fields == nil {
		app.badRequestResponse(w, r, err)
		return
	}
	app.logger.Warnw("validation failed", "method", r.Method, "path", r.URL.Path, "fields", fields)

	writeJSON(w, http.StatusBadRequest, partnerErrorEnvelope{
		Success:   false,
		Message:   "invalid request",
		Status:    http.StatusBadRequest,
		ErrorType: "validation",
		Fields:    fields,
	})
}
