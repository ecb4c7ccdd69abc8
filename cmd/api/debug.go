package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"espaygw/internal/diag"
	"espaygw/internal/payments"
	"espaygw/internal/signature"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebugConfig godoc
//
//	@Summary		Show partner configuration
//	@Description	Masked configuration and the endpoints each product calls
//	@Tags			Debug
//	@Produce		json
//	@Success		200	{object}	diag.ConfigSummary
//	@Failure		401	{object}	error	"Unauthorized"
//	@Router			/debug/config [get]
func (app *application) debugConfigHandler(w http.ResponseWriter, r *http.Request) {
	app.jsonResponse(w, http.StatusOK, diag.Summarize(app.config.espay))
}

// DebugDNS godoc
//
//	@Summary		Resolve a host name
//	@Description	Resolves the given host, or the partner host when omitted
//	@Tags			Debug
//	@Produce		json
//	@Param			host	query		string	false	"Host name or URL"
//	@Success		200		{object}	diag.Resolution
//	@Failure		502		{object}	error	"Lookup failed"
//	@Router			/debug/dns [get]
func (app *application) debugDNSHandler(w http.ResponseWriter, r *http.Request) {
	host := r.URL.Query().Get("host")
	if host == "" {
		host = app.config.espay.Base()
	}

	res, err := diag.Resolve(r.Context(), app.resolver, host)
	if err != nil {
		if errors.Is(err, diag.ErrEmptyHost) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.logger.Warnw("dns lookup failed", "host", host, "error", err)
		writeJSONError(w, http.StatusBadGateway, err.Error())
		return
	}

	app.jsonResponse(w, http.StatusOK, res)
}

// DebugEgressIP godoc
//
//	@Summary		Show the egress IP
//	@Description	The public address partner calls leave from, for allow-listing
//	@Tags			Debug
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		502	{object}	error	"Lookup failed"
//	@Router			/debug/egress-ip [get]
func (app *application) debugEgressIPHandler(w http.ResponseWriter, r *http.Request) {
	ip, err := diag.EgressIP(r.Context(), app.egressClient, app.config.egressURL)
	if err != nil {
		app.logger.Warnw("egress ip lookup failed", "error", err)
		writeJSONError(w, http.StatusBadGateway, err.Error())
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{"ip": ip})
}

type debugSignaturePayload struct {
	Scheme string `json:"scheme" validate:"required,oneof=snap pushtopay" example:"snap"`

	// snap
	Method    string          `json:"method" example:"POST"`
	Path      string          `json:"path" example:"/api/v1.0/qr/qr-mpm-generate"`
	Body      json.RawMessage `json:"body" swaggertype:"object"`
	Timestamp string          `json:"timestamp" example:"2025-09-05T10:00:00+07:00"`

	// pushtopay
	RequestUUID string          `json:"rq_uuid"`
	ProductCode string          `json:"product_code" example:"QRIS"`
	OrderID     string          `json:"order_id" example:"ORDER-TEST-1"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"1000"`
}

// DebugSignature godoc
//
//	@Summary		Preview a signing string
//	@Description	Shows the canonical string for an RSA-signed body, or the PushToPay signature with the secret masked
//	@Tags			Debug
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		debugSignaturePayload	true	"Signing inputs"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	error	"Invalid request"
//	@Router			/debug/signature [post]
func (app *application) debugSignatureHandler(w http.ResponseWriter, r *http.Request) {
	var payload debugSignaturePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(&payload); err != nil {
		app.validationErrorResponse(w, r, err)
		return
	}

	switch payload.Scheme {
	case "snap":
		path := payload.Path
		if path == "" {
			path = payments.QRISPath
		}
		ts := payload.Timestamp
		if ts == "" {
			ts = payments.SNAPTimestamp(time.Now())
		}
		preview, err := diag.PreviewSNAP(payload.Method, path, payload.Body, ts)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		app.jsonResponse(w, http.StatusOK, preview)

	case "pushtopay":
		rq := payload.RequestUUID
		if rq == "" {
			rq = signature.RequestUUID(uuid.New())
		}
		cfg := app.config.espay.PushToPay
		preview := diag.PreviewPushToPay(signature.PushToPayFields{
			RequestUUID: rq,
			CommCode:    cfg.CommCode,
			ProductCode: payload.ProductCode,
			OrderID:     payload.OrderID,
			Amount:      payments.IntegerAmount(payload.Amount),
			SecretKey:   cfg.SecretKey,
		})
		app.jsonResponse(w, http.StatusOK, preview)
	}
}
