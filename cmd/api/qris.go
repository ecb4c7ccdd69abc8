package main

import (
	"net/http"

	"espaygw/internal/payments"
)

type amountPayload struct {
	Value    string `json:"value" validate:"required,amount2dp" example:"150000.00"`
	Currency string `json:"currency" validate:"omitempty,eq=IDR" example:"IDR"`
}

type generateQRISPayload struct {
	PartnerReferenceNo string        `json:"partner_reference_no" validate:"required,max=32" example:"INV-20250905-001"`
	Amount             amountPayload `json:"amount" validate:"required"`
	ProductCode        string        `json:"product_code" validate:"omitempty,eq=QRIS" example:"QRIS"`
	ValidityPeriod     string        `json:"validity_period" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2025-09-05T23:59:00+07:00"`
}

// GenerateQRIS godoc
//
//	@Summary		Generate a dynamic QRIS code
//	@Description	Signs a QRIS MPM request with the merchant RSA key and returns the normalized partner response
//	@Tags			QRIS
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		generateQRISPayload	true	"QRIS request"
//	@Success		200		{object}	payments.Result
//	@Failure		400		{object}	partnerErrorEnvelope	"Invalid request"
//	@Failure		422		{object}	partnerErrorEnvelope	"Partner refused the request"
//	@Failure		500		{object}	partnerErrorEnvelope	"Product not configured"
//	@Failure		502		{object}	partnerErrorEnvelope	"Partner unreachable or failing"
//	@Security		ApiKeyAuth
//	@Router			/qris/generate [post]
func (app *application) generateQRISHandler(w http.ResponseWriter, r *http.Request) {
	var payload generateQRISPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(&payload); err != nil {
		app.validationErrorResponse(w, r, err)
		return
	}

	res, err := app.espay.GenerateQRIS(r.Context(), payments.QRISRequest{
		PartnerReferenceNo: payload.PartnerReferenceNo,
		Amount:             payments.Amount{Value: payload.Amount.Value, Currency: payload.Amount.Currency},
		ProductCode:        payload.ProductCode,
		ValidityPeriod:     payload.ValidityPeriod,
	})
	if err != nil {
		app.partnerErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, res)
}
