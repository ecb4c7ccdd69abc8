package main

import (
	"net/http"

	"espaygw/internal/payments"

	"github.com/shopspring/decimal"
)

type createVAPayload struct {
	Amount           decimal.Decimal `json:"amount" swaggertype:"string" example:"10000.00"`
	CustomerName     string          `json:"customer_name" validate:"required,max=100" example:"Budi Santoso"`
	CustomerPhone    string          `json:"customer_phone" validate:"required,idphone" example:"081234567890"`
	CustomerEmail    string          `json:"customer_email" validate:"omitempty,email" example:"budi@example.com"`
	BankCode         string          `json:"bank_code" validate:"omitempty,len=3,numeric" example:"014"`
	VAExpiredMinutes int             `json:"va_expired_minutes" validate:"omitempty,min=1" example:"60"`
	OrderID          string          `json:"order_id" validate:"omitempty,max=32,excludesall=#"`
}

// CreateVA godoc
//
//	@Summary		Create a virtual account invoice
//	@Description	Registers an invoice and returns the VA number the payer transfers to
//	@Tags			Virtual Account
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		createVAPayload	true	"VA request"
//	@Success		200		{object}	payments.Result
//	@Failure		400		{object}	partnerErrorEnvelope	"Invalid request"
//	@Failure		422		{object}	partnerErrorEnvelope	"Partner refused the request"
//	@Failure		500		{object}	partnerErrorEnvelope	"Product not configured"
//	@Failure		502		{object}	partnerErrorEnvelope	"Partner unreachable or failing"
//	@Security		ApiKeyAuth
//	@Router			/va [post]
func (app *application) createVAHandler(w http.ResponseWriter, r *http.Request) {
	var payload createVAPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(&payload); err != nil {
		app.validationErrorResponse(w, r, err)
		return
	}

	res, err := app.espay.CreateVA(r.Context(), payments.VARequest{
		OrderID:        payload.OrderID,
		Amount:         payload.Amount,
		CustomerName:   payload.CustomerName,
		CustomerPhone:  payload.CustomerPhone,
		CustomerEmail:  payload.CustomerEmail,
		BankCode:       payload.BankCode,
		ExpiredMinutes: payload.VAExpiredMinutes,
	})
	if err != nil {
		app.partnerErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, res)
}
