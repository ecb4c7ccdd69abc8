package main

import (
	"net/http"

	"espaygw/internal/payments"

	"github.com/shopspring/decimal"
)

type pushToPayPayload struct {
	ProductCode string `json:"product_code" validate:"required,oneof=OVO JENIUS QRIS" example:"QRIS"`
	OrderID     string `json:"order_id" validate:"required,max=20,excludesall=#" example:"ORDER-TEST-1"`
	// Amount is in rupiah; any fraction is dropped before signing.
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"1000"`
	CustomerID  string          `json:"customer_id" validate:"required,max=64" example:"cust-001"`
	Description string          `json:"description" validate:"required,max=20" example:"Parfum 50ml"`
	PromoCode   string          `json:"promo_code" validate:"omitempty,max=64"`
	IsSync      int             `json:"is_sync" validate:"oneof=0 1" example:"0"`
	BranchID    string          `json:"branch_id" validate:"omitempty,max=64"`
	PosID       string          `json:"pos_id" validate:"omitempty,max=64"`
}

// PushToPay godoc
//
//	@Summary		Request a PushToPay QR
//	@Description	Signs a PushToPay request (OVO, JENIUS or QRIS) and returns the QR image and link
//	@Tags			PushToPay
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		pushToPayPayload	true	"PushToPay request"
//	@Success		200		{object}	payments.Result
//	@Failure		400		{object}	partnerErrorEnvelope	"Invalid request"
//	@Failure		422		{object}	partnerErrorEnvelope	"Partner refused the request"
//	@Failure		500		{object}	partnerErrorEnvelope	"Product not configured"
//	@Failure		502		{object}	partnerErrorEnvelope	"Partner unreachable or failing"
//	@Security		ApiKeyAuth
//	@Router			/pushtopay/qr [post]
func (app *application) pushToPayHandler(w http.ResponseWriter, r *http.Request) {
	var payload pushToPayPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(&payload); err != nil {
		app.validationErrorResponse(w, r, err)
		return
	}

	res, err := app.espay.PushToPay(r.Context(), payments.PushToPayRequest{
		ProductCode: payload.ProductCode,
		OrderID:     payload.OrderID,
		Amount:      payload.Amount,
		CustomerID:  payload.CustomerID,
		Description: payload.Description,
		PromoCode:   payload.PromoCode,
		IsSync:      payload.IsSync == 1,
		BranchID:    payload.BranchID,
		PosID:       payload.PosID,
	})
	if err != nil {
		app.partnerErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, res)
}
