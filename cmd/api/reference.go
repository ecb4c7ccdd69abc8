package main

import (
	"net/http"
	"time"

	"espaygw/internal/payments"
)

type bankCodesResponse struct {
	Banks        []payments.Bank   `json:"banks"`
	ProductCodes map[string]string `json:"product_codes"`
}

// BankCodes godoc
//
//	@Summary		List bank and product codes
//	@Description	Bank codes with their pay options, and wallet product codes, accepted by host-to-host payments
//	@Tags			Reference
//	@Produce		json
//	@Success		200	{object}	bankCodesResponse
//	@Router			/bank-codes [get]
func (app *application) bankCodesHandler(w http.ResponseWriter, r *http.Request) {
	app.jsonResponse(w, http.StatusOK, bankCodesResponse{
		Banks:        payments.Banks,
		ProductCodes: payments.ProductCodes,
	})
}

type healthResponse struct {
	Status       string          `json:"status"`
	Service      string          `json:"service"`
	Env          string          `json:"env"`
	Version      string          `json:"version"`
	Timestamp    string          `json:"timestamp"`
	MerchantCode string          `json:"merchant_code"`
	Products     map[string]bool `json:"products"`
}

// Health godoc
//
//	@Summary		Health check
//	@Description	Reports service status and which products have complete credentials
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	healthResponse
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	app.jsonResponse(w, http.StatusOK, healthResponse{
		Status:       "ok",
		Service:      "espaygw",
		Env:          app.config.env,
		Version:      version,
		Timestamp:    payments.SNAPTimestamp(time.Now()),
		MerchantCode: app.config.espay.SNAP.PartnerID,
		Products:     app.espay.Products(),
	})
}
