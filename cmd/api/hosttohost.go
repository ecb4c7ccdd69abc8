package main

import (
	"net/http"

	"espaygw/internal/payments"

	"github.com/shopspring/decimal"
)

type urlParamPayload struct {
	URL        string `json:"url" validate:"required,url" example:"https://shop.example/thank-you"`
	Type       string `json:"type" example:"PAY_RETURN"`
	IsDeeplink string `json:"isDeeplink" validate:"omitempty,oneof=Y N" example:"N"`
}

type payOptionDetailsPayload struct {
	PayMethod   string        `json:"payMethod" validate:"required" example:"014"`
	PayOption   string        `json:"payOption" validate:"required" example:"BCAATM"`
	TransAmount amountPayload `json:"transAmount" validate:"required"`
	FeeAmount   amountPayload `json:"feeAmount" validate:"required"`
}

type additionalInfoPayload struct {
	PayType       string  `json:"payType" validate:"omitempty,oneof=REDIRECT PAYLINK S2BPAY" example:"REDIRECT"`
	UserID        *string `json:"userId"`
	UserName      *string `json:"userName"`
	UserEmail     *string `json:"userEmail" validate:"omitempty,email"`
	UserPhone     *string `json:"userPhone"`
	BuyerID       *string `json:"buyerId"`
	ProductCode   string  `json:"productCode" validate:"required" example:"OVOLINK"`
	BalanceType   *string `json:"balanceType" example:"CASH"`
	BankCardToken *string `json:"bankCardToken"`
}

type hostToHostPayload struct {
	PartnerReferenceNo string                  `json:"partnerReferenceNo" validate:"omitempty,max=32"`
	Amount             amountPayload           `json:"amount" validate:"required"`
	URLParam           urlParamPayload         `json:"urlParam" validate:"required"`
	ValidUpTo          string                  `json:"validUpTo" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	PointOfInitiation  string                  `json:"pointOfInitiation" example:"Website"`
	PayOptionDetails   payOptionDetailsPayload `json:"payOptionDetails" validate:"required"`
	AdditionalInfo     additionalInfoPayload   `json:"additionalInfo" validate:"required"`
}

type simplePaymentPayload struct {
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"10000"`
	CustomerName  string          `json:"customer_name" validate:"required" example:"Budi Santoso"`
	CustomerEmail string          `json:"customer_email" validate:"required,email" example:"budi@example.com"`
	CustomerPhone string          `json:"customer_phone" validate:"required" example:"081234567890"`
	BankCode      string          `json:"bank_code" validate:"omitempty,len=3,numeric" example:"014"`
	ThankYouURL   string          `json:"thank_you_url" validate:"required,url" example:"https://shop.example/thank-you"`
	PaymentType   string          `json:"payment_type" validate:"omitempty,oneof=redirect paylink" example:"redirect"`
}

// HostToHost godoc
//
//	@Summary		Create a host-to-host debit payment
//	@Description	Signs a SNAP debit request and returns the partner checkout URL
//	@Tags			Payment Host to Host
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		hostToHostPayload	true	"Host-to-host request"
//	@Success		200		{object}	payments.Result
//	@Failure		400		{object}	partnerErrorEnvelope	"Invalid request"
//	@Failure		422		{object}	partnerErrorEnvelope	"Partner refused the request"
//	@Failure		500		{object}	partnerErrorEnvelope	"Product not configured"
//	@Failure		502		{object}	partnerErrorEnvelope	"Partner unreachable or failing"
//	@Security		ApiKeyAuth
//	@Router			/payment-host-to-host [post]
func (app *application) hostToHostHandler(w http.ResponseWriter, r *http.Request) {
	var payload hostToHostPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(&payload); err != nil {
		app.validationErrorResponse(w, r, err)
		return
	}

	info := payload.AdditionalInfo
	res, err := app.espay.HostToHost(r.Context(), payments.HostToHostRequest{
		PartnerReferenceNo: payload.PartnerReferenceNo,
		Amount:             payments.Amount{Value: payload.Amount.Value, Currency: payload.Amount.Currency},
		URLParam: payments.URLParam{
			URL:        payload.URLParam.URL,
			Type:       payload.URLParam.Type,
			IsDeeplink: payload.URLParam.IsDeeplink,
		},
		ValidUpTo:         payload.ValidUpTo,
		PointOfInitiation: payload.PointOfInitiation,
		PayOptionDetails: payments.PayOptionDetails{
			PayMethod:   payload.PayOptionDetails.PayMethod,
			PayOption:   payload.PayOptionDetails.PayOption,
			TransAmount: payments.Amount{Value: payload.PayOptionDetails.TransAmount.Value, Currency: payload.PayOptionDetails.TransAmount.Currency},
			FeeAmount:   payments.Amount{Value: payload.PayOptionDetails.FeeAmount.Value, Currency: payload.PayOptionDetails.FeeAmount.Currency},
		},
		AdditionalInfo: payments.HostToHostInfo{
			PayType:       info.PayType,
			UserID:        info.UserID,
			UserName:      info.UserName,
			UserEmail:     info.UserEmail,
			UserPhone:     info.UserPhone,
			BuyerID:       info.BuyerID,
			ProductCode:   info.ProductCode,
			BalanceType:   info.BalanceType,
			BankCardToken: info.BankCardToken,
		},
	})
	if err != nil {
		app.partnerErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, res)
}

// SimplePayment godoc
//
//	@Summary		Create a host-to-host payment from a few fields
//	@Description	Fills in fee, pay option and product code, then creates a host-to-host payment
//	@Tags			Payment Host to Host
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		simplePaymentPayload	true	"Simple payment request"
//	@Success		200		{object}	payments.Result
//	@Failure		400		{object}	partnerErrorEnvelope	"Invalid request"
//	@Failure		422		{object}	partnerErrorEnvelope	"Partner refused the request"
//	@Failure		502		{object}	partnerErrorEnvelope	"Partner unreachable or failing"
//	@Security		ApiKeyAuth
//	@Router			/simple-payment [post]
func (app *application) simplePaymentHandler(w http.ResponseWriter, r *http.Request) {
	var payload simplePaymentPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(&payload); err != nil {
		app.validationErrorResponse(w, r, err)
		return
	}

	res, err := app.espay.SimplePayment(r.Context(), payments.SimplePaymentRequest{
		Amount:        payload.Amount,
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		CustomerPhone: payload.CustomerPhone,
		BankCode:      payload.BankCode,
		ThankYouURL:   payload.ThankYouURL,
		PaymentType:   payload.PaymentType,
	})
	if err != nil {
		app.partnerErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, res)
}
