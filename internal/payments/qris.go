package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"espaygw/internal/signature"
)

type qrisAdditionalInfo struct {
	ProductCode string `json:"productCode"`
}

// qrisBody field order is the signed key order.
type qrisBody struct {
	PartnerReferenceNo string             `json:"partnerReferenceNo"`
	MerchantID         string             `json:"merchantId"`
	Amount             Amount             `json:"amount"`
	AdditionalInfo     qrisAdditionalInfo `json:"additionalInfo"`
	ValidityPeriod     string             `json:"validityPeriod,omitempty"`
}

type qrisResponse struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
	ReferenceNo     string `json:"referenceNo"`
	QRURL           string `json:"qrUrl"`
	QRContent       string `json:"qrContent"`
	QRImage         string `json:"qrImage"`
	AdditionalInfo  struct {
		ReferenceNo        string `json:"referenceNo"`
		PartnerReferenceNo string `json:"partnerReferenceNo"`
		MerchantName       string `json:"merchantName"`
		Amount             text   `json:"amount"`
	} `json:"additionalInfo"`
}

// GenerateQRIS requests a dynamic QRIS MPM code.
func (c *Client) GenerateQRIS(ctx context.Context, req QRISRequest) (Result, error) {
	if err := validateQRIS(req); err != nil {
		return Result{}, err
	}
	if err := c.requireSNAP(ProductQRIS); err != nil {
		return Result{}, err
	}

	now := c.now()
	timestamp := SNAPTimestamp(now)

	currency := req.Amount.Currency
	if currency == "" {
		currency = "IDR"
	}
	productCode := req.ProductCode
	if productCode == "" {
		productCode = "QRIS"
	}

	body := qrisBody{
		PartnerReferenceNo: req.PartnerReferenceNo,
		MerchantID:         c.cfg.SNAP.MerchantID,
		Amount:             Amount{Value: req.Amount.Value, Currency: currency},
		AdditionalInfo:     qrisAdditionalInfo{ProductCode: productCode},
		ValidityPeriod:     req.ValidityPeriod,
	}

	signed, err := signature.SignSNAP(c.key, "POST", QRISPath, body, timestamp)
	if err != nil {
		if isKeyError(err) {
			return Result{}, configError(ProductQRIS, err)
		}
		return Result{}, err
	}

	start := time.Now()
	res, err := c.doQRIS(ctx, signed, c.snapHeaders(timestamp, signed.Signature, now))
	c.observe(ProductQRIS, start, err)
	return res, err
}

func (c *Client) doQRIS(ctx context.Context, signed signature.Signed, header http.Header) (Result, error) {
	r, err := c.dispatcher.post(ctx, call{
		product: ProductQRIS,
		path:    QRISPath,
		url:     c.cfg.Endpoint(QRISPath),
		header:  header,
		body:    signed.Body,
	})
	if err != nil {
		return Result{}, err
	}

	var data qrisResponse
	if err := r.decode(ProductQRIS, &data); err != nil {
		return Result{}, err
	}
	if err := checkSNAPCode(ProductQRIS, r, data.ResponseCode, data.ResponseMessage); err != nil {
		return Result{}, err
	}

	return Result{
		Product:            ProductQRIS,
		ResponseCode:       data.ResponseCode,
		ResponseMessage:    data.ResponseMessage,
		ReferenceNo:        firstNonEmpty(data.AdditionalInfo.ReferenceNo, data.ReferenceNo),
		PartnerReferenceNo: data.AdditionalInfo.PartnerReferenceNo,
		MerchantName:       data.AdditionalInfo.MerchantName,
		Amount:             string(data.AdditionalInfo.Amount),
		QRURL:              data.QRURL,
		QRContent:          data.QRContent,
		QRImage:            data.QRImage,
		PartnerResponse:    json.RawMessage(r.body),
	}, nil
}

func validateQRIS(req QRISRequest) error {
	fields := map[string]string{}
	if l := len(req.PartnerReferenceNo); l < 1 || l > 32 {
		fields["partner_reference_no"] = "length must be between 1 and 32"
	}
	if _, err := ParseAmount2DP(req.Amount.Value); err != nil {
		fields["amount.value"] = err.Error()
	}
	if req.Amount.Currency != "" && req.Amount.Currency != "IDR" {
		fields["amount.currency"] = "only IDR is supported"
	}
	if req.ProductCode != "" && req.ProductCode != "QRIS" {
		fields["product_code"] = "must be QRIS"
	}
	if req.ValidityPeriod != "" {
		if _, err := time.Parse(time.RFC3339, req.ValidityPeriod); err != nil {
			fields["validity_period"] = "must be ISO-8601, e.g. 2025-09-05T23:59:00+07:00"
		}
	}
	if len(fields) > 0 {
		return validationError(ProductQRIS, fields)
	}
	return nil
}
