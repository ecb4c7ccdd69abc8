package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"espaygw/internal/signature"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type hostToHostBody struct {
	PartnerReferenceNo string           `json:"partnerReferenceNo"`
	MerchantID         string           `json:"merchantId"`
	SubMerchantID      string           `json:"subMerchantId,omitempty"`
	Amount             Amount           `json:"amount"`
	URLParam           URLParam         `json:"urlParam"`
	ValidUpTo          string           `json:"validUpTo"`
	PointOfInitiation  string           `json:"pointOfInitiation"`
	PayOptionDetails   PayOptionDetails `json:"payOptionDetails"`
	AdditionalInfo     HostToHostInfo   `json:"additionalInfo"`
}

type hostToHostResponse struct {
	ResponseCode       string `json:"responseCode"`
	ResponseMessage    string `json:"responseMessage"`
	ReferenceNo        string `json:"referenceNo"`
	PartnerReferenceNo string `json:"partnerReferenceNo"`
	WebRedirectURL     string `json:"webRedirectUrl"`
	ApprovalCode       string `json:"approvalCode"`
}

// HostToHost creates a debit payment and returns the partner checkout URL.
func (c *Client) HostToHost(ctx context.Context, req HostToHostRequest) (Result, error) {
	if err := validateHostToHost(req); err != nil {
		return Result{}, err
	}
	if err := c.requireSNAP(ProductHostToHost); err != nil {
		return Result{}, err
	}

	now := c.now()
	timestamp := SNAPTimestamp(now)

	ref := req.PartnerReferenceNo
	if ref == "" {
		ref = "ORDER-" + shortID(c.newID())
	}
	validUpTo := req.ValidUpTo
	if validUpTo == "" {
		validUpTo = SNAPTimestamp(now.Add(24 * time.Hour))
	}

	body := hostToHostBody{
		PartnerReferenceNo: ref,
		MerchantID:         c.cfg.SNAP.MerchantID,
		SubMerchantID:      c.cfg.SNAP.SubMerchantID,
		Amount:             withCurrency(req.Amount),
		URLParam:           withURLDefaults(req.URLParam),
		ValidUpTo:          validUpTo,
		PointOfInitiation:  firstNonEmpty(req.PointOfInitiation, "Website"),
		PayOptionDetails: PayOptionDetails{
			PayMethod:   req.PayOptionDetails.PayMethod,
			PayOption:   req.PayOptionDetails.PayOption,
			TransAmount: withCurrency(req.PayOptionDetails.TransAmount),
			FeeAmount:   withCurrency(req.PayOptionDetails.FeeAmount),
		},
		AdditionalInfo: req.AdditionalInfo,
	}
	if body.AdditionalInfo.PayType == "" {
		body.AdditionalInfo.PayType = "REDIRECT"
	}

	signed, err := signature.SignSNAP(c.key, "POST", HostToHostPath, body, timestamp)
	if err != nil {
		if isKeyError(err) {
			return Result{}, configError(ProductHostToHost, err)
		}
		return Result{}, err
	}

	header := c.snapHeaders(timestamp, signed.Signature, now)
	header.Set("Accept", "application/json")

	c.logger.Infow("host-to-host request",
		"partner_reference_no", ref,
		"amount", body.Amount.Value,
		"pay_method", body.PayOptionDetails.PayMethod,
		"product_code", body.AdditionalInfo.ProductCode,
	)

	start := time.Now()
	res, err := c.doHostToHost(ctx, signed.Body, header)
	c.observe(ProductHostToHost, start, err)
	if err != nil {
		return Result{}, err
	}
	res.PartnerReferenceNo = firstNonEmpty(res.PartnerReferenceNo, ref)
	res.Amount = body.Amount.Value
	res.ValidUpTo = validUpTo
	return res, nil
}

func (c *Client) doHostToHost(ctx context.Context, body []byte, header http.Header) (Result, error) {
	r, err := c.dispatcher.post(ctx, call{
		product: ProductHostToHost,
		path:    HostToHostPath,
		url:     c.cfg.Endpoint(HostToHostPath),
		header:  header,
		body:    body,
	})
	if err != nil {
		return Result{}, err
	}

	var data hostToHostResponse
	if err := r.decode(ProductHostToHost, &data); err != nil {
		return Result{}, err
	}
	if err := checkSNAPCode(ProductHostToHost, r, data.ResponseCode, data.ResponseMessage); err != nil {
		return Result{}, err
	}

	return Result{
		Product:            ProductHostToHost,
		ResponseCode:       data.ResponseCode,
		ResponseMessage:    data.ResponseMessage,
		ReferenceNo:        data.ReferenceNo,
		PartnerReferenceNo: data.PartnerReferenceNo,
		RedirectURL:        data.WebRedirectURL,
		ApprovalCode:       data.ApprovalCode,
		PartnerResponse:    json.RawMessage(r.body),
	}, nil
}

// SimplePayment fills in a host-to-host request from a handful of fields:
// a 2.5% fee, the bank's pay option and OVO as the default product.
func (c *Client) SimplePayment(ctx context.Context, req SimplePaymentRequest) (Result, error) {
	fields := map[string]string{}
	if !req.Amount.IsPositive() {
		fields["amount"] = ErrAmountPositive.Error()
	}
	if strings.TrimSpace(req.ThankYouURL) == "" {
		fields["thank_you_url"] = "is required"
	}
	if len(fields) > 0 {
		return Result{}, validationError(ProductHostToHost, fields)
	}

	bankCode := firstNonEmpty(req.BankCode, "014")
	amount := Amount{Value: FormatAmount(req.Amount), Currency: "IDR"}
	fee := Amount{Value: FormatAmount(req.Amount.Mul(decimal.RequireFromString("0.025"))), Currency: "IDR"}

	payType := "PAYLINK"
	if strings.EqualFold(firstNonEmpty(req.PaymentType, "redirect"), "redirect") {
		payType = "REDIRECT"
	}

	return c.HostToHost(ctx, HostToHostRequest{
		Amount:   amount,
		URLParam: URLParam{URL: req.ThankYouURL},
		PayOptionDetails: PayOptionDetails{
			PayMethod:   bankCode,
			PayOption:   PayOptionByBankCode(bankCode),
			TransAmount: amount,
			FeeAmount:   fee,
		},
		AdditionalInfo: HostToHostInfo{
			PayType:     payType,
			UserName:    optional(req.CustomerName),
			UserEmail:   optional(req.CustomerEmail),
			UserPhone:   optional(req.CustomerPhone),
			ProductCode: ProductCodeByType("ovo"),
			BalanceType: optional("CASH"),
		},
	})
}

func validateHostToHost(req HostToHostRequest) error {
	fields := map[string]string{}
	if _, err := ParseAmount2DP(req.Amount.Value); err != nil {
		fields["amount.value"] = err.Error()
	}
	if v := req.PayOptionDetails.TransAmount.Value; v != "" && !amount2dp.MatchString(v) {
		fields["payOptionDetails.transAmount.value"] = ErrAmountFormat.Error()
	}
	if v := req.PayOptionDetails.FeeAmount.Value; v != "" && !amount2dp.MatchString(v) {
		fields["payOptionDetails.feeAmount.value"] = ErrAmountFormat.Error()
	}
	if strings.TrimSpace(req.URLParam.URL) == "" {
		fields["urlParam.url"] = "is required"
	}
	if req.PayOptionDetails.PayMethod == "" {
		fields["payOptionDetails.payMethod"] = "is required"
	}
	if req.PayOptionDetails.PayOption == "" {
		fields["payOptionDetails.payOption"] = "is required"
	}
	if req.AdditionalInfo.ProductCode == "" {
		fields["additionalInfo.productCode"] = "is required"
	}
	if len(fields) > 0 {
		return validationError(ProductHostToHost, fields)
	}
	return nil
}

func withCurrency(a Amount) Amount {
	if a.Currency == "" {
		a.Currency = "IDR"
	}
	return a
}

func withURLDefaults(p URLParam) URLParam {
	if p.Type == "" {
		p.Type = "PAY_RETURN"
	}
	if p.IsDeeplink == "" {
		p.IsDeeplink = "N"
	}
	return p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// shortID is the first 12 hex digits of id, upper-cased.
func shortID(id uuid.UUID) string {
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:12])
}
