package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"espaygw/internal/signature"

	"github.com/shopspring/decimal"
)

var pushToPayProducts = map[string]bool{"OVO": true, "JENIUS": true, "QRIS": true}

type pushToPayResponse struct {
	RqUUID       string `json:"rq_uuid"`
	RsDatetime   string `json:"rs_datetime"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	TrxID        text   `json:"trx_id"`
	OrderID      string `json:"order_id"`
	Amount       text   `json:"amount"`
	QRCode       string `json:"QRCode"`
	QRLink       string `json:"QRLink"`
}

// PushToPay requests a QR (or app push) for the given product code.
func (c *Client) PushToPay(ctx context.Context, req PushToPayRequest) (Result, error) {
	if err := validatePushToPay(req); err != nil {
		return Result{}, err
	}
	cfg := c.cfg.PushToPay
	if names := cfg.Missing(); len(names) > 0 {
		return Result{}, missingConfig(ProductPushToPay, names)
	}

	rqUUID := signature.RequestUUID(c.newID())
	amount := IntegerAmount(req.Amount)
	isSync := "0"
	if req.IsSync {
		isSync = "1"
	}

	form := url.Values{}
	form.Set("rq_uuid", rqUUID)
	form.Set("rq_datetime", LegacyTimestamp(c.now()))
	form.Set("comm_code", cfg.CommCode)
	form.Set("product_code", req.ProductCode)
	form.Set("order_id", req.OrderID)
	form.Set("amount", amount)
	form.Set("key", cfg.SecretKey)
	form.Set("description", req.Description)
	form.Set("customer_id", req.CustomerID)
	form.Set("signature", signature.PushToPay(signature.PushToPayFields{
		RequestUUID: rqUUID,
		CommCode:    cfg.CommCode,
		ProductCode: req.ProductCode,
		OrderID:     req.OrderID,
		Amount:      amount,
		SecretKey:   cfg.SecretKey,
	}))
	if req.PromoCode != "" {
		form.Set("promo_code", req.PromoCode)
	}
	form.Set("is_sync", isSync)
	if req.BranchID != "" {
		form.Set("branch_id", req.BranchID)
	}
	if req.PosID != "" {
		form.Set("pos_id", req.PosID)
	}

	header := http.Header{}
	header.Set("Accept", "*/*")
	header.Set("Content-Type", "application/x-www-form-urlencoded")
	header.Set("Authorization", BasicAuth(cfg.Username, cfg.Password))

	start := time.Now()
	res, err := c.doPushToPay(ctx, header, form)
	c.observe(ProductPushToPay, start, err)
	return res, err
}

func (c *Client) doPushToPay(ctx context.Context, header http.Header, form url.Values) (Result, error) {
	r, err := c.dispatcher.post(ctx, call{
		product: ProductPushToPay,
		path:    PushToPayPath,
		url:     c.cfg.Endpoint(PushToPayPath),
		header:  header,
		body:    []byte(form.Encode()),
	})
	if err != nil {
		return Result{}, err
	}

	var data pushToPayResponse
	if err := r.decode(ProductPushToPay, &data); err != nil {
		return Result{}, err
	}
	if err := checkLegacyCode(ProductPushToPay, r, data.ErrorCode, data.ErrorMessage, false); err != nil {
		return Result{}, err
	}

	return Result{
		Product:         ProductPushToPay,
		ResponseCode:    data.ErrorCode,
		ResponseMessage: data.ErrorMessage,
		OrderID:         firstNonEmpty(data.OrderID, form.Get("order_id")),
		TransactionID:   string(data.TrxID),
		Amount:          firstNonEmpty(string(data.Amount), form.Get("amount")),
		QRImage:         data.QRCode,
		QRLink:          data.QRLink,
		PartnerResponse: json.RawMessage(r.body),
	}, nil
}

// BasicAuth renders an Authorization header value.
func BasicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func validatePushToPay(req PushToPayRequest) error {
	fields := map[string]string{}
	if !pushToPayProducts[req.ProductCode] {
		fields["product_code"] = "must be one of OVO, JENIUS, QRIS"
	}
	if l := len(req.OrderID); l < 1 || l > 20 {
		fields["order_id"] = "length must be between 1 and 20"
	}
	if req.Amount.Truncate(0).LessThan(decimal.NewFromInt(1)) {
		fields["amount"] = "must be at least 1"
	}
	if l := len(req.CustomerID); l < 1 || l > 64 {
		fields["customer_id"] = "length must be between 1 and 64"
	}
	if l := len(req.Description); l < 1 || l > 20 {
		fields["description"] = "length must be between 1 and 20"
	}
	if strings.ContainsAny(req.OrderID, "#") {
		fields["order_id"] = "must not contain '#'"
	}
	if len(fields) > 0 {
		return validationError(ProductPushToPay, fields)
	}
	return nil
}
