package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"espaygw/internal/signature"
)

type invoiceResponse struct {
	RqUUID       string `json:"rq_uuid"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	VANumber     text   `json:"va_number"`
	Amount       text   `json:"amount"`
	TotalAmount  text   `json:"total_amount"`
	Fee          text   `json:"fee"`
	Expired      string `json:"expired"`
	OrderID      string `json:"order_id"`
}

// CreateVA registers an invoice and returns the virtual account number the
// payer transfers to.
func (c *Client) CreateVA(ctx context.Context, req VARequest) (Result, error) {
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	if req.BankCode == "" {
		req.BankCode = "014"
	}
	if req.ExpiredMinutes == 0 {
		req.ExpiredMinutes = 60
	}
	if err := validateVA(req); err != nil {
		return Result{}, err
	}
	cfg := c.cfg.Invoice
	if names := cfg.Missing(); len(names) > 0 {
		return Result{}, missingConfig(ProductInvoice, names)
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = "INV-" + shortID(c.newID())
	}
	amount := FormatAmount(req.Amount)

	form := url.Values{}
	form.Set("rq_uuid", c.newID().String())
	form.Set("rq_datetime", LegacyTimestamp(c.now()))
	form.Set("order_id", orderID)
	form.Set("amount", amount)
	form.Set("ccy", "IDR")
	form.Set("comm_code", cfg.CommCode)
	form.Set("remark1", req.CustomerPhone)
	form.Set("remark2", req.CustomerName)
	form.Set("remark3", req.CustomerEmail)
	form.Set("update", "N")
	form.Set("bank_code", req.BankCode)
	form.Set("va_expired", strconv.Itoa(req.ExpiredMinutes))
	form.Set("signature", signature.Invoice(cfg.CommCode, orderID, amount, cfg.SignatureKey))

	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")
	header.Set("Accept", "application/json")

	start := time.Now()
	res, err := c.doInvoice(ctx, header, form)
	c.observe(ProductInvoice, start, err)
	return res, err
}

func (c *Client) doInvoice(ctx context.Context, header http.Header, form url.Values) (Result, error) {
	r, err := c.dispatcher.post(ctx, call{
		product: ProductInvoice,
		path:    InvoicePath,
		url:     c.cfg.Endpoint(InvoicePath),
		header:  header,
		body:    []byte(form.Encode()),
	})
	if err != nil {
		return Result{}, err
	}

	var data invoiceResponse
	if err := r.decode(ProductInvoice, &data); err != nil {
		return Result{}, err
	}
	if err := checkLegacyCode(ProductInvoice, r, data.ErrorCode, data.ErrorMessage, true); err != nil {
		return Result{}, err
	}

	return Result{
		Product:         ProductInvoice,
		ResponseCode:    data.ErrorCode,
		ResponseMessage: data.ErrorMessage,
		OrderID:         firstNonEmpty(data.OrderID, form.Get("order_id")),
		VANumber:        string(data.VANumber),
		Amount:          string(data.Amount),
		TotalAmount:     string(data.TotalAmount),
		Fee:             string(data.Fee),
		Expired:         data.Expired,
		PartnerResponse: json.RawMessage(r.body),
	}, nil
}

func validateVA(req VARequest) error {
	fields := map[string]string{}
	if !req.Amount.IsPositive() {
		fields["amount"] = ErrAmountPositive.Error()
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		fields["customer_name"] = "is required"
	}
	if !strings.HasPrefix(req.CustomerPhone, "0") && !strings.HasPrefix(req.CustomerPhone, "+62") {
		fields["customer_phone"] = "must start with 0 or +62"
	}
	if req.ExpiredMinutes < 0 {
		fields["va_expired_minutes"] = "must be positive"
	}
	if strings.Contains(req.OrderID, "#") {
		fields["order_id"] = "must not contain '#'"
	}
	if len(fields) > 0 {
		return validationError(ProductInvoice, fields)
	}
	return nil
}
