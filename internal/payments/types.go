package payments

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	ProductQRIS       = "qris"
	ProductPushToPay  = "pushtopay"
	ProductInvoice    = "va"
	ProductHostToHost = "host_to_host"
)

// Result is the normalized shape returned for every product.
type Result struct {
	Product            string          `json:"product"`
	ResponseCode       string          `json:"response_code,omitempty"`
	ResponseMessage    string          `json:"response_message,omitempty"`
	ReferenceNo        string          `json:"reference_no,omitempty"`
	PartnerReferenceNo string          `json:"partner_reference_no,omitempty"`
	OrderID            string          `json:"order_id,omitempty"`
	TransactionID      string          `json:"transaction_id,omitempty"`
	MerchantName       string          `json:"merchant_name,omitempty"`
	Amount             string          `json:"amount,omitempty"`
	Fee                string          `json:"fee,omitempty"`
	TotalAmount        string          `json:"total_amount,omitempty"`
	QRURL              string          `json:"qr_url,omitempty"`
	QRContent          string          `json:"qr_content,omitempty"`
	QRImage            string          `json:"qr_image_base64,omitempty"`
	QRLink             string          `json:"qr_link,omitempty"`
	VANumber           string          `json:"va_number,omitempty"`
	Expired            string          `json:"expired,omitempty"`
	RedirectURL        string          `json:"redirect_url,omitempty"`
	ApprovalCode       string          `json:"approval_code,omitempty"`
	ValidUpTo          string          `json:"valid_up_to,omitempty"`
	PartnerResponse    json.RawMessage `json:"partner_response,omitempty"`
}

// Amount is the SNAP money object. Value always carries two decimals.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type QRISRequest struct {
	PartnerReferenceNo string
	Amount             Amount
	ProductCode        string
	ValidityPeriod     string
}

type PushToPayRequest struct {
	ProductCode string
	OrderID     string
	// Amount may carry a fraction; it is truncated before signing.
	Amount      decimal.Decimal
	CustomerID  string
	Description string
	PromoCode   string
	IsSync      bool
	BranchID    string
	PosID       string
}

type VARequest struct {
	OrderID        string
	Amount         decimal.Decimal
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  string
	BankCode       string
	ExpiredMinutes int
}

type URLParam struct {
	URL        string `json:"url"`
	Type       string `json:"type"`
	IsDeeplink string `json:"isDeeplink"`
}

type PayOptionDetails struct {
	PayMethod   string `json:"payMethod"`
	PayOption   string `json:"payOption"`
	TransAmount Amount `json:"transAmount"`
	FeeAmount   Amount `json:"feeAmount"`
}

// HostToHostInfo mirrors additionalInfo; nil fields are left out of the body.
type HostToHostInfo struct {
	PayType       string  `json:"payType"`
	UserID        *string `json:"userId,omitempty"`
	UserName      *string `json:"userName,omitempty"`
	UserEmail     *string `json:"userEmail,omitempty"`
	UserPhone     *string `json:"userPhone,omitempty"`
	BuyerID       *string `json:"buyerId,omitempty"`
	ProductCode   string  `json:"productCode"`
	BalanceType   *string `json:"balanceType,omitempty"`
	BankCardToken *string `json:"bankCardToken,omitempty"`
}

type HostToHostRequest struct {
	PartnerReferenceNo string
	Amount             Amount
	URLParam           URLParam
	ValidUpTo          string
	PointOfInitiation  string
	PayOptionDetails   PayOptionDetails
	AdditionalInfo     HostToHostInfo
}

type SimplePaymentRequest struct {
	Amount        decimal.Decimal
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	BankCode      string
	ThankYouURL   string
	PaymentType   string
}

// text accepts a JSON string, number or null. Partner responses are not
// consistent about quoting amounts.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
		return nil
	}
	// numbers, objects: keep the literal
	*t = text(strings.TrimSpace(string(b)))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
