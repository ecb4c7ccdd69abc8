package payments

import "strings"

type Bank struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	PayOption string `json:"payOption"`
}

var Banks = []Bank{
	{Code: "008", Name: "Bank Mandiri", PayOption: "MANDIRIATM"},
	{Code: "014", Name: "Bank BCA", PayOption: "BCAATM"},
	{Code: "016", Name: "Bank Maybank", PayOption: "MAYBANKIDR"},
	{Code: "009", Name: "Bank BNI", PayOption: "BNIATM"},
	{Code: "002", Name: "Bank BRI", PayOption: "BRIATM"},
	{Code: "011", Name: "Bank Danamon", PayOption: "DANAMONATM"},
}

// ProductCodes maps wallet product codes to display names.
var ProductCodes = map[string]string{
	"GOPAYLINK":     "GoPay",
	"OVOLINK":       "OVO",
	"DANALINK":      "DANA",
	"SHOPEEPAYLINK": "ShopeePay",
}

var productCodeByType = map[string]string{
	"gopay":     "GOPAYLINK",
	"ovo":       "OVOLINK",
	"dana":      "DANALINK",
	"shopeepay": "SHOPEEPAYLINK",
}

// PayOptionByBankCode falls back to BCAATM for unknown codes.
func PayOptionByBankCode(code string) string {
	for _, b := range Banks {
		if b.Code == code {
			return b.PayOption
		}
	}
	return "BCAATM"
}

// ProductCodeByType falls back to OVOLINK.
func ProductCodeByType(paymentType string) string {
	if code, ok := productCodeByType[strings.ToLower(strings.TrimSpace(paymentType))]; ok {
		return code
	}
	return "OVOLINK"
}
