package signature

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// InvoicePlain builds ##COMM##ORDER##AMOUNT##KEY## for sendinvoice requests.
// Unlike PushToPay the text keeps its case.
func InvoicePlain(commCode, orderID, amount, secretKey string) string {
	return "##" + strings.TrimSpace(commCode) +
		"##" + strings.TrimSpace(orderID) +
		"##" + strings.TrimSpace(amount) +
		"##" + strings.TrimSpace(secretKey) + "##"
}

func Invoice(commCode, orderID, amount, secretKey string) string {
	sum := sha256.Sum256([]byte(InvoicePlain(commCode, orderID, amount, secretKey)))
	return hex.EncodeToString(sum[:])
}
