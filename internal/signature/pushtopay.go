package signature

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// PushToPayFields are the values covered by a PushToPay signature, in
// signing order.
type PushToPayFields struct {
	RequestUUID string
	CommCode    string
	ProductCode string
	OrderID     string
	Amount      string
	SecretKey   string
}

// PushToPayPlain returns the upper-cased plain text that gets hashed.
func PushToPayPlain(f PushToPayFields) string {
	parts := []string{
		strings.TrimSpace(f.RequestUUID),
		strings.TrimSpace(f.CommCode),
		strings.TrimSpace(f.ProductCode),
		strings.TrimSpace(f.OrderID),
		strings.TrimSpace(f.Amount),
		"PUSHTOPAY",
		strings.TrimSpace(f.SecretKey),
	}
	return strings.ToUpper("##" + strings.Join(parts, "##") + "##")
}

// PushToPay returns the lowercase hex SHA-256 of PushToPayPlain.
func PushToPay(f PushToPayFields) string {
	sum := sha256.Sum256([]byte(PushToPayPlain(f)))
	return hex.EncodeToString(sum[:])
}

// RequestUUID formats id as upper-case hex without separators.
func RequestUUID(id uuid.UUID) string {
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
}
