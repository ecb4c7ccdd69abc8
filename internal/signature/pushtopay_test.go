package signature

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestPushToPayUpperCasesBeforeHashing(t *testing.T) {
	rq := RequestUUID(uuid.New())

	got := PushToPay(PushToPayFields{
		RequestUUID: rq,
		CommCode:    "abc",
		ProductCode: "QRIS",
		OrderID:     "ORDER1",
		Amount:      "1000",
		SecretKey:   "secret",
	})

	want := sha256Hex("##" + rq + "##ABC##QRIS##ORDER1##1000##PUSHTOPAY##SECRET##")
	require.Equal(t, want, got)
	require.Equal(t, strings.ToLower(got), got)
}

func TestPushToPayScenario(t *testing.T) {
	rq := RequestUUID(uuid.New())
	plain := "##" + rq + "##SGWTIEBYMIN##QRIS##ORDER-TEST-1##1000##PUSHTOPAY##tqqj5107obb6ydga##"

	got := PushToPay(PushToPayFields{
		RequestUUID: rq,
		CommCode:    "SGWTIEBYMIN",
		ProductCode: "QRIS",
		OrderID:     "ORDER-TEST-1",
		Amount:      "1000",
		SecretKey:   "tqqj5107obb6ydga",
	})
	require.Equal(t, sha256Hex(strings.ToUpper(plain)), got)
}

func TestPushToPayTrimsAndIsCaseInvariant(t *testing.T) {
	base := PushToPayFields{
		RequestUUID: "0A1B2C",
		CommCode:    "SGWTIEBYMIN",
		ProductCode: "QRIS",
		OrderID:     "order-1",
		Amount:      "1000",
		SecretKey:   "Secret",
	}
	messy := base
	messy.CommCode = "  sgwtiebymin "
	messy.OrderID = "ORDER-1\t"
	messy.SecretKey = " SECRET"

	require.Equal(t, PushToPay(base), PushToPay(messy))
	require.Equal(t, "##0A1B2C##SGWTIEBYMIN##QRIS##ORDER-1##1000##PUSHTOPAY##SECRET##", PushToPayPlain(messy))
}

func TestRequestUUID(t *testing.T) {
	id := uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3301")
	require.Equal(t, "3F2504E04F8911D39A0C0305E82C3301", RequestUUID(id))
	require.NotEqual(t, RequestUUID(uuid.New()), RequestUUID(uuid.New()))
}

func TestInvoiceKeepsCase(t *testing.T) {
	plain := InvoicePlain("SGWIKHSANPARFUM", " INV-1 ", "10000.00", "key")
	require.Equal(t, "##SGWIKHSANPARFUM##INV-1##10000.00##key##", plain)
	require.Equal(t, sha256Hex(plain), Invoice("SGWIKHSANPARFUM", "INV-1", "10000.00", "key"))
}
