package signature

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type qrisAmount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type qrisBody struct {
	PartnerReferenceNo string     `json:"partnerReferenceNo"`
	MerchantID         string     `json:"merchantId"`
	Amount             qrisAmount `json:"amount"`
	AdditionalInfo     struct {
		ProductCode string `json:"productCode"`
	} `json:"additionalInfo"`
}

func testKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func sampleBody() qrisBody {
	b := qrisBody{
		PartnerReferenceNo: "INV-001",
		MerchantID:         "SGWTIEBYMIN",
		Amount:             qrisAmount{Value: "150000.00", Currency: "IDR"},
	}
	b.AdditionalInfo.ProductCode = "QRIS"
	return b
}

func TestMinifyKeepsOrderAndStrings(t *testing.T) {
	out, err := Minify(sampleBody())
	require.NoError(t, err)
	require.Equal(t,
		`{"partnerReferenceNo":"INV-001","merchantId":"SGWTIEBYMIN","amount":{"value":"150000.00","currency":"IDR"},"additionalInfo":{"productCode":"QRIS"}}`,
		string(out))

	out, err = Minify(map[string]string{"note": "a<b & c>d é"})
	require.NoError(t, err)
	require.Equal(t, `{"note":"a<b & c>d é"}`, string(out))
}

func TestMinifyIsIdempotent(t *testing.T) {
	first, err := Minify(sampleBody())
	require.NoError(t, err)

	again, err := MinifyRaw(first)
	require.NoError(t, err)
	require.Equal(t, first, again)

	spaced := []byte("{\n  \"b\": 1,\n  \"a\": \"x y\"\n}")
	once, err := MinifyRaw(spaced)
	require.NoError(t, err)
	require.Equal(t, `{"b":1,"a":"x y"}`, string(once))
	twice, err := MinifyRaw(once)
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestStringToSign(t *testing.T) {
	body := []byte(`{"a":1}`)
	sum := sha256.Sum256(body)
	want := "POST:/api/v1.0/qr/qr-mpm-generate:" + strings.ToLower(base16(sum[:])) + ":2025-09-05T10:00:00+07:00"
	require.Equal(t, want, StringToSign("POST", "/api/v1.0/qr/qr-mpm-generate", body, "2025-09-05T10:00:00+07:00"))
}

func base16(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, 0, len(b)*2)
	for _, c := range b {
		out = append(out, digits[c>>4], digits[c&0x0f])
	}
	return string(out)
}

func TestSignSNAPDeterministicAndVerifiable(t *testing.T) {
	key := testKey(t)
	ts := "2025-09-05T10:00:00+07:00"

	a, err := SignSNAP(key, "POST", "/api/v1.0/qr/qr-mpm-generate", sampleBody(), ts)
	require.NoError(t, err)
	b, err := SignSNAP(key, "POST", "/api/v1.0/qr/qr-mpm-generate", sampleBody(), ts)
	require.NoError(t, err)
	require.Equal(t, a.Signature, b.Signature)
	require.Equal(t, a.Body, b.Body)

	sig, err := base64.StdEncoding.DecodeString(a.Signature)
	require.NoError(t, err)
	digest := sha256.Sum256([]byte(a.StringToSign))
	require.NoError(t, rsa.VerifyPKCS1v15(&key.PublicKey, crypto.SHA256, digest[:], sig))
}

func TestSignSNAPChangesWithBody(t *testing.T) {
	key := testKey(t)
	ts := "2025-09-05T10:00:00+07:00"

	body := sampleBody()
	a, err := SignSNAP(key, "POST", "/p", body, ts)
	require.NoError(t, err)

	body.Amount.Value = "150000.01"
	b, err := SignSNAP(key, "POST", "/p", body, ts)
	require.NoError(t, err)

	require.NotEqual(t, BodyHash(a.Body), BodyHash(b.Body))
	require.NotEqual(t, a.StringToSign, b.StringToSign)
	require.NotEqual(t, a.Signature, b.Signature)
}

func TestSignSNAPWithoutKey(t *testing.T) {
	_, err := SignSNAP(nil, "POST", "/p", sampleBody(), "ts")
	require.ErrorIs(t, err, ErrMissingKey)
}

func TestParsePrivateKey(t *testing.T) {
	key := testKey(t)

	pkcs1 := string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}))
	parsed, err := ParsePrivateKey(pkcs1)
	require.NoError(t, err)
	require.True(t, key.Equal(parsed))

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	pkcs8 := string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
	parsed, err = ParsePrivateKey(strings.ReplaceAll(pkcs8, "\n", `\n`))
	require.NoError(t, err)
	require.True(t, key.Equal(parsed))

	_, err = ParsePrivateKey("")
	require.ErrorIs(t, err, ErrMissingKey)

	_, err = ParsePrivateKey("not a key")
	require.ErrorIs(t, err, ErrInvalidKey)

	garbage := string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte("junk")}))
	_, err = ParsePrivateKey(garbage)
	require.ErrorIs(t, err, ErrInvalidKey)
}
