package payments

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount2DP(t *testing.T) {
	d, err := ParseAmount2DP("150000.00")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(150000)))

	for _, bad := range []string{"150000", "150000.0", "150000.000", "1e5", " 1.00", "abc"} {
		_, err := ParseAmount2DP(bad)
		assert.ErrorIs(t, err, ErrAmountFormat, bad)
	}
	_, err = ParseAmount2DP("0.00")
	assert.ErrorIs(t, err, ErrAmountPositive)

	assert.True(t, IsAmount2DP("1.50"))
	assert.False(t, IsAmount2DP("1.5"))
}

func TestAmountRendering(t *testing.T) {
	assert.Equal(t, "1000", IntegerAmount(decimal.RequireFromString("1000.75")))
	assert.Equal(t, "1000", IntegerAmount(decimal.NewFromInt(1000)))
	assert.Equal(t, "10000.00", FormatAmount(decimal.NewFromInt(10000)))
	assert.Equal(t, "250.00", FormatAmount(decimal.NewFromInt(10000).Mul(decimal.RequireFromString("0.025"))))
}

func TestTimestamps(t *testing.T) {
	utc := time.Date(2025, time.September, 5, 16, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-09-05T23:59:00+07:00", SNAPTimestamp(utc))
	assert.Equal(t, "2025-09-05 23:59:00", LegacyTimestamp(utc))

	// crosses midnight in Jakarta
	late := time.Date(2025, time.September, 5, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-09-06T01:00:00+07:00", SNAPTimestamp(late))
}

func TestExternalID(t *testing.T) {
	now := time.Date(2025, time.September, 5, 18, 0, 0, 0, time.UTC)
	id := ExternalID(now, uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3301"))
	assert.Regexp(t, regexp.MustCompile(`^20250906\d{16}$`), id)
	assert.Equal(t, id, ExternalID(now, uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3301")))

	// a zero id still yields the full width
	assert.Equal(t, "202509060000000000000000", ExternalID(now, uuid.Nil))
	assert.NotEqual(t, id, ExternalID(now, uuid.New()))
}

func TestReferenceLookups(t *testing.T) {
	assert.Equal(t, "BNIATM", PayOptionByBankCode("009"))
	assert.Equal(t, "BCAATM", PayOptionByBankCode("999"))
	assert.Equal(t, "GOPAYLINK", ProductCodeByType(" GoPay "))
	assert.Equal(t, "OVOLINK", ProductCodeByType("unknown"))
}

func TestConfigBaseAndMissing(t *testing.T) {
	assert.Equal(t, ProductionBaseURL, Config{}.Base())
	assert.Equal(t, SandboxBaseURL, Config{Env: Sandbox}.Base())
	assert.Equal(t, "http://localhost:9000"+QRISPath, Config{Env: Sandbox, BaseURL: "http://localhost:9000/"}.Endpoint(QRISPath))

	assert.Equal(t, []string{"ESPAY_COMM_CODE", "ESPAY_PASSWORD", "ESPAY_SECRET_KEY", "ESPAY_USERNAME"}, PushToPayConfig{}.Missing())
	assert.Empty(t, InvoiceConfig{CommCode: "c", SignatureKey: "k"}.Missing())
}

func TestErrorKinds(t *testing.T) {
	err := validationError(ProductQRIS, map[string]string{"b": "x", "a": "y"})
	assert.Equal(t, "qris validation error: invalid request: a, b", err.Error())
	assert.True(t, IsKind(err, KindValidation))
	assert.Equal(t, Kind(""), KindOf(assert.AnError))
}
