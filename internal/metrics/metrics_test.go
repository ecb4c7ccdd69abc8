package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObservePartnerCall(t *testing.T) {
	before := testutil.ToFloat64(PartnerCallsTotal.WithLabelValues("qris", "auth"))
	ObservePartnerCall("qris", "auth", 0.2)
	ObservePartnerCall("qris", "auth", 0.3)
	require.Equal(t, before+2, testutil.ToFloat64(PartnerCallsTotal.WithLabelValues("qris", "auth")))
}

func TestIncRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("/v1/qris/generate", "SUCCESS", "POST"))
	IncRequest("/v1/qris/generate", "SUCCESS", "POST")
	require.Equal(t, before+1, testutil.ToFloat64(RequestsTotal.WithLabelValues("/v1/qris/generate", "SUCCESS", "POST")))
}
