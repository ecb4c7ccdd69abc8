package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"espaygw/internal/auth"
	"espaygw/internal/payments"
	"espaygw/internal/ratelimiter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakePartner struct {
	srv  *httptest.Server
	hits int32
}

func newFakePartner(t *testing.T, status int, body string) *fakePartner {
	t.Helper()
	p := &fakePartner{}
	p.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&p.hits, 1)
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(p.srv.Close)
	return p
}

func testKeyPEM(t *testing.T) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}))
}

func espayConfig(t *testing.T, base string) payments.Config {
	return payments.Config{
		Env:     payments.Sandbox,
		BaseURL: base,
		SNAP: payments.SNAPConfig{
			PartnerID:     "SGWTIEBYMIN",
			MerchantID:    "SGWTIEBYMIN",
			ChannelID:     "ESPAY",
			PrivateKeyPEM: testKeyPEM(t),
		},
		PushToPay: payments.PushToPayConfig{
			Username:  "TIEBYMIN",
			Password:  "pass",
			CommCode:  "SGWTIEBYMIN",
			SecretKey: "tqqj5107obb6ydga",
		},
		Timeouts: payments.Timeouts{Connect: time.Second, Read: 2 * time.Second, Request: 3 * time.Second},
	}
}

func newTestApplication(t *testing.T, cfg config) *application {
	t.Helper()
	logger := zap.NewNop().Sugar()
	client, err := payments.NewClient(cfg.espay, logger)
	require.NoError(t, err)
	return &application{
		config: cfg,
		logger: logger,
		espay:  client,
	}
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func post(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

const qrisBody = `{"partner_reference_no":"INV-001","amount":{"value":"150000.00","currency":"IDR"}}`

func TestHealthAndReference(t *testing.T) {
	partner := newFakePartner(t, http.StatusOK, `{}`)
	app := newTestApplication(t, config{env: "test", espay: espayConfig(t, partner.srv.URL)})
	mux := app.mount()

	rr := executeRequest(httptest.NewRequest(http.MethodGet, "/v1/health", nil), mux)
	require.Equal(t, http.StatusOK, rr.Code)
	data := decodeBody(t, rr)["data"].(map[string]any)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "SGWTIEBYMIN", data["merchant_code"])
	products := data["products"].(map[string]any)
	assert.Equal(t, true, products["qris"])
	assert.Equal(t, false, products["va"])

	rr = executeRequest(httptest.NewRequest(http.MethodGet, "/v1/bank-codes", nil), mux)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"payOption":"BNIATM"`)
	assert.Contains(t, rr.Body.String(), `"OVOLINK":"OVO"`)
}

func TestGenerateQRISHandler(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		body      string
		request   string
		wantCode  int
		wantType  string
		wantHits  int32
		checkBody func(t *testing.T, out map[string]any)
	}{
		{
			name:     "success",
			status:   http.StatusOK,
			body:     `{"responseCode":"2004700","responseMessage":"Successful","qrContent":"000201","additionalInfo":{"referenceNo":"REF-1"}}`,
			request:  qrisBody,
			wantCode: http.StatusOK,
			wantHits: 1,
			checkBody: func(t *testing.T, out map[string]any) {
				data := out["data"].(map[string]any)
				assert.Equal(t, "000201", data["qr_content"])
				assert.Equal(t, "REF-1", data["reference_no"])
			},
		},
		{
			name:     "amount without two decimals never reaches partner",
			status:   http.StatusOK,
			body:     `{}`,
			request:  `{"partner_reference_no":"INV-001","amount":{"value":"150000"}}`,
			wantCode: http.StatusBadRequest,
			wantType: "validation",
			checkBody: func(t *testing.T, out map[string]any) {
				fields := out["fields"].(map[string]any)
				assert.Equal(t, "amount2dp", fields["amount.value"])
			},
		},
		{
			name:     "unknown field",
			status:   http.StatusOK,
			body:     `{}`,
			request:  `{"partner_reference_no":"INV-001","amount":{"value":"1.00"},"extra":1}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "business failure inside 200",
			status:   http.StatusOK,
			body:     `{"responseCode":"4001100","responseMessage":"Invalid signature"}`,
			request:  qrisBody,
			wantCode: http.StatusUnprocessableEntity,
			wantType: "business",
			wantHits: 1,
			checkBody: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "4001100", out["partner_code"])
				assert.Equal(t, "Invalid signature", out["partner_message"])
				assert.Equal(t, float64(200), out["partner_status"])
			},
		},
		{
			name:     "partner rejects credentials",
			status:   http.StatusUnauthorized,
			body:     `{"responseCode":"4014700","responseMessage":"Unauthorized"}`,
			request:  qrisBody,
			wantCode: http.StatusBadGateway,
			wantType: "partner_auth",
			wantHits: 1,
		},
		{
			name:     "partner outage",
			status:   http.StatusServiceUnavailable,
			body:     `maintenance`,
			request:  qrisBody,
			wantCode: http.StatusBadGateway,
			wantType: "upstream",
			wantHits: 1,
			checkBody: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "maintenance", out["partner_raw"])
			},
		},
		{
			name:     "partner returns html",
			status:   http.StatusOK,
			body:     `<html></html>`,
			request:  qrisBody,
			wantCode: http.StatusBadGateway,
			wantType: "response_format",
			wantHits: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			partner := newFakePartner(t, tc.status, tc.body)
			app := newTestApplication(t, config{espay: espayConfig(t, partner.srv.URL)})
			mux := app.mount()

			rr := executeRequest(post("/v1/qris/generate", tc.request), mux)
			require.Equal(t, tc.wantCode, rr.Code, rr.Body.String())
			assert.Equal(t, tc.wantHits, atomic.LoadInt32(&partner.hits))

			out := decodeBody(t, rr)
			if tc.wantType != "" {
				assert.Equal(t, tc.wantType, out["error_type"])
				assert.Equal(t, false, out["success"])
			}
			if tc.checkBody != nil {
				tc.checkBody(t, out)
			}
		})
	}
}

func TestMissingCredentialsIsServerError(t *testing.T) {
	partner := newFakePartner(t, http.StatusOK, `{}`)
	cfg := espayConfig(t, partner.srv.URL)
	cfg.SNAP.PrivateKeyPEM = ""
	app := newTestApplication(t, config{espay: cfg})
	mux := app.mount()

	rr := executeRequest(post("/v1/qris/generate", qrisBody), mux)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	out := decodeBody(t, rr)
	assert.Equal(t, "configuration", out["error_type"])
	assert.Contains(t, out["message"], "ESPAY_PRIVATE_KEY_PEM")
	assert.Zero(t, atomic.LoadInt32(&partner.hits))

	// VA credentials were never configured
	rr = executeRequest(post("/v1/va", `{"amount":"10000.00","customer_name":"Budi","customer_phone":"08123456789"}`), mux)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestPushToPayHandler(t *testing.T) {
	partner := newFakePartner(t, http.StatusOK, `{"error_code":"0000","QRCode":"data:image/png;base64,AAA","QRLink":"https://qr.example/p","trx_id":"T-1"}`)
	app := newTestApplication(t, config{espay: espayConfig(t, partner.srv.URL)})
	mux := app.mount()

	rr := executeRequest(post("/v1/pushtopay/qr", `{"product_code":"QRIS","order_id":"ORDER-TEST-1","amount":1000,"customer_id":"c1","description":"parfum"}`), mux)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	data := decodeBody(t, rr)["data"].(map[string]any)
	assert.Equal(t, "https://qr.example/p", data["qr_link"])
	assert.Equal(t, "data:image/png;base64,AAA", data["qr_image_base64"])
	assert.Equal(t, "T-1", data["transaction_id"])

	rr = executeRequest(post("/v1/pushtopay/qr", `{"product_code":"GOPAY","order_id":"A#B","amount":1000,"customer_id":"c1","description":"parfum"}`), mux)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	fields := decodeBody(t, rr)["fields"].(map[string]any)
	assert.Contains(t, fields, "product_code")
	assert.Contains(t, fields, "order_id")
	assert.Equal(t, int32(1), atomic.LoadInt32(&partner.hits))
}

func TestAuthTokenMiddleware(t *testing.T) {
	partner := newFakePartner(t, http.StatusOK, `{"responseCode":"2004700","responseMessage":"Successful"}`)
	app := newTestApplication(t, config{espay: espayConfig(t, partner.srv.URL)})
	authenticator := auth.NewJWTAuthenticator("s3cret", "espaygw", "espaygw", time.Hour)
	app.authenticator = authenticator
	mux := app.mount()

	rr := executeRequest(post("/v1/qris/generate", qrisBody), mux)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := post("/v1/qris/generate", qrisBody)
	req.Header.Set("Authorization", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, executeRequest(req, mux).Code)

	token, err := authenticator.GenerateToken("shop-backend")
	require.NoError(t, err)
	req = post("/v1/qris/generate", qrisBody)
	req.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, executeRequest(req, mux).Code)

	// reference routes stay public
	assert.Equal(t, http.StatusOK, executeRequest(httptest.NewRequest(http.MethodGet, "/v1/bank-codes", nil), mux).Code)
}

func TestRateLimiterMiddleware(t *testing.T) {
	partner := newFakePartner(t, http.StatusOK, `{"responseCode":"2004700","responseMessage":"Successful"}`)
	app := newTestApplication(t, config{espay: espayConfig(t, partner.srv.URL)})
	app.rateLimiter = ratelimiter.NewFixedWindowLimiter(1, time.Minute)
	mux := app.mount()

	assert.Equal(t, http.StatusOK, executeRequest(post("/v1/qris/generate", qrisBody), mux).Code)

	rr := executeRequest(post("/v1/qris/generate", qrisBody), mux)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&partner.hits))
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestDebugRoutes(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)

	partner := newFakePartner(t, http.StatusOK, `{}`)
	cfg := config{
		espay: espayConfig(t, partner.srv.URL),
		auth:  authConfig{basic: basicConfig{user: "ops", passHash: string(hash)}},
	}
	app := newTestApplication(t, cfg)
	mux := app.mount()

	req := httptest.NewRequest(http.MethodGet, "/v1/debug/config", nil)
	assert.Equal(t, http.StatusUnauthorized, executeRequest(req, mux).Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/debug/config", nil)
	req.Header.Set("Authorization", basicAuth("ops", "wrong"))
	assert.Equal(t, http.StatusUnauthorized, executeRequest(req, mux).Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/debug/config", nil)
	req.Header.Set("Authorization", basicAuth("ops", "letmein"))
	rr := executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "tqqj5107obb6ydga")
	assert.Contains(t, rr.Body.String(), `"secret_key":"tqqj***"`)
	assert.NotContains(t, rr.Body.String(), "BEGIN RSA PRIVATE KEY")

	req = post("/v1/debug/signature", `{"scheme":"pushtopay","rq_uuid":"ABC","product_code":"QRIS","order_id":"ORDER-TEST-1","amount":1000.9}`)
	req.Header.Set("Authorization", basicAuth("ops", "letmein"))
	rr = executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	data := decodeBody(t, rr)["data"].(map[string]any)
	assert.Equal(t, "##ABC##SGWTIEBYMIN##QRIS##ORDER-TEST-1##1000##PUSHTOPAY##TQQJ***##", data["plain"])

	req = post("/v1/debug/signature", `{"scheme":"snap","path":"/x","body":{"b":1, "a":2},"timestamp":"2025-09-05T10:00:00+07:00"}`)
	req.Header.Set("Authorization", basicAuth("ops", "letmein"))
	rr = executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	data = decodeBody(t, rr)["data"].(map[string]any)
	assert.Equal(t, `{"b":1,"a":2}`, data["minified_body"])

	assert.Zero(t, atomic.LoadInt32(&partner.hits))
}

func TestDebugRoutesDisabledWithoutCredentials(t *testing.T) {
	partner := newFakePartner(t, http.StatusOK, `{}`)
	app := newTestApplication(t, config{espay: espayConfig(t, partner.srv.URL)})
	mux := app.mount()

	req := httptest.NewRequest(http.MethodGet, "/v1/debug/config", nil)
	req.Header.Set("Authorization", basicAuth("", ""))
	assert.Equal(t, http.StatusNotFound, executeRequest(req, mux).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	partner := newFakePartner(t, http.StatusOK, `{}`)
	app := newTestApplication(t, config{espay: espayConfig(t, partner.srv.URL)})
	mux := app.mount()

	executeRequest(httptest.NewRequest(http.MethodGet, "/v1/health", nil), mux)

	rr := executeRequest(httptest.NewRequest(http.MethodGet, "/metrics", nil), mux)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `espaygw_http_requests_total{method="GET",route="/v1/health",status="200"}`)
}
