package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"espaygw/internal/auth"
	"espaygw/internal/payments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() payments.Config {
	return payments.Config{
		Env: payments.Sandbox,
		PushToPay: payments.PushToPayConfig{
			Username:  "TIEBYMIN",
			Password:  "pass",
			CommCode:  "SGWTIEBYMIN",
			SecretKey: "tqqj5107obb6ydga",
		},
		Timeouts: payments.DefaultTimeouts(),
	}
}

func TestConfigCommandMasksSecrets(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, testConfig(), "config", nil))
	assert.Contains(t, out.String(), `"secret_key": "tqqj***"`)
	assert.NotContains(t, out.String(), "tqqj5107obb6ydga")
}

func TestSignPushToPayCommand(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), &out, testConfig(), "sign-pushtopay",
		[]string{"-uuid", "ABC", "-order", "ORDER-TEST-1", "-amount", "1000.50"})
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "##ABC##SGWTIEBYMIN##QRIS##ORDER-TEST-1##1000##PUSHTOPAY##TQQJ***##", got["plain"])
	assert.Len(t, got["signature"], 64)
}

func TestSignSNAPCommandWithoutKey(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), &out, testConfig(), "sign-snap",
		[]string{"-body", `{ "a": 1 }`, "-timestamp", "2025-09-05T10:00:00+07:00"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"minified_body": "{\"a\":1}"`)
	assert.NotContains(t, out.String(), `"signature"`)
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SECRET", "s3cret")
	t.Setenv("AUTH_TOKEN_ISS", "")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, testConfig(), "token", []string{"-client", "shop"}))

	a := auth.NewJWTAuthenticator("s3cret", "espaygw", "espaygw", 0)
	tok, err := a.ValidateToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	sub, err := auth.Subject(tok)
	require.NoError(t, err)
	assert.Equal(t, "shop", sub)
}

func TestHashPasswordCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, testConfig(), "hash-password", []string{"-password", "letmein"}))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out.String())), []byte("letmein")))
}

func TestUnknownCommand(t *testing.T) {
	err := run(context.Background(), &bytes.Buffer{}, testConfig(), "frobnicate", nil)
	assert.ErrorContains(t, err, "unknown command")
}
