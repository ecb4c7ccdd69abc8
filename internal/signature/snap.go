package signature

import (
	"bytes"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingKey = errors.New("signature: private key is not set")
	ErrInvalidKey = errors.New("signature: private key is invalid")
)

// Minify serializes v as compact JSON. Struct fields keep their declaration
// order and string values are not HTML-escaped, so the output matches what
// the partner recomputes on its side.
func Minify(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("minify body: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MinifyRaw removes insignificant whitespace from an already encoded JSON
// document without touching key order or string contents.
func MinifyRaw(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, fmt.Errorf("minify raw body: %w", err)
	}
	return buf.Bytes(), nil
}

// BodyHash is the lowercase hex SHA-256 of the minified body.
func BodyHash(minified []byte) string {
	sum := sha256.Sum256(minified)
	return hex.EncodeToString(sum[:])
}

// StringToSign builds METHOD:PATH:BODYHASH:TIMESTAMP.
func StringToSign(method, path string, minified []byte, timestamp string) string {
	return method + ":" + path + ":" + BodyHash(minified) + ":" + timestamp
}

// ParsePrivateKey accepts PKCS#1 and PKCS#8 PEM blocks. Literal "\n"
// sequences are expanded so keys can be kept on a single env line.
func ParsePrivateKey(pemData string) (*rsa.PrivateKey, error) {
	pemData = strings.TrimSpace(pemData)
	if pemData == "" {
		return nil, ErrMissingKey
	}
	if !strings.Contains(pemData, "\n") {
		pemData = strings.ReplaceAll(pemData, `\n`, "\n")
	}

	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidKey)
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidKey)
	}
	return key, nil
}

// SignRSA signs message with RSASSA-PKCS1-v1_5 over SHA-256 and returns the
// standard Base64 encoding of the signature.
func SignRSA(key *rsa.PrivateKey, message string) (string, error) {
	if key == nil {
		return "", ErrMissingKey
	}
	digest := sha256.Sum256([]byte(message))
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("rsa sign: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// Signed is the outcome of signing one SNAP request. Body holds the exact
// bytes that were hashed and must be sent unchanged.
type Signed struct {
	Body         []byte
	StringToSign string
	Signature    string
}

// SignSNAP minifies body, builds the string to sign and signs it.
func SignSNAP(key *rsa.PrivateKey, method, path string, body any, timestamp string) (Signed, error) {
	if key == nil {
		return Signed{}, ErrMissingKey
	}
	minified, err := Minify(body)
	if err != nil {
		return Signed{}, err
	}
	sts := StringToSign(method, path, minified, timestamp)
	sig, err := SignRSA(key, sts)
	if err != nil {
		return Signed{}, err
	}
	return Signed{Body: minified, StringToSign: sts, Signature: sig}, nil
}
