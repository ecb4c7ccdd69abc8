package diag

import (
	"encoding/json"
	"errors"
	"strings"

	"espaygw/internal/signature"
)

var ErrEmptyBody = errors.New("diag: body is required")

// SNAPPreview shows every intermediate value of an RSA-signed request. The
// signature itself is not produced.
type SNAPPreview struct {
	Scheme       string `json:"scheme"`
	MinifiedBody string `json:"minified_body"`
	BodyHash     string `json:"body_hash"`
	StringToSign string `json:"string_to_sign"`
}

func PreviewSNAP(method, path string, body json.RawMessage, timestamp string) (SNAPPreview, error) {
	if len(body) == 0 {
		return SNAPPreview{}, ErrEmptyBody
	}
	minified, err := signature.MinifyRaw(body)
	if err != nil {
		return SNAPPreview{}, err
	}
	method = strings.ToUpper(firstNonEmpty(method, "POST"))
	return SNAPPreview{
		Scheme:       "rsa-sha256",
		MinifiedBody: string(minified),
		BodyHash:     signature.BodyHash(minified),
		StringToSign: signature.StringToSign(method, path, minified, timestamp),
	}, nil
}

type PushToPayPreview struct {
	Scheme string `json:"scheme"`
	// Plain is the upper-cased input with the secret masked.
	Plain     string `json:"plain"`
	Signature string `json:"signature"`
}

// PreviewPushToPay signs f and masks the secret in the echoed plain string.
func PreviewPushToPay(f signature.PushToPayFields) PushToPayPreview {
	plain := signature.PushToPayPlain(f)
	if secret := strings.ToUpper(strings.TrimSpace(f.SecretKey)); secret != "" {
		plain = strings.TrimSuffix(plain, secret+"##") + Mask(secret) + "##"
	}
	return PushToPayPreview{
		Scheme:    "sha256-upper",
		Plain:     plain,
		Signature: signature.PushToPay(f),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
