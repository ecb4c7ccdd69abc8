// Command espayctl checks partner connectivity and signing inputs from the
// shell, using the same environment as the API server.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"espaygw/internal/auth"
	"espaygw/internal/diag"
	"espaygw/internal/payments"
	"espaygw/internal/signature"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const usage = `usage: espayctl <command> [flags]

commands:
  config          print the partner configuration with secrets masked
  dns             resolve the partner host (or -host)
  egress-ip       print the public address outbound calls leave from
  sign-snap       show the canonical string (and signature) for a JSON body
  sign-pushtopay  show the PushToPay plain string and signature
  token           issue a bearer token for a merchant backend
  hash-password   bcrypt a password for AUTH_BASIC_PASS_HASH
`

func main() {
	log.SetFlags(0)
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("espayctl: .env: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := payments.ConfigFromEnv(os.LookupEnv)
	if err != nil {
		log.Fatalf("espayctl: %v", err)
	}

	if err := run(context.Background(), os.Stdout, cfg, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("espayctl %s: %v", os.Args[1], err)
	}
}

func run(ctx context.Context, out io.Writer, cfg payments.Config, cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	switch cmd {
	case "config":
		if err := fs.Parse(args); err != nil {
			return err
		}
		return printJSON(out, diag.Summarize(cfg))

	case "dns":
		host := fs.String("host", cfg.Base(), "host name or URL")
		timeout := fs.Duration("timeout", 5*time.Second, "lookup timeout")
		if err := fs.Parse(args); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(ctx, *timeout)
		defer cancel()
		res, err := diag.Resolve(ctx, nil, *host)
		if err != nil {
			return err
		}
		return printJSON(out, res)

	case "egress-ip":
		endpoint := fs.String("url", firstSet(os.Getenv("EGRESS_IP_URL"), diag.DefaultEgressURL), "echo service URL")
		if err := fs.Parse(args); err != nil {
			return err
		}
		ip, err := diag.EgressIP(ctx, nil, *endpoint)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, ip)
		return nil

	case "sign-snap":
		method := fs.String("method", "POST", "HTTP method")
		path := fs.String("path", payments.QRISPath, "relative URL path")
		body := fs.String("body", "", "JSON body, or @file")
		ts := fs.String("timestamp", payments.SNAPTimestamp(time.Now()), "X-TIMESTAMP value")
		if err := fs.Parse(args); err != nil {
			return err
		}
		raw, err := readBody(*body)
		if err != nil {
			return err
		}
		preview, err := diag.PreviewSNAP(*method, *path, raw, *ts)
		if err != nil {
			return err
		}
		result := map[string]any{"preview": preview}
		if cfg.SNAP.PrivateKeyPEM != "" {
			key, err := signature.ParsePrivateKey(cfg.SNAP.PrivateKeyPEM)
			if err != nil {
				return err
			}
			sig, err := signature.SignRSA(key, preview.StringToSign)
			if err != nil {
				return err
			}
			result["signature"] = sig
		}
		return printJSON(out, result)

	case "sign-pushtopay":
		rq := fs.String("uuid", signature.RequestUUID(uuid.New()), "rq_uuid")
		product := fs.String("product", "QRIS", "product code")
		order := fs.String("order", "", "order id")
		amount := fs.String("amount", "", "amount in rupiah")
		if err := fs.Parse(args); err != nil {
			return err
		}
		d, err := decimal.NewFromString(*amount)
		if err != nil {
			return fmt.Errorf("amount: %w", err)
		}
		return printJSON(out, diag.PreviewPushToPay(signature.PushToPayFields{
			RequestUUID: *rq,
			CommCode:    cfg.PushToPay.CommCode,
			ProductCode: *product,
			OrderID:     *order,
			Amount:      payments.IntegerAmount(d),
			SecretKey:   cfg.PushToPay.SecretKey,
		}))

	case "token":
		client := fs.String("client", "", "merchant backend id (token subject)")
		exp := fs.Duration("exp", 24*time.Hour, "token lifetime")
		if err := fs.Parse(args); err != nil {
			return err
		}
		secret := os.Getenv("AUTH_TOKEN_SECRET")
		if secret == "" {
			return errors.New("AUTH_TOKEN_SECRET is not set")
		}
		iss := firstSet(os.Getenv("AUTH_TOKEN_ISS"), "espaygw")
		token, err := auth.NewJWTAuthenticator(secret, iss, iss, *exp).GenerateToken(*client)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, token)
		return nil

	case "hash-password":
		password := fs.String("password", "", "password to hash")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *password == "" {
			return errors.New("-password is required")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(hash))
		return nil
	}

	return fmt.Errorf("unknown command\n\n%s", usage)
}

func readBody(arg string) (json.RawMessage, error) {
	if len(arg) > 1 && arg[0] == '@' {
		return os.ReadFile(arg[1:])
	}
	return json.RawMessage(arg), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
