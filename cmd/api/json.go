package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"espaygw/internal/payments"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var idPhone = regexp.MustCompile(`^(0|\+62)[0-9]{6,15}$`)

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// SNAP money values: digits, a dot and exactly two decimals (150000.00)
	Validate.RegisterValidation("amount2dp", func(fl validator.FieldLevel) bool {
		return payments.IsAmount2DP(fl.Field().String())
	})

	// Indonesian phone numbers as the VA API accepts them: 08xx or +628xx
	Validate.RegisterValidation("idphone", func(fl validator.FieldLevel) bool {
		return idPhone.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	// report json names rather than Go field names
	Validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	type envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Status  int    `json:"status"`
	}

	return writeJSON(w, status, &envelope{
		Success: false,
		Message: message,
		Status:  status,
	})
}

func (app *application) jsonResponse(w http.ResponseWriter, status int, data any) error {
	type envelope struct {
		Data any `json:"data"`
	}
	return writeJSON(w, status, &envelope{Data: data})
}

// validationFields flattens validator errors to json-name -> failed tag.
func validationFields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fields[ns] = msg
	}
	return fields
}
