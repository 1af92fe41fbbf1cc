package httppresentation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	appfinance "github.com/bexiiiii/euroline-sub001/internal/application/finance"
	appsearch "github.com/bexiiiii/euroline-sub001/internal/application/search"
	domcart "github.com/bexiiiii/euroline-sub001/internal/domain/cart"
	domfinance "github.com/bexiiiii/euroline-sub001/internal/domain/finance"
	"github.com/bexiiiii/euroline-sub001/internal/infrastructure/remote"
)

const maxBodyBytes = 1 << 20

var (
	validate       = newValidator()
	errInvalidBody = errors.New("invalid request body")
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// validationError lists per-field problems found in a request body.
type validationError struct {
	Fields map[string]string
}

func (e *validationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for k, v := range e.Fields {
		parts = append(parts, k+" "+v)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	return validateStruct(dst)
}

// decodeEmbedded leniently decodes a nested document that mirrors an upstream
// payload; unknown fields are ignored. An absent document leaves dst untouched.
func decodeEmbedded(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	return nil
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		fields := make(map[string]string, len(errs))
		for _, fe := range errs {
			fields[fe.Field()] = validationMessage(fe)
		}
		return &validationError{Fields: fields}
	}
	return err
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	}
	return "is invalid"
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Error: err.Error()}
	var verr *validationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}
	writeJSON(w, status, resp)
}

func writeDomainError(w http.ResponseWriter, err error) {
	var verr *validationError
	var rerr *remote.Error
	switch {
	case errors.As(err, &verr),
		errors.Is(err, errInvalidBody),
		errors.Is(err, appsearch.ErrQueryRequired),
		errors.Is(err, domcart.ErrOEMRequired),
		errors.Is(err, domcart.ErrInvalidQuantity),
		errors.Is(err, domcart.ErrInvalidPrice),
		errors.Is(err, domfinance.ErrCustomerRequired),
		errors.Is(err, domfinance.ErrNegativeLimit):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, domfinance.ErrLimitBelowUsed):
		writeError(w, http.StatusUnprocessableEntity, err)
	case errors.As(err, &rerr) && rerr.Status == http.StatusNotFound:
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, appsearch.ErrUpstream),
		errors.Is(err, appfinance.ErrUpstream),
		errors.Is(err, remote.ErrTransport):
		writeError(w, http.StatusBadGateway, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
