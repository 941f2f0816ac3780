package graphql

import (
	"errors"
	"fmt"
	"math"

	"github.com/jhoicas/crm-graphql/internal/domain"
)

// Códigos de error expuestos en extensions.code.
const (
	CodeUpstreamUnavailable       = "UPSTREAM_UNAVAILABLE"
	CodeUpstreamMalformedResponse = "UPSTREAM_MALFORMED_RESPONSE"
	CodeStorageUnavailable        = "STORAGE_UNAVAILABLE"
	CodeInvalidArgument           = "INVALID_ARGUMENT"
	CodeInternal                  = "INTERNAL"
)

// FieldError error de campo con extensiones; graph-gophers lo serializa en errors[].extensions.
type FieldError struct {
	msg        string
	extensions map[string]interface{}
	cause      error
}

func (e *FieldError) Error() string                      { return e.msg }
func (e *FieldError) Extensions() map[string]interface{} { return e.extensions }
func (e *FieldError) Unwrap() error                      { return e.cause }

// fieldError traduce un error de dominio al error de campo expuesto al cliente.
// Las causas de transporte del servicio remoto no se incluyen en el mensaje.
func fieldError(err error) error {
	if err == nil {
		return nil
	}
	var upErr *domain.UpstreamError
	if errors.As(err, &upErr) {
		code := CodeUpstreamUnavailable
		if errors.Is(upErr.Kind, domain.ErrUpstreamMalformedResponse) {
			code = CodeUpstreamMalformedResponse
		}
		return &FieldError{
			msg: upErr.Op + " (" + upErr.Field + "): " + upErr.Kind.Error(),
			extensions: map[string]interface{}{
				"code":      code,
				"operation": upErr.Op,
				"field":     upErr.Field,
			},
			cause: err,
		}
	}
	code := CodeInternal
	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		code = CodeStorageUnavailable
	case errors.Is(err, domain.ErrInvalidArgument):
		code = CodeInvalidArgument
	}
	return &FieldError{msg: err.Error(), extensions: map[string]interface{}{"code": code}, cause: err}
}

// graphQLInt convierte un ID al Int de GraphQL (32 bits con signo). Un ID fuera de rango
// es un error de campo en lugar de un valor truncado.
func graphQLInt(id int) (int32, error) {
	if id > math.MaxInt32 || id < math.MinInt32 {
		return 0, &FieldError{
			msg:        fmt.Sprintf("id %d fuera del rango de Int", id),
			extensions: map[string]interface{}{"code": CodeInternal},
		}
	}
	return int32(id), nil
}
