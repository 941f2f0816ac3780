package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound                  = errors.New("recurso no encontrado")
	ErrInvalidArgument           = errors.New("argumento inválido")
	ErrStorageUnavailable        = errors.New("almacenamiento no disponible")
	ErrUpstreamUnavailable       = errors.New("servicio remoto no disponible")
	ErrUpstreamMalformedResponse = errors.New("respuesta del servicio remoto con formato inesperado")
)

// UpstreamError error de un campo resuelto contra el servicio remoto. Kind es
// ErrUpstreamUnavailable o ErrUpstreamMalformedResponse; Cause conserva el error original.
type UpstreamError struct {
	Op    string // operación local (countries, countryByCode)
	Field string // campo extraído de la respuesta remota
	Kind  error
	Cause error
}

func (e *UpstreamError) Error() string {
	msg := e.Op + " (" + e.Field + "): " + e.Kind.Error()
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
