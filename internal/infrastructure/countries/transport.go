package countries

import (
	"fmt"
	"io"
	"net/http"
)

// StatusError respuesta HTTP de error (4xx/5xx) del servicio de países.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("servicio remoto respondió HTTP %d", e.StatusCode)
}

// statusTransport corta las respuestas de error antes de que el cliente GraphQL intente
// decodificar el cuerpo, que en un gateway caído suele ser HTML o texto plano.
// Las redirecciones (3xx) las sigue http.Client por encima de este transporte.
type statusTransport struct {
	next http.RoundTripper
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	res, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode >= http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4<<10))
		_ = res.Body.Close()
		return nil, &StatusError{StatusCode: res.StatusCode}
	}
	return res, nil
}

// withStatusCheck devuelve una copia de hc con el transporte envuelto; hc no se modifica.
func withStatusCheck(hc *http.Client) *http.Client {
	out := &http.Client{}
	if hc != nil {
		*out = *hc
	}
	next := out.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	out.Transport = statusTransport{next: next}
	return out
}
