// Package countries adapta el servicio GraphQL público de países al puerto CountryGateway.
package countries

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/machinebox/graphql"

	"github.com/jhoicas/crm-graphql/internal/application/ports"
	"github.com/jhoicas/crm-graphql/internal/domain"
	"github.com/jhoicas/crm-graphql/internal/domain/entity"
	"github.com/jhoicas/crm-graphql/pkg/logger"
)

var _ ports.CountryGateway = (*Client)(nil)

const (
	listCountriesQuery = `query {
  countries {
    code
    capital
    name
  }
}`

	// El código viaja siempre como variable; nunca se interpola en el documento.
	countryByCodeQuery = `query ($code: ID!) {
  country(code: $code) {
    code
    name
  }
}`
)

// Client adaptador sobre github.com/machinebox/graphql.
type Client struct {
	gql *graphql.Client
}

// NewClient construye el adaptador. httpClient puede ser nil; las respuestas HTTP 4xx/5xx
// se reportan como servicio no disponible.
func NewClient(endpoint string, httpClient *http.Client, log *logger.Logger) *Client {
	gql := graphql.NewClient(endpoint, graphql.WithHTTPClient(withStatusCheck(httpClient)))
	if log != nil {
		gql.Log = func(s string) { log.Printf("%s", s) }
	}
	return &Client{gql: gql}
}

// ListCountries consulta code, capital y name de todos los países.
func (c *Client) ListCountries(ctx context.Context) ([]entity.Country, error) {
	const op, field = "countries", "countries"

	raw, err := c.fetch(ctx, graphql.NewRequest(listCountriesQuery), op, field)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, malformed(op, field, errors.New("campo nulo"))
	}
	var list []entity.Country
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, malformed(op, field, err)
	}
	for i := range list {
		if list[i].Code == "" {
			return nil, malformed(op, field, fmt.Errorf("elemento %d sin code", i))
		}
		if list[i].Name == "" {
			return nil, malformed(op, field, fmt.Errorf("elemento %d sin name", i))
		}
	}
	return list, nil
}

// CountryByCode consulta un país por código. Si el servicio devuelve null, domain.ErrNotFound.
func (c *Client) CountryByCode(ctx context.Context, code string) (*entity.Country, error) {
	const op, field = "countryByCode", "country"

	req := graphql.NewRequest(countryByCodeQuery)
	req.Var("code", code)
	raw, err := c.fetch(ctx, req, op, field)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, domain.ErrNotFound
	}
	var country entity.Country
	if err := json.Unmarshal(raw, &country); err != nil {
		return nil, malformed(op, field, err)
	}
	if country.Code == "" {
		return nil, malformed(op, field, errors.New("país sin code"))
	}
	if country.Name == "" {
		return nil, malformed(op, field, errors.New("país sin name"))
	}
	// El documento no pide capital; se descarta lo que el remoto añada.
	country.Capital = nil
	return &country, nil
}

// fetch ejecuta la petición y extrae el campo pedido del objeto data.
func (c *Client) fetch(ctx context.Context, req *graphql.Request, op, field string) (json.RawMessage, error) {
	var data map[string]json.RawMessage
	if err := c.gql.Run(ctx, req, &data); err != nil {
		return nil, translate(ctx, op, field, err)
	}
	raw, ok := data[field]
	if !ok {
		return nil, malformed(op, field, fmt.Errorf("campo %q ausente en data", field))
	}
	return raw, nil
}

// translate convierte un error del cliente GraphQL en la taxonomía del dominio.
func translate(ctx context.Context, op, field string, err error) error {
	kind := domain.ErrUpstreamUnavailable
	var (
		statusErr *StatusError
		urlErr    *url.Error
		netErr    net.Error
	)
	switch {
	case ctx.Err() != nil:
		err = ctx.Err()
	case errors.As(err, &statusErr), errors.As(err, &urlErr), errors.As(err, &netErr):
	case strings.Contains(err.Error(), "decoding response"):
		kind = domain.ErrUpstreamMalformedResponse
	}
	return &domain.UpstreamError{Op: op, Field: field, Kind: kind, Cause: err}
}

func malformed(op, field string, cause error) error {
	return &domain.UpstreamError{Op: op, Field: field, Kind: domain.ErrUpstreamMalformedResponse, Cause: cause}
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
