package crm_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-graphql/internal/application/crm"
	"github.com/jhoicas/crm-graphql/internal/domain"
	"github.com/jhoicas/crm-graphql/internal/domain/entity"
	"github.com/jhoicas/crm-graphql/internal/infrastructure/metrics"
	"github.com/jhoicas/crm-graphql/pkg/logger"
)

// fakeGateway implementa ports.CountryGateway en memoria.
type fakeGateway struct {
	countries []entity.Country
	byCode    map[string]entity.Country
	err       error
	block     bool
}

func (g *fakeGateway) ListCountries(ctx context.Context) ([]entity.Country, error) {
	if g.block {
		<-ctx.Done()
		return nil, &domain.UpstreamError{Op: "countries", Field: "countries", Kind: domain.ErrUpstreamUnavailable, Cause: ctx.Err()}
	}
	return g.countries, g.err
}

func (g *fakeGateway) CountryByCode(_ context.Context, code string) (*entity.Country, error) {
	if g.err != nil {
		return nil, g.err
	}
	c, ok := g.byCode[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func newCountryUC(gw *fakeGateway, timeout time.Duration) *crm.CountryUseCase {
	return crm.NewCountryUseCase(gw, timeout, metrics.New(), logger.Nop())
}

func TestCountries_Ok(t *testing.T) {
	gw := &fakeGateway{countries: []entity.Country{{Code: "CO", Name: "Colombia"}}}

	list, err := newCountryUC(gw, time.Second).Countries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, gw.countries, list)
}

func TestCountryByCode_NoExisteEsNil(t *testing.T) {
	gw := &fakeGateway{byCode: map[string]entity.Country{"CO": {Code: "CO", Name: "Colombia"}}}
	uc := newCountryUC(gw, time.Second)

	c, err := uc.CountryByCode(context.Background(), "XX")
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = uc.CountryByCode(context.Background(), "CO")
	require.NoError(t, err)
	assert.Equal(t, "Colombia", c.Name)
}

func TestCountries_TimeoutReportaUnavailable(t *testing.T) {
	uc := newCountryUC(&fakeGateway{block: true}, 30*time.Millisecond)

	start := time.Now()
	_, err := uc.Countries(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.Less(t, time.Since(start), time.Second, "no debe colgar al llamador")
}

func TestCountryByCode_ErrorMalformadoSePropaga(t *testing.T) {
	upErr := &domain.UpstreamError{Op: "countryByCode", Field: "country", Kind: domain.ErrUpstreamMalformedResponse, Cause: errors.New("x")}
	uc := newCountryUC(&fakeGateway{err: upErr}, time.Second)

	_, err := uc.CountryByCode(context.Background(), "CO")
	assert.ErrorIs(t, err, domain.ErrUpstreamMalformedResponse)
}
