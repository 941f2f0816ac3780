package crm

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/crm-graphql/internal/application/ports"
	"github.com/jhoicas/crm-graphql/internal/domain"
	"github.com/jhoicas/crm-graphql/internal/domain/entity"
	"github.com/jhoicas/crm-graphql/internal/infrastructure/metrics"
	"github.com/jhoicas/crm-graphql/pkg/logger"
)

// UpstreamRecorder registra el resultado de cada llamada al servicio remoto.
type UpstreamRecorder interface {
	Upstream(operation, outcome string, elapsed time.Duration)
}

// CountryUseCase reenvía las consultas de países al servicio remoto.
// Aplica un timeout en cada llamada para que la latencia externa no bloquee al llamador.
type CountryUseCase struct {
	gw      ports.CountryGateway
	timeout time.Duration
	metrics UpstreamRecorder
	log     *logger.Logger
}

// NewCountryUseCase construye el caso de uso inyectando el puerto CountryGateway.
func NewCountryUseCase(gw ports.CountryGateway, timeout time.Duration, metrics UpstreamRecorder, log *logger.Logger) *CountryUseCase {
	return &CountryUseCase{gw: gw, timeout: timeout, metrics: metrics, log: log}
}

// Countries lista todos los países del servicio remoto.
func (uc *CountryUseCase) Countries(ctx context.Context) ([]entity.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	list, err := uc.gw.ListCountries(ctx)
	uc.record("countries", start, err)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CountryByCode devuelve el país o nil si el servicio remoto no lo conoce.
func (uc *CountryUseCase) CountryByCode(ctx context.Context, code string) (*entity.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	c, err := uc.gw.CountryByCode(ctx, code)
	uc.record("countryByCode", start, err)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CountryUseCase) record(op string, start time.Time, err error) {
	elapsed := time.Since(start)
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		outcome = metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrUpstreamMalformedResponse):
		outcome = metrics.OutcomeMalformed
	default:
		outcome = metrics.OutcomeUnavailable
	}
	uc.metrics.Upstream(op, outcome, elapsed)
	if outcome == metrics.OutcomeUnavailable || outcome == metrics.OutcomeMalformed {
		uc.log.Warn().Err(err).Str("operation", op).Dur("elapsed", elapsed).Msg("fallo en servicio de países")
	}
}
