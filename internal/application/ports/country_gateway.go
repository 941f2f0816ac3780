package ports

import (
	"context"

	"github.com/jhoicas/crm-graphql/internal/domain/entity"
)

// CountryGateway puerto de salida hacia el servicio GraphQL remoto de países.
// Los errores devueltos son *domain.UpstreamError o domain.ErrNotFound; nunca errores de transporte crudos.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type CountryGateway interface {
	ListCountries(ctx context.Context) ([]entity.Country, error)
	CountryByCode(ctx context.Context, code string) (*entity.Country, error)
}
