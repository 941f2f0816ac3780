// Package crm orquesta los casos de uso del registro de clientes y del proxy de países.
package crm

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/jhoicas/crm-graphql/internal/domain"
	"github.com/jhoicas/crm-graphql/internal/domain/entity"
	"github.com/jhoicas/crm-graphql/internal/domain/profile"
	"github.com/jhoicas/crm-graphql/internal/domain/repository"
	"github.com/jhoicas/crm-graphql/pkg/logger"
)

// Recorder subconjunto de métricas que usan los casos de uso (*metrics.Metrics lo satisface).
type Recorder interface {
	CustomerCreated()
	ProfileBatch(size int)
}

// CustomerUseCase casos de uso de clientes y de su perfil derivado.
type CustomerUseCase struct {
	repo    repository.CustomerRepository
	metrics Recorder
	log     *logger.Logger
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, metrics Recorder, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, metrics: metrics, log: log}
}

// Customers lista todos los clientes. Los errores del almacén se propagan sin envolver.
func (uc *CustomerUseCase) Customers(ctx context.Context) ([]*entity.Customer, error) {
	return uc.repo.List(ctx)
}

// CustomerByID devuelve el cliente o nil si no existe (fallo "suave", no es error).
func (uc *CustomerUseCase) CustomerByID(ctx context.Context, id int) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return c, err
}

// AddCustomer crea un cliente. El nombre vacío se acepta; no hay validación adicional.
func (uc *CustomerUseCase) AddCustomer(ctx context.Context, name string) (*entity.Customer, error) {
	c, err := uc.repo.Add(ctx, name)
	if err != nil {
		return nil, err
	}
	uc.metrics.CustomerCreated()
	uc.log.Debug().Int("id", c.ID).Msg("cliente creado")
	return c, nil
}

// Profile resuelve el perfil de un único cliente.
func (uc *CustomerUseCase) Profile(c *entity.Customer) entity.Profile {
	return profile.ResolveOne(*c)
}

// Profiles resuelve los perfiles de una lista de clientes en una sola llamada (evita N+1).
func (uc *CustomerUseCase) Profiles(cs []*entity.Customer) map[int]entity.Profile {
	ids := lo.Map(cs, func(c *entity.Customer, _ int) int { return c.ID })
	uc.log.Info().Ints("customer_ids", ids).Msg("resolviendo profile en lote")
	uc.metrics.ProfileBatch(len(cs))
	return profile.ResolveBatch(lo.FromSlicePtr(cs))
}
