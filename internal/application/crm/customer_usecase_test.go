package crm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-graphql/internal/application/crm"
	"github.com/jhoicas/crm-graphql/internal/domain"
	"github.com/jhoicas/crm-graphql/internal/domain/entity"
	"github.com/jhoicas/crm-graphql/internal/infrastructure/memory"
	"github.com/jhoicas/crm-graphql/internal/infrastructure/metrics"
	"github.com/jhoicas/crm-graphql/pkg/logger"
)

func newCustomerUC() *crm.CustomerUseCase {
	return crm.NewCustomerUseCase(memory.NewCustomerRepository(), metrics.New(), logger.Nop())
}

func TestCustomerByID_InexistenteEsNil(t *testing.T) {
	uc := newCustomerUC()

	c, err := uc.CustomerByID(context.Background(), 99)
	require.NoError(t, err, "un ID desconocido no es un error")
	assert.Nil(t, c)
}

func TestAddCustomer_RoundTrip(t *testing.T) {
	uc := newCustomerUC()
	ctx := context.Background()

	added, err := uc.AddCustomer(ctx, "Ada")
	require.NoError(t, err)

	got, err := uc.CustomerByID(ctx, added.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, added.ID, got.ID)
}

func TestAddCustomer_NombreVacioAceptado(t *testing.T) {
	c, err := newCustomerUC().AddCustomer(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, c.ID)
	assert.Equal(t, "", c.Name)
}

func TestProfiles_EscenarioSanJan(t *testing.T) {
	uc := newCustomerUC()
	ctx := context.Background()

	san, err := uc.AddCustomer(ctx, "San")
	require.NoError(t, err)
	jan, err := uc.AddCustomer(ctx, "Jan")
	require.NoError(t, err)
	assert.Equal(t, 1, san.ID)
	assert.Equal(t, 2, jan.ID)

	list, err := uc.Customers(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"San", "Jan"}, []string{list[0].Name, list[1].Name})

	profiles := uc.Profiles(list)
	assert.Equal(t, map[int]entity.Profile{
		1: {ID: 1, CustomerID: 1},
		2: {ID: 2, CustomerID: 2},
	}, profiles)

	for _, c := range list {
		assert.Equal(t, uc.Profile(c), profiles[c.ID], "lote e individual deben coincidir")
	}
}

func TestProfiles_Vacio(t *testing.T) {
	profiles := newCustomerUC().Profiles(nil)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}

// failingRepo simula un almacén persistente caído.
type failingRepo struct{ err error }

func (r failingRepo) Add(context.Context, string) (*entity.Customer, error) { return nil, r.err }
func (r failingRepo) GetByID(context.Context, int) (*entity.Customer, error) {
	return nil, r.err
}
func (r failingRepo) List(context.Context) ([]*entity.Customer, error) { return nil, r.err }

// Los errores del almacén se propagan sin envolver ni ocultar.
func TestErroresDelAlmacenSePropagan(t *testing.T) {
	storeErr := errors.Join(domain.ErrStorageUnavailable, errors.New("connection refused"))
	uc := crm.NewCustomerUseCase(failingRepo{err: storeErr}, metrics.New(), logger.Nop())
	ctx := context.Background()

	_, err := uc.Customers(ctx)
	assert.Same(t, storeErr, err)

	_, err = uc.CustomerByID(ctx, 1)
	assert.Same(t, storeErr, err)

	_, err = uc.AddCustomer(ctx, "Ada")
	assert.Same(t, storeErr, err)
}

func TestGreetings(t *testing.T) {
	assert.Equal(t, "Hello world!", crm.Hello())
	assert.Equal(t, "Hello Ada!", crm.HelloWithName("Ada"))
}
