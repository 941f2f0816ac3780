package graphql

import (
	"context"
	"math"
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

func newTestRegistry() *Registry {
	uc := crm.NewCustomerUseCase(memory.NewCustomerRepository(), metrics.New(), logger.Nop())
	return NewRegistry(uc, nil)
}

func TestRegistry_Names(t *testing.T) {
	assert.Equal(t, []string{
		OpAddCustomer, OpCountries, OpCountryByCode, OpCustomerByID, OpCustomers,
		OpHello, OpHelloWithName, OpProfile,
	}, newTestRegistry().Names())
}

func TestRegistry_OperacionDesconocida(t *testing.T) {
	_, err := newTestRegistry().Dispatch(context.Background(), "deleteCustomer", nil)
	assert.Error(t, err)
}

func TestRegistry_RegistroDuplicado(t *testing.T) {
	r := newTestRegistry()
	assert.Panics(t, func() {
		r.Register(OpCustomers, func(context.Context, Args) (interface{}, error) { return nil, nil })
	})
}

func TestRegistry_ProfileSinPadre(t *testing.T) {
	_, err := newTestRegistry().Dispatch(context.Background(), OpProfile, Args{})
	assert.Error(t, err)
}

func TestRegistry_MiddlewareOrden(t *testing.T) {
	r := newTestRegistry()
	var order []string
	for _, tag := range []string{"externo", "interno"} {
		tag := tag
		r.Use(func(name string, next Handler) Handler {
			return func(ctx context.Context, args Args) (interface{}, error) {
				order = append(order, tag+":"+name)
				return next(ctx, args)
			}
		})
	}

	v, err := r.Dispatch(context.Background(), OpHello, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello world!", v)
	assert.Equal(t, []string{"externo:hello", "interno:hello"}, order)
}

// Un esquema con campos sin handler debe rechazarse al arrancar.
func TestNewSchema_CampoSinHandler(t *testing.T) {
	r := &Registry{handlers: map[string]Handler{
		OpHello: func(context.Context, Args) (interface{}, error) { return "hi", nil },
	}}
	_, err := NewSchema(r, logger.Nop(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), OpCustomers)
	assert.Contains(t, err.Error(), OpAddCustomer)
}

func TestFieldError_Codigos(t *testing.T) {
	cases := map[error]string{
		domain.ErrStorageUnavailable: CodeStorageUnavailable,
		domain.ErrInvalidArgument:    CodeInvalidArgument,
		assert.AnError:               CodeInternal,
		&domain.UpstreamError{Op: "countries", Field: "countries", Kind: domain.ErrUpstreamUnavailable}:       CodeUpstreamUnavailable,
		&domain.UpstreamError{Op: "countries", Field: "countries", Kind: domain.ErrUpstreamMalformedResponse}: CodeUpstreamMalformedResponse,
	}
	for in, code := range cases {
		fe, ok := fieldError(in).(*FieldError)
		require.True(t, ok)
		assert.Equal(t, code, fe.Extensions()["code"], in.Error())
		assert.ErrorIs(t, fe, in)
	}
	assert.Nil(t, fieldError(nil))
}

func TestCustomerResolver_IDFueraDeRango(t *testing.T) {
	big := int64(math.MaxInt32) + 1
	r := &customerResolver{c: &entity.Customer{ID: int(big), Name: "Ada"}}

	_, err := r.ID()
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeInternal, fe.Extensions()["code"])

	_, err = (&profileResolver{p: entity.Profile{ID: int(big), CustomerID: int(big)}}).CustomerID()
	assert.Error(t, err)

	r.c.ID = math.MaxInt32
	id, err := r.ID()
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), id)
}
