package graphql

import (
	"context"
	_ "embed"
	"fmt"

	gql "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/crm-graphql/internal/domain/entity"
	"github.com/jhoicas/crm-graphql/pkg/logger"
)

//go:embed schema.graphql
var SDL string

// NewSchema construye el esquema ejecutable y verifica que cada campo raíz tenga operación registrada.
func NewSchema(ops *Registry, log *logger.Logger, maxParallelism int) (*gql.Schema, error) {
	s, err := gql.ParseSchema(SDL, &Resolver{ops: ops},
		gql.MaxParallelism(maxParallelism),
		gql.Logger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("parsear esquema: %w", err)
	}
	if err := ops.Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Resolver raíz: cada campo busca su operación en el Registry por nombre.
type Resolver struct {
	ops *Registry
}

func (r *Resolver) Hello(ctx context.Context) (string, error) {
	v, err := r.ops.Dispatch(ctx, OpHello, nil)
	if err != nil {
		return "", fieldError(err)
	}
	return v.(string), nil
}

func (r *Resolver) HelloWithName(ctx context.Context, args struct{ Name string }) (string, error) {
	v, err := r.ops.Dispatch(ctx, OpHelloWithName, Args{"name": args.Name})
	if err != nil {
		return "", fieldError(err)
	}
	return v.(string), nil
}

// Customers lista los clientes. Si la selección incluye profile, los perfiles se
// resuelven en una sola llamada por lote y se adjuntan a cada cliente.
func (r *Resolver) Customers(ctx context.Context) ([]*customerResolver, error) {
	v, err := r.ops.Dispatch(ctx, OpCustomers, nil)
	if err != nil {
		return nil, fieldError(err)
	}
	list := v.([]*entity.Customer)

	var profiles map[int]entity.Profile
	if gql.HasSelectedField(ctx, "profile") {
		pv, err := r.ops.Dispatch(ctx, OpProfile, Args{ArgParents: list})
		if err != nil {
			return nil, fieldError(err)
		}
		profiles = pv.(map[int]entity.Profile)
	}

	out := make([]*customerResolver, len(list))
	for i, c := range list {
		cr := &customerResolver{ops: r.ops, c: c}
		if p, ok := profiles[c.ID]; ok {
			cr.profile = &p
		}
		out[i] = cr
	}
	return out, nil
}

func (r *Resolver) CustomerByID(ctx context.Context, args struct{ ID int32 }) (*customerResolver, error) {
	v, err := r.ops.Dispatch(ctx, OpCustomerByID, Args{"id": int(args.ID)})
	if err != nil {
		return nil, fieldError(err)
	}
	c := v.(*entity.Customer)
	if c == nil {
		return nil, nil
	}
	return &customerResolver{ops: r.ops, c: c}, nil
}

func (r *Resolver) AddCustomer(ctx context.Context, args struct{ Name string }) (*customerResolver, error) {
	v, err := r.ops.Dispatch(ctx, OpAddCustomer, Args{"name": args.Name})
	if err != nil {
		return nil, fieldError(err)
	}
	return &customerResolver{ops: r.ops, c: v.(*entity.Customer)}, nil
}

func (r *Resolver) Countries(ctx context.Context) ([]*countryResolver, error) {
	v, err := r.ops.Dispatch(ctx, OpCountries, nil)
	if err != nil {
		return nil, fieldError(err)
	}
	list := v.([]entity.Country)
	out := make([]*countryResolver, len(list))
	for i := range list {
		out[i] = &countryResolver{c: list[i]}
	}
	return out, nil
}

func (r *Resolver) CountryByCode(ctx context.Context, args struct{ Code string }) (*countryResolver, error) {
	v, err := r.ops.Dispatch(ctx, OpCountryByCode, Args{"code": args.Code})
	if err != nil {
		return nil, fieldError(err)
	}
	c := v.(*entity.Country)
	if c == nil {
		return nil, nil
	}
	return &countryResolver{c: *c}, nil
}

type customerResolver struct {
	ops     *Registry
	c       *entity.Customer
	profile *entity.Profile // precargado por Customers cuando hay lote
}

func (r *customerResolver) ID() (int32, error) { return graphQLInt(r.c.ID) }
func (r *customerResolver) Name() string       { return r.c.Name }

// Profile usa el valor precargado por lote; con un único padre resuelve individualmente.
func (r *customerResolver) Profile(ctx context.Context) (*profileResolver, error) {
	if r.profile != nil {
		return &profileResolver{p: *r.profile}, nil
	}
	v, err := r.ops.Dispatch(ctx, OpProfile, Args{ArgParent: r.c})
	if err != nil {
		return nil, fieldError(err)
	}
	return &profileResolver{p: v.(entity.Profile)}, nil
}

type profileResolver struct{ p entity.Profile }

func (r *profileResolver) ID() (int32, error)         { return graphQLInt(r.p.ID) }
func (r *profileResolver) CustomerID() (int32, error) { return graphQLInt(r.p.CustomerID) }

type countryResolver struct{ c entity.Country }

func (r *countryResolver) Code() string     { return r.c.Code }
func (r *countryResolver) Capital() *string { return r.c.Capital }
func (r *countryResolver) Name() string     { return r.c.Name }
