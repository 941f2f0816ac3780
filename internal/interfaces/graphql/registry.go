package graphql

import (
	"context"
	"fmt"
	"slices"
	"time"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/introspection"

	"github.com/jhoicas/crm-graphql/internal/application/crm"
	"github.com/jhoicas/crm-graphql/internal/domain/entity"
	"github.com/jhoicas/crm-graphql/pkg/logger"
)

// Nombres de operación registrados.
const (
	OpHello         = "hello"
	OpHelloWithName = "helloWithName"
	OpCustomers     = "customers"
	OpCustomerByID  = "customerById"
	OpAddCustomer   = "addCustomer"
	OpProfile       = "profile"
	OpCountries     = "countries"
	OpCountryByCode = "countryByCode"
)

// Claves de argumentos de OpProfile: "parent" resuelve un cliente, "parents" resuelve el lote.
const (
	ArgParent  = "parent"
	ArgParents = "parents"
)

// Args argumentos de una operación.
type Args map[string]interface{}

// Handler ejecuta una operación con nombre.
type Handler func(ctx context.Context, args Args) (interface{}, error)

// Middleware envuelve un Handler; recibe el nombre de la operación.
type Middleware func(name string, next Handler) Handler

// Registry tabla explícita nombre de operación → handler. Se construye una vez al arrancar
// y solo se lee por petición.
type Registry struct {
	handlers    map[string]Handler
	middlewares []Middleware
}

// NewRegistry registra todas las operaciones del API.
func NewRegistry(customers *crm.CustomerUseCase, countries *crm.CountryUseCase) *Registry {
	r := &Registry{handlers: make(map[string]Handler)}

	r.Register(OpHello, func(context.Context, Args) (interface{}, error) {
		return crm.Hello(), nil
	})
	r.Register(OpHelloWithName, func(_ context.Context, args Args) (interface{}, error) {
		return crm.HelloWithName(args["name"].(string)), nil
	})
	r.Register(OpCustomers, func(ctx context.Context, _ Args) (interface{}, error) {
		return customers.Customers(ctx)
	})
	r.Register(OpCustomerByID, func(ctx context.Context, args Args) (interface{}, error) {
		return customers.CustomerByID(ctx, args["id"].(int))
	})
	r.Register(OpAddCustomer, func(ctx context.Context, args Args) (interface{}, error) {
		return customers.AddCustomer(ctx, args["name"].(string))
	})
	r.Register(OpProfile, func(_ context.Context, args Args) (interface{}, error) {
		if parents, ok := args[ArgParents].([]*entity.Customer); ok {
			return customers.Profiles(parents), nil
		}
		parent, ok := args[ArgParent].(*entity.Customer)
		if !ok {
			return nil, fmt.Errorf("profile: falta %q o %q", ArgParent, ArgParents)
		}
		return customers.Profile(parent), nil
	})
	r.Register(OpCountries, func(ctx context.Context, _ Args) (interface{}, error) {
		return countries.Countries(ctx)
	})
	r.Register(OpCountryByCode, func(ctx context.Context, args Args) (interface{}, error) {
		return countries.CountryByCode(ctx, args["code"].(string))
	})
	return r
}

// Register añade una operación. Registrar dos veces el mismo nombre es un error de programación.
func (r *Registry) Register(name string, h Handler) {
	if _, dup := r.handlers[name]; dup {
		panic("graphql: operación registrada dos veces: " + name)
	}
	r.handlers[name] = h
}

// Use añade un middleware aplicado a todas las operaciones.
func (r *Registry) Use(mw Middleware) {
	r.middlewares = append(r.middlewares, mw)
}

// Dispatch busca la operación por nombre y la ejecuta.
func (r *Registry) Dispatch(ctx context.Context, name string, args Args) (interface{}, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("graphql: operación desconocida %q", name)
	}
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		h = r.middlewares[i](name, h)
	}
	return h(ctx, args)
}

// Names devuelve los nombres registrados ordenados.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for n := range r.handlers {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Validate comprueba que cada campo raíz (Query y Mutation) del esquema tiene handler.
func (r *Registry) Validate(s *gql.Schema) error {
	inspected := s.Inspect()
	all := &struct{ IncludeDeprecated bool }{IncludeDeprecated: true}
	var missing []string
	for _, t := range []*introspection.Type{inspected.QueryType(), inspected.MutationType()} {
		if t == nil {
			continue
		}
		fields := t.Fields(all)
		if fields == nil {
			continue
		}
		for _, f := range *fields {
			if _, ok := r.handlers[f.Name()]; !ok {
				missing = append(missing, f.Name())
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("graphql: campos sin handler registrado: %v", missing)
	}
	return nil
}

// LoggingMiddleware registra cada operación despachada a nivel debug.
func LoggingMiddleware(log *logger.Logger) Middleware {
	return func(name string, next Handler) Handler {
		return func(ctx context.Context, args Args) (interface{}, error) {
			start := time.Now()
			v, err := next(ctx, args)
			log.Debug().Str("operation", name).Dur("elapsed", time.Since(start)).Err(err).Msg("operación despachada")
			return v, err
		}
	}
}
