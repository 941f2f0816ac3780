package repository

import (
	"context"

	"github.com/jhoicas/crm-graphql/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Es la única fuente de verdad de los clientes.
type CustomerRepository interface {
	// Add asigna el siguiente ID (estrictamente creciente, desde 1) y guarda el cliente.
	// El API GraphQL expone el ID como Int de 32 bits; por encima de math.MaxInt32 el campo
	// id responde con error en lugar de truncarse.
	Add(ctx context.Context, name string) (*entity.Customer, error)
	// GetByID devuelve domain.ErrNotFound si el cliente no existe.
	GetByID(ctx context.Context, id int) (*entity.Customer, error)
	// List devuelve una instantánea nueva en cada llamada, ordenada por ID.
	List(ctx context.Context) ([]*entity.Customer, error)
}
