// Package memory implementa el almacén de clientes en memoria (por defecto).
package memory

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/jhoicas/crm-graphql/internal/domain"
	"github.com/jhoicas/crm-graphql/internal/domain/entity"
	"github.com/jhoicas/crm-graphql/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo almacén concurrente de clientes. Se construye una vez al arrancar y se inyecta;
// no hay estado global.
type CustomerRepo struct {
	seq atomic.Int64
	db  *xsync.Map[int, entity.Customer]
}

// NewCustomerRepository construye un almacén vacío; el primer ID asignado es 1.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{db: xsync.NewMap[int, entity.Customer]()}
}

// Add asigna el siguiente ID de forma atómica y guarda el cliente. No falla.
func (r *CustomerRepo) Add(_ context.Context, name string) (*entity.Customer, error) {
	c := entity.Customer{ID: int(r.seq.Add(1)), Name: name}
	r.db.Store(c.ID, c)
	return &c, nil
}

// GetByID obtiene un cliente por ID o domain.ErrNotFound.
func (r *CustomerRepo) GetByID(_ context.Context, id int) (*entity.Customer, error) {
	c, ok := r.db.Load(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// List devuelve una copia de los clientes ordenada por ID (orden de inserción).
// Inserciones concurrentes pueden o no aparecer en la instantánea.
func (r *CustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	list := make([]*entity.Customer, 0, r.db.Size())
	r.db.Range(func(_ int, c entity.Customer) bool {
		list = append(list, &c)
		return true
	})
	slices.SortFunc(list, func(a, b *entity.Customer) int { return a.ID - b.ID })
	return list, nil
}
