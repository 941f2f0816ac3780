package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crm-graphql/internal/domain"
	"github.com/jhoicas/crm-graphql/internal/domain/entity"
	"github.com/jhoicas/crm-graphql/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL (usable con pool o tx).
// La secuencia BIGSERIAL garantiza IDs únicos y crecientes.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Add inserta un cliente y devuelve el ID asignado por la secuencia.
func (r *CustomerRepo) Add(ctx context.Context, name string) (*entity.Customer, error) {
	c := entity.Customer{Name: name}
	var id int64
	if err := r.q.QueryRow(ctx, `INSERT INTO customers (name) VALUES ($1) RETURNING id`, name).Scan(&id); err != nil {
		return nil, storageErr("insert customer", err)
	}
	c.ID = int(id)
	return &c, nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int) (*entity.Customer, error) {
	var (
		rowID int64
		c     entity.Customer
	)
	err := r.q.QueryRow(ctx, `SELECT id, name FROM customers WHERE id = $1`, int64(id)).Scan(&rowID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("get customer", err)
	}
	c.ID = int(rowID)
	return &c, nil
}

// List lista todos los clientes por orden de ID.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM customers ORDER BY id`)
	if err != nil {
		return nil, storageErr("list customers", err)
	}
	defer rows.Close()
	list := make([]*entity.Customer, 0)
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, storageErr("scan customer", err)
		}
		list = append(list, &entity.Customer{ID: int(id), Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list customers", err)
	}
	return list, nil
}
