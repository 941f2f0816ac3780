// Package profile calcula el campo derivado Profile a partir de un Customer.
package profile

import (
	"github.com/samber/lo"

	"github.com/jhoicas/crm-graphql/internal/domain/entity"
)

// ResolveOne deriva el perfil de un único cliente.
func ResolveOne(c entity.Customer) entity.Profile {
	return entity.Profile{ID: c.ID, CustomerID: c.ID}
}

// ResolveBatch deriva los perfiles de una lista de clientes en una sola llamada.
// La clave es el ID del cliente, no la identidad del puntero; entradas repetidas colapsan en una.
func ResolveBatch(cs []entity.Customer) map[int]entity.Profile {
	return lo.SliceToMap(cs, func(c entity.Customer) (int, entity.Profile) {
		return c.ID, ResolveOne(c)
	})
}
