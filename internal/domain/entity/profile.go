package entity

// Profile es un valor derivado de un Customer; no se almacena.
// ID y CustomerID coinciden siempre con el ID del cliente de origen.
type Profile struct {
	ID         int
	CustomerID int
}
