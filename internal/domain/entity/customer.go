package entity

// Customer representa un cliente del registro CRM. El ID lo asigna el almacén y nunca se reutiliza.
type Customer struct {
	ID   int
	Name string
}
