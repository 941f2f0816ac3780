package entity

// Country país obtenido del servicio GraphQL remoto. Nunca se persiste localmente.
// Es deliberadamente más estrecho que el tipo remoto.
type Country struct {
	Code    string  `json:"code"`
	Capital *string `json:"capital"`
	Name    string  `json:"name"`
}
