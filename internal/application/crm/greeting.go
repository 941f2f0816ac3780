package crm

// Hello saludo fijo del servicio.
func Hello() string { return "Hello world!" }

// HelloWithName saluda por nombre.
func HelloWithName(name string) string { return "Hello " + name + "!" }
