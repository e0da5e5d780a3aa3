package entity

// Product un producto del catálogo de la ferretería.
// Se carga una sola vez al inicio y nunca se modifica.
type Product struct {
	Name        string   `json:"nombre"`
	Category    string   `json:"categoria"`
	Price       int      `json:"precio"` // COP, sin decimales
	Description string   `json:"descripcion"`
	Suggestions []string `json:"sugerencias,omitempty"` // nombres de otros productos (venta cruzada)
}
