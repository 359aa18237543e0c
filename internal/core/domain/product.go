package domain

// Product is a catalog entry. The catalog has no invariants beyond the
// required fields; it exists to back the storefront and the admin tables.
type Product struct {
	ID          string  `json:"_id,omitempty"`
	Name        string  `json:"nombre"`
	Category    string  `json:"categoria"`
	Price       float64 `json:"precio"`
	Description string  `json:"descripcion,omitempty"`
	Image       string  `json:"imagen,omitempty"`
	Stock       int     `json:"stock"`
}
