package domain

const (
	RoleAdmin  = "admin"
	RoleClient = "cliente"
)

// User models a store account. The password hash never leaves the backend:
// it is excluded from every JSON response.
type User struct {
	ID           string `json:"_id,omitempty"`
	Name         string `json:"nombre"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Address      string `json:"direccion"`
	Phone        string `json:"telefono"`
	Role         string `json:"rol"`
}
