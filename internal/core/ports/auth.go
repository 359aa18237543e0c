package ports

import (
	"github.com/mitienda/tienda-api/internal/core/auth"
	"github.com/mitienda/tienda-api/internal/core/domain"
)

// PasswordHasher is the one-way credential protection used at registration
// and on password change, and the matching verifier used at login.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) bool
}

// TokenService signs and verifies session tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(raw string) (*auth.SessionClaims, error)
}

// IDValidator reports whether raw is a syntactically well-formed store
// identifier. Every by-id operation checks this before touching the store,
// so malformed ids surface as client errors rather than driver faults.
type IDValidator interface {
	IsValid(raw string) bool
}
