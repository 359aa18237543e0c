package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mitienda/tienda-api/internal/core/domain"
)

// DefaultTokenTTL bounds a session: tokens expire one hour after issuance.
const DefaultTokenTTL = time.Hour

// SessionClaims is the decoded payload of a session token. The JSON field
// names are what the storefront reads out of the token.
type SessionClaims struct {
	UserID   string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"rol"`
	UserName string `json:"userName"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies stateless HS256 session tokens. Nothing is
// stored server-side: validity is signature plus expiry, so every unexpired
// token for an account remains usable concurrently.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting the user's identity until now + TTL.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		UserName: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify decodes raw and checks signature and expiry. Any structural defect,
// wrong signature or elapsed expiry collapses to ErrTokenInvalid; an absent
// token is the transport layer's ErrTokenMissing, not Verify's concern.
func (s *TokenService) Verify(raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
