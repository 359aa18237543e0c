package auth

import "golang.org/x/crypto/bcrypt"

// BcryptHasher protects passwords at rest with a fixed work factor. A fresh
// salt is generated on every call and embedded in the output, so no separate
// salt storage exists.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plain matches hashed. A mismatch is false, never an
// error; only a hashing-primitive failure would be an error, and bcrypt
// surfaces those through Hash.
func (h *BcryptHasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
