// internal/auth/password.go
//
// Password hashing helpers (bcrypt).
package auth

import "golang.org/x/crypto/bcrypt"

// MinPasswordLen is enforced at registration; existing shorter hashes
// keep working.
const MinPasswordLen = 8

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether plain matches the stored hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
