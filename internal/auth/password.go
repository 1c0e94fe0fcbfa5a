package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way hash of the password.
// cost <= 0 falls back to bcrypt's default.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(h), err
}

// CheckPassword reports whether password matches the stored hash.
// bcrypt's comparison is constant-time with respect to the password.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
