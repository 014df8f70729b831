package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/models"
)

// PasswordCost is the bcrypt work factor for stored password hashes
const PasswordCost = 10

// HashPassword returns a salted bcrypt hash of password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password exceeds 72 bytes", models.ErrValidation)
		}
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash.
// A malformed hash never matches.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
