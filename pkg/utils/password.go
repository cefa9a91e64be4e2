package utils

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/registrarhq/registrar/pkg/apperror"
)

const specialChars = "!@#$%^&*"

// HashPassword hashes a password with bcrypt at the default cost
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored bcrypt hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the account password policy: at least 6
// characters, 1 uppercase letter, 3 digits, and 1 special character.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return apperror.NewInvalidError("Password must be at least 6 characters long")
	}

	hasUpper := false
	digits := 0
	hasSpecial := false
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsDigit(c):
			digits++
		case strings.ContainsRune(specialChars, c):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return apperror.NewInvalidError("Password must contain at least 1 uppercase letter")
	}
	if digits < 3 {
		return apperror.NewInvalidError("Password must contain at least 3 numbers")
	}
	if !hasSpecial {
		return apperror.NewInvalidError("Password must contain at least 1 special character (!@#$%^&*)")
	}
	return nil
}
