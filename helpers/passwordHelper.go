package helpers

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 12

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(bytes), nil
}

func VerifyPassword(userPassword string, providedHash string) (bool, string) {
	err := bcrypt.CompareHashAndPassword([]byte(providedHash), []byte(userPassword))
	if err != nil {
		return false, "Invalid email or password"
	}
	return true, ""
}
