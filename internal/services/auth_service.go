package services

import (
	"time"

	"github.com/Sibyl1122/promptGenerator/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

const ConsoleSubject = "console"

// Login exchanges the console password for a bearer token. The password is
// checked against the bcrypt hash in CONSOLE_PASSWORD_HASH.
func Login(password string) (string, time.Time, error) {
	cfg := currentConfig()
	if !cfg.AuthEnabled() || cfg.ConsolePasswordHash == "" {
		return "", time.Time{}, ErrAuthDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cfg.ConsolePasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(utils.TokenTTL)
	token, err := utils.GenerateToken(cfg.JWTSecret, ConsoleSubject, utils.TokenTTL)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// RevokeToken puts a valid token on the denylist for its remaining lifetime.
func RevokeToken(tokenString string) error {
	cfg := currentConfig()
	if !cfg.AuthEnabled() {
		return ErrAuthDisabled
	}

	claims, err := utils.ValidateToken(cfg.JWTSecret, tokenString)
	if err != nil {
		return ErrInvalidCredentials
	}
	return AddToDenylist(tokenString, utils.TokenRemaining(claims))
}

// HashPassword returns the bcrypt hash to store in CONSOLE_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
