package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor for interactive login paths.
// Raise via configuration as attacker hardware improves.
const DefaultCost = bcrypt.DefaultCost

// HashPassword hashes a password with bcrypt at the given cost. bcrypt
// embeds a fresh random salt per call, so hashing the same password twice
// yields different digests.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks whether a password matches the given bcrypt digest.
// bcrypt's comparison is constant-time. A mismatch returns (false, nil); an
// error means the stored digest is malformed, which is a programming or data
// corruption fault, not a user-facing condition.
func VerifyPassword(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("comparing password hash: %w", err)
}
