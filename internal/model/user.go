package model

import "time"

// User represents a registered account. PasswordHash is the bcrypt digest of
// the sign-up password and never leaves the service layer.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// SignUpRequest carries the fields of the signUp mutation.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries the fields of the login mutation.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
