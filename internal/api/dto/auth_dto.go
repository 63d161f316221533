package dto

import "time"

// LoginRequest payload for roster login.
type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the issued session token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginResponse returns the opened session and its greeting.
type LoginResponse struct {
	SessionID  string       `json:"session_id"`
	Name       string       `json:"name"`
	Department string       `json:"department"`
	Rank       string       `json:"rank"`
	Greeting   string       `json:"greeting"`
	Auth       AuthResponse `json:"auth"`
}
