package auth

import "github.com/golang-jwt/jwt/v5"

// Authenticator issues and checks the bearer tokens merchant backends send
// to the gateway.
type Authenticator interface {
	GenerateToken(clientID string) (string, error)
	ValidateToken(token string) (*jwt.Token, error)
}
