package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the payload carried by access and refresh tokens.
// UserID doubles as the registered Subject claim.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the claims belong to an admin account.
func (c *UserClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
