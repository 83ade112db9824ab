package models

import "time"

// AdminClaims is what Authenticate stores in the request context.
type AdminClaims struct {
	AdminID   int64
	Email     string
	TokenID   string
	ExpiresAt time.Time
}
