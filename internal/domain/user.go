package domain

import (
	"time"
)

// User represents an account that owns plans and tracking data.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username"` // Should be unique
	PasswordHash string    `bson:"passwordHash" json:"-"`    // Never expose this via JSON
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
