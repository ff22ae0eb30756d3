package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered account.
// PasswordHash is never serialized outward.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty" example:"683cdb8aa96ad71e8e075bd1"`
	Name         string        `bson:"name" json:"name" example:"Jane Reader"`
	Email        string        `bson:"email" json:"email" example:"test@example.com"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at" example:"2025-06-01T23:00:26.005703677Z"`
}

// Claims is the identity payload carried in a bearer token.
// It is reconstructed per-request by the JWT middleware and never stored.
type Claims struct {
	UserID string
	Name   string
	Email  string
}
