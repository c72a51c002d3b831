package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCredit is the per-identity credit ledger. Identity ids come from the
// hosted identity service; this service never invents them.
type UserCredit struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	UserID           string             `bson:"user_id"`
	Plan             string             `bson:"plan"`
	AvailableCredits int                `bson:"available_credits"`

	// UsedToday / DayKey implement the free-tier daily allowance. DayKey is
	// the UTC date of the last use; a stale key means the counter resets.
	UsedToday int    `bson:"used_today"`
	DayKey    string `bson:"day_key"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
