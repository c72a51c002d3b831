package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentStatusCaptured = "captured"
)

// Payment records one checkout success reported by the payment widget.
// The provider payment id is whatever the widget's success callback carried;
// it is stored as-is and is not verified against the provider.
type Payment struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	UserID            string             `bson:"user_id"`
	Plan              string             `bson:"plan"`
	AmountPaise       int                `bson:"amount_paise"`
	Currency          string             `bson:"currency"`
	ProviderPaymentID string             `bson:"provider_payment_id"`
	Status            string             `bson:"status"`
	CreatedAt         time.Time          `bson:"created_at"`
}
