package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"hooklabe/models"
)

type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection("payments")}
}

// Insert records one captured checkout.
func (r *PaymentRepository) Insert(ctx context.Context, p *models.Payment) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Status == "" {
		p.Status = models.PaymentStatusCaptured
	}
	_, err := r.col.InsertOne(ctx, p)
	return err
}
