package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hooklabe/models"
)

// UsageStatus is the complete result contract of the check-and-use operation.
// The source system's gating RPC was only ever observed returning these three
// values; the contract is fixed here so callers never have to guess.
type UsageStatus string

const (
	UsageSuccess           UsageStatus = "SUCCESS"
	UsageDailyLimitReached UsageStatus = "DAILY_LIMIT_REACHED"
	UsageNoCredits         UsageStatus = "NO_CREDITS"
)

const planFree = "Free"

type CreditRepository struct {
	col *mongo.Collection
}

func NewCreditRepository(db *mongo.Database) *CreditRepository {
	return &CreditRepository{col: db.Collection("user_credits")}
}

func dayKey(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

// EnsureSignupGrant creates the ledger document for a first-seen identity with
// the signup credit grant. Existing documents are left untouched.
func (r *CreditRepository) EnsureSignupGrant(ctx context.Context, userID string, grant int) error {
	now := time.Now()
	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"user_id":           userID,
			"plan":              planFree,
			"available_credits": grant,
			"used_today":        0,
			"day_key":           dayKey(now),
			"created_at":        now,
		},
		"$set": bson.M{"updated_at": now},
	}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// Get returns the ledger snapshot for display. A missing document is reported
// as mongo.ErrNoDocuments.
func (r *CreditRepository) Get(ctx context.Context, userID string) (*models.UserCredit, error) {
	var credit models.UserCredit
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&credit)
	if err != nil {
		return nil, err
	}
	return &credit, nil
}

// CheckAndUseCredit atomically reserves one usage allowance for the identity.
// freeDailyLimit applies to the Free plan only; paid plans are capped by their
// available balance alone. The day counter resets implicitly on the first call
// of a new UTC day.
func (r *CreditRepository) CheckAndUseCredit(ctx context.Context, userID string, freeDailyLimit int) (UsageStatus, error) {
	now := time.Now()
	today := dayKey(now)

	// Roll the day window forward before evaluating the allowance.
	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID, "day_key": bson.M{"$ne": today}},
		bson.M{"$set": bson.M{"day_key": today, "used_today": 0}},
	)
	if err != nil {
		return "", err
	}

	filter := bson.M{
		"user_id":           userID,
		"available_credits": bson.M{"$gt": 0},
		"$or": []bson.M{
			{"plan": bson.M{"$ne": planFree}},
			{"used_today": bson.M{"$lt": freeDailyLimit}},
		},
	}
	update := bson.M{
		"$inc": bson.M{"available_credits": -1, "used_today": 1},
		"$set": bson.M{"updated_at": now},
	}

	err = r.col.FindOneAndUpdate(ctx, filter, update).Err()
	if err == nil {
		return UsageSuccess, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	// Nothing matched: classify the refusal from the current snapshot.
	credit, err := r.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UsageNoCredits, nil
		}
		return "", err
	}
	if credit.AvailableCredits <= 0 {
		return UsageNoCredits, nil
	}
	return UsageDailyLimitReached, nil
}

// GrantPlanCredits applies a purchase: the balance is set to the plan's credit
// reward and the plan tier is switched, mirroring how the source product's
// payment handler wrote the credits table.
func (r *CreditRepository) GrantPlanCredits(ctx context.Context, userID, plan string, reward int) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"plan":              plan,
			"available_credits": reward,
			"updated_at":        now,
		},
		"$setOnInsert": bson.M{
			"user_id":    userID,
			"used_today": 0,
			"day_key":    dayKey(now),
			"created_at": now,
		},
	}
	_, err := r.col.UpdateOne(ctx, bson.M{"user_id": userID}, update, options.Update().SetUpsert(true))
	return err
}
