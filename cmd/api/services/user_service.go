package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"hooklabe/cmd/api/dto"
	"hooklabe/models"
)

// creditReader is the read-only ledger slice the user service needs.
type creditReader interface {
	Get(ctx context.Context, userID string) (*models.UserCredit, error)
}

type UserService struct {
	credits creditReader
}

func NewUserService(credits creditReader) *UserService {
	return &UserService{credits: credits}
}

// Profile returns the plan and credit state for the user. An identity with no
// ledger document yet reads as a Free user with zero credits.
func (s *UserService) Profile(ctx context.Context, userID, email string) (dto.UserProfileDTO, error) {
	profile := dto.UserProfileDTO{
		UserID: userID,
		Email:  email,
		Plan:   "Free",
	}

	credit, err := s.credits.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return profile, nil
		}
		return dto.UserProfileDTO{}, err
	}

	profile.Plan = credit.Plan
	profile.Credits = dto.CreditDTO{
		Available: credit.AvailableCredits,
		UsedToday: credit.UsedToday,
		DayKey:    credit.DayKey,
	}
	return profile, nil
}
