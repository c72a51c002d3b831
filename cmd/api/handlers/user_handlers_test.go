package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hooklabe/cmd/api/auth"
	"hooklabe/cmd/api/clients/identityclient"
	"hooklabe/cmd/api/dto"
	"hooklabe/cmd/api/middleware"
	"hooklabe/cmd/api/services"
	"hooklabe/models"
)

type stubIdentity struct {
	session *identityclient.Session
}

func (s stubIdentity) Register(ctx context.Context, email, password string) (*identityclient.Session, error) {
	return s.session, nil
}

func (s stubIdentity) Authenticate(ctx context.Context, email, password string) (*identityclient.Session, error) {
	return s.session, nil
}

func (s stubIdentity) Deauthenticate(ctx context.Context, accessToken string) error { return nil }

func (s stubIdentity) CurrentIdentity(ctx context.Context, accessToken string) *identityclient.Identity {
	return nil
}

type stubBootstrapper struct{}

func (stubBootstrapper) EnsureSignupGrant(ctx context.Context, userID string, grant int) error {
	return nil
}

type stubCreditReader struct {
	credit *models.UserCredit
}

func (s stubCreditReader) Get(ctx context.Context, userID string) (*models.UserCredit, error) {
	return s.credit, nil
}

func TestUserProfileCarriesTheSignedInEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "")

	jwtManager, err := auth.NewJWTManagerFromEnv()
	require.NoError(t, err)

	identity := stubIdentity{session: &identityclient.Session{
		Identity:    identityclient.Identity{ID: "user-1", Email: "creator@example.com"},
		AccessToken: "hosted-token",
	}}
	authSvc := services.NewAuthService(identity, stubBootstrapper{}, jwtManager, 10)
	userSvc := services.NewUserService(stubCreditReader{credit: &models.UserCredit{
		Plan:             "Starter",
		AvailableCredits: 280,
		UsedToday:        2,
		DayKey:           "2025-06-01",
	}})

	session, err := authSvc.Login(context.Background(), "creator@example.com", "pw")
	require.NoError(t, err)

	r := gin.New()
	authed := r.Group("")
	authed.Use(middleware.UserAuthMiddleware(authSvc))
	authed.GET("/users/me", GetUserProfileHandler(userSvc))

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var profile dto.UserProfileDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &profile))
	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, "creator@example.com", profile.Email)
	assert.Equal(t, "Starter", profile.Plan)
	assert.Equal(t, 280, profile.Credits.Available)
}
