package services

import (
	"context"
	"fmt"

	"hooklabe/cmd/api/auth"
	"hooklabe/cmd/api/clients/identityclient"
	"hooklabe/cmd/api/dto"
	"hooklabe/cmd/internal/logger"
)

// identityGateway is the slice of the identity client the auth service needs.
type identityGateway interface {
	Register(ctx context.Context, email, password string) (*identityclient.Session, error)
	Authenticate(ctx context.Context, email, password string) (*identityclient.Session, error)
	Deauthenticate(ctx context.Context, accessToken string) error
	CurrentIdentity(ctx context.Context, accessToken string) *identityclient.Identity
}

// creditBootstrapper creates the signup credit grant for first-seen users.
type creditBootstrapper interface {
	EnsureSignupGrant(ctx context.Context, userID string, grant int) error
}

type AuthService struct {
	identity    identityGateway
	credits     creditBootstrapper
	jwtManager  *auth.JWTManager
	signupGrant int
}

func NewAuthService(identity identityGateway, credits creditBootstrapper, jwtManager *auth.JWTManager, signupGrant int) *AuthService {
	return &AuthService{
		identity:    identity,
		credits:     credits,
		jwtManager:  jwtManager,
		signupGrant: signupGrant,
	}
}

// Register signs the user up with the hosted identity service and, when the
// session is immediately usable, bootstraps the signup credit grant and mints
// the API's own JWT.
func (s *AuthService) Register(ctx context.Context, email, password string) (dto.SessionDTO, error) {
	session, err := s.identity.Register(ctx, email, password)
	if err != nil {
		return dto.SessionDTO{}, err
	}
	return s.establish(ctx, session)
}

// Login performs a password sign-in. The signup grant upsert runs here too so
// identities created out of band still get their ledger document.
func (s *AuthService) Login(ctx context.Context, email, password string) (dto.SessionDTO, error) {
	session, err := s.identity.Authenticate(ctx, email, password)
	if err != nil {
		return dto.SessionDTO{}, err
	}
	return s.establish(ctx, session)
}

func (s *AuthService) establish(ctx context.Context, session *identityclient.Session) (dto.SessionDTO, error) {
	if err := s.credits.EnsureSignupGrant(ctx, session.Identity.ID, s.signupGrant); err != nil {
		// a failed grant must not block the sign-in itself
		logger.ErrorWithFields("signup grant bootstrap failed", logger.Fields{
			"user_id": session.Identity.ID,
			"error":   err.Error(),
		})
	}

	token, err := s.jwtManager.Sign(session.Identity.ID, session.Identity.Email, auth.RoleUser)
	if err != nil {
		return dto.SessionDTO{}, fmt.Errorf("jwt sign: %w", err)
	}

	return dto.SessionDTO{
		UserID:        session.Identity.ID,
		Email:         session.Identity.Email,
		Token:         token,
		IdentityToken: session.AccessToken,
	}, nil
}

// Logout revokes the hosted session.
func (s *AuthService) Logout(ctx context.Context, identityToken string) error {
	return s.identity.Deauthenticate(ctx, identityToken)
}

// Session resolves the identity behind a hosted access token. It fails open:
// any fault reads as "not signed in".
func (s *AuthService) Session(ctx context.Context, identityToken string) *identityclient.Identity {
	return s.identity.CurrentIdentity(ctx, identityToken)
}

func (s *AuthService) ParseAccessToken(token string) (string, string, string, error) {
	return s.jwtManager.Parse(token)
}
