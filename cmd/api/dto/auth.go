package dto

// RegisterRequest is the sign-up request schema.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"creator@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"hunter22"`
}

// LoginRequest is the sign-in request schema.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"creator@example.com"`
	Password string `json:"password" binding:"required" example:"hunter22"`
}

// SessionDTO is the session response schema returned after sign-up and
// sign-in. Token is the API's own JWT; IdentityToken is the hosted identity
// service's access token, kept so the client can sign out remotely.
type SessionDTO struct {
	UserID        string `json:"user_id" example:"5f3c7a9e-1b2d-4c5e-8f90-abc123def456"`
	Email         string `json:"email" example:"creator@example.com"`
	Token         string `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`
	IdentityToken string `json:"identity_token,omitempty" example:"eyJhbGciOiJIUzI1NiJ9..."`
}

// UserProfileDTO is the current-user response schema.
type UserProfileDTO struct {
	UserID  string    `json:"user_id" example:"5f3c7a9e-1b2d-4c5e-8f90-abc123def456"`
	Email   string    `json:"email,omitempty" example:"creator@example.com"`
	Plan    string    `json:"plan" example:"Free"`
	Credits CreditDTO `json:"credits"`
}
