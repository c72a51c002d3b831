package dto

// ErrorResponseDTO unifies the error response shape across endpoints.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"invalid_token"`
}

// MessageResponseDTO unifies the simple message response shape.
type MessageResponseDTO struct {
	Message string `json:"message" example:"signed out successfully"`
}
