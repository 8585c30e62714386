package dto

import (
	"time"

	"skill-matrix/internal/domain/user"
	"skill-matrix/internal/usecase"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type AuthResponse struct {
	User UserResponse `json:"user"`
	TokenResponse
}

func NewTokenResponse(p usecase.TokenPair) TokenResponse {
	return TokenResponse{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken, TokenType: "Bearer"}
}

func NewAuthResponse(u user.User, p usecase.TokenPair) AuthResponse {
	return AuthResponse{
		User:          UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt},
		TokenResponse: NewTokenResponse(p),
	}
}
