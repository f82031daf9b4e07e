package dto

import (
	"time"

	"career-compass/internal/domain/user"
	"career-compass/internal/usecase"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func NewAuthResponse(u user.User, tokens usecase.TokenPair) AuthResponse {
	return AuthResponse{
		User:         NewUserResponse(u),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
}

func NewTokenPairResponse(tokens usecase.TokenPair) TokenPairResponse {
	return TokenPairResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}
}
