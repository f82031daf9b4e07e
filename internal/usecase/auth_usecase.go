package usecase

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
)

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error)
	Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Me(ctx context.Context, userID uuid.UUID) (user.User, error)
}

type Auth struct {
	users user.Repository
	jwt   jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" || len(strings.TrimSpace(in.Password)) < 8 {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	if exists {
		return user.User{}, TokenPair{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}

	usr := user.User{ID: uuid.New(), Email: email, PasswordHash: string(hash)}
	if err := u.users.Create(ctx, usr); err != nil {
		// Lost the uniqueness race.
		if exists, exErr := u.users.ExistsByEmail(ctx, email); exErr == nil && exists {
			return user.User{}, TokenPair{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, TokenPair{}, ErrInternal
	}

	created, err := u.users.GetByID(ctx, usr.ID)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}

	pair, err := u.issueTokens(created)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return sanitizeUser(created), pair, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return user.User{}, TokenPair{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return sanitizeUser(usr), pair, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrUnauthorized
		}
		return TokenPair{}, ErrInternal
	}

	return u.issueTokens(usr)
}

func (u *Auth) Me(ctx context.Context, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUnauthorized
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (u *Auth) issueTokens(usr user.User) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
