package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type ProfileRepository interface {
	Upsert(ctx context.Context, p Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
}
