package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/jwt"
)

type stubUserRepo struct {
	byEmail map[string]user.User
}

func newStubUserRepo() *stubUserRepo { return &stubUserRepo{byEmail: map[string]user.User{}} }

func (r *stubUserRepo) Create(_ context.Context, u user.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func newAuthUnderTest() (*Auth, *stubUserRepo) {
	repo := newStubUserRepo()
	svc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthUsecase(repo, svc), repo
}

func TestAuth_RegisterLoginRoundTrip(t *testing.T) {
	uc, _ := newAuthUnderTest()
	ctx := context.Background()

	usr, pair, err := uc.Register(ctx, RegisterInput{Email: "  Casey@Example.COM ", Password: "long-enough-pw"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if usr.Email != "casey@example.com" {
		t.Fatalf("email not normalized: %q", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("missing tokens: %+v", pair)
	}

	if _, _, err := uc.Login(ctx, LoginInput{Email: "casey@example.com", Password: "long-enough-pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, _, err := uc.Login(ctx, LoginInput{Email: "casey@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}

	me, err := uc.Me(ctx, usr.ID)
	if err != nil || me.Email != usr.Email {
		t.Fatalf("me: %v %+v", err, me)
	}
}

func TestAuth_RegisterValidation(t *testing.T) {
	uc, _ := newAuthUnderTest()
	ctx := context.Background()

	if _, _, err := uc.Register(ctx, RegisterInput{Email: "a@b.c", Password: "short"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short password: got %v", err)
	}
	if _, _, err := uc.Register(ctx, RegisterInput{Email: "   ", Password: "long-enough-pw"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank email: got %v", err)
	}

	if _, _, err := uc.Register(ctx, RegisterInput{Email: "dup@example.com", Password: "long-enough-pw"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, RegisterInput{Email: "dup@example.com", Password: "long-enough-pw"}); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("duplicate: got %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestAuth_RefreshRejectsAccessToken(t *testing.T) {
	uc, _ := newAuthUnderTest()
	ctx := context.Background()

	_, pair, err := uc.Register(ctx, RegisterInput{Email: "r@example.com", Password: "long-enough-pw"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := uc.Refresh(ctx, pair.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("access token as refresh: got %v, want ErrInvalidRefreshToken", err)
	}

	rotated, err := uc.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rotated.AccessToken == "" || rotated.RefreshToken == "" {
		t.Fatalf("missing rotated tokens: %+v", rotated)
	}
}
