package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/domain/user"
	"talent-match/internal/pkg/jwt"
	ucauth "talent-match/internal/usecase/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*Auth, *jwt.HMACService, user.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	lead := user.User{
		ID:           uuid.New(),
		FirstName:    "Lena",
		Email:        "lena@example.com",
		PasswordHash: string(hash),
		Role:         user.RoleLeader,
		Status:       user.StatusActive,
	}
	jwtSvc := jwt.NewHMACService("a", "r", time.Minute, time.Hour)
	users := fakeUsers{byEmail: map[string]user.User{lead.Email: lead}}
	return NewAuthUsecase(users, jwtSvc), jwtSvc, lead
}

func TestAuth_Login(t *testing.T) {
	uc, jwtSvc, lead := newAuthFixture(t)

	usr, pair, err := uc.Login(context.Background(), ucauth.LoginInput{Email: "  LENA@example.com ", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.Equal(t, lead.ID, usr.ID)
	require.Empty(t, usr.PasswordHash)

	claims, err := jwtSvc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.RoleLeader, claims.Role)

	_, _, err = uc.Login(context.Background(), ucauth.LoginInput{Email: lead.Email, Password: "wrong"})
	require.ErrorIs(t, err, ucauth.ErrInvalidCredentials)

	_, _, err = uc.Login(context.Background(), ucauth.LoginInput{Email: "ghost@example.com", Password: "x"})
	require.ErrorIs(t, err, ucauth.ErrInvalidCredentials)
}

func TestAuth_LoginRepositoryFailure(t *testing.T) {
	uc := NewAuthUsecase(fakeUsers{err: errors.New("db down")}, jwt.NewHMACService("a", "r", time.Minute, time.Hour))
	_, _, err := uc.Login(context.Background(), ucauth.LoginInput{Email: "a@b.c", Password: "x"})
	require.ErrorIs(t, err, ucauth.ErrInternal)
}

func TestAuth_Refresh(t *testing.T) {
	uc, _, lead := newAuthFixture(t)
	ctx := context.Background()

	_, pair, err := uc.Login(ctx, ucauth.LoginInput{Email: lead.Email, Password: "s3cret-pass"})
	require.NoError(t, err)

	next, err := uc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, next.AccessToken)
	require.NotEmpty(t, next.RefreshToken)

	_, err = uc.Refresh(ctx, pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = uc.Refresh(ctx, "")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.Refresh(ctx, "garbage")
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}
