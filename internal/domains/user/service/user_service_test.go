package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastebite-backend/internal/domains/user/model"
	"tastebite-backend/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(context.Context, string) (*model.User, error) {
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func newAuthService(repo *fakeUserRepo) ServiceInterface {
	return NewUserService(repo, jwt.NewManager("test-secret", 60), zerolog.Nop())
}

func TestSignupAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	signup := model.SignupRequest{Username: "cook", Email: "cook@example.com", Password: "secret-pass"}

	auth, err := svc.Signup(context.Background(), signup)
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "cook@example.com", auth.User.Email)

	// The stored password is hashed, never the plaintext.
	stored := repo.byEmail["cook@example.com"]
	assert.NotEqual(t, "secret-pass", stored.Password)

	login, err := svc.Login(context.Background(), model.LoginRequest{
		Email: "cook@example.com", Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, auth.User.UserID, login.User.UserID)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	signup := model.SignupRequest{Username: "cook", Email: "cook@example.com", Password: "secret-pass"}
	_, err := svc.Signup(context.Background(), signup)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signup)
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	signup := model.SignupRequest{Username: "cook", Email: "cook@example.com", Password: "secret-pass"}
	_, err = svc.Signup(context.Background(), signup)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), model.LoginRequest{
		Email: "cook@example.com", Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}
