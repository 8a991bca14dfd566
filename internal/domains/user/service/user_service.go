package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"tastebite-backend/internal/domains/user/model"
	"tastebite-backend/internal/domains/user/repository"
	"tastebite-backend/pkg/jwt"
)

// ServiceInterface defines the authentication operations.
type ServiceInterface interface {
	Signup(ctx context.Context, req model.SignupRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
}

type userService struct {
	repo   repository.RepositoryInterface
	jwt    *jwt.Manager
	logger zerolog.Logger
}

func NewUserService(repo repository.RepositoryInterface, jwtManager *jwt.Manager, logger zerolog.Logger) ServiceInterface {
	return &userService{repo: repo, jwt: jwtManager, logger: logger}
}

func (s *userService) Signup(ctx context.Context, req model.SignupRequest) (*model.AuthResponse, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		UserID:    uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateAccessToken(user.UserID.String(), user.Email, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info().Str("user_id", user.UserID.String()).Msg("user registered")
	return &model.AuthResponse{Token: token, User: *user}, nil
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == model.ErrUserNotFound {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(user.UserID.String(), user.Email, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info().Str("user_id", user.UserID.String()).Msg("user logged in")
	return &model.AuthResponse{Token: token, User: *user}, nil
}
