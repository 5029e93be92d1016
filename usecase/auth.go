package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/google/uuid"
)

// UserStore is the persistence surface the auth and share services need.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, userID string) (*model.User, error)
	SetSharing(ctx context.Context, userID string, enabled bool) error
}

type AuthService struct {
	Users UserStore
}

// Signup hashes the password and persists the user with sharing off.
// The username/password policy is enforced at the request boundary.
func (s *AuthService) Signup(ctx context.Context, username, password string) (*model.User, error) {
	hashedPassword, err := services.HashPassword(password)
	if err != nil {
		utils.TrackError("auth", "password_hashing")
		return nil, err
	}

	user := &model.User{
		UserID:    uuid.NewString(),
		Username:  username,
		Password:  hashedPassword,
		Share:     false,
		CreatedAt: time.Now(),
	}

	if err := s.Users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			utils.TrackAuthAttempt("failure", "signup_duplicate")
			return nil, ErrDuplicateUser
		}
		utils.TrackError("auth", "user_creation")
		return nil, err
	}

	utils.TrackAuthAttempt("success", "signup")
	return user, nil
}

// Signin checks the credentials and issues a token carrying the user id.
func (s *AuthService) Signin(ctx context.Context, username, password string) (string, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		utils.TrackError("auth", "user_lookup")
		return "", err
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "user_not_found")
		return "", ErrUserNotFound
	}

	if !services.VerifyPassword(user.Password, password) {
		utils.TrackAuthAttempt("failure", "invalid_password")
		return "", ErrInvalidCredentials
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		return "", err
	}

	utils.TrackAuthAttempt("success", "signin")
	return token, nil
}

// Verify resolves a token back to the user id that signed in.
func (s *AuthService) Verify(token string) (string, error) {
	return services.ValidateToken(token)
}
