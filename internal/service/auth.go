package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/easyshop/backend/internal/models"
	"github.com/easyshop/backend/internal/mykafka"
	"github.com/easyshop/backend/internal/repo"
	"github.com/easyshop/backend/pkg/hash"
	"github.com/easyshop/backend/pkg/logging"
	"github.com/easyshop/backend/pkg/tokens"
)

const accessTokenTTL = 15 * time.Minute

type AuthService struct {
	Repo      *repo.GormRepo
	Producer  *mykafka.Producer
	JWTSecret []byte
}

// Register creates the user together with its empty profile row, so every
// user owns exactly one profile from the moment the account exists.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username required: %w", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("password required: %w", ErrValidation)
	}

	passwordHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Username: username, PasswordHash: passwordHash, Role: "user"}
	if err := s.Repo.CreateUserIfNotExists(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			return nil, fmt.Errorf("username %q taken: %w", username, ErrConflict)
		}
		return nil, err
	}

	if _, err := s.Repo.CreateProfile(ctx, &models.Profile{UserID: user.ID}); err != nil &&
		!errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	s.publishUserEvent(ctx, "user_registered", user.ID, user.Username)
	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("username and password required: %w", ErrValidation)
	}

	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return tokens.NewAccessToken(user.Username, user.Role, accessTokenTTL, s.JWTSecret)
}

func (s *AuthService) publishUserEvent(ctx context.Context, eventType string, userID int, username string) {
	if s.Producer == nil {
		return
	}
	event := map[string]any{
		"type":     eventType,
		"userID":   userID,
		"username": username,
	}
	if err := s.Producer.PublishEvent(ctx, "user_events", fmt.Sprint(userID), event); err != nil {
		logging.FromContext(ctx).Warn("kafka publish failed", "type", eventType, "error", err)
	}
}
