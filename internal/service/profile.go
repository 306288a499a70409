package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/easyshop/backend/internal/models"
	"github.com/easyshop/backend/internal/repo"
)

type ProfileService struct {
	Repo *repo.GormRepo
}

func (s *ProfileService) Get(ctx context.Context, userID int) (*models.Profile, error) {
	profile, err := s.Repo.GetProfile(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("profile for user %d: %w", userID, ErrNotFound)
	}
	return profile, err
}

// Update addresses the row by userID alone; the payload's user_id is
// discarded so a caller cannot redirect the update to another account.
func (s *ProfileService) Update(ctx context.Context, userID int, profile models.Profile) (*models.Profile, error) {
	updated, err := s.Repo.UpdateProfile(ctx, userID, profile)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("profile for user %d: %w", userID, ErrNotFound)
	}
	return updated, err
}

func (s *ProfileService) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	created, err := s.Repo.CreateProfile(ctx, profile)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("profile for user %d already exists: %w", profile.UserID, ErrConflict)
	}
	return created, err
}
