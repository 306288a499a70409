package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/easyshop/backend/internal/models"
)

func (r *GormRepo) GetProfile(ctx context.Context, userID int) (*models.Profile, error) {
	var profile models.Profile
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateProfile inserts one profile per user. The primary key on user_id
// rejects a second profile for the same user with gorm.ErrDuplicatedKey.
func (r *GormRepo) CreateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	if err := r.DB.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateProfile overwrites all mutable fields of the row matching userID.
// The user_id carried by the payload is ignored for addressing; zero rows
// affected means the user has no profile and nothing is inserted.
func (r *GormRepo) UpdateProfile(ctx context.Context, userID int, profile models.Profile) (*models.Profile, error) {
	res := r.DB.WithContext(ctx).Model(&models.Profile{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"first_name": profile.FirstName,
		"last_name":  profile.LastName,
		"phone":      profile.Phone,
		"email":      profile.Email,
		"address":    profile.Address,
		"city":       profile.City,
		"state":      profile.State,
		"zip":        profile.Zip,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetProfile(ctx, userID)
}
