package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/easyshop/backend/internal/models"
)

func profileCount(t *testing.T, r *GormRepo) int64 {
	t.Helper()
	var count int64
	require.NoError(t, r.DB.Model(&models.Profile{}).Count(&count).Error)
	return count
}

func TestGetProfileNotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetProfile(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCreateAndGetProfile(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateProfile(ctx, &models.Profile{UserID: 1, FirstName: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.UserID)

	got, err := r.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "ada@example.com", got.Email)
}

func TestCreateProfileDuplicateRejected(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.CreateProfile(ctx, &models.Profile{UserID: 1})
	require.NoError(t, err)

	_, err = r.CreateProfile(ctx, &models.Profile{UserID: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
	assert.EqualValues(t, 1, profileCount(t, r))
}

func TestUpdateProfileNotFoundDoesNotInsert(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.UpdateProfile(context.Background(), 42, models.Profile{FirstName: "Nobody"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.EqualValues(t, 0, profileCount(t, r))
}

func TestUpdateProfileIgnoresPayloadUserID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.CreateProfile(ctx, &models.Profile{UserID: 1, FirstName: "Ada"})
	require.NoError(t, err)
	_, err = r.CreateProfile(ctx, &models.Profile{UserID: 2, FirstName: "Grace"})
	require.NoError(t, err)

	// payload claims user 2; the userID parameter must stay authoritative
	updated, err := r.UpdateProfile(ctx, 1, models.Profile{UserID: 2, FirstName: "Ada Lovelace"})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.UserID)
	assert.Equal(t, "Ada Lovelace", updated.FirstName)

	other, err := r.GetProfile(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Grace", other.FirstName)
}

func TestUpdateProfileOverwritesAllMutableFields(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.CreateProfile(ctx, &models.Profile{
		UserID: 1, FirstName: "Ada", LastName: "Lovelace", Phone: "555-0100",
		Email: "ada@example.com", Address: "1 Analytical Way", City: "London", State: "LN", Zip: "00001",
	})
	require.NoError(t, err)

	updated, err := r.UpdateProfile(ctx, 1, models.Profile{FirstName: "Ada"})
	require.NoError(t, err)

	// absolute overwrite: unset payload fields become empty
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Empty(t, updated.LastName)
	assert.Empty(t, updated.Phone)
	assert.Empty(t, updated.City)
}
