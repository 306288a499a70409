package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easyshop/backend/internal/models"
)

func TestProfileServiceGetNotFound(t *testing.T) {
	svc := &ProfileService{Repo: newTestDB(t)}

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestProfileServiceUpdateNotFound(t *testing.T) {
	svc := &ProfileService{Repo: newTestDB(t)}

	_, err := svc.Update(context.Background(), 42, models.Profile{FirstName: "Nobody"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestProfileServiceCreateDuplicateConflict(t *testing.T) {
	svc := &ProfileService{Repo: newTestDB(t)}
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.Profile{UserID: 1})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &models.Profile{UserID: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestProfileServiceUpdateRoundTrip(t *testing.T) {
	svc := &ProfileService{Repo: newTestDB(t)}
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.Profile{UserID: 1})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, 1, models.Profile{FirstName: "Ada", City: "London"})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.UserID)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "London", updated.City)
}
