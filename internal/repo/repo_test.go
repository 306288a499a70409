package repo

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/easyshop/backend/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
	))

	return NewGormRepo(gdb)
}

func seedProduct(t *testing.T, r *GormRepo, p models.Product) models.Product {
	t.Helper()
	require.NoError(t, r.DB.Create(&p).Error)
	return p
}

func seedCategory(t *testing.T, r *GormRepo, c models.Category) models.Category {
	t.Helper()
	require.NoError(t, r.DB.Create(&c).Error)
	return c
}
