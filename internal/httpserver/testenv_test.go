package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/easyshop/backend/internal/models"
	"github.com/easyshop/backend/internal/repo"
	"github.com/easyshop/backend/internal/service"
	"github.com/easyshop/backend/pkg/hash"
	"github.com/easyshop/backend/pkg/tokens"
)

type testEnv struct {
	T         *testing.T
	E         *echo.Echo
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

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

	gormRepo := repo.NewGormRepo(gdb)
	secret := []byte("test-jwt-secret")

	catalogSvc := &service.CatalogService{Repo: gormRepo}
	deps := Deps{
		AuthHandler:     &AuthHTTP{Svc: &service.AuthService{Repo: gormRepo, JWTSecret: secret}},
		CatalogHandler:  &CatalogHTTP{Svc: catalogSvc},
		CategoryHandler: &CategoryHTTP{Svc: catalogSvc},
		CartHandler:     &CartHTTP{Svc: &service.CartService{Repo: gormRepo}, Users: gormRepo},
		ProfileHandler:  &ProfileHTTP{Svc: &service.ProfileService{Repo: gormRepo}, Users: gormRepo},
		JWTSecret:       secret,
	}

	e := echo.New()
	Register(e, &deps)

	return &testEnv{T: t, E: e, Repo: gormRepo, JWTSecret: secret}
}

func (env *testEnv) seedUser(username, role string) models.User {
	env.T.Helper()

	passwordHash, err := hash.HashPassword("password")
	require.NoError(env.T, err)

	user := models.User{Username: username, PasswordHash: passwordHash, Role: role}
	require.NoError(env.T, env.Repo.DB.Create(&user).Error)
	return user
}

func (env *testEnv) tokenFor(user models.User) string {
	env.T.Helper()

	token, err := tokens.NewAccessToken(user.Username, user.Role, 15*time.Minute, env.JWTSecret)
	require.NoError(env.T, err)
	return token
}

func (env *testEnv) seedProduct(p models.Product) models.Product {
	env.T.Helper()
	require.NoError(env.T, env.Repo.DB.Create(&p).Error)
	return p
}

// doJSON runs the request through the full router, middleware included.
func (env *testEnv) doJSON(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
