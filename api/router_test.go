package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"portfolio-backend/database"
	"portfolio-backend/models"
	"portfolio-backend/services"
)

const testAdminPassword = "admin-password"

type testServer struct {
	router http.Handler
	db     database.Database
	issuer *services.TokenIssuer
}

// newTestServer wires the full router against an in-memory database. Storage
// is left nil so no test can reach the network.
func newTestServer(t *testing.T) testServer {
	t.Helper()
	return newTestServerWithStorage(t, nil)
}

// newTestServerWithStorage wires the router with a storage client, for tests
// that point it at a local fake bucket server
func newTestServerWithStorage(t *testing.T, storage *services.Storage) testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Project{}, &models.Profile{}))

	issuer, err := services.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	currentDB := database.New(db)
	router := newRouter(currentDB, storage, issuer, withStartupTime(time.Now()))

	return testServer{router: router, db: currentDB, issuer: issuer}
}

// seedAdmin creates an admin profile and returns it with a valid session token
func (ts testServer) seedAdmin(t *testing.T) (*models.Profile, string) {
	t.Helper()

	hash, err := services.HashPassword(testAdminPassword)
	require.NoError(t, err)

	profile := &models.Profile{
		Email:        "admin@example.com",
		Role:         models.RoleAdmin,
		PasswordHash: hash,
	}
	require.NoError(t, ts.db.ProfileRepo().Add(profile))

	token, err := ts.issuer.IssueSession(profile.ID, profile.Role)
	require.NoError(t, err)

	return profile, token
}

// do sends a JSON request through the router
func (ts testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// doRaw sends a request with a caller-provided body and content type
func (ts testServer) doRaw(t *testing.T, method, path, token, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
