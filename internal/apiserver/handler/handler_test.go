package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campaignhub/campaignhub/internal/apiserver/database"
	"github.com/campaignhub/campaignhub/internal/auth/jwt"
	"github.com/campaignhub/campaignhub/internal/authz"
	"github.com/campaignhub/campaignhub/internal/common/config"
	"github.com/campaignhub/campaignhub/internal/consistency"
	"github.com/campaignhub/campaignhub/internal/invitation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	t      *testing.T
	router *gin.Engine
	db     database.Database
	jwt    *jwt.Service
	cfg    *config.APIServerConfig
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLite(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	jwtService, err := jwt.NewService(jwt.Config{
		SecretKey: "0123456789abcdef0123456789abcdef",
		Duration:  time.Hour,
	})
	require.NoError(t, err)

	logger := zap.NewNop()
	cfg := &config.APIServerConfig{
		Features: map[string]bool{"csv_export": true},
	}
	h := NewHandler(
		db,
		jwtService,
		consistency.NewCoordinator(db, logger),
		invitation.NewService(db, invitation.SystemClock{}, invitation.RandomTokenGenerator{}, 7*24*time.Hour, logger),
		cfg,
		logger,
	)

	r := gin.New()
	h.Routes(r)
	return &testEnv{t: t, router: r, db: db, jwt: jwtService, cfg: cfg}
}

// seedUser creates a user row with a bcrypt-hashed password and returns it
// with a valid bearer token.
func (e *testEnv) seedUser(accountID, email, password string, role authz.Role) (*database.User, string) {
	e.t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(e.t, err)

	u := &database.User{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Email:     email,
		Password:  string(hashed),
		Role:      role,
	}
	require.NoError(e.t, e.db.CreateUser(testCtx(), u))

	tok, err := e.jwt.GenerateToken(u.ID, u.AccountID, u.Email, string(u.Role))
	require.NoError(e.t, err)
	return u, tok
}

func (e *testEnv) seedAccount(name string) *database.Account {
	e.t.Helper()
	acc := &database.Account{ID: uuid.NewString(), Name: name, Status: database.AccountActive}
	require.NoError(e.t, e.db.CreateAccount(testCtx(), acc))
	return acc
}

func (e *testEnv) seedTags(accountID, userID string, names ...string) {
	e.t.Helper()
	for _, name := range names {
		tag := &database.Tag{ID: uuid.NewString(), AccountID: accountID, UserID: userID, Name: name}
		require.NoError(e.t, e.db.CreateTag(testCtx(), tag))
	}
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func testCtx() context.Context { return context.Background() }
