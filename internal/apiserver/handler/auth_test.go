package handler

import (
	"net/http"
	"testing"

	"github.com/campaignhub/campaignhub/internal/apiserver/database"
	"github.com/campaignhub/campaignhub/internal/authz"
	"github.com/campaignhub/campaignhub/internal/common/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/auth/signup", "", dto.SignupRequest{
		AccountName: "acme",
		Email:       "Alice@Acme.io",
		Password:    "s3cret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decode[struct {
		Token string       `json:"token"`
		User  dto.UserInfo `json:"user"`
	}](t, w)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@acme.io", resp.User.Email)
	// the first user of a new account is always a SuperAdmin
	assert.Equal(t, string(authz.RoleSuperAdmin), resp.User.Role)

	// duplicate account name
	w = env.do(http.MethodPost, "/api/auth/signup", "", dto.SignupRequest{
		AccountName: "acme", Email: "bob@other.io", Password: "s3cret",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// duplicate email
	w = env.do(http.MethodPost, "/api/auth/signup", "", dto.SignupRequest{
		AccountName: "other", Email: "alice@acme.io", Password: "s3cret",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// malformed email
	w = env.do(http.MethodPost, "/api/auth/signup", "", dto.SignupRequest{
		AccountName: "third", Email: "nope", Password: "s3cret",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	acc := env.seedAccount("acme")
	env.seedUser(acc.ID, "alice@acme.io", "s3cret", authz.RoleAdmin)

	w := env.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "alice@acme.io", Password: "s3cret"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Token string `json:"token"`
	}](t, w)
	assert.NotEmpty(t, resp.Token)

	w = env.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "alice@acme.io", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ghost@acme.io", Password: "s3cret"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_SuspendedAccount(t *testing.T) {
	env := newTestEnv(t)
	acc := env.seedAccount("acme")
	env.seedUser(acc.ID, "alice@acme.io", "s3cret", authz.RoleAdmin)

	acc.Status = database.AccountSuspended
	require.NoError(t, env.db.UpdateAccount(testCtx(), acc))

	w := env.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "alice@acme.io", Password: "s3cret"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	acc := env.seedAccount("acme")
	u, tok := env.seedUser(acc.ID, "alice@acme.io", "s3cret", authz.RoleEditor)

	w := env.do(http.MethodGet, "/api/auth/me", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[dto.UserInfo](t, w)
	assert.Equal(t, u.ID, info.ID)
	assert.Equal(t, acc.ID, info.AccountID)

	w = env.do(http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	acc := env.seedAccount("acme")
	_, tok := env.seedUser(acc.ID, "alice@acme.io", "old-pass", authz.RoleEditor)

	w := env.do(http.MethodPost, "/api/auth/change-password", tok, dto.ChangePasswordRequest{
		OldPassword: "wrong", NewPassword: "new-pass",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodPost, "/api/auth/change-password", tok, dto.ChangePasswordRequest{
		OldPassword: "old-pass", NewPassword: "new-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "alice@acme.io", Password: "new-pass"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = env.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "alice@acme.io", Password: "old-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
