package handler

import (
	"net/http"
	"testing"

	"github.com/campaignhub/campaignhub/internal/authz"
	"github.com/campaignhub/campaignhub/internal/common/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers_ScopedToAccount(t *testing.T) {
	env := newTestEnv(t)
	acc1 := env.seedAccount("acme")
	acc2 := env.seedAccount("umbrella")
	_, tok := env.seedUser(acc1.ID, "super@acme.io", "pw", authz.RoleSuperAdmin)
	env.seedUser(acc1.ID, "editor@acme.io", "pw", authz.RoleEditor)
	env.seedUser(acc2.ID, "outsider@umbrella.io", "pw", authz.RoleSuperAdmin)

	w := env.do(http.MethodGet, "/api/users", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decode[[]dto.UserInfo](t, w)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, acc1.ID, u.AccountID)
	}
}

func TestChangeUserRole(t *testing.T) {
	env := newTestEnv(t)
	acc := env.seedAccount("acme")
	super, _ := env.seedUser(acc.ID, "super@acme.io", "pw", authz.RoleSuperAdmin)
	_, adminTok := env.seedUser(acc.ID, "admin@acme.io", "pw", authz.RoleAdmin)
	editor, _ := env.seedUser(acc.ID, "editor@acme.io", "pw", authz.RoleEditor)

	// admin moves an editor down
	w := env.do(http.MethodPut, "/api/users/"+editor.ID+"/role", adminTok, dto.ChangeRoleRequest{Role: "viewer"})
	require.Equal(t, http.StatusOK, w.Code)
	got, err := env.db.GetUser(testCtx(), editor.ID)
	require.NoError(t, err)
	assert.Equal(t, authz.RoleViewer, got.Role)

	// admin cannot promote anyone to super_admin
	w = env.do(http.MethodPut, "/api/users/"+editor.ID+"/role", adminTok, dto.ChangeRoleRequest{Role: "super_admin"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// admin cannot touch an existing super_admin
	w = env.do(http.MethodPut, "/api/users/"+super.ID+"/role", adminTok, dto.ChangeRoleRequest{Role: "admin"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// unknown role is rejected at the boundary
	w = env.do(http.MethodPut, "/api/users/"+editor.ID+"/role", adminTok, dto.ChangeRoleRequest{Role: "owner"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangeUserRole_CrossAccountIsForbidden(t *testing.T) {
	env := newTestEnv(t)
	acc1 := env.seedAccount("acme")
	acc2 := env.seedAccount("umbrella")
	_, superTok := env.seedUser(acc1.ID, "super@acme.io", "pw", authz.RoleSuperAdmin)
	outsider, _ := env.seedUser(acc2.ID, "outsider@umbrella.io", "pw", authz.RoleEditor)

	// tenant mismatch answers Forbidden, never NotFound
	w := env.do(http.MethodPut, "/api/users/"+outsider.ID+"/role", superTok, dto.ChangeRoleRequest{Role: "viewer"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	got, err := env.db.GetUser(testCtx(), outsider.ID)
	require.NoError(t, err)
	assert.Equal(t, authz.RoleEditor, got.Role)
}

func TestChangeUserRole_LastSuperAdminDemotion(t *testing.T) {
	env := newTestEnv(t)
	acc := env.seedAccount("acme")
	super1, super1Tok := env.seedUser(acc.ID, "super1@acme.io", "pw", authz.RoleSuperAdmin)
	super2, super2Tok := env.seedUser(acc.ID, "super2@acme.io", "pw", authz.RoleSuperAdmin)

	// with two super admins a demotion is fine
	w := env.do(http.MethodPut, "/api/users/"+super2.ID+"/role", super1Tok, dto.ChangeRoleRequest{Role: "admin"})
	require.Equal(t, http.StatusOK, w.Code)

	// promote back, then demote the other direction to prove symmetry
	w = env.do(http.MethodPut, "/api/users/"+super2.ID+"/role", super1Tok, dto.ChangeRoleRequest{Role: "super_admin"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPut, "/api/users/"+super1.ID+"/role", super2Tok, dto.ChangeRoleRequest{Role: "editor"})
	require.Equal(t, http.StatusOK, w.Code)

	// super1 is an editor now; super2 is the last super admin and cannot
	// be demoted by anyone
	w = env.do(http.MethodPut, "/api/users/"+super1.ID+"/role", super2Tok, dto.ChangeRoleRequest{Role: "super_admin"})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(http.MethodPut, "/api/users/"+super2.ID+"/role", super1Tok, dto.ChangeRoleRequest{Role: "admin"})
	require.Equal(t, http.StatusOK, w.Code)
	// super1 is the only super admin left; a self-demotion is blocked as
	// self-management before the last-super check even matters
	w = env.do(http.MethodPut, "/api/users/"+super1.ID+"/role", super1Tok, dto.ChangeRoleRequest{Role: "viewer"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	acc := env.seedAccount("acme")
	_, superTok := env.seedUser(acc.ID, "super@acme.io", "pw", authz.RoleSuperAdmin)
	_, adminTok := env.seedUser(acc.ID, "admin@acme.io", "pw", authz.RoleAdmin)
	editor, _ := env.seedUser(acc.ID, "editor@acme.io", "pw", authz.RoleEditor)

	// deleting users is a super_admin permission
	w := env.do(http.MethodDelete, "/api/users/"+editor.ID, adminTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodDelete, "/api/users/"+editor.ID, superTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, err := env.db.GetUser(testCtx(), editor.ID)
	assert.Error(t, err)

	w = env.do(http.MethodDelete, "/api/users/"+editor.ID, superTok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser_CrossAccountIsForbidden(t *testing.T) {
	env := newTestEnv(t)
	acc1 := env.seedAccount("acme")
	acc2 := env.seedAccount("umbrella")
	_, superTok := env.seedUser(acc1.ID, "super@acme.io", "pw", authz.RoleSuperAdmin)
	outsider, _ := env.seedUser(acc2.ID, "outsider@umbrella.io", "pw", authz.RoleEditor)

	w := env.do(http.MethodDelete, "/api/users/"+outsider.ID, superTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	_, err := env.db.GetUser(testCtx(), outsider.ID)
	assert.NoError(t, err)
}

func TestDeleteUser_LastSuperAdmin(t *testing.T) {
	env := newTestEnv(t)
	acc := env.seedAccount("acme")
	super, superTok := env.seedUser(acc.ID, "super@acme.io", "pw", authz.RoleSuperAdmin)

	// self-deletion is rejected as self-management
	w := env.do(http.MethodDelete, "/api/users/"+super.ID, superTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
