package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/campaignhub/campaignhub/internal/apiserver/database"
	"github.com/campaignhub/campaignhub/internal/authz"
	"github.com/campaignhub/campaignhub/internal/common/dto"
	"github.com/campaignhub/campaignhub/internal/i18n"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListUsers returns every user of the caller's account.
func (h *Handler) ListUsers(c *gin.Context) {
	actor, err := h.currentUser(c)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	users, err := h.db.ListUsersByAccount(c.Request.Context(), actor.AccountID)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	infos := make([]*dto.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, userInfo(u))
	}
	c.JSON(http.StatusOK, infos)
}

// ChangeUserRole sets another user's role. Admins are capped below
// SuperAdmin on both ends of the transition, and the account's last
// SuperAdmin can never be demoted.
func (h *Handler) ChangeUserRole(c *gin.Context) {
	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest.WithParam("Reason", err.Error()))
		return
	}

	newRole, err := authz.ParseRole(req.Role)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	actor, err := h.currentUser(c)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	if _, err := h.requireActiveAccount(c, actor); err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	targetID := c.Param("id")
	err = h.db.Transaction(c.Request.Context(), func(ctx context.Context) error {
		target, err := h.db.GetUser(ctx, targetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return i18n.ErrorUserNotFound
			}
			return err
		}
		// cross-tenant lookups deny as Forbidden, not NotFound
		if d := authz.ValidateAccountAccess(actor.Member(), target.AccountID); !d.Allowed {
			return i18n.ErrorAccountMismatch.WithParam("Rule", d.Rule)
		}

		if d := authz.CanChangeUserRole(actor.Member(), target.Member(), newRole); !d.Allowed {
			return i18n.ErrorCannotChangeRole.WithParam("Rule", d.Rule)
		}

		if newRole.Rank() < target.Role.Rank() {
			users, err := h.db.ListUsersByAccount(ctx, target.AccountID)
			if err != nil {
				return err
			}
			if authz.IsLastSuperAdmin(target.Member(), members(users)) {
				return i18n.ErrorLastSuperAdmin
			}
		}

		target.Role = newRole
		target.UpdatedAt = time.Now()
		return h.db.UpdateUser(ctx, target)
	})
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	h.logger.Info("user role changed",
		zap.String("actor_id", actor.ID),
		zap.String("target_id", targetID),
		zap.String("new_role", string(newRole)))
	i18n.RespondOK(c, i18n.SuccessUserRoleChanged, nil, nil)
}

// DeleteUser removes a user from the caller's account. Removing the last
// SuperAdmin is rejected so the account is never left without one.
func (h *Handler) DeleteUser(c *gin.Context) {
	actor, err := h.currentUser(c)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	if _, err := h.requireActiveAccount(c, actor); err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	targetID := c.Param("id")
	err = h.db.Transaction(c.Request.Context(), func(ctx context.Context) error {
		target, err := h.db.GetUser(ctx, targetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return i18n.ErrorUserNotFound
			}
			return err
		}
		if d := authz.ValidateAccountAccess(actor.Member(), target.AccountID); !d.Allowed {
			return i18n.ErrorAccountMismatch.WithParam("Rule", d.Rule)
		}

		if d := authz.CanManageUser(actor.Member(), target.Member()); !d.Allowed {
			return i18n.ErrorCannotManageUser.WithParam("Rule", d.Rule)
		}
		if !authz.HasPermission(actor.Role, authz.PermDeleteUsers) {
			return i18n.ErrorPermissionDenied.WithParam("Permission", string(authz.PermDeleteUsers))
		}

		users, err := h.db.ListUsersByAccount(ctx, target.AccountID)
		if err != nil {
			return err
		}
		if authz.IsLastSuperAdmin(target.Member(), members(users)) {
			return i18n.ErrorLastSuperAdmin
		}

		return h.db.DeleteUser(ctx, target.AccountID, target.ID)
	})
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	h.logger.Info("user deleted",
		zap.String("actor_id", actor.ID),
		zap.String("target_id", targetID))
	i18n.RespondOK(c, i18n.SuccessUserDeleted, nil, nil)
}

func members(users []*database.User) []authz.Member {
	out := make([]authz.Member, 0, len(users))
	for _, u := range users {
		out = append(out, u.Member())
	}
	return out
}
