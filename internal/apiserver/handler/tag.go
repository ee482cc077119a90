package handler

import (
	"net/http"

	"github.com/campaignhub/campaignhub/internal/apiserver/database"
	"github.com/campaignhub/campaignhub/internal/authz"
	"github.com/campaignhub/campaignhub/internal/common/dto"
	"github.com/campaignhub/campaignhub/internal/i18n"
	"github.com/gin-gonic/gin"
)

func (h *Handler) requireTagManager(c *gin.Context) (*database.User, bool) {
	actor, err := h.currentUser(c)
	if err != nil {
		i18n.RespondWithError(c, err)
		return nil, false
	}
	if _, err := h.requireActiveAccount(c, actor); err != nil {
		i18n.RespondWithError(c, err)
		return nil, false
	}
	if !authz.HasPermission(actor.Role, authz.PermManageTags) {
		i18n.RespondWithError(c, i18n.ErrorPermissionDenied.WithParam("Permission", string(authz.PermManageTags)))
		return nil, false
	}
	return actor, true
}

// ListTags returns the account's tags.
func (h *Handler) ListTags(c *gin.Context) {
	actor, err := h.currentUser(c)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	tags, err := h.db.ListTagsByAccount(c.Request.Context(), actor.AccountID)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateTag creates a tag with an account-unique name.
func (h *Handler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest.WithParam("Reason", err.Error()))
		return
	}

	actor, ok := h.requireTagManager(c)
	if !ok {
		return
	}

	tag, err := h.coordinator.CreateTag(c.Request.Context(), actor.AccountID, actor.ID, req.Name)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// RenameTag renames a tag; every link referencing the old name follows.
func (h *Handler) RenameTag(c *gin.Context) {
	var req dto.RenameTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest.WithParam("Reason", err.Error()))
		return
	}

	actor, ok := h.requireTagManager(c)
	if !ok {
		return
	}

	tag, err := h.coordinator.RenameTag(c.Request.Context(), actor.AccountID, c.Param("id"), req.Name)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessTagRenamed, nil, tag)
}

// DeleteTag deletes a tag and strips it from every link in the account.
func (h *Handler) DeleteTag(c *gin.Context) {
	actor, ok := h.requireTagManager(c)
	if !ok {
		return
	}

	if err := h.coordinator.DeleteTag(c.Request.Context(), actor.AccountID, c.Param("id")); err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessTagDeleted, nil, nil)
}
