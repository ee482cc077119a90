package handler

import (
	"net/http"

	"github.com/campaignhub/campaignhub/internal/authz"
	"github.com/campaignhub/campaignhub/internal/common/dto"
	"github.com/campaignhub/campaignhub/internal/i18n"
	"github.com/campaignhub/campaignhub/internal/invitation"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// CreateInvitation invites an email address into the caller's account at
// a fixed role.
func (h *Handler) CreateInvitation(c *gin.Context) {
	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest.WithParam("Reason", err.Error()))
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

	inv, err := h.invitations.Create(c.Request.Context(), actor, actor.AccountID, req.Email, authz.Role(req.Role))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	// the token is returned once, to the inviter, and never listed again
	c.JSON(http.StatusCreated, gin.H{
		"invitation": inv,
		"token":      inv.Token,
	})
}

// ListInvitations returns the caller's account invitations, tokens omitted.
func (h *Handler) ListInvitations(c *gin.Context) {
	actor, err := h.currentUser(c)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	if !authz.HasPermission(actor.Role, authz.PermInviteUsers) {
		i18n.RespondWithError(c, i18n.ErrorPermissionDenied.WithParam("Permission", string(authz.PermInviteUsers)))
		return
	}

	invs, err := h.db.ListInvitationsByAccount(c.Request.Context(), actor.AccountID)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	c.JSON(http.StatusOK, invs)
}

// ResolveInvitation looks an invitation up by token for the invitee's
// landing page. No authentication: the invitee is not a member yet.
func (h *Handler) ResolveInvitation(c *gin.Context) {
	inv, err := h.invitations.Resolve(c.Request.Context(), c.Param("token"))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// AcceptInvitation consumes the token and signs the invitee in as a member
// of the inviting account.
func (h *Handler) AcceptInvitation(c *gin.Context) {
	var req dto.AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest.WithParam("Reason", err.Error()))
		return
	}

	token := c.Param("token")
	inv, err := h.invitations.Resolve(c.Request.Context(), token)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	user, _, err := h.invitations.Accept(c.Request.Context(), token, invitation.Identity{
		Email:        inv.Email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	jwtToken, err := h.jwtService.GenerateToken(user.ID, user.AccountID, user.Email, string(user.Role))
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": jwtToken,
		"user":  userInfo(user),
	})
}
