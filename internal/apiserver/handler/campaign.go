package handler

import (
	"encoding/csv"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/campaignhub/campaignhub/internal/apiserver/database"
	"github.com/campaignhub/campaignhub/internal/authz"
	"github.com/campaignhub/campaignhub/internal/common/dto"
	"github.com/campaignhub/campaignhub/internal/i18n"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// campaignOwner returns the creator of the campaign's first link, or the
// empty string when the campaign has no rows yet.
func campaignOwner(links []*database.UtmLink, pages []*database.CampaignLandingPage) string {
	if len(links) > 0 {
		return links[0].UserID
	}
	if len(pages) > 0 {
		return pages[0].UserID
	}
	return ""
}

// checkCampaignAccess loads the campaign's rows and runs the ownership
// guard against them. Admin and SuperAdmin pass for any campaign in their
// account; an Editor only for their own.
func (h *Handler) checkCampaignAccess(c *gin.Context, actor *database.User, campaignName string) ([]*database.UtmLink, []*database.CampaignLandingPage, error) {
	links, err := h.db.ListUtmLinksByCampaign(c.Request.Context(), actor.AccountID, campaignName)
	if err != nil {
		return nil, nil, err
	}
	pages, err := h.db.ListLandingPagesByCampaign(c.Request.Context(), actor.AccountID, campaignName)
	if err != nil {
		return nil, nil, err
	}
	if len(links) == 0 && len(pages) == 0 {
		return nil, nil, i18n.ErrorCampaignNotFound
	}

	if d := authz.CanModifyCampaign(actor.Member(), campaignOwner(links, pages)); !d.Allowed {
		return nil, nil, i18n.ErrorPermissionDenied.WithParam("Rule", d.Rule)
	}
	return links, pages, nil
}

// ListCampaigns groups the account's links and landing pages by campaign
// name.
func (h *Handler) ListCampaigns(c *gin.Context) {
	actor, err := h.currentUser(c)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	links, err := h.db.ListUtmLinksByAccount(c.Request.Context(), actor.AccountID)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	pages, err := h.db.ListLandingPagesByAccount(c.Request.Context(), actor.AccountID)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	byName := make(map[string]*dto.CampaignSummary)
	for _, l := range links {
		s, ok := byName[l.CampaignName]
		if !ok {
			s = &dto.CampaignSummary{Name: l.CampaignName, Archived: l.IsArchived}
			byName[l.CampaignName] = s
		}
		s.LinkCount++
	}
	for _, p := range pages {
		s, ok := byName[p.CampaignName]
		if !ok {
			s = &dto.CampaignSummary{Name: p.CampaignName, Archived: p.IsArchived}
			byName[p.CampaignName] = s
		}
		s.PageCount++
	}

	summaries := make([]*dto.CampaignSummary, 0, len(byName))
	for _, s := range byName {
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	c.JSON(http.StatusOK, summaries)
}

// ListLinks returns the account's links, optionally narrowed to one
// campaign via ?campaign=.
func (h *Handler) ListLinks(c *gin.Context) {
	actor, err := h.currentUser(c)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	var links []*database.UtmLink
	if campaign := c.Query("campaign"); campaign != "" {
		links, err = h.db.ListUtmLinksByCampaign(c.Request.Context(), actor.AccountID, campaign)
	} else {
		links, err = h.db.ListUtmLinksByAccount(c.Request.Context(), actor.AccountID)
	}
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	c.JSON(http.StatusOK, links)
}

// CreateLink adds a tracked link to a campaign.
func (h *Handler) CreateLink(c *gin.Context) {
	var req dto.CreateLinkRequest
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
	if !authz.HasPermission(actor.Role, authz.PermCreateCampaigns) {
		i18n.RespondWithError(c, i18n.ErrorPermissionDenied.WithParam("Permission", string(authz.PermCreateCampaigns)))
		return
	}

	campaignName := strings.TrimSpace(req.CampaignName)
	if campaignName == "" {
		i18n.RespondWithError(c, i18n.ErrorCampaignNameRequired)
		return
	}

	now := time.Now()
	link := &database.UtmLink{
		ID:           uuid.NewString(),
		AccountID:    actor.AccountID,
		UserID:       actor.ID,
		CampaignName: campaignName,
		TargetURL:    req.TargetURL,
		Tags:         req.Tags,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.coordinator.CreateLink(c.Request.Context(), link); err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// GetLink returns one link of the caller's account.
func (h *Handler) GetLink(c *gin.Context) {
	actor, err := h.currentUser(c)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	link, err := h.db.GetUtmLinkByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			i18n.RespondWithError(c, i18n.ErrorLinkNotFound)
			return
		}
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	// tenant mismatch denies as Forbidden, never NotFound
	if d := authz.ValidateAccountAccess(actor.Member(), link.AccountID); !d.Allowed {
		i18n.RespondWithError(c, i18n.ErrorAccountMismatch)
		return
	}
	c.JSON(http.StatusOK, link)
}

// SetCampaignArchived archives or unarchives a whole campaign. Editors act
// on their own rows only; Admin and SuperAdmin archive account-wide.
func (h *Handler) SetCampaignArchived(c *gin.Context) {
	var req dto.SetArchivedRequest
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

	campaignName := c.Param("name")
	if _, _, err := h.checkCampaignAccess(c, actor, campaignName); err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	ownerScope := ""
	if actor.Role == authz.RoleEditor {
		ownerScope = actor.ID
	}
	if err := h.coordinator.SetCampaignArchived(c.Request.Context(), actor.AccountID, ownerScope, campaignName, req.Archived); err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessCampaignUpdated, nil, nil)
}

// DeleteCampaign removes every link and landing page of a campaign.
func (h *Handler) DeleteCampaign(c *gin.Context) {
	actor, err := h.currentUser(c)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	if _, err := h.requireActiveAccount(c, actor); err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	if !authz.HasPermission(actor.Role, authz.PermDeleteAnyCampaign) {
		i18n.RespondWithError(c, i18n.ErrorPermissionDenied.WithParam("Permission", string(authz.PermDeleteAnyCampaign)))
		return
	}

	campaignName := c.Param("name")
	if _, _, err := h.checkCampaignAccess(c, actor, campaignName); err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	if err := h.coordinator.DeleteCampaignLinks(c.Request.Context(), actor.AccountID, campaignName); err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessCampaignDeleted, nil, nil)
}

// ReplaceCampaignLinks swaps a campaign's links and landing pages in one
// edit-save. Readers never observe the campaign half-replaced.
func (h *Handler) ReplaceCampaignLinks(c *gin.Context) {
	var req dto.ReplaceCampaignRequest
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

	campaignName := c.Param("name")
	if _, _, err := h.checkCampaignAccess(c, actor, campaignName); err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	links := make([]*database.UtmLink, 0, len(req.Links))
	for _, l := range req.Links {
		links = append(links, &database.UtmLink{TargetURL: l.TargetURL, Tags: l.Tags})
	}
	pages := make([]*database.CampaignLandingPage, 0, len(req.Pages))
	for _, p := range req.Pages {
		pages = append(pages, &database.CampaignLandingPage{URL: p.URL})
	}

	if err := h.coordinator.ReplaceCampaignLinks(c.Request.Context(), actor.AccountID, actor.ID, campaignName, links, pages); err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	i18n.RespondOK(c, i18n.SuccessCampaignUpdated, nil, nil)
}

// ExportLinks streams the account's links as CSV. Gated by the csv_export
// feature toggle, not by a permission.
func (h *Handler) ExportLinks(c *gin.Context) {
	if !h.featureEnabled("csv_export") {
		i18n.RespondWithError(c, i18n.ErrorFeatureDisabled.WithParam("Feature", "csv_export"))
		return
	}

	actor, err := h.currentUser(c)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	links, err := h.db.ListUtmLinksByAccount(c.Request.Context(), actor.AccountID)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="utm-links.csv"`)
	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"campaign", "target_url", "tags", "archived"})
	for _, l := range links {
		archived := "false"
		if l.IsArchived {
			archived = "true"
		}
		_ = w.Write([]string{l.CampaignName, l.TargetURL, strings.Join(l.Tags, "|"), archived})
	}
	w.Flush()
}
