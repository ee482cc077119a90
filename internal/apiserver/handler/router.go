package handler

import (
	"github.com/campaignhub/campaignhub/internal/apiserver/middleware"
	"github.com/gin-gonic/gin"
)

// Routes mounts the API under /api. The invitation resolve and accept
// endpoints are public: the invitee is not a member yet and has no token.
func (h *Handler) Routes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/login", h.Login)
	api.GET("/invitations/:token", h.ResolveInvitation)
	api.POST("/invitations/:token/accept", h.AcceptInvitation)

	authed := api.Group("", middleware.JWTAuthMiddleware(h.jwtService))
	{
		authed.GET("/auth/me", h.Me)
		authed.POST("/auth/change-password", h.ChangePassword)

		authed.GET("/users", h.ListUsers)
		authed.PUT("/users/:id/role", h.ChangeUserRole)
		authed.DELETE("/users/:id", h.DeleteUser)

		authed.POST("/invitations", h.CreateInvitation)
		authed.GET("/invitations", h.ListInvitations)

		authed.GET("/tags", h.ListTags)
		authed.POST("/tags", h.CreateTag)
		authed.PUT("/tags/:id", h.RenameTag)
		authed.DELETE("/tags/:id", h.DeleteTag)

		authed.GET("/campaigns", h.ListCampaigns)
		authed.PUT("/campaigns/:name/archived", h.SetCampaignArchived)
		authed.PUT("/campaigns/:name/links", h.ReplaceCampaignLinks)
		authed.DELETE("/campaigns/:name", h.DeleteCampaign)

		authed.GET("/links", h.ListLinks)
		authed.POST("/links", h.CreateLink)
		authed.GET("/links/:id", h.GetLink)
		authed.GET("/export/links", h.ExportLinks)
	}
}
