package handler

import (
	"github.com/campaignhub/campaignhub/internal/apiserver/database"
	"github.com/campaignhub/campaignhub/internal/apiserver/middleware"
	"github.com/campaignhub/campaignhub/internal/auth/jwt"
	"github.com/campaignhub/campaignhub/internal/common/config"
	"github.com/campaignhub/campaignhub/internal/consistency"
	"github.com/campaignhub/campaignhub/internal/i18n"
	"github.com/campaignhub/campaignhub/internal/invitation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler wires the HTTP layer to the domain services. It stays thin:
// authorization decisions live in authz, cascades in consistency, and the
// invitation state machine in invitation.
type Handler struct {
	db          database.Database
	jwtService  *jwt.Service
	coordinator *consistency.Coordinator
	invitations *invitation.Service
	cfg         *config.APIServerConfig
	logger      *zap.Logger
}

// NewHandler creates the shared API handler.
func NewHandler(
	db database.Database,
	jwtService *jwt.Service,
	coordinator *consistency.Coordinator,
	invitations *invitation.Service,
	cfg *config.APIServerConfig,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		db:          db,
		jwtService:  jwtService,
		coordinator: coordinator,
		invitations: invitations,
		cfg:         cfg,
		logger:      logger,
	}
}

// currentUser loads the authenticated user behind the request's claims. The
// row is re-read on every request so a role change or removal takes effect
// immediately, not at token expiry.
func (h *Handler) currentUser(c *gin.Context) (*database.User, error) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return nil, i18n.ErrUnauthorized
	}

	user, err := h.db.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		return nil, i18n.ErrUnauthorized
	}
	return user, nil
}

// requireActiveAccount loads the user's account and rejects suspended or
// cancelled tenants. Read-only endpoints skip this; every mutation goes
// through it.
func (h *Handler) requireActiveAccount(c *gin.Context, user *database.User) (*database.Account, error) {
	account, err := h.db.GetAccount(c.Request.Context(), user.AccountID)
	if err != nil {
		return nil, i18n.ErrorAccountNotFound
	}
	if account.Status != database.AccountActive {
		return nil, i18n.ErrorAccountSuspended
	}
	return account, nil
}

// featureEnabled consults the deployment's feature toggles. These gate
// extras like exports, never permissions.
func (h *Handler) featureEnabled(name string) bool {
	if h.cfg == nil {
		return false
	}
	return h.cfg.Features[name]
}
