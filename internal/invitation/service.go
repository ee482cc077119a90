package invitation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/campaignhub/campaignhub/internal/apiserver/database"
	"github.com/campaignhub/campaignhub/internal/authz"
	"github.com/campaignhub/campaignhub/internal/i18n"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Identity is the verified identity accepting an invitation. Authentication
// happened upstream; this service only converts the identity into account
// membership.
type Identity struct {
	Email        string
	PasswordHash string
}

// Service drives the invitation state machine: Pending is the only
// non-terminal state, with Accepted and Expired as its two terminal exits.
type Service struct {
	db     database.Database
	clock  Clock
	tokens TokenGenerator
	ttl    time.Duration
	logger *zap.Logger
}

// NewService creates an invitation service with the given TTL.
func NewService(db database.Database, clock Clock, tokens TokenGenerator, ttl time.Duration, logger *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Service{
		db:     db,
		clock:  clock,
		tokens: tokens,
		ttl:    ttl,
		logger: logger,
	}
}

// Create mints a Pending invitation for email at the given role. The creator
// must hold the invite permission, and an Admin cannot mint a SuperAdmin
// invitation.
func (s *Service) Create(ctx context.Context, creator *database.User, accountID, email string, role authz.Role) (*database.Invitation, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, i18n.ErrorInvalidEmail.WithParam("Email", email)
	}
	if !role.Valid() {
		return nil, i18n.ErrorInvalidRole.WithParam("Role", string(role))
	}

	if d := authz.ValidateAccountAccess(creator.Member(), accountID); !d.Allowed {
		return nil, i18n.ErrorAccountMismatch.WithParam("Rule", d.Rule)
	}
	if !authz.HasPermission(creator.Role, authz.PermInviteUsers) {
		return nil, i18n.ErrorPermissionDenied.WithParam("Permission", string(authz.PermInviteUsers))
	}
	if creator.Role == authz.RoleAdmin && role == authz.RoleSuperAdmin {
		return nil, i18n.ErrorInvitationRoleLimit.WithParam("Rule", authz.RuleAdminCannotInviteSuper)
	}

	token, err := s.tokens.Generate()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	inv := &database.Invitation{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Email:     email,
		Role:      role,
		Token:     token,
		Status:    database.InvitationPending,
		ExpiresAt: now.Add(s.ttl),
		InvitedBy: creator.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.CreateInvitation(ctx, inv); err != nil {
		return nil, err
	}

	s.logger.Info("invitation created",
		zap.String("invitation_id", inv.ID),
		zap.String("account_id", accountID),
		zap.String("role", string(role)))
	return inv, nil
}

// Resolve looks an invitation up by token. A Pending invitation past its
// expiry is transitioned to Expired and persisted before being returned;
// expiry is checked at access time, not by a background sweep.
func (s *Service) Resolve(ctx context.Context, token string) (*database.Invitation, error) {
	if token == "" {
		return nil, i18n.ErrorInvitationNotFound
	}

	inv, err := s.db.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, i18n.ErrorInvitationNotFound
		}
		return nil, err
	}

	if inv.Status == database.InvitationPending && s.clock.Now().After(inv.ExpiresAt) {
		if _, err := s.db.UpdateInvitationStatus(ctx, inv.ID, database.InvitationPending, database.InvitationExpired); err != nil {
			return nil, err
		}
		inv.Status = database.InvitationExpired
	}

	return inv, nil
}

// Accept consumes the token and turns identity into a member of the
// invitation's account at the invitation's role. The whole step is one
// transaction: the guarded status transition inside it makes the token
// single-use even under concurrent accepts.
func (s *Service) Accept(ctx context.Context, token string, identity Identity) (*database.User, *database.Account, error) {
	var (
		user    *database.User
		account *database.Account
	)

	err := s.db.Transaction(ctx, func(ctx context.Context) error {
		inv, err := s.Resolve(ctx, token)
		if err != nil {
			return err
		}

		switch inv.Status {
		case database.InvitationPending:
		case database.InvitationExpired:
			return i18n.ErrorInvitationExpired
		default:
			return i18n.ErrorInvitationConsumed
		}

		ok, err := s.db.UpdateInvitationStatus(ctx, inv.ID, database.InvitationPending, database.InvitationAccepted)
		if err != nil {
			return err
		}
		if !ok {
			// a concurrent accept won the transition
			return i18n.ErrorInvitationConsumed
		}

		account, err = s.db.GetAccount(ctx, inv.AccountID)
		if err != nil {
			return err
		}
		if account.Status != database.AccountActive {
			return i18n.ErrorAccountSuspended
		}

		now := s.clock.Now()
		existing, err := s.db.GetUserByEmail(ctx, identity.Email)
		switch {
		case err == nil:
			existing.AccountID = inv.AccountID
			existing.Role = inv.Role
			existing.InvitedBy = inv.InvitedBy
			existing.UpdatedAt = now
			if err := s.db.UpdateUser(ctx, existing); err != nil {
				return err
			}
			user = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = &database.User{
				ID:        uuid.NewString(),
				AccountID: inv.AccountID,
				Email:     identity.Email,
				Password:  identity.PasswordHash,
				Role:      inv.Role,
				InvitedBy: inv.InvitedBy,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := s.db.CreateUser(ctx, user); err != nil {
				return err
			}
		default:
			return err
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("invitation accepted",
		zap.String("account_id", account.ID),
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))
	return user, account, nil
}
