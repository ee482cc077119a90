package authz

// Decision is the result of a guard check. A denied decision names the rule
// that failed so the caller can log it and render a specific message without
// leaking the existence of other tenants' data.
type Decision struct {
	Allowed bool
	Rule    string
}

// Rule names carried on denied decisions.
const (
	RuleAccountMismatch        = "account_mismatch"
	RuleSelfManagement         = "self_management"
	RuleMissingPermission      = "missing_permission"
	RuleAdminCannotTouchSuper  = "admin_cannot_touch_super_admin"
	RuleAdminCannotGrantSuper  = "admin_cannot_grant_super_admin"
	RuleRoleTooLow             = "role_too_low"
	RuleNotCampaignOwner       = "not_campaign_owner"
	RuleLastSuperAdmin         = "last_super_admin"
	RuleAccountNotActive       = "account_not_active"
	RuleAdminCannotInviteSuper = "admin_cannot_invite_super_admin"
	RuleInvalidRole            = "invalid_role"
)

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(rule string) Decision {
	return Decision{Allowed: false, Rule: rule}
}

// ValidateAccountAccess enforces tenant isolation: a user may only touch
// resources of their own account, regardless of role. A failed check is a
// Forbidden outcome, never NotFound.
func ValidateAccountAccess(u Member, resourceAccountID string) Decision {
	if u.AccountID != resourceAccountID {
		return deny(RuleAccountMismatch)
	}
	return allow()
}

// CanManageUser decides whether actor may manage (suspend, remove, edit)
// target. Self-management is never allowed through this path, and Admins
// cannot manage SuperAdmins.
func CanManageUser(actor, target Member) Decision {
	if actor.ID == target.ID {
		return deny(RuleSelfManagement)
	}
	if d := ValidateAccountAccess(actor, target.AccountID); !d.Allowed {
		return d
	}
	if !HasPermission(actor.Role, PermManageUsers) {
		return deny(RuleMissingPermission)
	}
	if actor.Role == RoleSuperAdmin {
		return allow()
	}
	if actor.Role == RoleAdmin && target.Role == RoleSuperAdmin {
		return deny(RuleAdminCannotTouchSuper)
	}
	return allow()
}

// CanChangeUserRole decides whether actor may set target's role to newRole.
// Admins are capped below SuperAdmin on both ends of the transition: they
// can neither touch an existing SuperAdmin nor promote anyone to SuperAdmin.
func CanChangeUserRole(actor, target Member, newRole Role) Decision {
	if actor.ID == target.ID {
		return deny(RuleSelfManagement)
	}
	if d := ValidateAccountAccess(actor, target.AccountID); !d.Allowed {
		return d
	}
	if !newRole.Valid() {
		return deny(RuleInvalidRole)
	}
	if !HasPermission(actor.Role, PermChangeUserRoles) {
		return deny(RuleMissingPermission)
	}
	switch actor.Role {
	case RoleSuperAdmin:
		return allow()
	case RoleAdmin:
		if target.Role == RoleSuperAdmin {
			return deny(RuleAdminCannotTouchSuper)
		}
		if newRole == RoleSuperAdmin {
			return deny(RuleAdminCannotGrantSuper)
		}
		return allow()
	default:
		return deny(RuleRoleTooLow)
	}
}

// CanModifyCampaign decides whether u may modify a campaign owned by
// campaignOwnerUserID. Admin and SuperAdmin may modify any campaign in their
// account (the caller must still check ValidateAccountAccess); an Editor may
// modify only their own; a Viewer none.
func CanModifyCampaign(u Member, campaignOwnerUserID string) Decision {
	switch u.Role {
	case RoleAdmin, RoleSuperAdmin:
		return allow()
	case RoleEditor:
		if u.ID == campaignOwnerUserID {
			return allow()
		}
		return deny(RuleNotCampaignOwner)
	default:
		return deny(RuleRoleTooLow)
	}
}

// IsLastSuperAdmin reports whether target is the only SuperAdmin among
// accountUsers. Removal and demotion paths must both reject the operation
// when this holds, or the account would be left without a SuperAdmin.
func IsLastSuperAdmin(target Member, accountUsers []Member) bool {
	if target.Role != RoleSuperAdmin {
		return false
	}
	for _, u := range accountUsers {
		if u.Role == RoleSuperAdmin && u.ID != target.ID {
			return false
		}
	}
	return true
}
