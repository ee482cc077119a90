package authz

// Permission is a single named capability gated by the static role matrix.
type Permission string

const (
	PermReadCampaigns         Permission = "read_campaigns"
	PermCopyUtmLinks          Permission = "copy_utm_links"
	PermCreateCampaigns       Permission = "create_campaigns"
	PermEditOwnCampaigns      Permission = "edit_own_campaigns"
	PermManageOwnTemplates    Permission = "manage_own_templates"
	PermManageTags            Permission = "manage_tags"
	PermEditAnyCampaign       Permission = "edit_any_campaign"
	PermDeleteAnyCampaign     Permission = "delete_any_campaign"
	PermInviteUsers           Permission = "invite_users"
	PermManageUsers           Permission = "manage_users"
	PermChangeUserRoles       Permission = "change_user_roles"
	PermDeleteUsers           Permission = "delete_users"
	PermManageAccountSettings Permission = "manage_account_settings"
	PermManageBilling         Permission = "manage_billing"
	PermViewAccountAnalytics  Permission = "view_account_analytics"
)

// The matrix is a fixed table per role. Each higher role's set happens to be
// a superset of the one below it, but nothing may rely on that: lookups go
// through the table, never through rank.
var (
	viewerPermissions = []Permission{
		PermReadCampaigns,
		PermCopyUtmLinks,
	}

	editorPermissions = append(viewerPermissions[:len(viewerPermissions):len(viewerPermissions)],
		PermCreateCampaigns,
		PermEditOwnCampaigns,
		PermManageOwnTemplates,
		PermManageTags,
	)

	adminPermissions = append(editorPermissions[:len(editorPermissions):len(editorPermissions)],
		PermEditAnyCampaign,
		PermDeleteAnyCampaign,
		PermInviteUsers,
		PermManageUsers,
		PermChangeUserRoles,
	)

	superAdminPermissions = append(adminPermissions[:len(adminPermissions):len(adminPermissions)],
		PermDeleteUsers,
		PermManageAccountSettings,
		PermManageBilling,
		PermViewAccountAnalytics,
	)

	permissionMatrix = map[Role]map[Permission]struct{}{
		RoleViewer:     toSet(viewerPermissions),
		RoleEditor:     toSet(editorPermissions),
		RoleAdmin:      toSet(adminPermissions),
		RoleSuperAdmin: toSet(superAdminPermissions),
	}
)

func toSet(perms []Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// PermissionsOf returns a copy of the permission set granted to the role.
// Unknown roles have no permissions.
func PermissionsOf(role Role) []Permission {
	switch role {
	case RoleViewer:
		return clonePerms(viewerPermissions)
	case RoleEditor:
		return clonePerms(editorPermissions)
	case RoleAdmin:
		return clonePerms(adminPermissions)
	case RoleSuperAdmin:
		return clonePerms(superAdminPermissions)
	default:
		return nil
	}
}

func clonePerms(perms []Permission) []Permission {
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// HasPermission is a table lookup against the role's permission set.
func HasPermission(role Role, p Permission) bool {
	set, ok := permissionMatrix[role]
	if !ok {
		return false
	}
	_, granted := set[p]
	return granted
}
