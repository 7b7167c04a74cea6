package constants

// Permission strings carried in admin JWT claims.
const (
	PermAdminFull = "chef-catering.admin.full-permit"
	PermChefFull  = "chef-catering.chef.full-permit"
	PermStaffRead = "chef-catering.staff.read-only"

	// Special permissions
	PermAny = "any"
)

// Permission groups for convenience
var (
	LifecyclePermissions = []string{
		PermAdminFull,
		PermChefFull,
	}
)
