package callbacks

import "toaster/sources/configuration"

// RoleTable decodes a permission level into a role name.
type RoleTable map[int]string

func NewRoleTable(config *configuration.Config) RoleTable {
	roles := make(RoleTable, len(config.Permissions.Roles))
	for level, name := range config.Permissions.Roles {
		roles[level] = name
	}
	return roles
}

func (r RoleTable) Name(level int) (string, bool) {
	name, ok := r[level]
	return name, ok
}
