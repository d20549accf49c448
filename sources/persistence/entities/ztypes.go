package entities

const (
	DestinationSystem = "system"
	DestinationFilter = "filter"
)

const (
	SettingOff = 0
	SettingOn  = 1
)

const PermissionBaseline = 0
