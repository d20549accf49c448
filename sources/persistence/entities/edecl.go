package entities

type (
	// ConversationMark is a free-text label attached to a conversation.
	ConversationMark struct {
		ConvID   int64  `gorm:"column:conv_id;primaryKey;autoIncrement:false" json:"conv_id"`
		ConvName string `gorm:"column:conv_name;size:255" json:"conv_name"`
		ConvMark string `gorm:"column:conv_mark;size:255;not null" json:"conv_mark"`
	}

	// UserPermission is a non-baseline role of a user. Baseline users have no row.
	UserPermission struct {
		UserID         int64  `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
		ConvID         int64  `gorm:"column:conv_id;not null" json:"conv_id"`
		UserName       string `gorm:"column:user_name;size:255" json:"user_name"`
		UserPermission int    `gorm:"column:user_permission;not null" json:"user_permission"`
	}

	ModerationSetting struct {
		ConvID             int64  `gorm:"column:conv_id;primaryKey;autoIncrement:false" json:"conv_id"`
		SettingName        string `gorm:"column:setting_name;primaryKey;size:64" json:"setting_name"`
		SettingDestination string `gorm:"column:setting_destination;primaryKey;size:16" json:"setting_destination"`
		SettingStatus      int    `gorm:"column:setting_status;not null;default:0" json:"setting_status"`
	}
)

func (ConversationMark) TableName() string  { return "toaster.conversations" }
func (UserPermission) TableName() string    { return "toaster.permissions" }
func (ModerationSetting) TableName() string { return "toaster_settings.settings" }
