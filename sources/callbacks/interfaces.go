package callbacks

import (
	"toaster/sources/buttons"
	"toaster/sources/persistence/entities"
	"toaster/sources/tracing"
)

type MarksStore interface {
	GetMark(logger *tracing.Logger, peerID int64) (*entities.ConversationMark, error)
	CreateMark(logger *tracing.Logger, mark *entities.ConversationMark) error
	UpdateMarkName(logger *tracing.Logger, peerID int64, name string) error
	DeleteMark(logger *tracing.Logger, peerID int64) error
}

type PermissionsStore interface {
	GetPermission(logger *tracing.Logger, userID int64) (*entities.UserPermission, error)
	UpsertPermission(logger *tracing.Logger, permission *entities.UserPermission) error
	DeletePermission(logger *tracing.Logger, userID int64) error
}

type SettingsStore interface {
	GetSettings(logger *tracing.Logger, peerID int64, destination string) ([]*entities.ModerationSetting, error)
	UpdateSettingStatus(logger *tracing.Logger, peerID int64, name string, destination string, status int) error
}

// Platform is the set of chat operations actions may call.
// SendAck must not block the caller and reports no errors.
type Platform interface {
	SendAck(logger *tracing.Logger, ackToken string, userID int64, peerID int64, text string)
	EditMessage(logger *tracing.Logger, peerID int64, cmid int, text string, keyboard buttons.Keyboard) error
	DeleteMessage(logger *tracing.Logger, peerID int64, cmid int, forAll bool) error
	LookupUserName(logger *tracing.Logger, userID int64, peerID int64) (string, error)
}

type Toggles interface {
	IsActionEnabled(action string) bool
}

type Texts interface {
	Localize(lang string, messageID string) string
	LocalizeTd(lang string, messageID string, templateData map[string]interface{}) string
}
