package callbacks

import (
	"math/rand"
	"toaster/sources/metrics"
	"toaster/sources/tracing"
)

const (
	ActionNotOwner        = "not_msg_owner"
	ActionCancel          = "cancel_command"
	ActionSetMark         = "set_mark"
	ActionUpdateConvData  = "update_conv_data"
	ActionDropMark        = "drop_mark"
	ActionSetPermission   = "set_permission"
	ActionDropPermission  = "drop_permission"
	ActionGameRoll        = "game_roll"
	ActionGameCoinflip    = "game_coinflip"
	ActionSystemsSettings = "systems_settings"
	ActionFiltersSettings = "filters_settings"
)

// Action is one unit of button behavior. The result is true when the action
// changed state or produced a user-facing effect. Errors come only from the
// store or the chat platform.
type Action interface {
	Name() string
	Execute(log *tracing.Logger, event *ButtonEvent) (bool, error)
}

type ActionDeps struct {
	Platform    Platform
	Marks       MarksStore
	Permissions PermissionsStore
	Settings    SettingsStore
	Texts       Texts
	Roles       RoleTable
	Metrics     *metrics.MetricsService
	Random      func(n int) int
}

func NewActionDeps(
	platform Platform,
	marks MarksStore,
	permissions PermissionsStore,
	settings SettingsStore,
	texts Texts,
	roles RoleTable,
	metrics *metrics.MetricsService,
) *ActionDeps {
	return &ActionDeps{
		Platform:    platform,
		Marks:       marks,
		Permissions: permissions,
		Settings:    settings,
		Texts:       texts,
		Roles:       roles,
		Metrics:     metrics,
		Random:      rand.Intn,
	}
}

type base struct {
	name string
	deps *ActionDeps
}

func (x *base) Name() string {
	return x.name
}

func (x *base) snackbar(log *tracing.Logger, event *ButtonEvent, text string) {
	x.deps.Platform.SendAck(log, event.ButtonEventID, event.UserID, event.PeerID, text)
}

func (x *base) text(event *ButtonEvent, messageID string) string {
	return x.deps.Texts.Localize(event.Language, messageID)
}

func (x *base) textTd(event *ButtonEvent, messageID string, data map[string]interface{}) string {
	return x.deps.Texts.LocalizeTd(event.Language, messageID, data)
}
