package callbacks

import (
	"sync"
	"testing"
	"toaster/sources/buttons"
	"toaster/sources/localization"
	"toaster/sources/metrics"
	"toaster/sources/persistence/entities"
	"toaster/sources/tracing"

	"github.com/stretchr/testify/require"
)

type fakeMarks struct {
	rows   map[int64]entities.ConversationMark
	writes int
	err    error
}

func (f *fakeMarks) GetMark(logger *tracing.Logger, peerID int64) (*entities.ConversationMark, error) {
	if f.err != nil {
		return nil, f.err
	}
	row, ok := f.rows[peerID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeMarks) CreateMark(logger *tracing.Logger, mark *entities.ConversationMark) error {
	f.writes++
	if _, ok := f.rows[mark.ConvID]; !ok {
		f.rows[mark.ConvID] = *mark
	}
	return nil
}

func (f *fakeMarks) UpdateMarkName(logger *tracing.Logger, peerID int64, name string) error {
	f.writes++
	row := f.rows[peerID]
	row.ConvName = name
	f.rows[peerID] = row
	return nil
}

func (f *fakeMarks) DeleteMark(logger *tracing.Logger, peerID int64) error {
	f.writes++
	delete(f.rows, peerID)
	return nil
}

type fakePermissions struct {
	rows   map[int64]entities.UserPermission
	writes int
}

func (f *fakePermissions) GetPermission(logger *tracing.Logger, userID int64) (*entities.UserPermission, error) {
	row, ok := f.rows[userID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakePermissions) UpsertPermission(logger *tracing.Logger, permission *entities.UserPermission) error {
	f.writes++
	f.rows[permission.UserID] = *permission
	return nil
}

func (f *fakePermissions) DeletePermission(logger *tracing.Logger, userID int64) error {
	f.writes++
	delete(f.rows, userID)
	return nil
}

type settingKey struct {
	peer        int64
	name        string
	destination string
}

type fakeSettings struct {
	rows   map[settingKey]int
	writes int
}

func (f *fakeSettings) GetSettings(logger *tracing.Logger, peerID int64, destination string) ([]*entities.ModerationSetting, error) {
	var rows []*entities.ModerationSetting
	for key, status := range f.rows {
		if key.peer == peerID && key.destination == destination {
			rows = append(rows, &entities.ModerationSetting{
				ConvID:             key.peer,
				SettingName:        key.name,
				SettingDestination: key.destination,
				SettingStatus:      status,
			})
		}
	}
	return rows, nil
}

func (f *fakeSettings) UpdateSettingStatus(logger *tracing.Logger, peerID int64, name string, destination string, status int) error {
	f.writes++
	f.rows[settingKey{peer: peerID, name: name, destination: destination}] = status
	return nil
}

type editedMessage struct {
	peerID   int64
	cmid     int
	text     string
	keyboard buttons.Keyboard
}

type fakePlatform struct {
	mu      sync.Mutex
	acks    []string
	edits   []editedMessage
	deletes []int
	names   map[int64]string
	err     error
}

func (f *fakePlatform) SendAck(logger *tracing.Logger, ackToken string, userID int64, peerID int64, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acks = append(f.acks, text)
}

func (f *fakePlatform) EditMessage(logger *tracing.Logger, peerID int64, cmid int, text string, keyboard buttons.Keyboard) error {
	if f.err != nil {
		return f.err
	}
	f.edits = append(f.edits, editedMessage{peerID: peerID, cmid: cmid, text: text, keyboard: keyboard})
	return nil
}

func (f *fakePlatform) DeleteMessage(logger *tracing.Logger, peerID int64, cmid int, forAll bool) error {
	if f.err != nil {
		return f.err
	}
	f.deletes = append(f.deletes, cmid)
	return nil
}

func (f *fakePlatform) LookupUserName(logger *tracing.Logger, userID int64, peerID int64) (string, error) {
	return f.names[userID], nil
}

func (f *fakePlatform) lastAck() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.acks) == 0 {
		return ""
	}
	return f.acks[len(f.acks)-1]
}

type fakeToggles struct {
	disabled map[string]bool
}

func (f *fakeToggles) IsActionEnabled(action string) bool {
	return !f.disabled[action]
}

type fixture struct {
	log         *tracing.Logger
	platform    *fakePlatform
	marks       *fakeMarks
	permissions *fakePermissions
	settings    *fakeSettings
	toggles     *fakeToggles
	deps        *ActionDeps
	dispatcher  *Dispatcher
}

var (
	textsOnce sync.Once
	texts     *localization.LocalizationManager
	textsErr  error
)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := tracing.NewConsoleLogger()

	textsOnce.Do(func() {
		texts, textsErr = localization.NewLocalizationManager(&localization.LocalizationConfig{
			DefaultLanguage:    "ru",
			SupportedLanguages: []string{"ru", "en"},
		}, log)
	})
	require.NoError(t, textsErr)

	f := &fixture{
		log:         log,
		platform:    &fakePlatform{names: map[int64]string{}},
		marks:       &fakeMarks{rows: map[int64]entities.ConversationMark{}},
		permissions: &fakePermissions{rows: map[int64]entities.UserPermission{}},
		settings:    &fakeSettings{rows: map[settingKey]int{}},
		toggles:     &fakeToggles{disabled: map[string]bool{}},
	}

	f.deps = NewActionDeps(
		f.platform,
		f.marks,
		f.permissions,
		f.settings,
		texts,
		RoleTable{0: "Пользователь", 1: "Модератор", 2: "Администратор"},
		metrics.NewMetricsService(log),
	)
	f.deps.Random = func(n int) int { return n - 1 }
	f.dispatcher = NewDispatcher(NewRegistry(), f.deps, f.toggles)

	return f
}

func (f *fixture) dispatch(t *testing.T, event *ButtonEvent) bool {
	t.Helper()
	result, err := f.dispatcher.Dispatch(f.log, event)
	require.NoError(t, err)
	return result
}

func ownedEvent(user int64, peer int64, payload buttons.Payload) *ButtonEvent {
	payload.KeyboardOwner = user
	return &ButtonEvent{
		EventID:       1,
		UserID:        user,
		UserName:      "tester",
		PeerID:        peer,
		PeerName:      "Test chat",
		CMID:          42,
		ButtonEventID: "ack",
		Language:      "ru",
		Payload:       &payload,
	}
}
