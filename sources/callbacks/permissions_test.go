package callbacks

import (
	"testing"
	"toaster/sources/buttons"
	"toaster/sources/persistence/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func permissionEvent(action string, target int64, level int) *ButtonEvent {
	return ownedEvent(5, 100, buttons.Payload{CallAction: action, Target: target, Permission: level})
}

func TestSetPermission(t *testing.T) {
	tests := []struct {
		name       string
		existing   *entities.UserPermission
		level      int
		wantResult bool
		wantLevel  int
		wantRow    bool
		wantAck    string
	}{
		{
			name:       "Absent to moderator inserts",
			level:      1,
			wantResult: true,
			wantLevel:  1,
			wantRow:    true,
			wantAck:    "⚒️ Пользователю назначена роль \"Модератор\".",
		},
		{
			name:       "Same level is a no-op",
			existing:   &entities.UserPermission{UserID: 7, ConvID: 99, UserPermission: 2},
			level:      2,
			wantResult: false,
			wantLevel:  2,
			wantRow:    true,
			wantAck:    "❗Пользователь уже имеет роль \"Администратор\".",
		},
		{
			name:       "Different level keeps the stored role",
			existing:   &entities.UserPermission{UserID: 7, ConvID: 99, UserPermission: 1},
			level:      2,
			wantResult: false,
			wantLevel:  1,
			wantRow:    true,
			wantAck:    "❗Пользователь уже имеет роль \"Модератор\".",
		},
		{
			name:       "Baseline deletes the row",
			existing:   &entities.UserPermission{UserID: 7, ConvID: 99, UserPermission: 1},
			level:      0,
			wantResult: true,
			wantRow:    false,
			wantAck:    "⚒️ Пользователю назначена роль \"Пользователь\".",
		},
		{
			name:       "Baseline while absent is a no-op",
			level:      0,
			wantResult: false,
			wantRow:    false,
			wantAck:    "❗Пользователь уже имеет роль \"Пользователь\".",
		},
		{
			name:       "Unknown level is rejected",
			level:      9,
			wantResult: false,
			wantRow:    false,
			wantAck:    "❗Неизвестная роль.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.platform.names[7] = "Ivan"
			if tt.existing != nil {
				f.permissions.rows[7] = *tt.existing
			}

			assert.Equal(t, tt.wantResult, f.dispatch(t, permissionEvent(ActionSetPermission, 7, tt.level)))
			assert.Equal(t, tt.wantAck, f.platform.lastAck())

			row, ok := f.permissions.rows[7]
			require.Equal(t, tt.wantRow, ok)
			if tt.wantRow {
				assert.Equal(t, tt.wantLevel, row.UserPermission)
			}
		})
	}
}

func TestSetPermissionStampsConversationAndName(t *testing.T) {
	f := newFixture(t)
	f.platform.names[7] = "Ivan"

	assert.True(t, f.dispatch(t, permissionEvent(ActionSetPermission, 7, 1)))
	assert.Len(t, f.permissions.rows, 1)
	assert.Equal(t, entities.UserPermission{UserID: 7, ConvID: 100, UserName: "Ivan", UserPermission: 1}, f.permissions.rows[7])

	assert.True(t, f.dispatch(t, permissionEvent(ActionSetPermission, 8, 1)))
	assert.Equal(t, unknownUserName, f.permissions.rows[8].UserName)
}

func TestSetPermissionWithoutTarget(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.dispatch(t, permissionEvent(ActionSetPermission, 0, 1)))
	assert.Empty(t, f.permissions.rows)
	assert.Equal(t, "❗Пользователь не указан.", f.platform.lastAck())
}

func TestDropPermission(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.dispatch(t, permissionEvent(ActionDropPermission, 7, 2)))
	assert.Zero(t, f.permissions.writes)

	f.permissions.rows[7] = entities.UserPermission{UserID: 7, ConvID: 100, UserPermission: 2}

	assert.True(t, f.dispatch(t, permissionEvent(ActionDropPermission, 7, 2)))
	assert.Empty(t, f.permissions.rows)
	assert.Contains(t, f.platform.lastAck(), "Пользователь")
}
