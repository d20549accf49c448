package callbacks

import (
	"errors"
	"testing"
	"toaster/sources/buttons"
	"toaster/sources/persistence/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetMarkEndToEnd(t *testing.T) {
	f := newFixture(t)
	event := ownedEvent(5, 100, buttons.Payload{CallAction: ActionSetMark, Mark: "raid"})

	assert.True(t, f.dispatch(t, event))
	require.Len(t, f.marks.rows, 1)
	assert.Equal(t, "raid", f.marks.rows[100].ConvMark)
	assert.Equal(t, "Test chat", f.marks.rows[100].ConvName)
	assert.Contains(t, f.platform.lastAck(), "raid")

	assert.True(t, f.dispatch(t, event))
	assert.Len(t, f.marks.rows, 1)
	assert.Equal(t, 1, f.marks.writes)
	assert.Contains(t, f.platform.lastAck(), "уже имеет метку")
}

func TestSetMarkKeepsFirstLabel(t *testing.T) {
	f := newFixture(t)

	assert.True(t, f.dispatch(t, ownedEvent(5, 100, buttons.Payload{CallAction: ActionSetMark, Mark: "raid"})))
	assert.True(t, f.dispatch(t, ownedEvent(5, 100, buttons.Payload{CallAction: ActionSetMark, Mark: "spam"})))

	require.Len(t, f.marks.rows, 1)
	assert.Equal(t, "raid", f.marks.rows[100].ConvMark)
	assert.Contains(t, f.platform.lastAck(), "raid")
	assert.NotContains(t, f.platform.lastAck(), "spam")
}

func TestSetMarkWithoutLabel(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.dispatch(t, ownedEvent(5, 100, buttons.Payload{CallAction: ActionSetMark, Mark: "  "})))
	assert.Empty(t, f.marks.rows)
	assert.Equal(t, "❗Метка не указана.", f.platform.lastAck())
}

func TestSetMarkStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.marks.err = errors.New("connection refused")

	_, err := f.dispatcher.Dispatch(f.log, ownedEvent(5, 100, buttons.Payload{CallAction: ActionSetMark, Mark: "raid"}))
	assert.Error(t, err)
	assert.Empty(t, f.platform.acks)
}

func TestUpdateConvData(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.dispatch(t, ownedEvent(5, 100, buttons.Payload{CallAction: ActionUpdateConvData})))
	assert.Empty(t, f.marks.rows)
	assert.Equal(t, "❗Беседа еще не имеет метку.", f.platform.lastAck())

	f.marks.rows[100] = entities.ConversationMark{ConvID: 100, ConvName: "Old title", ConvMark: "raid"}

	event := ownedEvent(5, 100, buttons.Payload{CallAction: ActionUpdateConvData})
	event.PeerName = "New title"
	assert.True(t, f.dispatch(t, event))
	assert.Equal(t, "New title", f.marks.rows[100].ConvName)
	assert.Equal(t, "raid", f.marks.rows[100].ConvMark)
	assert.Equal(t, "📝 Данные беседы обновлены.", f.platform.lastAck())
}

func TestDropMark(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.dispatch(t, ownedEvent(5, 100, buttons.Payload{CallAction: ActionDropMark})))
	assert.Empty(t, f.marks.rows)
	assert.Zero(t, f.marks.writes)

	f.marks.rows[100] = entities.ConversationMark{ConvID: 100, ConvMark: "raid"}

	assert.True(t, f.dispatch(t, ownedEvent(5, 100, buttons.Payload{CallAction: ActionDropMark})))
	assert.Empty(t, f.marks.rows)
	assert.Contains(t, f.platform.lastAck(), "raid")
}
