package telegram

import (
	"errors"
	"fmt"
	"testing"
	"toaster/sources/buttons"
	"toaster/sources/tracing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	payloads map[string]buttons.Payload
	err      error
}

func (m *memoryStore) Store(logger *tracing.Logger, payload buttons.Payload) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	token := fmt.Sprintf("t%d", len(m.payloads))
	m.payloads[token] = payload
	return token, nil
}

func TestRenderMarkup(t *testing.T) {
	store := &memoryStore{payloads: map[string]buttons.Payload{}}
	keyboard := buttons.NewKeyboard(5).
		Row(
			buttons.NewButton("Audio", buttons.ColorPositive, buttons.Payload{CallAction: "filters_settings", FilterName: "audio"}),
			buttons.NewButton("Video", buttons.ColorNegative, buttons.Payload{CallAction: "filters_settings", FilterName: "video"}),
		).
		Row(buttons.NewButton("-->", buttons.ColorSecondary, buttons.Payload{CallAction: "filters_settings", Page: "2", KeyboardOwner: 9}))

	markup, err := renderMarkup(tracing.NewConsoleLogger(), store, keyboard)
	require.NoError(t, err)
	require.Len(t, markup.InlineKeyboard, 2)
	require.Len(t, markup.InlineKeyboard[0], 2)

	assert.Equal(t, "🟢 Audio", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "🔴 Video", markup.InlineKeyboard[0][1].Text)
	assert.Equal(t, "-->", markup.InlineKeyboard[1][0].Text)

	token := *markup.InlineKeyboard[0][0].CallbackData
	assert.Equal(t, int64(5), store.payloads[token].KeyboardOwner)
	assert.Equal(t, "audio", store.payloads[token].FilterName)

	token = *markup.InlineKeyboard[1][0].CallbackData
	assert.Equal(t, int64(9), store.payloads[token].KeyboardOwner)
}

func TestRenderEmptyMarkup(t *testing.T) {
	markup, err := renderMarkup(tracing.NewConsoleLogger(), &memoryStore{payloads: map[string]buttons.Payload{}}, buttons.Empty())
	require.NoError(t, err)
	assert.NotNil(t, markup.InlineKeyboard)
	assert.Empty(t, markup.InlineKeyboard)
}

func TestRenderMarkupStoreFailure(t *testing.T) {
	store := &memoryStore{payloads: map[string]buttons.Payload{}, err: errors.New("redis down")}
	keyboard := buttons.NewKeyboard(5).Row(buttons.NewButton("x", buttons.ColorPrimary, buttons.Payload{CallAction: "cancel_command"}))

	_, err := renderMarkup(tracing.NewConsoleLogger(), store, keyboard)
	assert.Error(t, err)
}
