package telegram

import (
	"toaster/sources/buttons"
	"toaster/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type payloadStore interface {
	Store(logger *tracing.Logger, payload buttons.Payload) (string, error)
}

// colorLabel prefixes a label with a marker, inline buttons have no colors.
func colorLabel(button buttons.Button) string {
	switch button.Color {
	case buttons.ColorPositive:
		return "🟢 " + button.Label
	case buttons.ColorNegative:
		return "🔴 " + button.Label
	default:
		return button.Label
	}
}

// renderMarkup stores every button payload, stamped with the keyboard owner,
// and puts the returned token into the callback data.
func renderMarkup(logger *tracing.Logger, store payloadStore, keyboard buttons.Keyboard) (tgbotapi.InlineKeyboardMarkup, error) {
	markup := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}

	for _, row := range keyboard.Rows() {
		var line []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			token, err := store.Store(logger, button.Payload.WithOwner(keyboard.Owner()))
			if err != nil {
				return markup, err
			}
			line = append(line, tgbotapi.NewInlineKeyboardButtonData(colorLabel(button), token))
		}
		markup.InlineKeyboard = append(markup.InlineKeyboard, line)
	}

	return markup, nil
}
