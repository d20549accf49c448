package buttons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardRowDoesNotMutateReceiver(t *testing.T) {
	base := NewKeyboard(5).Row(NewButton("a", ColorPrimary, Payload{CallAction: "a"}))

	first := base.Row(NewButton("b", ColorSecondary, Payload{CallAction: "b"}))
	second := base.Row(NewButton("c", ColorSecondary, Payload{CallAction: "c"}))

	assert.Len(t, base.Rows(), 1)
	assert.Equal(t, "b", first.Rows()[1][0].Label)
	assert.Equal(t, "c", second.Rows()[1][0].Label)
	assert.Equal(t, int64(5), second.Owner())
}

func TestKeyboardRowsReturnsCopies(t *testing.T) {
	kb := NewKeyboard(1).Row(NewButton("a", ColorPrimary, Payload{}))

	rows := kb.Rows()
	rows[0][0].Label = "changed"

	assert.Equal(t, "a", kb.Rows()[0][0].Label)
}

func TestKeyboardEmpty(t *testing.T) {
	assert.True(t, Empty().IsEmpty())
	assert.True(t, NewKeyboard(1).Row().IsEmpty())
	assert.False(t, NewKeyboard(1).Row(NewButton("a", ColorPrimary, Payload{})).IsEmpty())
}

func TestKeyboardButtonsKeepsOrder(t *testing.T) {
	kb := NewKeyboard(1).
		Row(NewButton("a", ColorPrimary, Payload{}), NewButton("b", ColorPrimary, Payload{})).
		Row(NewButton("c", ColorPrimary, Payload{}))

	var labels []string
	for _, button := range kb.Buttons() {
		labels = append(labels, button.Label)
	}

	assert.Equal(t, []string{"a", "b", "c"}, labels)
}

func TestColorByStatus(t *testing.T) {
	assert.Equal(t, ColorPositive, ColorByStatus(1))
	assert.Equal(t, ColorNegative, ColorByStatus(0))
}

func TestPayloadPageOr(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		expected int
	}{
		{name: "Missing", page: "", expected: 1},
		{name: "Number", page: "3", expected: 3},
		{name: "Garbage", page: "three", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Payload{Page: tt.page}.PageOr(1))
		})
	}
}

func TestPayloadWithOwner(t *testing.T) {
	assert.Equal(t, int64(7), Payload{}.WithOwner(7).KeyboardOwner)
	assert.Equal(t, int64(3), Payload{KeyboardOwner: 3}.WithOwner(7).KeyboardOwner)
}
